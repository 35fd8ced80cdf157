package optcg

import "context"

// CardProgress reports progress during card extraction.
// Err is set when a single card failed to build; the failure does not
// abort extraction of sibling cards in the same pack.
type CardProgress struct {
	CardID    string
	Completed int
	Total     int
	Err       error
}

// CardProgressFunc is called as cards are processed.
type CardProgressFunc func(CardProgress)

// Scraper retrieves packs and cards from the vendor card list.
// Implementations hide fetching, rate limiting and HTML extraction.
type Scraper interface {
	// FetchPacks returns every real pack in the vendor's set selector.
	// The sentinel "all packs" option is excluded.
	FetchPacks(ctx context.Context) ([]*Pack, error)

	// FetchCards returns every card of a pack that builds cleanly.
	// Per-card failures are reported through progress and skipped;
	// progress may be nil.
	FetchCards(ctx context.Context, packID string, progress CardProgressFunc) ([]*Card, error)

	// DownloadImage retrieves the full-size front image of a card.
	DownloadImage(ctx context.Context, card *Card) ([]byte, error)
}
