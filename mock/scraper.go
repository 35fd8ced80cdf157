package mock

import (
	"context"

	"github.com/fwojciec/optcg"
)

var _ optcg.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of optcg.Scraper.
type Scraper struct {
	FetchPacksFn    func(ctx context.Context) ([]*optcg.Pack, error)
	FetchCardsFn    func(ctx context.Context, packID string, progress optcg.CardProgressFunc) ([]*optcg.Card, error)
	DownloadImageFn func(ctx context.Context, card *optcg.Card) ([]byte, error)
}

func (s *Scraper) FetchPacks(ctx context.Context) ([]*optcg.Pack, error) {
	return s.FetchPacksFn(ctx)
}

func (s *Scraper) FetchCards(ctx context.Context, packID string, progress optcg.CardProgressFunc) ([]*optcg.Card, error) {
	return s.FetchCardsFn(ctx, packID, progress)
}

func (s *Scraper) DownloadImage(ctx context.Context, card *optcg.Card) ([]byte, error) {
	return s.DownloadImageFn(ctx, card)
}
