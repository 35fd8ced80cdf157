// Package scrape provides card-list scraping orchestration.
// It coordinates fetching, rate limiting, HTML extraction, and image
// download fan-out; the extraction itself lives in the goquery package.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/optcg"
	optgoquery "github.com/fwojciec/optcg/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the image download fan-out used when no explicit
// concurrency is given.
const DefaultConcurrency = 4

var _ optcg.Scraper = (*Scraper)(nil)

// Scraper retrieves packs and cards from one vendor site.
type Scraper struct {
	// BaseURL of the vendor site, e.g. "https://en.onepiece-cardgame.com".
	BaseURL string

	// Locale tables for the site's display language.
	Locale *optcg.Locale

	Fetcher optcg.Fetcher
	Limiter optcg.Limiter
}

// cardlistURL returns the card-list endpoint, optionally filtered to one
// pack via the series query parameter.
func (s *Scraper) cardlistURL(packID string) string {
	endpoint := fmt.Sprintf("%s/cardlist", s.BaseURL)
	if packID == "" {
		return endpoint
	}
	q := url.Values{}
	q.Set("series", packID)
	return fmt.Sprintf("%s?%s", endpoint, q.Encode())
}

// imgFullURL resolves a card's relative image URL against the base URL.
// Vendor image URLs start with "../".
func (s *Scraper) imgFullURL(imgURL string) string {
	return fmt.Sprintf("%s/%s", s.BaseURL, strings.TrimPrefix(imgURL, "../"))
}

func (s *Scraper) domain() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return s.BaseURL
	}
	return u.Host
}

// fetchDocument retrieves and parses one card-list page, honoring the
// rate limit when a Limiter is configured.
func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, s.domain()); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	return optgoquery.NewDocument(html)
}

// FetchPacks returns every real pack in the vendor's set selector.
func (s *Scraper) FetchPacks(ctx context.Context) ([]*optcg.Pack, error) {
	doc, err := s.fetchDocument(ctx, s.cardlistURL(""))
	if err != nil {
		return nil, err
	}
	return optgoquery.ParsePacks(doc)
}

// FetchCards fetches a pack's card-list page once and builds every card
// against that one document. A failed card build is reported through
// progress and skipped; it never aborts sibling cards.
func (s *Scraper) FetchCards(ctx context.Context, packID string, progress optcg.CardProgressFunc) ([]*optcg.Card, error) {
	doc, err := s.fetchDocument(ctx, s.cardlistURL(packID))
	if err != nil {
		return nil, err
	}

	ids, err := optgoquery.ParseCardIDs(doc)
	if err != nil {
		return nil, err
	}

	parser := optgoquery.NewCardParser(s.Locale)

	var cards []*optcg.Card
	for i, id := range ids {
		card, err := parser.ParseCard(doc, packID, id)
		if err == nil {
			full := s.imgFullURL(card.ImgURL)
			card.ImgFullURL = &full
			cards = append(cards, card)
		}
		if progress != nil {
			progress(optcg.CardProgress{
				CardID:    id,
				Completed: i + 1,
				Total:     len(ids),
				Err:       err,
			})
		}
	}

	return cards, nil
}

// DownloadImage retrieves the full-size front image of a card.
func (s *Scraper) DownloadImage(ctx context.Context, card *optcg.Card) ([]byte, error) {
	fullURL := s.imgFullURL(card.ImgURL)
	if card.ImgFullURL != nil {
		fullURL = *card.ImgFullURL
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, s.domain()); err != nil {
			return nil, err
		}
	}
	return s.Fetcher.FetchBytes(ctx, fullURL)
}

// DownloadImages downloads and persists every card's image concurrently,
// bounded by concurrency. The scraper may be decorated; only its
// DownloadImage method is used. The first failure cancels the remaining
// downloads. Returns the number of images written.
func DownloadImages(ctx context.Context, scraper optcg.Scraper, writer optcg.ImageWriter, cards []*optcg.Card, concurrency int) (int, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	saved := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, card := range cards {
		card := card
		g.Go(func() error {
			data, err := scraper.DownloadImage(ctx, card)
			if err != nil {
				return fmt.Errorf("card %s: %w", card.ID, err)
			}
			if err := writer.SaveImage(ctx, card, data); err != nil {
				return fmt.Errorf("card %s: %w", card.ID, err)
			}
			mu.Lock()
			saved++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return saved, err
	}
	return saved, nil
}
