// Package slog provides logging decorators for optcg interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/optcg"
)

// Ensure LoggingScraper implements optcg.Scraper.
var _ optcg.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with structured operation logging.
type LoggingScraper struct {
	next   optcg.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next optcg.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// FetchPacks delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) FetchPacks(ctx context.Context) ([]*optcg.Pack, error) {
	begin := time.Now()
	packs, err := s.next.FetchPacks(ctx)
	if err != nil {
		s.logger.Error("fetch packs", "error", err, "duration", time.Since(begin))
		return nil, err
	}
	s.logger.Info("fetch packs", "count", len(packs), "duration", time.Since(begin))
	return packs, nil
}

// FetchCards delegates to the wrapped scraper, logging the outcome and
// every per-card failure reported through progress.
func (s *LoggingScraper) FetchCards(ctx context.Context, packID string, progress optcg.CardProgressFunc) ([]*optcg.Card, error) {
	begin := time.Now()

	logged := func(p optcg.CardProgress) {
		if p.Err != nil {
			s.logger.Warn("card failed", "pack", packID, "card", p.CardID, "error", p.Err)
		} else {
			s.logger.Debug("card built", "pack", packID, "card", p.CardID)
		}
		if progress != nil {
			progress(p)
		}
	}

	cards, err := s.next.FetchCards(ctx, packID, logged)
	if err != nil {
		s.logger.Error("fetch cards", "pack", packID, "error", err, "duration", time.Since(begin))
		return nil, err
	}
	s.logger.Info("fetch cards", "pack", packID, "count", len(cards), "duration", time.Since(begin))
	return cards, nil
}

// DownloadImage delegates to the wrapped scraper.
func (s *LoggingScraper) DownloadImage(ctx context.Context, card *optcg.Card) ([]byte, error) {
	begin := time.Now()
	data, err := s.next.DownloadImage(ctx, card)
	if err != nil {
		s.logger.Error("download image", "card", card.ID, "error", err, "duration", time.Since(begin))
		return nil, err
	}
	s.logger.Debug("download image", "card", card.ID, "bytes", len(data), "duration", time.Since(begin))
	return data, nil
}
