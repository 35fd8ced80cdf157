package mock

import (
	"context"

	"github.com/fwojciec/optcg"
)

var _ optcg.PackService = (*PackService)(nil)

// PackService is a mock implementation of optcg.PackService.
type PackService struct {
	SavePacksFn    func(ctx context.Context, packs []*optcg.Pack) error
	FindPacksFn    func(ctx context.Context) ([]*optcg.Pack, error)
	FindPackByIDFn func(ctx context.Context, id string) (*optcg.Pack, error)
}

func (s *PackService) SavePacks(ctx context.Context, packs []*optcg.Pack) error {
	return s.SavePacksFn(ctx, packs)
}

func (s *PackService) FindPacks(ctx context.Context) ([]*optcg.Pack, error) {
	return s.FindPacksFn(ctx)
}

func (s *PackService) FindPackByID(ctx context.Context, id string) (*optcg.Pack, error) {
	return s.FindPackByIDFn(ctx, id)
}

var _ optcg.CardService = (*CardService)(nil)

// CardService is a mock implementation of optcg.CardService.
type CardService struct {
	SaveCardsFn       func(ctx context.Context, packID string, cards []*optcg.Card) error
	FindCardsByPackFn func(ctx context.Context, packID string) ([]*optcg.Card, error)
}

func (s *CardService) SaveCards(ctx context.Context, packID string, cards []*optcg.Card) error {
	return s.SaveCardsFn(ctx, packID, cards)
}

func (s *CardService) FindCardsByPack(ctx context.Context, packID string) ([]*optcg.Card, error) {
	return s.FindCardsByPackFn(ctx, packID)
}

var _ optcg.ImageWriter = (*ImageWriter)(nil)

// ImageWriter is a mock implementation of optcg.ImageWriter.
type ImageWriter struct {
	SaveImageFn func(ctx context.Context, card *optcg.Card, data []byte) error
}

func (w *ImageWriter) SaveImage(ctx context.Context, card *optcg.Card, data []byte) error {
	return w.SaveImageFn(ctx, card, data)
}
