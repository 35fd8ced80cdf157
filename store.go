package optcg

import "context"

// PackService persists and retrieves packs.
type PackService interface {
	// SavePacks stores the full pack list, replacing any previous run.
	SavePacks(ctx context.Context, packs []*Pack) error

	// FindPacks retrieves every stored pack.
	FindPacks(ctx context.Context) ([]*Pack, error)

	// FindPackByID retrieves a pack by ID.
	// Returns ENOTFOUND if the pack does not exist.
	FindPackByID(ctx context.Context, id string) (*Pack, error)
}

// CardService persists and retrieves cards.
type CardService interface {
	// SaveCards stores the cards of one pack, replacing any previous run.
	SaveCards(ctx context.Context, packID string, cards []*Card) error

	// FindCardsByPack retrieves every stored card of a pack.
	FindCardsByPack(ctx context.Context, packID string) ([]*Card, error)
}

// ImageWriter persists card images.
type ImageWriter interface {
	SaveImage(ctx context.Context, card *Card, data []byte) error
}
