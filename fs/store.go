// Package fs provides file-based storage for scraped data. Each locale
// gets its own subtree so runs against different vendor sites never
// collide:
//
//	<root>/<lang>/json/packs.json
//	<root>/<lang>/json/cards_<packID>.json
//	<root>/<lang>/images/<filename>
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/optcg"
)

// Compile-time interface verification.
var (
	_ optcg.PackService = (*Store)(nil)
	_ optcg.CardService = (*Store)(nil)
	_ optcg.ImageWriter = (*Store)(nil)
)

// Store persists packs, cards and images under a root directory.
type Store struct {
	rootDir string
	lang    string
}

// NewStore creates a Store writing under rootDir for one language.
func NewStore(rootDir, lang string) *Store {
	return &Store{rootDir: rootDir, lang: lang}
}

func (s *Store) jsonDir() string {
	return filepath.Join(s.rootDir, s.lang, "json")
}

func (s *Store) imagesDir() string {
	return filepath.Join(s.rootDir, s.lang, "images")
}

func (s *Store) packsPath() string {
	return filepath.Join(s.jsonDir(), "packs.json")
}

func (s *Store) cardsPath(packID string) string {
	return filepath.Join(s.jsonDir(), fmt.Sprintf("cards_%s.json", packID))
}

// ImageFilename derives the stored filename from a card's image URL: the
// segment after the last slash, query string stripped.
func ImageFilename(imgURL string) (string, error) {
	slash := strings.LastIndex(imgURL, "/")
	if slash < 0 {
		return "", optcg.Errorf(optcg.EINVALID, "image URL %q has no path", imgURL)
	}
	name := imgURL[slash+1:]
	if q := strings.Index(name, "?"); q >= 0 {
		name = name[:q]
	}
	if name == "" {
		return "", optcg.Errorf(optcg.EINVALID, "image URL %q has no filename", imgURL)
	}
	return name, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return optcg.Errorf(optcg.ENOTFOUND, "no data file at %s", path)
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// SavePacks stores the full pack list, replacing any previous run.
func (s *Store) SavePacks(ctx context.Context, packs []*optcg.Pack) error {
	for _, pack := range packs {
		if err := pack.Validate(); err != nil {
			return err
		}
	}
	return writeJSON(s.packsPath(), packs)
}

// FindPacks retrieves every stored pack.
// Returns ENOTFOUND if no pack list has been saved.
func (s *Store) FindPacks(ctx context.Context) ([]*optcg.Pack, error) {
	var packs []*optcg.Pack
	if err := readJSON(s.packsPath(), &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

// FindPackByID retrieves a pack by ID.
func (s *Store) FindPackByID(ctx context.Context, id string) (*optcg.Pack, error) {
	packs, err := s.FindPacks(ctx)
	if err != nil {
		return nil, err
	}
	for _, pack := range packs {
		if pack.ID == id {
			return pack, nil
		}
	}
	return nil, optcg.Errorf(optcg.ENOTFOUND, "pack not found")
}

// SaveCards stores the cards of one pack, replacing any previous run.
func (s *Store) SaveCards(ctx context.Context, packID string, cards []*optcg.Card) error {
	if packID == "" {
		return optcg.Errorf(optcg.EINVALID, "pack ID required")
	}
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return writeJSON(s.cardsPath(packID), cards)
}

// FindCardsByPack retrieves every stored card of a pack.
// Returns ENOTFOUND if the pack has never been saved.
func (s *Store) FindCardsByPack(ctx context.Context, packID string) ([]*optcg.Card, error) {
	var cards []*optcg.Card
	if err := readJSON(s.cardsPath(packID), &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// SaveImage writes a card's image bytes under the locale's images dir.
func (s *Store) SaveImage(ctx context.Context, card *optcg.Card, data []byte) error {
	name, err := ImageFilename(card.ImgURL)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.imagesDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.imagesDir(), name), data, 0644)
}
