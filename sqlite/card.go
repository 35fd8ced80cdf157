package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/optcg"
)

// Compile-time interface verification.
var _ optcg.CardService = (*CardService)(nil)

// CardService implements optcg.CardService using SQLite.
type CardService struct {
	db *DB
}

// NewCardService creates a new CardService.
func NewCardService(db *DB) *CardService {
	return &CardService{db: db}
}

// contentHash computes a stable hash of a card's JSON encoding so a
// re-scrape can detect changed cards without field-by-field comparison.
func contentHash(card *optcg.Card) (string, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// SaveCards stores the cards of one pack, replacing any previous run.
func (s *CardService) SaveCards(ctx context.Context, packID string, cards []*optcg.Card) error {
	if packID == "" {
		return optcg.Errorf(optcg.EINVALID, "pack ID required")
	}
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE pack_id = ?`, packID); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, card := range cards {
		hash, err := contentHash(card)
		if err != nil {
			return err
		}

		colors := make([]string, len(card.Colors))
		for i, c := range card.Colors {
			colors[i] = string(c)
		}
		attributes := make([]string, len(card.Attributes))
		for i, a := range card.Attributes {
			attributes[i] = string(a)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO cards (
				id, pack_id, name, rarity, category, img_url, img_full_url,
				colors, cost, attributes, power, counter, types, effect,
				trigger, content_hash, fetched_at
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, card.ID, packID, card.Name, string(card.Rarity), string(card.Category),
			card.ImgURL, card.ImgFullURL, strings.Join(colors, "/"), card.Cost,
			strings.Join(attributes, "/"), card.Power, card.Counter,
			strings.Join(card.Types, "/"), card.Effect, card.Trigger, hash, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCardsByPack retrieves every stored card of a pack in insertion order.
func (s *CardService) FindCardsByPack(ctx context.Context, packID string) ([]*optcg.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pack_id, name, rarity, category, img_url, img_full_url,
			colors, cost, attributes, power, counter, types, effect, trigger
		FROM cards
		WHERE pack_id = ?
		ORDER BY rowid
	`, packID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*optcg.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func scanCard(rows *sql.Rows) (*optcg.Card, error) {
	var card optcg.Card
	var rarity, category, colors, attributes, types string
	var imgFullURL, trigger sql.NullString
	var cost, power, counter sql.NullInt64

	err := rows.Scan(&card.ID, &card.PackID, &card.Name, &rarity, &category,
		&card.ImgURL, &imgFullURL, &colors, &cost, &attributes, &power,
		&counter, &types, &card.Effect, &trigger)
	if err != nil {
		return nil, err
	}

	if card.Rarity, err = optcg.ParseRarity(rarity); err != nil {
		return nil, err
	}
	if card.Category, err = optcg.ParseCategory(category); err != nil {
		return nil, err
	}
	for _, segment := range splitList(colors) {
		color, err := optcg.ParseColor(segment)
		if err != nil {
			return nil, err
		}
		card.Colors = append(card.Colors, color)
	}
	for _, segment := range splitList(attributes) {
		attribute, err := optcg.ParseAttribute(segment)
		if err != nil {
			return nil, err
		}
		card.Attributes = append(card.Attributes, attribute)
	}
	card.Types = splitList(types)

	if imgFullURL.Valid {
		card.ImgFullURL = &imgFullURL.String
	}
	if trigger.Valid {
		card.Trigger = &trigger.String
	}
	card.Cost = nullableInt(cost)
	card.Power = nullableInt(power)
	card.Counter = nullableInt(counter)

	return &card, nil
}

// splitList undoes the slash-joined column encoding; an empty column is
// an empty list, not a single empty segment.
func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "/")
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
