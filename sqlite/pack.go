package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/optcg"
)

// Compile-time interface verification.
var _ optcg.PackService = (*PackService)(nil)

// PackService implements optcg.PackService using SQLite.
type PackService struct {
	db *DB
}

// NewPackService creates a new PackService.
func NewPackService(db *DB) *PackService {
	return &PackService{db: db}
}

// SavePacks stores the full pack list, replacing any previous run.
func (s *PackService) SavePacks(ctx context.Context, packs []*optcg.Pack) error {
	for _, pack := range packs {
		if err := pack.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM packs`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, pack := range packs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO packs (id, raw_title, prefix, title, label, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, pack.ID, pack.RawTitle, pack.TitleParts.Prefix, pack.TitleParts.Title,
			pack.TitleParts.Label, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPacks retrieves every stored pack in insertion order.
func (s *PackService) FindPacks(ctx context.Context) ([]*optcg.Pack, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, raw_title, prefix, title, label
		FROM packs
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packs []*optcg.Pack
	for rows.Next() {
		pack, err := scanPack(rows.Scan)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, rows.Err()
}

// FindPackByID retrieves a pack by ID.
func (s *PackService) FindPackByID(ctx context.Context, id string) (*optcg.Pack, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, raw_title, prefix, title, label
		FROM packs
		WHERE id = ?
	`, id)

	pack, err := scanPack(row.Scan)
	if err == sql.ErrNoRows {
		return nil, optcg.Errorf(optcg.ENOTFOUND, "pack not found")
	}
	if err != nil {
		return nil, err
	}
	return pack, nil
}

func scanPack(scan func(...any) error) (*optcg.Pack, error) {
	var pack optcg.Pack
	var prefix, label sql.NullString

	if err := scan(&pack.ID, &pack.RawTitle, &prefix, &pack.TitleParts.Title, &label); err != nil {
		return nil, err
	}
	if prefix.Valid {
		pack.TitleParts.Prefix = &prefix.String
	}
	if label.Valid {
		pack.TitleParts.Label = &label.String
	}
	return &pack, nil
}
