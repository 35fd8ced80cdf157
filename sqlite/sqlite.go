// Package sqlite provides SQLite-based storage implementations for optcg
// services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds on lock contention instead of failing immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode for file-based databases; not supported in-memory.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id TEXT PRIMARY KEY,
			raw_title TEXT NOT NULL,
			prefix TEXT,
			title TEXT NOT NULL DEFAULT '',
			label TEXT,
			fetched_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cards (
			id TEXT NOT NULL,
			pack_id TEXT NOT NULL,
			name TEXT NOT NULL,
			rarity TEXT NOT NULL,
			category TEXT NOT NULL,
			img_url TEXT NOT NULL,
			img_full_url TEXT,
			colors TEXT NOT NULL DEFAULT '',
			cost INTEGER,
			attributes TEXT NOT NULL DEFAULT '',
			power INTEGER,
			counter INTEGER,
			types TEXT NOT NULL DEFAULT '',
			effect TEXT NOT NULL DEFAULT '',
			trigger TEXT,
			content_hash TEXT NOT NULL DEFAULT '',
			fetched_at TEXT NOT NULL,
			PRIMARY KEY (pack_id, id)
		);

		CREATE INDEX IF NOT EXISTS idx_cards_pack_id ON cards(pack_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
