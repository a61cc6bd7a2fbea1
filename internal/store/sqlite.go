package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
)

// schema holds the whole layout: one row per collection key.
// Safe to run multiple times - uses IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore implements Store on top of a single-file embedded database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the store file at path and
// prepares the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	// Serialize access; the store contract is single-writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get reads the value stored under key into out. Absent keys report
// (false, nil) so callers can fall back to an empty collection.
func (s *SQLiteStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewStorageError(fmt.Errorf("failed to read key %q: %w", key, err))
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, apperrors.NewStorageError(fmt.Errorf("failed to decode value for key %q: %w", key, err))
	}

	return true, nil
}

// Set replaces the whole value stored under key.
func (s *SQLiteStore) Set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewStorageError(fmt.Errorf("failed to encode value for key %q: %w", key, err))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return apperrors.NewStorageError(fmt.Errorf("failed to write key %q: %w", key, err))
	}

	return nil
}

// Delete removes the key; absent keys are a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key); err != nil {
		return apperrors.NewStorageError(fmt.Errorf("failed to delete key %q: %w", key, err))
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
