// Package localstore implements storage.Store on a local SQLite file used as
// a plain key-value blob store: one row per collection, each holding the
// whole collection as a serialized JSON array. Queries filter in memory.
//
// This is the fallback backend for running without a Mongo deployment; data
// volumes are a handful of users and a season of events, so rewriting the
// array on every mutation is fine.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/xburian/volejbal-app-v2/internal/storage"
)

const (
	collectionUsers      = "users"
	collectionEvents     = "events"
	collectionAttendance = "attendance"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL
);
`

// Ensure LocalStore implements storage.Store
var _ storage.Store = (*LocalStore)(nil)

// LocalStore implements storage.Store using a single SQLite table as a blob
// store. The mutex serializes read-modify-write cycles; the process is the
// only writer of the file.
type LocalStore struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a LocalStore backed by the SQLite file at dbPath.
// Parent directories are created and the schema applied automatically.
func New(dbPath string) (*LocalStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// readCollection unmarshals the named collection's JSON array into out.
// A missing row leaves out untouched (empty collection).
func (s *LocalStore) readCollection(ctx context.Context, name string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE name = ?", name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}

// writeCollection serializes v and stores it as the named collection's array.
func (s *LocalStore) writeCollection(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO collections (name, data) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET data = excluded.data",
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// warnEmpty logs a degraded read. The Store contract turns unreadable
// collections into empty result sets on the read path.
func warnEmpty(collection string, err error) {
	slog.Warn("collection unreadable, treating as empty", "collection", collection, "error", err)
}
