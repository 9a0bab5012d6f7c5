// Package store keeps a local SQLite history of downloaded tracks so
// repeated runs skip what is already on disk.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "trackmirror"
	dbFileName = "history.db"
)

const schema = `
CREATE TABLE IF NOT EXISTS downloads (
	track_id      TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	artist        TEXT NOT NULL,
	path          TEXT NOT NULL,
	downloaded_at TEXT NOT NULL
);
`

// Store is the download history.
type Store struct {
	db *sql.DB
}

// Open opens the history database at the default XDG data location,
// creating file and schema on first use.
func Open() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("resolving history path: %w", err)
	}
	return OpenPath(path)
}

// OpenPath opens the history database at an explicit path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Contains reports whether the catalog track ID was already downloaded.
func (s *Store) Contains(ctx context.Context, trackID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM downloads WHERE track_id = ?`, trackID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying history: %w", err)
	}
	return true, nil
}

// Record notes a completed download. Recording the same track again
// updates the stored path.
func (s *Store) Record(ctx context.Context, trackID, title, artist, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (track_id, title, artist, path, downloaded_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(track_id) DO UPDATE SET path = excluded.path, downloaded_at = excluded.downloaded_at`,
		trackID, title, artist, path, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording download: %w", err)
	}
	return nil
}
