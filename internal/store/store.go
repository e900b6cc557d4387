// Package store caches fetched activity records in a SQLite database so
// repeated renders do not hit the GitHub API.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	_ "modernc.org/sqlite"
)

const currentVersion = 1

// ErrNotFound is returned when no record is cached for a login.
var ErrNotFound = errors.New("record not found")

// CachedRecord is a record together with the time it was fetched.
type CachedRecord struct {
	Record    *domain.ActivityRecord
	FetchedAt time.Time
}

// FreshAt reports whether the record is younger than ttl at now.
func (c *CachedRecord) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.FetchedAt) < ttl
}

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		login      TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create records table: %w", err)
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// Put stores rec, replacing any earlier record for the same login.
func (s *Store) Put(ctx context.Context, rec *domain.ActivityRecord, fetchedAt time.Time) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", rec.Login, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (login, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(login) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		rec.Login, string(payload), fetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put record %q: %w", rec.Login, err)
	}
	return nil
}

// Get returns the cached record for login, or ErrNotFound.
func (s *Store) Get(ctx context.Context, login string) (*CachedRecord, error) {
	var payload, fetchedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM records WHERE login = ?`, login,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %q: %w", login, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", login, err)
	}

	var rec domain.ActivityRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("decode record %q: %w", login, err)
	}
	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at %q: %w", fetchedAt, err)
	}
	return &CachedRecord{Record: &rec, FetchedAt: t}, nil
}

// Delete removes the cached record for login. Deleting a missing record is not an error.
func (s *Store) Delete(ctx context.Context, login string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE login = ?`, login); err != nil {
		return fmt.Errorf("delete record %q: %w", login, err)
	}
	return nil
}
