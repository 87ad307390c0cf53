// Package store persists documents and the request event log in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/studybuddy/ent/migrate"
	"github.com/abhisek/studybuddy/internal/engine"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is the engine's sentinel so store lookups satisfy
// engine.DocumentSource directly.
var ErrNotFound = engine.ErrNotFound

// Store holds the ent driver and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open connects to the SQLite database at dsn. It applies recommended
// pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection; one connection keeps them in force.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate.NewSchema(drv).Create(context.Background()); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Driver returns the ent SQL driver the repositories query through.
func (s *Store) Driver() *entsql.Driver {
	return s.drv
}

func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) Documents() *DocumentRepo {
	return &DocumentRepo{drv: s.drv}
}

func (s *Store) Events() *EventRepo {
	return &EventRepo{drv: s.drv, seq: s.seq}
}

// Reset deletes every document and event. The sequence counter keeps
// counting so sequence numbers are never reused.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	for _, t := range migrate.Tables {
		q, args := builder.Delete(t.Name).Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", t.Name, err)
		}
	}
	return tx.Commit()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. STUDYBUDDY_DB environment variable
// 2. $XDG_DATA_HOME/studybuddy/studybuddy.db
// 3. ~/.local/share/studybuddy/studybuddy.db
//
// It does not touch the filesystem; call EnsureDir before Open.
func DefaultDBPath() string {
	if p := os.Getenv("STUDYBUDDY_DB"); p != "" {
		return p
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "studybuddy.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "studybuddy", "studybuddy.db")
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
