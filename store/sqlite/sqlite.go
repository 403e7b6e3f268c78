/*
Package sqlite provides a SQLite-backed implementation of ledger.Store.

PURPOSE:
  Persists the ledger as a single JSON document in a one-row table.
  The whole-document contract of ledger.Store maps directly onto a
  single-row read-modify-write; SQLite just supplies durability, WAL
  crash recovery, and an atomic replace.

SCHEMA:
  ledger(id=1, document TEXT, updated_at TEXT)

  The CHECK (id = 1) constraint makes multiple documents impossible by
  construction: one deployment, one ledger.

ERROR MAPPING:
  - driver/IO failures        -> ledger.ErrStorageIO
  - undecodable document JSON -> ledger.ErrStorageCorrupt
  - empty table on Load       -> ledger.ErrNoDocument

WAL MODE:
  Opened with WAL (Write-Ahead Logging) for better crash recovery.
  A mutex serializes writers; there is no multi-client scenario in
  scope, so no finer-grained locking exists.

USAGE:
  st, err := sqlite.New("./data/rent.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

SEE ALSO:
  - ledger/store.go: Interface definition
  - ledger/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/rent-ledger/ledger"
)

// Store implements ledger.Store on SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrStorageIO, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate: %v", ledger.ErrStorageIO, err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			document TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	return err
}

// =============================================================================
// LEDGER STORE (ledger.Store interface)
// =============================================================================

// Load retrieves and decodes the whole document.
func (s *Store) Load(ctx context.Context) (*ledger.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT document FROM ledger WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrStorageIO, err)
	}

	var doc ledger.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrStorageCorrupt, err)
	}
	return &doc, nil
}

// Save replaces the whole document atomically.
func (s *Store) Save(ctx context.Context, doc *ledger.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, doc)
}

func (s *Store) save(ctx context.Context, doc *ledger.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ledger.ErrStorageIO, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger (id, document, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrStorageIO, err)
	}
	return nil
}

// SeedIfAbsent installs seed only when no document has been persisted.
func (s *Store) SeedIfAbsent(ctx context.Context, seed *ledger.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ledger").Scan(&count); err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrStorageIO, err)
	}
	if count > 0 {
		return nil
	}
	return s.save(ctx, seed)
}
