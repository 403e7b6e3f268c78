/*
store.go - Whole-document persistence contract

PURPOSE:
  Defines the interface between the ledger engine and its storage
  backend. The ledger is always read and written as ONE document; there
  are no partial writes and no streaming access. Different backends can
  use SQLite, a flat file, or in-memory storage.

CONTRACT:
  Load          Retrieve the entire document. ErrNoDocument when nothing
                was persisted yet; ErrStorageCorrupt when the persisted
                bytes cannot be decoded (never silently repaired).
  Save          Replace the entire document.
  SeedIfAbsent  Install the initial document only when none exists yet.

IMPLEMENTATIONS:
  - store/sqlite: Production single-row SQLite store
  - ledger/store: In-memory store for tests and development
*/
package ledger

import "context"

// Store persists the ledger document as a single unit.
type Store interface {
	// Load retrieves the whole document. Returns ErrNoDocument if
	// nothing has been persisted, ErrStorageCorrupt if the persisted
	// form cannot be decoded.
	Load(ctx context.Context) (*Document, error)

	// Save replaces the whole document.
	Save(ctx context.Context, doc *Document) error

	// SeedIfAbsent installs seed only when no document exists yet.
	SeedIfAbsent(ctx context.Context, seed *Document) error
}
