// Package store provides ledger.Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/rent-ledger/ledger"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu  sync.RWMutex
	doc *ledger.Document

	// FailLoad / FailSave let tests simulate storage failures.
	FailLoad error
	FailSave error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (*ledger.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	if m.doc == nil {
		return nil, ledger.ErrNoDocument
	}
	return m.doc.Clone(), nil
}

func (m *Memory) Save(_ context.Context, doc *ledger.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}
	m.doc = doc.Clone()
	return nil
}

func (m *Memory) SeedIfAbsent(_ context.Context, seed *ledger.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc != nil {
		return nil
	}
	m.doc = seed.Clone()
	return nil
}
