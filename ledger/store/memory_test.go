package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/rent-ledger/ledger"
	"github.com/warp/rent-ledger/ledger/store"
)

func TestMemory_LoadWithoutDocument(t *testing.T) {
	m := store.NewMemory()

	_, err := m.Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNoDocument)
}

func TestMemory_HandsOutCopies(t *testing.T) {
	// Mutating a loaded document must not change stored state.
	m := store.NewMemory()
	ctx := context.Background()

	doc := ledger.Seed(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.Save(ctx, doc))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	got.Units[0].DueAmount = decimal.NewFromInt(1)
	got.Units[0].UnpaidMonths = append(got.Units[0].UnpaidMonths, "2099-12")

	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, again.Units[0].DueAmount.Equal(decimal.NewFromInt(2500)))
	assert.Len(t, again.Units[0].UnpaidMonths, 1)
}

func TestMemory_SeedIfAbsentOnlyOnce(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	seed := ledger.Seed(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.SeedIfAbsent(ctx, seed))

	doc, err := m.Load(ctx)
	require.NoError(t, err)
	doc.Locations = append(doc.Locations, ledger.Location{ID: "loc-x", Name: "New Compound"})
	require.NoError(t, m.Save(ctx, doc))

	require.NoError(t, m.SeedIfAbsent(ctx, seed))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got.LocationByID("loc-x"))
}
