package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/rent-ledger/ledger"
)

func unitWithMonths(rent int64, months ...ledger.MonthKey) *ledger.Unit {
	return &ledger.Unit{
		ID:           "unit-1",
		TenantID:     "ten-1",
		RentAmount:   decimal.NewFromInt(rent),
		DueAmount:    decimal.NewFromInt(rent * int64(len(months))),
		UnpaidMonths: months,
	}
}

// =============================================================================
// SETTLEMENT TESTS
// =============================================================================

func TestSettle_OldestFirstRetirement(t *testing.T) {
	// GIVEN: Three open months at rent 1000
	// WHEN: A payment of 2000 is applied
	// THEN: The two oldest months are retired, the newest stays open

	unit := unitWithMonths(1000, "2025-01", "2025-02", "2025-03")

	err := ledger.Settle(unit, decimal.NewFromInt(2000))
	require.NoError(t, err)

	assert.True(t, unit.DueAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []ledger.MonthKey{"2025-03"}, unit.UnpaidMonths)
}

func TestSettle_NeverNegative(t *testing.T) {
	// GIVEN: A unit owing 1500
	// WHEN: A payment of 9999 is applied
	// THEN: The balance clamps at zero and all months retire

	unit := unitWithMonths(1500, "2025-04")

	err := ledger.Settle(unit, decimal.NewFromInt(9999))
	require.NoError(t, err)

	assert.True(t, unit.DueAmount.IsZero())
	assert.Empty(t, unit.UnpaidMonths)
}

func TestSettle_PartialMonthStaysOpen(t *testing.T) {
	// GIVEN: Two open months at rent 1000
	// WHEN: A payment of 1500 is applied
	// THEN: One whole month retires; the half-paid month remains listed,
	//       with the remainder reflected only in the balance

	unit := unitWithMonths(1000, "2025-01", "2025-02")

	err := ledger.Settle(unit, decimal.NewFromInt(1500))
	require.NoError(t, err)

	assert.True(t, unit.DueAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, []ledger.MonthKey{"2025-02"}, unit.UnpaidMonths)
}

func TestSettle_ZeroRentClearsAllMonths(t *testing.T) {
	// GIVEN: A zero-rent unit with open months (owner-set rent of 0)
	// WHEN: Any positive payment is applied
	// THEN: Every open month retires; no division by zero

	unit := &ledger.Unit{
		ID:           "unit-1",
		TenantID:     "ten-1",
		RentAmount:   decimal.Zero,
		DueAmount:    decimal.Zero,
		UnpaidMonths: []ledger.MonthKey{"2025-01", "2025-02"},
	}

	err := ledger.Settle(unit, decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.Empty(t, unit.UnpaidMonths)
	assert.True(t, unit.DueAmount.IsZero())
}

func TestSettle_RejectsNonPositiveAmounts(t *testing.T) {
	// GIVEN: Any unit
	// WHEN: A zero or negative payment is applied
	// THEN: Validation fails and the unit is unchanged

	unit := unitWithMonths(1000, "2025-01")

	err := ledger.Settle(unit, decimal.Zero)
	assert.ErrorIs(t, err, ledger.ErrValidation)

	err = ledger.Settle(unit, decimal.NewFromInt(-50))
	assert.ErrorIs(t, err, ledger.ErrValidation)

	assert.True(t, unit.DueAmount.Equal(decimal.NewFromInt(1000)))
	assert.Len(t, unit.UnpaidMonths, 1)
}

func TestSettle_ClampsMonthsToOpenList(t *testing.T) {
	// GIVEN: One open month at rent 500
	// WHEN: A payment covering five months arrives
	// THEN: Only the existing entry is removed

	unit := unitWithMonths(500, "2025-06")

	err := ledger.Settle(unit, decimal.NewFromInt(2500))
	require.NoError(t, err)

	assert.Empty(t, unit.UnpaidMonths)
	assert.True(t, unit.DueAmount.IsZero())
}
