package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/rent-ledger/ledger"
)

func portfolioDoc() *ledger.Document {
	return &ledger.Document{
		Locations: []ledger.Location{
			{ID: "loc-1", Name: "Riverside Residential Complex"},
		},
		Units: []ledger.Unit{
			{ID: "unit-1", LocationID: "loc-1", Name: "Apartment 101", RentAmount: decimal.NewFromInt(2500), DueAmount: decimal.Zero},
		},
	}
}

var june1 = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// =============================================================================
// LEASE REQUEST LIFECYCLE
// =============================================================================

func TestSubmitLeaseRequest_CreatesPendingRequest(t *testing.T) {
	doc := portfolioDoc()

	req, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(2500), "sig")
	require.NoError(t, err)

	assert.Equal(t, ledger.RequestPending, req.Status)
	assert.False(t, doc.UnitByID("unit-1").Occupied(), "submission must not occupy the unit")
}

func TestSubmitLeaseRequest_OccupiedUnitRejected(t *testing.T) {
	doc := portfolioDoc()
	doc.Units[0].TenantID = "ten-9"

	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(2500), "")
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
}

func TestSubmitLeaseRequest_ValidationBeforeAnyChange(t *testing.T) {
	doc := portfolioDoc()

	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "  ", "1122334455", decimal.NewFromInt(2500), "")
	assert.ErrorIs(t, err, ledger.ErrValidation)

	_, err = ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar", "1122334455", decimal.NewFromInt(-1), "")
	assert.ErrorIs(t, err, ledger.ErrValidation)

	assert.Empty(t, doc.LeaseRequests)
}

func TestApproveLeaseRequest_OccupiesUnitAndStartsBilling(t *testing.T) {
	// GIVEN: A pending request on a vacant unit
	// WHEN: The manager approves it
	// THEN: Tenant created, unit occupied, one month's rent due, current
	//       month open, accrual anchored at now

	doc := portfolioDoc()
	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(3000), "")
	require.NoError(t, err)

	res, err := ledger.ApproveLeaseRequest(doc, "req-1", "ten-1", june1)
	require.NoError(t, err)

	assert.Equal(t, ledger.RequestApproved, res.Request.Status)
	assert.Equal(t, "Omar Hassan", res.Tenant.Name)

	unit := res.Unit
	assert.Equal(t, ledger.TenantID("ten-1"), unit.TenantID)
	assert.True(t, unit.RentAmount.Equal(decimal.NewFromInt(3000)), "rent comes from the request")
	assert.True(t, unit.DueAmount.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, []ledger.MonthKey{"2025-06"}, unit.UnpaidMonths)
	require.NotNil(t, unit.LastAccrual)
	assert.Equal(t, june1, *unit.LastAccrual)
}

func TestApproveLeaseRequest_DoubleApprovalRejected(t *testing.T) {
	// GIVEN: An already-approved request
	// WHEN: It is approved again
	// THEN: InvalidState; no second tenant is created

	doc := portfolioDoc()
	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(3000), "")
	require.NoError(t, err)
	_, err = ledger.ApproveLeaseRequest(doc, "req-1", "ten-1", june1)
	require.NoError(t, err)

	_, err = ledger.ApproveLeaseRequest(doc, "req-1", "ten-2", june1)
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
	assert.Len(t, doc.Tenants, 1)
}

func TestApproveLeaseRequest_UnknownRequest(t *testing.T) {
	doc := portfolioDoc()

	_, err := ledger.ApproveLeaseRequest(doc, "req-missing", "ten-1", june1)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestRejectLeaseRequest_TerminalTransition(t *testing.T) {
	doc := portfolioDoc()
	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(3000), "")
	require.NoError(t, err)

	req, err := ledger.RejectLeaseRequest(doc, "req-1")
	require.NoError(t, err)
	assert.Equal(t, ledger.RequestRejected, req.Status)
	assert.False(t, doc.UnitByID("unit-1").Occupied())

	_, err = ledger.RejectLeaseRequest(doc, "req-1")
	assert.ErrorIs(t, err, ledger.ErrInvalidState, "a decided request is terminal")
}

// =============================================================================
// VACATING
// =============================================================================

func TestVacate_ClearsBillingState(t *testing.T) {
	doc := portfolioDoc()
	_, err := ledger.SubmitLeaseRequest(doc, "req-1", "unit-1", "Omar Hassan", "1122334455", decimal.NewFromInt(3000), "")
	require.NoError(t, err)
	_, err = ledger.ApproveLeaseRequest(doc, "req-1", "ten-1", june1)
	require.NoError(t, err)

	unit, err := ledger.Vacate(doc, "unit-1")
	require.NoError(t, err)

	assert.False(t, unit.Occupied())
	assert.True(t, unit.DueAmount.IsZero())
	assert.Empty(t, unit.UnpaidMonths)
	assert.Nil(t, unit.LastAccrual)
}

func TestVacate_VacantUnitRejected(t *testing.T) {
	doc := portfolioDoc()

	_, err := ledger.Vacate(doc, "unit-1")
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
}

// =============================================================================
// DELETION GUARDS
// =============================================================================

func TestDeleteLocation_WithUnitsRejected(t *testing.T) {
	// GIVEN: A location with one unit
	// WHEN: Deleting the location
	// THEN: HasDependents; ledger unchanged

	doc := portfolioDoc()

	err := ledger.DeleteLocation(doc, "loc-1")
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
	assert.Len(t, doc.Locations, 1)
}

func TestDeleteLocation_EmptyLocation(t *testing.T) {
	doc := portfolioDoc()
	require.NoError(t, ledger.DeleteUnit(doc, "unit-1"))

	err := ledger.DeleteLocation(doc, "loc-1")
	require.NoError(t, err)
	assert.Empty(t, doc.Locations)
}

func TestDeleteUnit_OccupiedRejected(t *testing.T) {
	// GIVEN: An occupied unit
	// WHEN: Deleting it
	// THEN: UnitOccupied; ledger unchanged

	doc := portfolioDoc()
	doc.Units[0].TenantID = "ten-9"

	err := ledger.DeleteUnit(doc, "unit-1")
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
	assert.Len(t, doc.Units, 1)
}

func TestAddUnit_RequiresExistingLocation(t *testing.T) {
	doc := portfolioDoc()

	_, err := ledger.AddUnit(doc, "unit-2", "loc-missing", "Apartment 202", decimal.NewFromInt(1800))
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	unit, err := ledger.AddUnit(doc, "unit-2", "loc-1", "Apartment 202", decimal.NewFromInt(1800))
	require.NoError(t, err)
	assert.False(t, unit.Occupied())
	assert.True(t, unit.DueAmount.IsZero())
}

func TestRenameLocation(t *testing.T) {
	doc := portfolioDoc()

	loc, err := ledger.RenameLocation(doc, "loc-1", "Riverside Complex East")
	require.NoError(t, err)
	assert.Equal(t, "Riverside Complex East", loc.Name)

	_, err = ledger.RenameLocation(doc, "loc-missing", "x")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}
