/*
lifecycle.go - Lease lifecycle and portfolio structure operations

PURPOSE:
  Moves a unit through vacant -> pending lease -> occupied -> vacant
  again, initializing or clearing billing state at each transition, and
  enforces the deletion guards on locations and units.

STATE MACHINE (per unit):
  Vacant    TenantID empty. Initial state; re-entered on vacate.
  Occupied  TenantID set, accrual active.

  SubmitLeaseRequest  unit must be vacant; creates a pending request,
                      unit state unchanged
  ApproveLeaseRequest request must be pending; creates the Tenant and
                      occupies the unit with fresh billing state
  RejectLeaseRequest  request must be pending; no unit change
  Vacate              unit must be occupied; clears tenant and billing

  Re-approving or re-rejecting an already-decided request fails with
  ErrInvalidState. A decided request is terminal.

All functions mutate the document in place and return pointers into its
slices; the caller persists the whole document afterwards.
*/
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEASE REQUESTS
// =============================================================================

// SubmitLeaseRequest records a collector's proposal to lease a vacant
// unit. The unit's state does not change until approval.
func SubmitLeaseRequest(doc *Document, id RequestID, unitID UnitID, tenantName, tenantIDNumber string, rent decimal.Decimal, signature string) (*LeaseRequest, error) {
	if strings.TrimSpace(tenantName) == "" {
		return nil, &ValidationError{Field: "tenantName", Reason: "tenant name is required"}
	}
	if strings.TrimSpace(tenantIDNumber) == "" {
		return nil, &ValidationError{Field: "tenantIdNumber", Reason: "tenant ID number is required"}
	}
	if rent.Sign() < 0 {
		return nil, &ValidationError{Field: "rentAmount", Reason: "rent must not be negative"}
	}

	unit := doc.UnitByID(unitID)
	if unit == nil {
		return nil, errUnitNotFound(unitID)
	}
	if unit.Occupied() {
		return nil, ErrUnitOccupied(unitID)
	}

	doc.LeaseRequests = append(doc.LeaseRequests, LeaseRequest{
		ID:             id,
		UnitID:         unitID,
		TenantName:     strings.TrimSpace(tenantName),
		TenantIDNumber: strings.TrimSpace(tenantIDNumber),
		RentAmount:     rent,
		Signature:      signature,
		Status:         RequestPending,
	})
	return &doc.LeaseRequests[len(doc.LeaseRequests)-1], nil
}

// ApprovalResult is the slice of the ledger affected by an approval.
type ApprovalResult struct {
	Request *LeaseRequest
	Tenant  *Tenant
	Unit    *Unit
}

// ApproveLeaseRequest creates the tenant and occupies the unit, starting
// its billing clock: one month's rent due immediately, the current month
// open, accrual anchored at now.
func ApproveLeaseRequest(doc *Document, id RequestID, tenantID TenantID, now time.Time) (*ApprovalResult, error) {
	req := doc.RequestByID(id)
	if req == nil {
		return nil, errRequestNotFound(id)
	}
	if req.Status != RequestPending {
		return nil, &InvalidStateError{Kind: "lease request", ID: string(id), Reason: "already " + string(req.Status)}
	}

	unit := doc.UnitByID(req.UnitID)
	if unit == nil {
		return nil, errUnitNotFound(req.UnitID)
	}
	if unit.Occupied() {
		return nil, ErrUnitOccupied(req.UnitID)
	}

	doc.Tenants = append(doc.Tenants, Tenant{
		ID:       tenantID,
		Name:     req.TenantName,
		IDNumber: req.TenantIDNumber,
	})
	tenant := &doc.Tenants[len(doc.Tenants)-1]

	t := now
	unit.TenantID = tenant.ID
	unit.RentAmount = req.RentAmount
	unit.DueAmount = req.RentAmount
	unit.UnpaidMonths = []MonthKey{MonthKeyOf(now)}
	unit.LastAccrual = &t

	req.Status = RequestApproved

	return &ApprovalResult{Request: req, Tenant: tenant, Unit: unit}, nil
}

// RejectLeaseRequest marks a pending request rejected. No unit change.
func RejectLeaseRequest(doc *Document, id RequestID) (*LeaseRequest, error) {
	req := doc.RequestByID(id)
	if req == nil {
		return nil, errRequestNotFound(id)
	}
	if req.Status != RequestPending {
		return nil, &InvalidStateError{Kind: "lease request", ID: string(id), Reason: "already " + string(req.Status)}
	}
	req.Status = RequestRejected
	return req, nil
}

// =============================================================================
// VACATING
// =============================================================================

// Vacate clears the unit's tenant and billing state. Irreversible except
// via a new lease approval.
func Vacate(doc *Document, id UnitID) (*Unit, error) {
	unit := doc.UnitByID(id)
	if unit == nil {
		return nil, errUnitNotFound(id)
	}
	if !unit.Occupied() {
		return nil, &InvalidStateError{Kind: "unit", ID: string(id), Reason: "unit is already vacant"}
	}

	unit.TenantID = ""
	unit.DueAmount = decimal.Zero
	unit.UnpaidMonths = nil
	unit.LastAccrual = nil
	return unit, nil
}

// =============================================================================
// LOCATIONS AND UNITS
// =============================================================================

// AddLocation appends a new named location.
func AddLocation(doc *Document, id LocationID, name string) (*Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "location name is required"}
	}
	doc.Locations = append(doc.Locations, Location{ID: id, Name: strings.TrimSpace(name)})
	return &doc.Locations[len(doc.Locations)-1], nil
}

// RenameLocation updates a location's display name.
func RenameLocation(doc *Document, id LocationID, name string) (*Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "location name is required"}
	}
	loc := doc.LocationByID(id)
	if loc == nil {
		return nil, errLocationNotFound(id)
	}
	loc.Name = strings.TrimSpace(name)
	return loc, nil
}

// DeleteLocation removes a location. Fails while any unit references it.
func DeleteLocation(doc *Document, id LocationID) error {
	loc := doc.LocationByID(id)
	if loc == nil {
		return errLocationNotFound(id)
	}
	if doc.UnitsInLocation(id) {
		return ErrHasDependents(id)
	}
	out := doc.Locations[:0]
	for _, l := range doc.Locations {
		if l.ID != id {
			out = append(out, l)
		}
	}
	doc.Locations = out
	return nil
}

// AddUnit creates a vacant unit under an existing location.
func AddUnit(doc *Document, id UnitID, locationID LocationID, name string, rent decimal.Decimal) (*Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "unit name is required"}
	}
	if rent.Sign() < 0 {
		return nil, &ValidationError{Field: "rentAmount", Reason: "rent must not be negative"}
	}
	if doc.LocationByID(locationID) == nil {
		return nil, errLocationNotFound(locationID)
	}

	doc.Units = append(doc.Units, Unit{
		ID:         id,
		LocationID: locationID,
		Name:       strings.TrimSpace(name),
		RentAmount: rent,
		DueAmount:  decimal.Zero,
	})
	return &doc.Units[len(doc.Units)-1], nil
}

// DeleteUnit removes a vacant unit. Fails while a tenant is assigned.
func DeleteUnit(doc *Document, id UnitID) error {
	unit := doc.UnitByID(id)
	if unit == nil {
		return errUnitNotFound(id)
	}
	if unit.Occupied() {
		return ErrUnitOccupied(id)
	}
	out := doc.Units[:0]
	for _, u := range doc.Units {
		if u.ID != id {
			out = append(out, u)
		}
	}
	doc.Units = out
	return nil
}
