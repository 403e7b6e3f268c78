/*
Package ledger provides the core rent-collection ledger engine.

PURPOSE:
  This package contains the domain types and algorithms for a small
  property portfolio: locations, rental units, tenants, payments, lease
  requests, and cash handovers, plus the monthly rent-accrual and
  payment-settlement logic that keeps every occupied unit's balance
  current.

KEY CONCEPTS IN THIS FILE (types.go):
  - Document: The aggregate root, always read and written as a whole
  - Unit: A rentable property with its billing state
  - Payment / CashHandover: Immutable, append-only records
  - LeaseRequest: The only path from a vacant unit to an occupied one

DESIGN PRINCIPLES:
  1. Whole-document persistence: no partial reads or writes, ever
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Type safety: Strong typing for IDs prevents mixing unit/location IDs
  4. Append-only records: Payments and handovers are never edited

SEE ALSO:
  - month.go: Month keys and the injected clock
  - accrual.go: The monthly rent-accrual engine
  - settlement.go: Payment application and month retirement
  - lifecycle.go: Lease approval, rejection, vacating, deletion guards
*/
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type LocationID string
type UnitID string
type TenantID string
type PaymentID string
type RequestID string
type HandoverID string
type CollectorID string

// =============================================================================
// PAYMENT METHOD
// =============================================================================

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// ValidMethod reports whether m is a known payment method.
func ValidMethod(m PaymentMethod) bool {
	return m == MethodCash || m == MethodBankTransfer
}

// =============================================================================
// ENTITIES
// =============================================================================

// Location is a named grouping of units (a building or compound).
// It cannot be deleted while any unit references it.
type Location struct {
	ID   LocationID `json:"id"`
	Name string     `json:"name"`
}

// Tenant is created only as a side effect of lease approval.
// Never deleted or edited once created.
type Tenant struct {
	ID         TenantID `json:"id"`
	Name       string   `json:"name"`
	IDNumber   string   `json:"idNumber"`
	IDPhotoRef string   `json:"idPhotoRef,omitempty"`
}

// Unit is a single rentable property together with its billing state.
//
// INVARIANTS:
//   - DueAmount is the authoritative running balance.
//   - UnpaidMonths is the ordered record of open billing periods,
//     oldest first. It only ever holds whole-month entries; a partial
//     payment shows up in DueAmount, not here.
//   - LastAccrual is the last calendar point up to which rent has been
//     charged. nil means "never billed" (vacant, or legacy record).
type Unit struct {
	ID           UnitID          `json:"id"`
	LocationID   LocationID      `json:"locationId"`
	Name         string          `json:"name"`
	TenantID     TenantID        `json:"tenantId,omitempty"`
	RentAmount   decimal.Decimal `json:"rentAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	UnpaidMonths []MonthKey      `json:"unpaidMonths,omitempty"`
	LastAccrual  *time.Time      `json:"lastAccrualDate,omitempty"`
}

// Occupied reports whether the unit currently has a tenant.
func (u *Unit) Occupied() bool { return u.TenantID != "" }

// Payment is an immutable record of money collected against a unit.
type Payment struct {
	ID          PaymentID       `json:"id"`
	UnitID      UnitID          `json:"unitId"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	ReceiptRef  string          `json:"receiptRef,omitempty"`
	At          time.Time       `json:"date"`
	CollectorID CollectorID     `json:"collectorId"`
}

// =============================================================================
// LEASE REQUEST
// =============================================================================

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// LeaseRequest is a collector's proposal to lease a vacant unit.
// It transitions exactly once: pending -> approved or pending -> rejected.
// Approval is the only path that creates a Tenant and occupies a Unit.
type LeaseRequest struct {
	ID             RequestID       `json:"id"`
	UnitID         UnitID          `json:"unitId"`
	TenantName     string          `json:"tenantName"`
	TenantIDNumber string          `json:"tenantIdNumber"`
	RentAmount     decimal.Decimal `json:"rentAmount"`
	Signature      string          `json:"signature,omitempty"`
	Status         RequestStatus   `json:"status"`
}

// CashHandover records cash passed from a field collector to the manager.
// It does not affect any unit balance.
type CashHandover struct {
	ID          HandoverID      `json:"id"`
	CollectorID CollectorID     `json:"collectorId"`
	Amount      decimal.Decimal `json:"amount"`
	At          time.Time       `json:"date"`
}

// =============================================================================
// DOCUMENT - The aggregate root
// =============================================================================

// Document is the entire ledger. It is persisted and retrieved as one
// unit; there is no partial or streaming access.
type Document struct {
	Locations     []Location     `json:"locations"`
	Units         []Unit         `json:"units"`
	Tenants       []Tenant       `json:"tenants"`
	Payments      []Payment      `json:"payments"`
	LeaseRequests []LeaseRequest `json:"leaseRequests"`
	Handovers     []CashHandover `json:"handovers"`
}

// UnitByID returns a pointer into the document's unit slice, so callers
// can mutate the unit in place before persisting the whole document.
func (d *Document) UnitByID(id UnitID) *Unit {
	for i := range d.Units {
		if d.Units[i].ID == id {
			return &d.Units[i]
		}
	}
	return nil
}

func (d *Document) LocationByID(id LocationID) *Location {
	for i := range d.Locations {
		if d.Locations[i].ID == id {
			return &d.Locations[i]
		}
	}
	return nil
}

func (d *Document) RequestByID(id RequestID) *LeaseRequest {
	for i := range d.LeaseRequests {
		if d.LeaseRequests[i].ID == id {
			return &d.LeaseRequests[i]
		}
	}
	return nil
}

func (d *Document) TenantByID(id TenantID) *Tenant {
	for i := range d.Tenants {
		if d.Tenants[i].ID == id {
			return &d.Tenants[i]
		}
	}
	return nil
}

// UnitsInLocation reports whether any unit still references the location.
func (d *Document) UnitsInLocation(id LocationID) bool {
	for i := range d.Units {
		if d.Units[i].LocationID == id {
			return true
		}
	}
	return false
}

// PaymentsForUnit returns the unit's payments in insertion order.
func (d *Document) PaymentsForUnit(id UnitID) []Payment {
	var out []Payment
	for _, p := range d.Payments {
		if p.UnitID == id {
			out = append(out, p)
		}
	}
	return out
}

// PendingRequests returns lease requests still awaiting a manager decision.
func (d *Document) PendingRequests() []LeaseRequest {
	var out []LeaseRequest
	for _, r := range d.LeaseRequests {
		if r.Status == RequestPending {
			out = append(out, r)
		}
	}
	return out
}

// Clone returns a deep copy of the document. Stores and the gateway hand
// out clones so callers can never mutate persisted state by accident.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		Locations:     append([]Location(nil), d.Locations...),
		Units:         make([]Unit, len(d.Units)),
		Tenants:       append([]Tenant(nil), d.Tenants...),
		Payments:      append([]Payment(nil), d.Payments...),
		LeaseRequests: append([]LeaseRequest(nil), d.LeaseRequests...),
		Handovers:     append([]CashHandover(nil), d.Handovers...),
	}
	for i, u := range d.Units {
		cu := u
		cu.UnpaidMonths = append([]MonthKey(nil), u.UnpaidMonths...)
		if u.LastAccrual != nil {
			t := *u.LastAccrual
			cu.LastAccrual = &t
		}
		out.Units[i] = cu
	}
	return out
}
