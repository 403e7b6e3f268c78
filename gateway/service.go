/*
Package gateway is the ledger mutation gateway.

PURPOSE:
  The thin command surface consumed by presentation layers. Every public
  operation follows the same pattern:

    load ledger (accrual runs as a side effect of the load)
      -> validate preconditions
      -> apply one domain operation
      -> persist the whole document
      -> return the updated slice, not the whole ledger

  No operation spans multiple ledger loads; each is a single transaction
  against the whole-document store. A mutex serializes operations to
  preserve the at-most-one-writer invariant of the read-modify-write
  model.

ERROR BEHAVIOR:
  Input validation happens before any ledger load, and every domain rule
  is checked before Save, so a failed operation never partially applies.

SEE ALSO:
  - ledger: Accrual, settlement, and lifecycle logic invoked here
  - api: HTTP glue over this service
*/
package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/rent-ledger/auth"
	"github.com/warp/rent-ledger/ledger"
)

// =============================================================================
// SERVICE
// =============================================================================

// Service orchestrates ledger operations against a Store.
type Service struct {
	mu       sync.Mutex
	store    ledger.Store
	clock    ledger.Clock
	identity auth.Provider
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the system clock, letting tests drive month
// boundaries deterministically.
func WithClock(c ledger.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithIDGenerator replaces the UUID generator, for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// New creates a Service. identity may be nil if Authenticate is unused.
func New(store ledger.Store, identity auth.Provider, opts ...Option) *Service {
	s := &Service{
		store:    store,
		clock:    ledger.SystemClock{},
		identity: identity,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init installs the seed document when no ledger exists yet.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SeedIfAbsent(ctx, ledger.Seed(s.clock.Now()))
}

// Authenticate resolves credentials to a role via the injected provider.
// Not a security boundary; see the auth package.
func (s *Service) Authenticate(email, password string) (auth.Role, bool) {
	if s.identity == nil {
		return "", false
	}
	return s.identity.Authenticate(email, password)
}

// =============================================================================
// LOAD PATH - Every read passes through the accrual engine
// =============================================================================

// load retrieves the document and runs the accrual engine over it,
// persisting first if anything changed. Callers hold s.mu.
func (s *Service) load(ctx context.Context) (*ledger.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if res := ledger.Accrue(doc, s.clock.Now()); res.Changed {
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Snapshot returns the current, accrual-checked ledger document.
func (s *Service) Snapshot(ctx context.Context) (*ledger.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

// =============================================================================
// PAYMENTS AND HANDOVERS
// =============================================================================

// RecordPayment settles a payment against a unit and appends the
// immutable payment record.
func (s *Service) RecordPayment(ctx context.Context, unitID ledger.UnitID, amount decimal.Decimal, method ledger.PaymentMethod, collectorID ledger.CollectorID) (*ledger.Payment, *ledger.Unit, error) {
	if amount.Sign() <= 0 {
		return nil, nil, &ledger.ValidationError{Field: "amount", Reason: "payment amount must be positive"}
	}
	if !ledger.ValidMethod(method) {
		return nil, nil, &ledger.ValidationError{Field: "method", Reason: "unknown payment method"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	unit := doc.UnitByID(unitID)
	if unit == nil {
		return nil, nil, &ledger.NotFoundError{Kind: "unit", ID: string(unitID)}
	}
	if err := ledger.Settle(unit, amount); err != nil {
		return nil, nil, err
	}

	payment := ledger.Payment{
		ID:          ledger.PaymentID(s.newID()),
		UnitID:      unitID,
		Amount:      amount,
		Method:      method,
		At:          s.clock.Now(),
		CollectorID: collectorID,
	}
	doc.Payments = append(doc.Payments, payment)

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, nil, err
	}
	u := *unit
	u.UnpaidMonths = append([]ledger.MonthKey(nil), unit.UnpaidMonths...)
	return &payment, &u, nil
}

// RecordCashHandover appends a handover record. Unit balances are not
// affected.
func (s *Service) RecordCashHandover(ctx context.Context, collectorID ledger.CollectorID, amount decimal.Decimal) (*ledger.CashHandover, error) {
	if amount.Sign() <= 0 {
		return nil, &ledger.ValidationError{Field: "amount", Reason: "handover amount must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	handover := ledger.CashHandover{
		ID:          ledger.HandoverID(s.newID()),
		CollectorID: collectorID,
		Amount:      amount,
		At:          s.clock.Now(),
	}
	doc.Handovers = append(doc.Handovers, handover)

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &handover, nil
}

// =============================================================================
// LEASE LIFECYCLE
// =============================================================================

// SubmitLeaseRequest records a pending lease proposal for a vacant unit.
func (s *Service) SubmitLeaseRequest(ctx context.Context, unitID ledger.UnitID, tenantName, tenantIDNumber string, rent decimal.Decimal, signature string) (*ledger.LeaseRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	req, err := ledger.SubmitLeaseRequest(doc, ledger.RequestID(s.newID()), unitID, tenantName, tenantIDNumber, rent, signature)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *req
	return &out, nil
}

// ApprovalResult is the updated slice returned by ApproveLeaseRequest.
type ApprovalResult struct {
	Request ledger.LeaseRequest
	Tenant  ledger.Tenant
	Unit    ledger.Unit
}

// ApproveLeaseRequest creates the tenant and occupies the unit.
func (s *Service) ApproveLeaseRequest(ctx context.Context, id ledger.RequestID) (*ApprovalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	res, err := ledger.ApproveLeaseRequest(doc, id, ledger.TenantID(s.newID()), s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	unit := *res.Unit
	unit.UnpaidMonths = append([]ledger.MonthKey(nil), res.Unit.UnpaidMonths...)
	return &ApprovalResult{Request: *res.Request, Tenant: *res.Tenant, Unit: unit}, nil
}

// RejectLeaseRequest marks a pending request rejected.
func (s *Service) RejectLeaseRequest(ctx context.Context, id ledger.RequestID) (*ledger.LeaseRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	req, err := ledger.RejectLeaseRequest(doc, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *req
	return &out, nil
}

// VacateUnit clears the unit's tenant and billing state.
func (s *Service) VacateUnit(ctx context.Context, id ledger.UnitID) (*ledger.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	unit, err := ledger.Vacate(doc, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *unit
	return &out, nil
}

// =============================================================================
// PORTFOLIO STRUCTURE
// =============================================================================

// AddLocation creates a named location.
func (s *Service) AddLocation(ctx context.Context, name string) (*ledger.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := ledger.AddLocation(doc, ledger.LocationID(s.newID()), name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *loc
	return &out, nil
}

// RenameLocation updates a location's display name.
func (s *Service) RenameLocation(ctx context.Context, id ledger.LocationID, name string) (*ledger.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := ledger.RenameLocation(doc, id, name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *loc
	return &out, nil
}

// DeleteLocation removes a location with no remaining units.
func (s *Service) DeleteLocation(ctx context.Context, id ledger.LocationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := ledger.DeleteLocation(doc, id); err != nil {
		return err
	}
	return s.store.Save(ctx, doc)
}

// AddUnit creates a vacant unit under an existing location.
func (s *Service) AddUnit(ctx context.Context, locationID ledger.LocationID, name string, rent decimal.Decimal) (*ledger.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	unit, err := ledger.AddUnit(doc, ledger.UnitID(s.newID()), locationID, name, rent)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	out := *unit
	return &out, nil
}

// DeleteUnit removes a vacant unit.
func (s *Service) DeleteUnit(ctx context.Context, id ledger.UnitID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := ledger.DeleteUnit(doc, id); err != nil {
		return err
	}
	return s.store.Save(ctx, doc)
}
