/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  internal domain model from the external contract. Money travels as
  decimal strings, dates as RFC3339, month keys as plain "YYYY-MM"
  strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and the gateway, not in DTOs. DTOs are
  pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/rent-ledger/gateway"
	"github.com/warp/rent-ledger/ledger"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

type LocationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TenantDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
}

type UnitDTO struct {
	ID           string   `json:"id"`
	LocationID   string   `json:"location_id"`
	Name         string   `json:"name"`
	TenantID     string   `json:"tenant_id,omitempty"`
	Occupied     bool     `json:"occupied"`
	RentAmount   string   `json:"rent_amount"`
	DueAmount    string   `json:"due_amount"`
	UnpaidMonths []string `json:"unpaid_months"`
	LastAccrual  string   `json:"last_accrual_date,omitempty"`
}

type PaymentDTO struct {
	ID          string `json:"id"`
	UnitID      string `json:"unit_id"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Date        string `json:"date"`
	CollectorID string `json:"collector_id"`
}

type LeaseRequestDTO struct {
	ID             string `json:"id"`
	UnitID         string `json:"unit_id"`
	TenantName     string `json:"tenant_name"`
	TenantIDNumber string `json:"tenant_id_number"`
	RentAmount     string `json:"rent_amount"`
	Status         string `json:"status"`
}

type HandoverDTO struct {
	ID          string `json:"id"`
	CollectorID string `json:"collector_id"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

type ApprovalDTO struct {
	Request LeaseRequestDTO `json:"request"`
	Tenant  TenantDTO       `json:"tenant"`
	Unit    UnitDTO         `json:"unit"`
}

type LedgerDTO struct {
	Locations     []LocationDTO     `json:"locations"`
	Units         []UnitDTO         `json:"units"`
	Tenants       []TenantDTO       `json:"tenants"`
	Payments      []PaymentDTO      `json:"payments"`
	LeaseRequests []LeaseRequestDTO `json:"lease_requests"`
	Handovers     []HandoverDTO     `json:"handovers"`
}

type SummaryDTO struct {
	OccupiedUnits    int               `json:"occupied_units"`
	VacantUnits      int               `json:"vacant_units"`
	PendingRequests  int               `json:"pending_requests"`
	TotalCollected   string            `json:"total_collected"`
	TotalOutstanding string            `json:"total_outstanding"`
	HandoverTotals   map[string]string `json:"handover_totals"`
}

type LoginResponse struct {
	Role string `json:"role"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecordPaymentRequest struct {
	UnitID      string `json:"unit_id"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	CollectorID string `json:"collector_id"`
}

type SubmitLeaseRequestRequest struct {
	UnitID         string `json:"unit_id"`
	TenantName     string `json:"tenant_name"`
	TenantIDNumber string `json:"tenant_id_number"`
	RentAmount     string `json:"rent_amount"`
	Signature      string `json:"signature,omitempty"`
}

type RecordHandoverRequest struct {
	CollectorID string `json:"collector_id"`
	Amount      string `json:"amount"`
}

type AddLocationRequest struct {
	Name string `json:"name"`
}

type RenameLocationRequest struct {
	Name string `json:"name"`
}

type AddUnitRequest struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	RentAmount string `json:"rent_amount"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func toLocationDTO(l ledger.Location) LocationDTO {
	return LocationDTO{ID: string(l.ID), Name: l.Name}
}

func toTenantDTO(t ledger.Tenant) TenantDTO {
	return TenantDTO{ID: string(t.ID), Name: t.Name, IDNumber: t.IDNumber}
}

func toUnitDTO(u ledger.Unit) UnitDTO {
	months := make([]string, len(u.UnpaidMonths))
	for i, m := range u.UnpaidMonths {
		months[i] = m.String()
	}
	dto := UnitDTO{
		ID:           string(u.ID),
		LocationID:   string(u.LocationID),
		Name:         u.Name,
		TenantID:     string(u.TenantID),
		Occupied:     u.Occupied(),
		RentAmount:   u.RentAmount.String(),
		DueAmount:    u.DueAmount.String(),
		UnpaidMonths: months,
	}
	if u.LastAccrual != nil {
		dto.LastAccrual = u.LastAccrual.Format(time.RFC3339)
	}
	return dto
}

func toPaymentDTO(p ledger.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          string(p.ID),
		UnitID:      string(p.UnitID),
		Amount:      p.Amount.String(),
		Method:      string(p.Method),
		Date:        p.At.Format(time.RFC3339),
		CollectorID: string(p.CollectorID),
	}
}

func toLeaseRequestDTO(r ledger.LeaseRequest) LeaseRequestDTO {
	return LeaseRequestDTO{
		ID:             string(r.ID),
		UnitID:         string(r.UnitID),
		TenantName:     r.TenantName,
		TenantIDNumber: r.TenantIDNumber,
		RentAmount:     r.RentAmount.String(),
		Status:         string(r.Status),
	}
}

func toHandoverDTO(h ledger.CashHandover) HandoverDTO {
	return HandoverDTO{
		ID:          string(h.ID),
		CollectorID: string(h.CollectorID),
		Amount:      h.Amount.String(),
		Date:        h.At.Format(time.RFC3339),
	}
}

func toLedgerDTO(doc *ledger.Document) LedgerDTO {
	out := LedgerDTO{
		Locations:     make([]LocationDTO, len(doc.Locations)),
		Units:         make([]UnitDTO, len(doc.Units)),
		Tenants:       make([]TenantDTO, len(doc.Tenants)),
		Payments:      make([]PaymentDTO, len(doc.Payments)),
		LeaseRequests: make([]LeaseRequestDTO, len(doc.LeaseRequests)),
		Handovers:     make([]HandoverDTO, len(doc.Handovers)),
	}
	for i, l := range doc.Locations {
		out.Locations[i] = toLocationDTO(l)
	}
	for i, u := range doc.Units {
		out.Units[i] = toUnitDTO(u)
	}
	for i, t := range doc.Tenants {
		out.Tenants[i] = toTenantDTO(t)
	}
	for i, p := range doc.Payments {
		out.Payments[i] = toPaymentDTO(p)
	}
	for i, r := range doc.LeaseRequests {
		out.LeaseRequests[i] = toLeaseRequestDTO(r)
	}
	for i, h := range doc.Handovers {
		out.Handovers[i] = toHandoverDTO(h)
	}
	return out
}

func toSummaryDTO(s *gateway.Summary) SummaryDTO {
	totals := make(map[string]string, len(s.HandoverTotals))
	for collector, amount := range s.HandoverTotals {
		totals[string(collector)] = amount.String()
	}
	return SummaryDTO{
		OccupiedUnits:    s.OccupiedUnits,
		VacantUnits:      s.VacantUnits,
		PendingRequests:  s.PendingRequests,
		TotalCollected:   s.TotalCollected.String(),
		TotalOutstanding: s.TotalOutstanding.String(),
		HandoverTotals:   totals,
	}
}
