/*
handlers.go - HTTP API handlers for the rent-collection ledger

PURPOSE:
  Exposes the ledger mutation gateway via REST. Handles HTTP
  request/response, JSON serialization, and delegates to the gateway.

ENDPOINTS:
  POST   /api/login                       Authenticate, returns role
  GET    /api/ledger                      Full accrual-checked ledger
  GET    /api/summary                     Portfolio summary
  POST   /api/payments                    Record payment
  GET    /api/units/{id}/payments         Payments for one unit
  POST   /api/handovers                   Record cash handover
  POST   /api/lease-requests              Submit lease request
  GET    /api/lease-requests/pending      Pending lease requests
  POST   /api/lease-requests/{id}/approve Approve (occupies the unit)
  POST   /api/lease-requests/{id}/reject  Reject
  POST   /api/units                       Add unit
  DELETE /api/units/{id}                  Delete vacant unit
  POST   /api/units/{id}/vacate           Vacate occupied unit
  POST   /api/locations                   Add location
  PUT    /api/locations/{id}              Rename location
  DELETE /api/locations/{id}              Delete empty location

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 401: Unknown credentials
  - 404: Entity not found
  - 409: Wrong lifecycle state (occupied unit, decided request, ...)
  - 500: Storage errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/rent-ledger/gateway"
	"github.com/warp/rent-ledger/ledger"
)

// Handler holds the gateway dependency for all HTTP handlers.
type Handler struct {
	Gateway *gateway.Service
}

func NewHandler(g *gateway.Service) *Handler {
	return &Handler{Gateway: g}
}

// =============================================================================
// AUTH
// =============================================================================

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	role, ok := h.Gateway.Authenticate(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unknown email or password", nil)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Role: string(role)})
}

// =============================================================================
// LEDGER READS
// =============================================================================

func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Gateway.Snapshot(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to load ledger", err)
		return
	}
	writeJSON(w, http.StatusOK, toLedgerDTO(doc))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Gateway.Summarize(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to compute summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(sum))
}

func (h *Handler) ListUnitPayments(w http.ResponseWriter, r *http.Request) {
	unitID := ledger.UnitID(chi.URLParam(r, "id"))

	doc, err := h.Gateway.Snapshot(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to load ledger", err)
		return
	}
	if doc.UnitByID(unitID) == nil {
		writeError(w, http.StatusNotFound, "Unit not found", nil)
		return
	}

	payments := doc.PaymentsForUnit(unitID)
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PAYMENTS AND HANDOVERS
// =============================================================================

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment amount", err)
		return
	}

	payment, unit, err := h.Gateway.RecordPayment(
		r.Context(),
		ledger.UnitID(req.UnitID),
		amount,
		ledger.PaymentMethod(req.Method),
		ledger.CollectorID(req.CollectorID),
	)
	if err != nil {
		writeDomainError(w, "Failed to record payment", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"payment": toPaymentDTO(*payment),
		"unit":    toUnitDTO(*unit),
	})
}

func (h *Handler) RecordHandover(w http.ResponseWriter, r *http.Request) {
	var req RecordHandoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid handover amount", err)
		return
	}

	handover, err := h.Gateway.RecordCashHandover(r.Context(), ledger.CollectorID(req.CollectorID), amount)
	if err != nil {
		writeDomainError(w, "Failed to record handover", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHandoverDTO(*handover))
}

// =============================================================================
// LEASE LIFECYCLE
// =============================================================================

func (h *Handler) SubmitLeaseRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeaseRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rent, err := decimal.NewFromString(req.RentAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rent amount", err)
		return
	}

	lease, err := h.Gateway.SubmitLeaseRequest(
		r.Context(),
		ledger.UnitID(req.UnitID),
		req.TenantName,
		req.TenantIDNumber,
		rent,
		req.Signature,
	)
	if err != nil {
		writeDomainError(w, "Failed to submit lease request", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeaseRequestDTO(*lease))
}

func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Gateway.Snapshot(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to load ledger", err)
		return
	}

	pending := doc.PendingRequests()
	dtos := make([]LeaseRequestDTO, len(pending))
	for i, p := range pending {
		dtos[i] = toLeaseRequestDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ApproveLeaseRequest(w http.ResponseWriter, r *http.Request) {
	id := ledger.RequestID(chi.URLParam(r, "id"))

	res, err := h.Gateway.ApproveLeaseRequest(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to approve lease request", err)
		return
	}
	writeJSON(w, http.StatusOK, ApprovalDTO{
		Request: toLeaseRequestDTO(res.Request),
		Tenant:  toTenantDTO(res.Tenant),
		Unit:    toUnitDTO(res.Unit),
	})
}

func (h *Handler) RejectLeaseRequest(w http.ResponseWriter, r *http.Request) {
	id := ledger.RequestID(chi.URLParam(r, "id"))

	req, err := h.Gateway.RejectLeaseRequest(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to reject lease request", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaseRequestDTO(*req))
}

func (h *Handler) VacateUnit(w http.ResponseWriter, r *http.Request) {
	id := ledger.UnitID(chi.URLParam(r, "id"))

	unit, err := h.Gateway.VacateUnit(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to vacate unit", err)
		return
	}
	writeJSON(w, http.StatusOK, toUnitDTO(*unit))
}

// =============================================================================
// PORTFOLIO STRUCTURE
// =============================================================================

func (h *Handler) AddLocation(w http.ResponseWriter, r *http.Request) {
	var req AddLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	loc, err := h.Gateway.AddLocation(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, "Failed to add location", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLocationDTO(*loc))
}

func (h *Handler) RenameLocation(w http.ResponseWriter, r *http.Request) {
	id := ledger.LocationID(chi.URLParam(r, "id"))

	var req RenameLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	loc, err := h.Gateway.RenameLocation(r.Context(), id, req.Name)
	if err != nil {
		writeDomainError(w, "Failed to rename location", err)
		return
	}
	writeJSON(w, http.StatusOK, toLocationDTO(*loc))
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id := ledger.LocationID(chi.URLParam(r, "id"))

	if err := h.Gateway.DeleteLocation(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddUnit(w http.ResponseWriter, r *http.Request) {
	var req AddUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rent, err := decimal.NewFromString(req.RentAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rent amount", err)
		return
	}

	unit, err := h.Gateway.AddUnit(r.Context(), ledger.LocationID(req.LocationID), req.Name, rent)
	if err != nil {
		writeDomainError(w, "Failed to add unit", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUnitDTO(*unit))
}

func (h *Handler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id := ledger.UnitID(chi.URLParam(r, "id"))

	if err := h.Gateway.DeleteUnit(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete unit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps ledger errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		writeError(w, http.StatusBadRequest, message, err)
	case errors.Is(err, ledger.ErrNotFound):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, ledger.ErrInvalidState):
		writeError(w, http.StatusConflict, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
