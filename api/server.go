/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for a browser frontend

SECURITY NOTE:
  The /api/login endpoint is a static credential lookup, not a security
  boundary. No per-request authorization exists; all endpoints are open.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Get("/ledger", h.GetLedger)
		r.Get("/summary", h.GetSummary)

		r.Post("/payments", h.RecordPayment)
		r.Post("/handovers", h.RecordHandover)

		r.Route("/lease-requests", func(r chi.Router) {
			r.Post("/", h.SubmitLeaseRequest)
			r.Get("/pending", h.ListPendingRequests)
			r.Post("/{id}/approve", h.ApproveLeaseRequest)
			r.Post("/{id}/reject", h.RejectLeaseRequest)
		})

		r.Route("/units", func(r chi.Router) {
			r.Post("/", h.AddUnit)
			r.Delete("/{id}", h.DeleteUnit)
			r.Post("/{id}/vacate", h.VacateUnit)
			r.Get("/{id}/payments", h.ListUnitPayments)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/", h.AddLocation)
			r.Put("/{id}", h.RenameLocation)
			r.Delete("/{id}", h.DeleteLocation)
		})
	})

	return r
}
