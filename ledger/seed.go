package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SEED DOCUMENT - Initial dataset installed on first use
// =============================================================================

// Seed returns the initial demo portfolio: three locations, two sitting
// tenants, two occupied units with billing anchored at now, and two
// vacant units. Payments, lease requests, and handovers start empty.
func Seed(now time.Time) *Document {
	t := now
	prevMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	return &Document{
		Locations: []Location{
			{ID: "loc-1", Name: "Riverside Residential Complex"},
			{ID: "loc-2", Name: "Harbor Towers"},
			{ID: "loc-3", Name: "Model District"},
		},
		Tenants: []Tenant{
			{ID: "ten-1", Name: "Abdullah Mohammed", IDNumber: "1234567890"},
			{ID: "ten-2", Name: "Fatima Ali", IDNumber: "0987654321"},
		},
		Units: []Unit{
			{
				ID:           "unit-101",
				LocationID:   "loc-1",
				Name:         "Apartment 101",
				TenantID:     "ten-1",
				RentAmount:   decimal.NewFromInt(2500),
				DueAmount:    decimal.NewFromInt(2500),
				UnpaidMonths: []MonthKey{MonthKeyOf(now)},
				LastAccrual:  &t,
			},
			{
				// One month behind on move-in.
				ID:           "unit-102",
				LocationID:   "loc-1",
				Name:         "Apartment 102",
				TenantID:     "ten-2",
				RentAmount:   decimal.NewFromInt(2800),
				DueAmount:    decimal.NewFromInt(5600),
				UnpaidMonths: []MonthKey{MonthKeyOf(prevMonth), MonthKeyOf(now)},
				LastAccrual:  &t,
			},
			{
				ID:         "unit-103",
				LocationID: "loc-1",
				Name:       "Apartment 103",
				RentAmount: decimal.NewFromInt(2600),
				DueAmount:  decimal.Zero,
			},
			{
				ID:         "unit-201",
				LocationID: "loc-2",
				Name:       "Villa A",
				RentAmount: decimal.NewFromInt(5000),
				DueAmount:  decimal.Zero,
			},
		},
		Payments:      []Payment{},
		LeaseRequests: []LeaseRequest{},
		Handovers:     []CashHandover{},
	}
}
