package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/warp/rent-ledger/ledger"
)

// =============================================================================
// PORTFOLIO SUMMARY - Manager dashboard figures
// =============================================================================

// Summary aggregates the portfolio for the manager view. Derived from
// the accrual-checked ledger, never stored.
type Summary struct {
	OccupiedUnits    int
	VacantUnits      int
	PendingRequests  int
	TotalCollected   decimal.Decimal
	TotalOutstanding decimal.Decimal
	HandoverTotals   map[ledger.CollectorID]decimal.Decimal
}

// Summarize computes portfolio totals from the current ledger.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
		HandoverTotals:   make(map[ledger.CollectorID]decimal.Decimal),
	}

	for i := range doc.Units {
		u := &doc.Units[i]
		if u.Occupied() {
			sum.OccupiedUnits++
		} else {
			sum.VacantUnits++
		}
		sum.TotalOutstanding = sum.TotalOutstanding.Add(u.DueAmount)
	}
	for _, p := range doc.Payments {
		sum.TotalCollected = sum.TotalCollected.Add(p.Amount)
	}
	for _, h := range doc.Handovers {
		prev, ok := sum.HandoverTotals[h.CollectorID]
		if !ok {
			prev = decimal.Zero
		}
		sum.HandoverTotals[h.CollectorID] = prev.Add(h.Amount)
	}
	sum.PendingRequests = len(doc.PendingRequests())

	return sum, nil
}
