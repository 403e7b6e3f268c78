/*
accrual.go - Monthly rent-accrual engine

PURPOSE:
  Brings every occupied unit's billing state current as of "now",
  charging exactly one rent amount per whole calendar month elapsed
  since the unit's last accrual, and recording which months remain
  unpaid. Runs as a side effect of every ledger read.

ALGORITHM (per occupied unit):
  1. No LastAccrual yet: stamp it with "now" and charge nothing. This is
     the one-time bootstrap for units lacking billing history; the first
     charge lands at the following month boundary.
  2. Otherwise, while LastAccrual's (year, month) is strictly earlier
     than now's (year, month):
       - advance LastAccrual by one calendar month
       - add RentAmount to DueAmount
       - append the new month's key to the tail of UnpaidMonths

  The loop charges multiple missed months in one pass (a ledger untouched
  for 3 months accrues 3 rents) and is idempotent within a month: once
  the months are equal no iteration runs, so reading the ledger twice in
  the same month never double-charges.

  Vacant units are never touched.

SEE ALSO:
  - month.go: BeforeMonth / NextMonth month arithmetic
  - settlement.go: Retires the months recorded here, oldest first
*/
package ledger

import "time"

// =============================================================================
// ACCRUAL
// =============================================================================

// AccrualResult summarizes what a pass over the document changed.
type AccrualResult struct {
	Changed       bool
	UnitsTouched  int
	MonthsCharged int
}

// Accrue advances every occupied unit's billing state up to now.
// It mutates the document in place; the caller persists it when
// Changed is true.
func Accrue(doc *Document, now time.Time) AccrualResult {
	var res AccrualResult
	for i := range doc.Units {
		months := accrueUnit(&doc.Units[i], now)
		if months >= 0 {
			res.Changed = true
			res.UnitsTouched++
			res.MonthsCharged += months
		}
	}
	return res
}

// accrueUnit returns the number of months charged, or -1 if the unit
// was left untouched.
func accrueUnit(u *Unit, now time.Time) int {
	if !u.Occupied() {
		return -1
	}

	if u.LastAccrual == nil {
		// Bootstrap: trust the current DueAmount and start billing from
		// now. The next charge triggers at the next month boundary.
		t := now
		u.LastAccrual = &t
		return 0
	}

	charged := 0
	last := *u.LastAccrual
	for BeforeMonth(last, now) {
		last = NextMonth(last)
		u.DueAmount = u.DueAmount.Add(u.RentAmount)
		u.UnpaidMonths = append(u.UnpaidMonths, MonthKeyOf(last))
		charged++
	}
	if charged == 0 {
		return -1
	}
	u.LastAccrual = &last
	return charged
}
