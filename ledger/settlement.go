/*
settlement.go - Payment settlement engine

PURPOSE:
  Applies a payment amount against a unit's balance and retires unpaid
  months oldest-first.

ALLOCATION RULE:
  - DueAmount' = max(0, DueAmount - amount)
  - monthsCovered = floor(amount / RentAmount), clamped to the number of
    open months; that many entries drop off the FRONT of UnpaidMonths.

  This is a heuristic allocation: a payment that does not evenly divide
  the rent retires fewer whole months than the amount might suggest, and
  the partial-month remainder lives only in DueAmount. UnpaidMonths only
  ever holds whole-month entries.

  A rent of zero (or less) makes the division meaningless; any positive
  payment then retires every open month, since each month costs nothing.

SEE ALSO:
  - accrual.go: Appends the months retired here
*/
package ledger

import "github.com/shopspring/decimal"

// =============================================================================
// SETTLEMENT
// =============================================================================

// Settle applies amount against the unit's balance, mutating it in
// place. amount must be strictly positive. The resulting DueAmount is
// never negative.
func Settle(u *Unit, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return &ValidationError{Field: "amount", Reason: "payment amount must be positive"}
	}

	due := u.DueAmount.Sub(amount)
	if due.Sign() < 0 {
		due = decimal.Zero
	}
	u.DueAmount = due

	covered := monthsCovered(u.RentAmount, amount, len(u.UnpaidMonths))
	if covered > 0 {
		u.UnpaidMonths = append([]MonthKey(nil), u.UnpaidMonths[covered:]...)
	}
	return nil
}

// monthsCovered computes how many whole months the payment retires,
// clamped to the number of open months.
func monthsCovered(rent, amount decimal.Decimal, open int) int {
	if open == 0 {
		return 0
	}
	if rent.Sign() <= 0 {
		// Zero-rent unit: one positive payment clears the whole list.
		return open
	}
	covered := int(amount.Div(rent).Floor().IntPart())
	if covered > open {
		covered = open
	}
	return covered
}
