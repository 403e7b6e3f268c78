package ledger

import (
	"time"
)

// =============================================================================
// MONTH KEY - Chronologically sortable calendar-month identifier
// =============================================================================

// MonthKey identifies a calendar month as "YYYY-MM". Lexical order on the
// string matches chronological order, which is what makes oldest-first
// retirement of unpaid months a plain slice operation.
type MonthKey string

// MonthKeyOf returns the key for the calendar month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

func (k MonthKey) Before(other MonthKey) bool { return k < other }
func (k MonthKey) String() string             { return string(k) }

// Time returns midnight UTC on the first day of the month, or the zero
// time if the key is malformed.
func (k MonthKey) Time() time.Time {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

// SameMonth reports whether a and b fall in the same calendar (year, month).
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// BeforeMonth reports whether a's (year, month) is strictly earlier than b's.
// Day-of-month is irrelevant; accrual only cares about month boundaries.
func BeforeMonth(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.Month() < b.Month()
}

// NextMonth returns midnight UTC on the first day of the month after t.
// Normalizing to the first of the month avoids the AddDate end-of-month
// trap (Jan 31 + 1 month lands in March and would skip February).
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// CLOCK - Injected so tests can simulate month boundaries
// =============================================================================

// Clock supplies "now" for accrual and record timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Tests advance it by
// swapping the value.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time { return c.Time }
