/*
errors.go - Centralized error types for the ledger engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers branch on the sentinels with errors.Is(), or unwrap the
  structured types with errors.As() for details.

ERROR CATEGORIES:
  1. Storage errors - The persisted document is unreadable or unwritable
  2. Lookup errors - Referenced entity does not exist
  3. State errors - Operation against an entity in the wrong lifecycle state
  4. Validation errors - Malformed input, rejected before any ledger load

SEE ALSO:
  - store.go: Storage error contract
  - lifecycle.go: State errors for lease transitions and deletion guards
*/
package ledger

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrStorageCorrupt is returned when the persisted ledger document
	// cannot be decoded. Never auto-repaired; surfaced to the caller.
	ErrStorageCorrupt = errors.New("ledger document is corrupt")

	// ErrStorageIO is returned when the backing medium cannot be read
	// or written.
	ErrStorageIO = errors.New("ledger storage unavailable")

	// ErrNoDocument is returned by Load when no ledger has been
	// persisted yet. Callers seed first via SeedIfAbsent.
	ErrNoDocument = errors.New("no ledger document exists")

	// ErrNotFound is returned when a referenced unit, location, tenant,
	// or lease request does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation targets an entity in
	// the wrong lifecycle state.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation is returned for malformed input. Detected before any
	// ledger load, so nothing is ever partially applied.
	ErrValidation = errors.New("validation failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NotFoundError identifies which entity was missing.
type NotFoundError struct {
	Kind string // "unit", "location", "lease request", ...
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidStateError explains which lifecycle rule was violated.
type InvalidStateError struct {
	Kind   string
	ID     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// =============================================================================
// CONVENIENCE CONSTRUCTORS
// =============================================================================

func errUnitNotFound(id UnitID) error {
	return &NotFoundError{Kind: "unit", ID: string(id)}
}

func errLocationNotFound(id LocationID) error {
	return &NotFoundError{Kind: "location", ID: string(id)}
}

func errRequestNotFound(id RequestID) error {
	return &NotFoundError{Kind: "lease request", ID: string(id)}
}

// ErrUnitOccupied marks deletion (or re-letting) of a unit that still
// has a tenant.
func ErrUnitOccupied(id UnitID) error {
	return &InvalidStateError{Kind: "unit", ID: string(id), Reason: "unit is occupied"}
}

// ErrHasDependents marks deletion of a location that still has units.
func ErrHasDependents(id LocationID) error {
	return &InvalidStateError{Kind: "location", ID: string(id), Reason: "location still has units"}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsClientError returns true if the error is the caller's fault rather
// than a storage failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrValidation)
}

// IsStorageError returns true for corrupt or unreachable storage.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageCorrupt) || errors.Is(err, ErrStorageIO)
}
