package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable means the backing store could not be reached.
	// Fatal for a detection run: no partial persistence happens.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrHistoryUnavailable means the historical window store is degraded
	// or not provisioned. Soft: velocity becomes unknown for the run.
	ErrHistoryUnavailable = errors.New("historical window unavailable")

	// ErrConstraintViolation means an upsert conflict was not resolved by
	// the storage layer's on-conflict handling. Indicates a schema or
	// configuration defect, not a normal runtime path.
	ErrConstraintViolation = errors.New("constraint violation")

	ErrNotFound = errors.New("not found")
)

// ValidationError reports malformed input or out-of-range parameters.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
