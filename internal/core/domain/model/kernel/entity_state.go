package kernel

import (
	"fmt"

	"produzione/internal/pkg/errs"
)

// EntityState models logical removal as an explicit state instead of an
// ambient query filter. Removed entities are retained for audit and must be
// requested explicitly by every read path.
type EntityState int

const (
	// StateActive marks an entity visible to normal reads and writes.
	StateActive EntityState = iota

	// StateRemoved marks a logically deleted entity, kept for audit.
	StateRemoved
)

// String returns the state name used in logs and persistence mapping.
func (s EntityState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// IsRemoved reports whether the entity is logically deleted.
func (s EntityState) IsRemoved() bool {
	return s == StateRemoved
}

// Validate checks that the state is one of the defined values.
func (s EntityState) Validate() error {
	if s != StateActive && s != StateRemoved {
		return errs.NewValueIsInvalidErrorWithCause("entity state",
			fmt.Errorf("%d is not a valid entity state", s))
	}
	return nil
}
