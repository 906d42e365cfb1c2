// Package offerstate provides the OfferOrderState reference catalog: the
// named, ordered pipeline states shown by reporting screens. The catalog
// is display data, not transition logic; the order status machine stays
// authoritative, and the catalog is only validated for consistency with
// its semantics.
package offerstate

import (
	"errors"
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
)

var (
	// ErrOfferOrderStateIsNotConstructed is returned when a state row was
	// not created through NewOfferOrderState or RestoreOfferOrderState.
	ErrOfferOrderStateIsNotConstructed = errors.New(
		"OfferOrderState must be created via NewOfferOrderState or RestoreOfferOrderState")
)

// OfferOrderState is one row of the pipeline state catalog. Sorting orders
// the states for display; initial marks the entry state; production marks
// states that appear on the production dashboards.
type OfferOrderState struct {
	id         kernel.UUID
	name       string
	sorting    int
	initial    bool
	production bool
	state      kernel.EntityState

	isConstructed bool
}

// NewOfferOrderState creates a catalog row with validation.
func NewOfferOrderState(id kernel.UUID, name string, sorting int, initial, production bool) (*OfferOrderState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("state name")
	}
	if sorting < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sorting",
			fmt.Errorf("%d is negative", sorting))
	}

	return &OfferOrderState{
		id:            id,
		name:          name,
		sorting:       sorting,
		initial:       initial,
		production:    production,
		state:         kernel.StateActive,
		isConstructed: true,
	}, nil
}

// RestoreOfferOrderState reconstructs a catalog row from persistence.
func RestoreOfferOrderState(
	id kernel.UUID, name string, sorting int, initial, production bool, state kernel.EntityState,
) (*OfferOrderState, error) {
	s, err := NewOfferOrderState(id, name, sorting, initial, production)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// Validate ensures the row was properly constructed.
func (s *OfferOrderState) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOfferOrderStateIsNotConstructed
	}
	return nil
}

// ID returns the row identifier.
func (s *OfferOrderState) ID() kernel.UUID { return s.id }

// Name returns the display name of the pipeline state.
func (s *OfferOrderState) Name() string { return s.name }

// Sorting returns the display position.
func (s *OfferOrderState) Sorting() int { return s.sorting }

// Initial reports whether this is the pipeline entry state.
func (s *OfferOrderState) Initial() bool { return s.initial }

// Production reports whether the state appears on production dashboards.
func (s *OfferOrderState) Production() bool { return s.production }

// State returns the logical-removal state.
func (s *OfferOrderState) State() kernel.EntityState { return s.state }

// ValidateCatalog checks the semantic consistency of the active catalog:
// exactly one initial state, unique sorting positions, unique names, and
// at least one production state. An inconsistent catalog would make the
// dashboards disagree with the lifecycle, so it is rejected as a whole.
func ValidateCatalog(states []*OfferOrderState) error {
	var initials int
	sortings := make(map[int]bool)
	names := make(map[string]bool)
	production := false

	for _, s := range states {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.State().IsRemoved() {
			continue
		}
		if s.initial {
			initials++
		}
		if s.production {
			production = true
		}
		if sortings[s.sorting] {
			return errs.NewValueIsInvalidErrorWithCause("state catalog",
				fmt.Errorf("duplicate sorting %d", s.sorting))
		}
		sortings[s.sorting] = true
		if names[s.name] {
			return errs.NewValueIsInvalidErrorWithCause("state catalog",
				fmt.Errorf("duplicate name %q", s.name))
		}
		names[s.name] = true
	}

	if initials != 1 {
		return errs.NewValueIsInvalidErrorWithCause("state catalog",
			fmt.Errorf("expected exactly one initial state, found %d", initials))
	}
	if !production {
		return errs.NewValueIsInvalidErrorWithCause("state catalog",
			errors.New("no production state defined"))
	}
	return nil
}
