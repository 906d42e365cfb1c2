package order

import (
	"fmt"

	"produzione/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions to ensure orders
// follow the production workflow.
//
// State transitions:
//
//	PIANIFICATO ──> IN_ALLESTIMENTO ──> LANCIATO ──> IN_AVANZAMENTO ──> EVASO ──> SALDATO
//	                       │                │              │  ▲
//	                       └────────────────┴──> SOSPESO ──┘  │
//	                                               └──────────┘
//	                                          (resume to IN_AVANZAMENTO)
//
// SOSPESO is reachable from any active state and requires a motivazione.
// EVASO additionally requires the reconciled worked quantity to cover the
// ordered quantity. SALDATO is terminal.
//
// The numeric values are part of the persisted contract and must not be
// reordered.
type Status int

const (
	// Pianificato (planned) is the initial state of every new order.
	Pianificato Status = iota

	// InAllestimento (in preparation) means materials and line setup are
	// being arranged.
	InAllestimento

	// Lanciato (launched) means the order has been released to the line.
	Lanciato

	// InAvanzamento (in progress) means processing events are being
	// recorded against the order.
	InAvanzamento

	// Sospeso (suspended) parks an active order; requires a motivazione
	// describing the blocking cause.
	Sospeso

	// Evaso (fulfilled) means the worked quantity covers the ordered
	// quantity; implies autocontrollo passed.
	Evaso

	// Saldato (settled) is the terminal state after invoicing.
	Saldato
)

// getStatusStrings returns the persisted/display names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pianificato:    "PIANIFICATO",
		InAllestimento: "IN_ALLESTIMENTO",
		Lanciato:       "LANCIATO",
		InAvanzamento:  "IN_AVANZAMENTO",
		Sospeso:        "SOSPESO",
		Evaso:          "EVASO",
		Saldato:        "SALDATO",
	}
}

// getTransitions returns the lifecycle adjacency: the set of statuses each
// status may move to. Preconditions (motivazione, worked quantity) are
// enforced by the Order aggregate, not here.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pianificato:    {InAllestimento},
		InAllestimento: {Lanciato, Sospeso},
		Lanciato:       {InAvanzamento, Sospeso},
		InAvanzamento:  {Sospeso, Evaso},
		Sospeso:        {InAvanzamento},
		Evaso:          {Saldato},
		Saldato:        {},
	}
}

// StatusFromString resolves a persisted/display name back to its Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks that the Status is one of the seven defined values.
// Used when reconstructing orders from persistence or parsing requests.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN" for
// undefined values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order is actively moving through
// production. Active statuses are the only ones that may be suspended.
func (s Status) IsActive() bool {
	return s == InAllestimento || s == Lanciato || s == InAvanzamento
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Saldato
}

// AcceptsProcessing reports whether processing events may still be
// recorded. Fulfilled and settled orders reject further events.
func (s Status) AcceptsProcessing() bool {
	return s != Evaso && s != Saldato
}

// CanTransitionTo reports whether the lifecycle graph contains the edge
// s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along the lifecycle graph.
//
// Returns:
//   - (target, nil) when the edge s -> target exists
//   - (0, StateTransitionInvalidError) otherwise; the current status is
//     left for the caller to keep unchanged
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewStateTransitionInvalidError(s.String(), target.String())
	}
	return target, nil
}
