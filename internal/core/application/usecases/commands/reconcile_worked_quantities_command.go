package commands

import (
	"errors"

	"produzione/internal/pkg/guard"
)

// ErrReconcileWorkedQuantitiesCommandIsNotConstructed is returned when the
// command was created bypassing its constructor.
var ErrReconcileWorkedQuantitiesCommandIsNotConstructed = errors.New(
	"ReconcileWorkedQuantitiesCommand must be created via NewReconcileWorkedQuantitiesCommand")

// ReconcileWorkedQuantitiesCommand requests a sweep over every active
// order, refreshing the denormalized worked-quantity cache from the
// processing event log. It carries no parameters: the sweep always covers
// all active orders.
type ReconcileWorkedQuantitiesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileWorkedQuantitiesCommand creates a reconciliation sweep command.
func NewReconcileWorkedQuantitiesCommand() ReconcileWorkedQuantitiesCommand {
	return ReconcileWorkedQuantitiesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileWorkedQuantitiesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileWorkedQuantitiesCommandIsNotConstructed)
}
