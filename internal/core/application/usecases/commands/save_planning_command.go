package commands

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"
)

var ErrSavePlanningCommandIsNotConstructed = errors.New(
	"SavePlanningCommand must be created via NewSavePlanningCommand constructor",
)

// PlanningCell is one proposed grid cell in a plan save: the hours an
// order wants to claim on a work line for a calendar day.
type PlanningCell struct {
	WorkLineID kernel.UUID
	Date       kernel.Date
	Hours      planning.Hours
}

// SavePlanningCommand represents a request to replace an order's schedule
// with a new set of grid cells. With force set, capacity conflicts are
// overridden instead of rejected and the override is recorded for audit.
type SavePlanningCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	cells   []PlanningCell
	force   bool

	guard guard.ConstructorGuard
}

// NewSavePlanningCommand creates a plan save command with validation.
// An empty cell list is legal: it clears the order's schedule.
func NewSavePlanningCommand(
	orderID kernel.UUID,
	cells []PlanningCell,
	force bool,
) (SavePlanningCommand, error) {
	planningCommand := SavePlanningCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := planningCommand.setOrderID(orderID); err != nil {
		return SavePlanningCommand{}, err
	}
	if err := planningCommand.setCells(cells); err != nil {
		return SavePlanningCommand{}, err
	}

	return planningCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SavePlanningCommand) Validate() error {
	return c.guard.Validate(ErrSavePlanningCommandIsNotConstructed)
}

// OrderID returns the order whose schedule is replaced.
func (c SavePlanningCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Cells returns the proposed grid cells.
func (c SavePlanningCommand) Cells() []PlanningCell {
	return c.cells
}

// Force reports whether capacity conflicts should be overridden.
func (c SavePlanningCommand) Force() bool {
	return c.force
}

func (c *SavePlanningCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SavePlanningCommand) setCells(cells []PlanningCell) error {
	for _, cell := range cells {
		if err := cell.WorkLineID.Validate(); err != nil {
			return err
		}
		if err := cell.Date.Validate(); err != nil {
			return err
		}
		if cell.Hours.Total().IsNegative() || cell.Hours.IsZero() {
			return errs.NewValueIsInvalidError("cell hours")
		}
	}

	c.cells = cells
	return nil
}
