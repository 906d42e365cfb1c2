package commands

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"
)

var ErrForceRescheduleCommandIsNotConstructed = errors.New(
	"ForceRescheduleCommand must be created via NewForceRescheduleCommand constructor",
)

// ForceRescheduleCommand represents a request to move an order's remaining
// work onto a work line starting at a new date, bypassing the capacity
// probe. The note is mandatory: every override leaves an audit trail.
type ForceRescheduleCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	workLineID kernel.UUID
	startDate  kernel.Date
	note       string

	guard guard.ConstructorGuard
}

// NewForceRescheduleCommand creates a forced reschedule command with validation.
func NewForceRescheduleCommand(
	orderID kernel.UUID,
	workLineID kernel.UUID,
	startDate kernel.Date,
	note string,
) (ForceRescheduleCommand, error) {
	rescheduleCommand := ForceRescheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rescheduleCommand.setOrderID(orderID),
		rescheduleCommand.setWorkLineID(workLineID),
		rescheduleCommand.setStartDate(startDate),
		rescheduleCommand.setNote(note),
	); err != nil {
		return ForceRescheduleCommand{}, err
	}

	return rescheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ForceRescheduleCommand) Validate() error {
	return c.guard.Validate(ErrForceRescheduleCommandIsNotConstructed)
}

// OrderID returns the order being rescheduled.
func (c ForceRescheduleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkLineID returns the target work line.
func (c ForceRescheduleCommand) WorkLineID() kernel.UUID {
	return c.workLineID
}

// StartDate returns the new start date.
func (c ForceRescheduleCommand) StartDate() kernel.Date {
	return c.startDate
}

// Note returns the mandatory audit note.
func (c ForceRescheduleCommand) Note() string {
	return c.note
}

func (c *ForceRescheduleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ForceRescheduleCommand) setWorkLineID(workLineID kernel.UUID) error {
	if err := workLineID.Validate(); err != nil {
		return err
	}

	c.workLineID = workLineID
	return nil
}

func (c *ForceRescheduleCommand) setStartDate(startDate kernel.Date) error {
	if err := startDate.Validate(); err != nil {
		return err
	}

	c.startDate = startDate
	return nil
}

func (c *ForceRescheduleCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}

	c.note = note
	return nil
}
