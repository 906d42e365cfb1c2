package commands

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along its
// lifecycle. The motivazione is mandatory when the target status is
// Sospeso and optional otherwise (a resume may clear or replace it).
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	target      order.Status
	motivazione string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command with validation.
// Whether the transition itself is legal is decided by the aggregate, not
// here; the command only guarantees well-formed input.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	motivazione string,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if target == order.Sospeso && motivazione == "" {
		return ChangeOrderStatusCommand{}, order.ErrMotivazioneIsRequired
	}
	statusCommand.motivazione = motivazione

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Motivazione returns the free-text reason attached to the change.
func (c ChangeOrderStatusCommand) Motivazione() string {
	return c.motivazione
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
