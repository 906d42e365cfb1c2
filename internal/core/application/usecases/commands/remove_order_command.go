package commands

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to logically delete an order.
// The row is retained for audit and its production number stays reserved.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a removal command with validation.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	removeCommand := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
