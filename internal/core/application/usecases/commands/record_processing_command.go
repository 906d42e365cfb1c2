package commands

import (
	"errors"
	"fmt"
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"
)

var ErrRecordProcessingCommandIsNotConstructed = errors.New(
	"RecordProcessingCommand must be created via NewRecordProcessingCommand constructor",
)

// RecordProcessingCommand represents a request to append a work-log event
// to an order: an employee declaring a produced quantity at a point in time.
type RecordProcessingCommand struct { //nolint:recvcheck //using for validation
	processingID kernel.UUID
	orderID      kernel.UUID
	employeeID   kernel.UUID
	quantity     int
	recordedAt   time.Time

	guard guard.ConstructorGuard
}

// NewRecordProcessingCommand creates a processing command with validation.
func NewRecordProcessingCommand(
	processingID kernel.UUID,
	orderID kernel.UUID,
	employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (RecordProcessingCommand, error) {
	processingCommand := RecordProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		processingCommand.setProcessingID(processingID),
		processingCommand.setOrderID(orderID),
		processingCommand.setEmployeeID(employeeID),
		processingCommand.setQuantity(quantity),
		processingCommand.setRecordedAt(recordedAt),
	); err != nil {
		return RecordProcessingCommand{}, err
	}

	return processingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordProcessingCommand) Validate() error {
	return c.guard.Validate(ErrRecordProcessingCommandIsNotConstructed)
}

// ProcessingID returns the identifier of the new event.
func (c RecordProcessingCommand) ProcessingID() kernel.UUID {
	return c.processingID
}

// OrderID returns the order the event belongs to.
func (c RecordProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EmployeeID returns the declaring employee.
func (c RecordProcessingCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Quantity returns the declared quantity.
func (c RecordProcessingCommand) Quantity() int {
	return c.quantity
}

// RecordedAt returns the declaration timestamp.
func (c RecordProcessingCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *RecordProcessingCommand) setProcessingID(processingID kernel.UUID) error {
	if err := processingID.Validate(); err != nil {
		return err
	}

	c.processingID = processingID
	return nil
}

func (c *RecordProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordProcessingCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *RecordProcessingCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *RecordProcessingCommand) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recorded at")
	}

	c.recordedAt = recordedAt
	return nil
}
