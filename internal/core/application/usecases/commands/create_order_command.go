package commands

import (
	"errors"
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production
// order for an article. The production number is not part of the command:
// it is issued by the sequence generator inside the handler's transaction.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, articleID, 500, delivery, start, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	articleID    kernel.UUID
	quantity     int
	deliveryDate kernel.Date
	startDate    kernel.Date
	lineNumber   int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates identities, the positive quantity, both dates, and the line number.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	articleID kernel.UUID,
	quantity int,
	deliveryDate kernel.Date,
	startDate kernel.Date,
	lineNumber int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setArticleID(articleID),
		orderCommand.setQuantity(quantity),
		orderCommand.setDeliveryDate(deliveryDate),
		orderCommand.setStartDate(startDate),
		orderCommand.setLineNumber(lineNumber),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ArticleID returns the reference to the produced article.
func (c CreateOrderCommand) ArticleID() kernel.UUID {
	return c.articleID
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// StartDate returns the expected production start date.
func (c CreateOrderCommand) StartDate() kernel.Date {
	return c.startDate
}

// LineNumber returns the order's line number.
func (c CreateOrderCommand) LineNumber() int {
	return c.lineNumber
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}

	c.articleID = articleID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateOrderCommand) setStartDate(startDate kernel.Date) error {
	if err := startDate.Validate(); err != nil {
		return err
	}

	c.startDate = startDate
	return nil
}

func (c *CreateOrderCommand) setLineNumber(lineNumber int) error {
	if lineNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line number",
			fmt.Errorf("%d is not greater than 0", lineNumber))
	}

	c.lineNumber = lineNumber
	return nil
}
