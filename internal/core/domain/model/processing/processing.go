// Package processing provides the immutable work-log event recorded every
// time an employee processes part of a production order. The sum of
// non-removed events for an order is the authoritative worked quantity;
// the denormalized counter on the order is only a cache of it.
package processing

import (
	"errors"
	"fmt"
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
)

var (
	// ErrProcessingIsNotConstructed is returned when a Processing event was
	// not created through NewProcessing or RestoreProcessing.
	ErrProcessingIsNotConstructed = errors.New("Processing must be created via NewProcessing or RestoreProcessing")

	// ErrProcessingIsRemoved is returned when a removal targets an already
	// removed event.
	ErrProcessingIsRemoved = errors.New("processing event is removed")
)

// Processing is one append-only work-log event: an employee processed a
// quantity of an order at a point in time. Events are never edited;
// corrections happen by logically removing the wrong event and appending
// the right one, so the audit trail stays intact.
type Processing struct {
	id         kernel.UUID
	orderID    kernel.UUID
	employeeID kernel.UUID
	quantity   int
	recordedAt time.Time
	state      kernel.EntityState

	isConstructed bool
}

// NewProcessing creates a work-log event with validation. The quantity
// must be positive; zero-quantity events carry no information.
func NewProcessing(
	id kernel.UUID,
	orderID kernel.UUID,
	employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (*Processing, error) {
	p := &Processing{
		state:         kernel.StateActive,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setEmployeeID(employeeID),
		p.setQuantity(quantity),
		p.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProcessing reconstructs an event from persistence.
func RestoreProcessing(
	id kernel.UUID,
	orderID kernel.UUID,
	employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
	state kernel.EntityState,
) (*Processing, error) {
	p, err := NewProcessing(id, orderID, employeeID, quantity, recordedAt)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	p.state = state
	return p, nil
}

// Validate ensures the event was properly constructed.
func (p *Processing) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcessingIsNotConstructed
	}
	return nil
}

// ID returns the event identifier.
func (p *Processing) ID() kernel.UUID {
	return p.id
}

// OrderID returns the processed order.
func (p *Processing) OrderID() kernel.UUID {
	return p.orderID
}

// EmployeeID returns the employee who recorded the work.
func (p *Processing) EmployeeID() kernel.UUID {
	return p.employeeID
}

// Quantity returns the processed quantity.
func (p *Processing) Quantity() int {
	return p.quantity
}

// RecordedAt returns the event timestamp.
func (p *Processing) RecordedAt() time.Time {
	return p.recordedAt
}

// State returns the logical-removal state.
func (p *Processing) State() kernel.EntityState {
	return p.state
}

// Remove logically deletes the event; its quantity no longer counts
// toward the reconciled sum but the row stays for audit.
func (p *Processing) Remove() error {
	if p.state.IsRemoved() {
		return ErrProcessingIsRemoved
	}
	p.state = kernel.StateRemoved
	return nil
}

func (p *Processing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Processing) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Processing) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	p.employeeID = employeeID
	return nil
}

func (p *Processing) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("processing quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Processing) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recorded at")
	}
	p.recordedAt = recordedAt
	return nil
}

// Sum returns the reconciled worked quantity of an order: the total of all
// non-removed events. An empty log reconciles to zero, never an error.
func Sum(events []*Processing) int {
	total := 0
	for _, e := range events {
		if e.State().IsRemoved() {
			continue
		}
		total += e.Quantity()
	}
	return total
}
