package planning

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
)

var (
	// ErrAllocationIsNotConstructed is returned when an Allocation was not
	// created through NewAllocation or RestoreAllocation.
	ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation or RestoreAllocation")

	// ErrAllocationIsRemoved is returned when a mutation targets a
	// logically deleted allocation.
	ErrAllocationIsRemoved = errors.New("allocation is removed")
)

// Allocation is one planning cell: the hours an order claims on a work
// line for a calendar day. Cells are owned by their order; the planner
// creates, replaces and logically removes them as a unit when a plan is
// saved.
//
// The forced flag records that the cell was written by a forced
// reschedule that bypassed the capacity probe; it is kept for audit.
type Allocation struct {
	id         kernel.UUID
	orderID    kernel.UUID
	workLineID kernel.UUID
	date       kernel.Date
	hours      Hours
	forced     bool
	state      kernel.EntityState

	isConstructed bool
}

// NewAllocation creates a planning cell with validation.
func NewAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	workLineID kernel.UUID,
	date kernel.Date,
	hours Hours,
) (*Allocation, error) {
	a := &Allocation{
		hours:         hours,
		state:         kernel.StateActive,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setWorkLineID(workLineID),
		a.setDate(date),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAllocation reconstructs a planning cell from persistence.
func RestoreAllocation(
	id kernel.UUID,
	orderID kernel.UUID,
	workLineID kernel.UUID,
	date kernel.Date,
	hours Hours,
	forced bool,
	state kernel.EntityState,
) (*Allocation, error) {
	a, err := NewAllocation(id, orderID, workLineID, date, hours)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	a.forced = forced
	a.state = state
	return a, nil
}

// Validate ensures the Allocation was properly constructed.
func (a *Allocation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAllocationIsNotConstructed
	}
	return nil
}

// ID returns the cell identifier.
func (a *Allocation) ID() kernel.UUID {
	return a.id
}

// OrderID returns the owning order.
func (a *Allocation) OrderID() kernel.UUID {
	return a.orderID
}

// WorkLineID returns the claimed work line.
func (a *Allocation) WorkLineID() kernel.UUID {
	return a.workLineID
}

// Date returns the claimed calendar day.
func (a *Allocation) Date() kernel.Date {
	return a.date
}

// Hours returns the per-shift hour breakdown.
func (a *Allocation) Hours() Hours {
	return a.hours
}

// Forced reports whether the cell was written by a forced reschedule.
func (a *Allocation) Forced() bool {
	return a.forced
}

// State returns the logical-removal state.
func (a *Allocation) State() kernel.EntityState {
	return a.state
}

// MarkForced records that this cell bypassed the capacity probe.
func (a *Allocation) MarkForced() error {
	if a.state.IsRemoved() {
		return ErrAllocationIsRemoved
	}
	a.forced = true
	return nil
}

// Remove logically deletes the cell; it stays on record for audit.
func (a *Allocation) Remove() error {
	if a.state.IsRemoved() {
		return ErrAllocationIsRemoved
	}
	a.state = kernel.StateRemoved
	return nil
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allocation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Allocation) setWorkLineID(workLineID kernel.UUID) error {
	if err := workLineID.Validate(); err != nil {
		return err
	}
	a.workLineID = workLineID
	return nil
}

func (a *Allocation) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	a.date = date
	return nil
}
