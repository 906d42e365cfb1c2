package order

import (
	"errors"
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrMotivazioneIsRequired is returned when a suspension is attempted
	// without a reason describing the blocking cause.
	ErrMotivazioneIsRequired = errors.New("motivazione is required to suspend an order")

	// ErrOrderIsRemoved is returned when a mutation is attempted on a
	// logically deleted order.
	ErrOrderIsRemoved = errors.New("order is removed")

	// ErrOrderDoesNotAcceptProcessing is returned when a processing event
	// targets a fulfilled or settled order.
	ErrOrderDoesNotAcceptProcessing = errors.New("order no longer accepts processing events")

	// ErrQuantityNotCovered is returned when a fulfilment is attempted
	// before the reconciled worked quantity covers the ordered quantity.
	ErrQuantityNotCovered = errors.New("worked quantity does not cover the ordered quantity")
)

// Order is the production order aggregate root. It owns the order's
// lifecycle (seven-state status machine), its semaforo flag set, the
// denormalized worked-quantity cache, and its logical-removal state.
//
// Invariants:
//   - identity and article reference are valid UUIDs
//   - quantity is positive; worked quantity is never negative
//   - status only moves along the lifecycle graph (see Status)
//   - Sospeso always carries a non-empty motivazione
//   - Evaso is only reached when the reconciled worked quantity covers
//     the ordered quantity, and sets autocontrollo
//   - removal is logical; removed orders reject further mutation
//
// The worked quantity held here is a cache of the processing event sum.
// The event log is authoritative; callers refresh the cache through
// RecordWorkedQuantity and must flag divergence rather than trust either
// value silently.
type Order struct {
	id               kernel.UUID
	productionNumber string
	articleID        kernel.UUID
	quantity         int
	workedQuantity   int
	deliveryDate     kernel.Date
	startDate        kernel.Date
	lineNumber       int
	lot              string
	expiry           *kernel.Date
	status           Status
	semaforo         Semaforo
	motivazione      string
	autocontrollo    bool
	state            kernel.EntityState
	version          int

	isConstructed bool
}

// NewOrder creates a new Order in Pianificato status with validation.
// The production number must already have been issued by the sequence
// generator; it is a business code, not the identity.
func NewOrder(
	id kernel.UUID,
	productionNumber string,
	articleID kernel.UUID,
	quantity int,
	deliveryDate kernel.Date,
	startDate kernel.Date,
	lineNumber int,
) (*Order, error) {
	o := &Order{
		status:        Pianificato,
		state:         kernel.StateActive,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductionNumber(productionNumber),
		o.setArticleID(articleID),
		o.setQuantity(quantity),
		o.setDeliveryDate(deliveryDate),
		o.setStartDate(startDate),
		o.setLineNumber(lineNumber),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// creation-time defaults. All stored fields are validated; an invalid row
// surfaces as an error instead of a silently broken aggregate.
func RestoreOrder(
	id kernel.UUID,
	productionNumber string,
	articleID kernel.UUID,
	quantity int,
	workedQuantity int,
	deliveryDate kernel.Date,
	startDate kernel.Date,
	lineNumber int,
	lot string,
	expiry *kernel.Date,
	status Status,
	semaforo Semaforo,
	motivazione string,
	autocontrollo bool,
	state kernel.EntityState,
	version int,
) (*Order, error) {
	o := &Order{
		workedQuantity: workedQuantity,
		lot:            lot,
		expiry:         expiry,
		semaforo:       semaforo,
		motivazione:    motivazione,
		autocontrollo:  autocontrollo,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductionNumber(productionNumber),
		o.setArticleID(articleID),
		o.setQuantity(quantity),
		o.setDeliveryDate(deliveryDate),
		o.setStartDate(startDate),
		o.setLineNumber(lineNumber),
		status.Validate(),
		state.Validate(),
	); err != nil {
		return nil, err
	}

	if workedQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("worked quantity",
			fmt.Errorf("%d is negative", workedQuantity))
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not a valid version", version))
	}

	o.status = status
	o.state = state
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductionNumber returns the sequence-issued business code.
func (o *Order) ProductionNumber() string {
	return o.productionNumber
}

// ArticleID returns the reference to the produced article.
func (o *Order) ArticleID() kernel.UUID {
	return o.articleID
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// WorkedQuantity returns the denormalized worked-quantity cache.
// The processing event log remains the source of truth.
func (o *Order) WorkedQuantity() int {
	return o.workedQuantity
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() kernel.Date {
	return o.deliveryDate
}

// StartDate returns the expected production start date.
func (o *Order) StartDate() kernel.Date {
	return o.startDate
}

// LineNumber returns the order's line number.
func (o *Order) LineNumber() int {
	return o.lineNumber
}

// Lot returns the lot code, empty when not assigned.
func (o *Order) Lot() string {
	return o.lot
}

// Expiry returns the lot expiry date, nil when not assigned.
func (o *Order) Expiry() *kernel.Date {
	return o.expiry
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Semaforo returns the traffic-light flag set.
func (o *Order) Semaforo() Semaforo {
	return o.semaforo
}

// Motivazione returns the free-text reason attached to the order.
func (o *Order) Motivazione() string {
	return o.motivazione
}

// Autocontrollo reports whether the self-check passed.
func (o *Order) Autocontrollo() bool {
	return o.autocontrollo
}

// State returns the logical-removal state.
func (o *Order) State() kernel.EntityState {
	return o.state
}

// Version returns the optimistic concurrency counter. The repository
// bumps it on every successful update; a stale version loses the write.
func (o *Order) Version() int {
	return o.version
}

// SetLot assigns lot and expiry metadata. Expiry may be nil for
// non-perishable articles.
func (o *Order) SetLot(lot string, expiry *kernel.Date) error {
	if err := o.mutable(); err != nil {
		return err
	}
	if expiry != nil {
		if err := expiry.Validate(); err != nil {
			return err
		}
	}
	o.lot = lot
	o.expiry = expiry
	return nil
}

// UpdateSemaforo replaces the traffic-light flag set.
func (o *Order) UpdateSemaforo(s Semaforo) error {
	if err := o.mutable(); err != nil {
		return err
	}
	o.semaforo = s
	return nil
}

// StartPreparation moves the order Pianificato -> InAllestimento.
func (o *Order) StartPreparation() error {
	return o.transition(InAllestimento)
}

// Launch moves the order InAllestimento -> Lanciato.
func (o *Order) Launch() error {
	return o.transition(Lanciato)
}

// StartProgress moves the order Lanciato -> InAvanzamento.
func (o *Order) StartProgress() error {
	return o.transition(InAvanzamento)
}

// Suspend parks an active order in Sospeso. The motivazione describing the
// blocking cause is mandatory and replaces any previous reason.
func (o *Order) Suspend(motivazione string) error {
	if motivazione == "" {
		return errs.NewStateTransitionInvalidErrorWithCause(
			o.status.String(), Sospeso.String(), ErrMotivazioneIsRequired)
	}
	if err := o.transition(Sospeso); err != nil {
		return err
	}
	o.motivazione = motivazione
	return nil
}

// Resume returns a suspended order to InAvanzamento once the blocking
// cause is resolved. The motivazione is updated (or cleared with "").
func (o *Order) Resume(motivazione string) error {
	if err := o.transition(InAvanzamento); err != nil {
		return err
	}
	o.motivazione = motivazione
	return nil
}

// Fulfill moves the order InAvanzamento -> Evaso. The reconciled quantity
// is the authoritative processing-event sum supplied by the caller; the
// transition is rejected while it does not cover the ordered quantity.
// Reaching Evaso implies the self-check passed, so autocontrollo is set.
func (o *Order) Fulfill(reconciledQuantity int) error {
	if reconciledQuantity < o.quantity {
		return errs.NewStateTransitionInvalidErrorWithCause(
			o.status.String(), Evaso.String(),
			fmt.Errorf("%w: worked %d of %d", ErrQuantityNotCovered, reconciledQuantity, o.quantity))
	}
	if err := o.transition(Evaso); err != nil {
		return err
	}
	o.autocontrollo = true
	return nil
}

// Settle moves the order Evaso -> Saldato, the terminal state.
func (o *Order) Settle() error {
	return o.transition(Saldato)
}

// AcceptsProcessing reports whether a processing event may be recorded:
// the order must be active (not removed) and not yet fulfilled or settled.
func (o *Order) AcceptsProcessing() bool {
	return !o.state.IsRemoved() && o.status.AcceptsProcessing()
}

// RecordWorkedQuantity refreshes the denormalized worked-quantity cache
// from the reconciled processing-event sum. It never changes status.
func (o *Order) RecordWorkedQuantity(reconciledQuantity int) error {
	if err := o.mutable(); err != nil {
		return err
	}
	if reconciledQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("worked quantity",
			fmt.Errorf("%d is negative", reconciledQuantity))
	}
	o.workedQuantity = reconciledQuantity
	return nil
}

// MarkForcedReschedule records that a forced planning override ran against
// this order, appending an audit note to the motivazione.
func (o *Order) MarkForcedReschedule(note string) error {
	if err := o.mutable(); err != nil {
		return err
	}
	if o.motivazione == "" {
		o.motivazione = note
		return nil
	}
	o.motivazione = o.motivazione + "; " + note
	return nil
}

// Remove logically deletes the order. The row is retained for audit and
// excluded from normal reads; removing twice is an error.
func (o *Order) Remove() error {
	if o.state.IsRemoved() {
		return ErrOrderIsRemoved
	}
	o.state = kernel.StateRemoved
	return nil
}

func (o *Order) transition(target Status) error {
	if err := o.mutable(); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) mutable() error {
	if o.state.IsRemoved() {
		return ErrOrderIsRemoved
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductionNumber(productionNumber string) error {
	if productionNumber == "" {
		return errs.NewValueIsRequiredError("production number")
	}
	o.productionNumber = productionNumber
	return nil
}

func (o *Order) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}
	o.articleID = articleID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setStartDate(startDate kernel.Date) error {
	if err := startDate.Validate(); err != nil {
		return err
	}
	o.startDate = startDate
	return nil
}

func (o *Order) setLineNumber(lineNumber int) error {
	if lineNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line number",
			fmt.Errorf("%d is not greater than 0", lineNumber))
	}
	o.lineNumber = lineNumber
	return nil
}
