package commands

import (
	"context"

	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/processing"
)

// RecordProcessingCommandHandler appends work-log events to an order.
// The event log is authoritative for the worked quantity; the order's
// cached counter is refreshed from the reconciled sum inside the same
// transaction, so the two can only diverge through out-of-band writes.
type RecordProcessingCommandHandler struct {
	uowFactory ProcessingUoWFactory
}

// NewRecordProcessingCommandHandler creates a handler for processing declarations.
func NewRecordProcessingCommandHandler(uowFactory ProcessingUoWFactory) RecordProcessingCommandHandler {
	return RecordProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration command.
// Fulfilled and settled orders no longer accept events; the declared
// quantity may overshoot the ordered quantity (overdelivery is recorded,
// not rejected).
func (h RecordProcessingCommandHandler) Handle(ctx context.Context, cmd RecordProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.AcceptsProcessing() {
		return order.ErrOrderDoesNotAcceptProcessing
	}

	event, err := processing.NewProcessing(
		cmd.ProcessingID(),
		cmd.OrderID(),
		cmd.EmployeeID(),
		cmd.Quantity(),
		cmd.RecordedAt(),
	)
	if err != nil {
		return err
	}

	processingRepo := uow.ProcessingRepository()
	if err = processingRepo.Add(ctx, event); err != nil {
		return err
	}

	reconciled, err := processingRepo.ReconciledQuantity(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if err = aggregate.RecordWorkedQuantity(reconciled); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
