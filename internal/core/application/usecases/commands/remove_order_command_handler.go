package commands

import (
	"context"

	"produzione/internal/core/ports"
)

// RemoveOrderCommandHandler logically deletes orders. Removal is a
// cache-relevant change: after the commit every dashboard cache is swept
// stale, the same sweep a status change triggers.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.CacheNotifier
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.CacheNotifier,
) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the removal command.
// Removing an already removed order is an error; the sweep only runs
// after a successful commit.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	if err = aggregate.Remove(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	ports.InvalidateOrderCaches(ctx, h.notifier)
	return nil
}
