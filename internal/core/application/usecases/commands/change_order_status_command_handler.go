package commands

import (
	"context"
	"log/slog"

	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Lifecycle decisions are made on the reconciled processing-event sum, not
// on the order's cached counter: before any transition the handler
// refreshes the cache from the event log and logs a warning when the two
// diverge. After a committed change every downstream dashboard cache is
// swept stale, each scope and bucket exactly once.
type ChangeOrderStatusCommandHandler struct {
	uowFactory ProcessingUoWFactory
	notifier   ports.CacheNotifier
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for lifecycle operations.
func NewChangeOrderStatusCommandHandler(
	uowFactory ProcessingUoWFactory,
	notifier ports.CacheNotifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Illegal transitions surface as StateTransitionInvalidError with the
// order left untouched. The cache sweep runs only after a successful
// commit; a failed transaction must not mark anything stale.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	if aggregate.State().IsRemoved() {
		return order.ErrOrderIsRemoved
	}

	reconciled, err := uow.ProcessingRepository().ReconciledQuantity(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if reconciled != aggregate.WorkedQuantity() {
		h.logger.Warn("worked quantity cache diverged from processing events",
			"order_id", aggregate.ID().String(),
			"cached", aggregate.WorkedQuantity(),
			"reconciled", reconciled,
		)
	}
	if err = aggregate.RecordWorkedQuantity(reconciled); err != nil {
		return err
	}

	if err = h.applyTransition(aggregate, cmd, reconciled); err != nil {
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

func (h ChangeOrderStatusCommandHandler) applyTransition(
	aggregate *order.Order,
	cmd ChangeOrderStatusCommand,
	reconciled int,
) error {
	switch cmd.Target() {
	case order.InAllestimento:
		return aggregate.StartPreparation()
	case order.Lanciato:
		return aggregate.Launch()
	case order.InAvanzamento:
		if aggregate.Status() == order.Sospeso {
			return aggregate.Resume(cmd.Motivazione())
		}
		return aggregate.StartProgress()
	case order.Sospeso:
		return aggregate.Suspend(cmd.Motivazione())
	case order.Evaso:
		return aggregate.Fulfill(reconciled)
	case order.Saldato:
		return aggregate.Settle()
	default:
		_, err := aggregate.Status().TransitionTo(cmd.Target())
		return err
	}
}
