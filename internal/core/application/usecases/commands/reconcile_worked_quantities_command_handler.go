package commands

import (
	"context"
	"log/slog"
)

// ReconcileWorkedQuantitiesCommandHandler periodically realigns the
// worked-quantity cache on order rows with the authoritative processing
// event sums. Divergence is expected between sweeps (the cache is only
// refreshed on writes); the sweep logs and repairs it.
type ReconcileWorkedQuantitiesCommandHandler struct {
	uowFactory ProcessingUoWFactory
	logger     *slog.Logger
}

// NewReconcileWorkedQuantitiesCommandHandler creates a handler for the
// reconciliation sweep.
func NewReconcileWorkedQuantitiesCommandHandler(
	uowFactory ProcessingUoWFactory,
	logger *slog.Logger,
) ReconcileWorkedQuantitiesCommandHandler {
	return ReconcileWorkedQuantitiesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle refreshes the worked-quantity cache of every active order whose
// row has drifted from its event sum. Aligned orders are left untouched,
// so their version does not churn.
func (h ReconcileWorkedQuantitiesCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileWorkedQuantitiesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	for _, activeOrder := range orders {
		reconciled, sumErr := uow.ProcessingRepository().ReconciledQuantity(ctx, activeOrder.ID())
		if sumErr != nil {
			_ = uow.Rollback(ctx)
			return sumErr
		}
		if reconciled == activeOrder.WorkedQuantity() {
			continue
		}

		h.logger.WarnContext(ctx, "worked quantity cache diverged from event log",
			"order_id", activeOrder.ID().String(),
			"cached", activeOrder.WorkedQuantity(),
			"reconciled", reconciled)

		if err = activeOrder.RecordWorkedQuantity(reconciled); err != nil {
			_ = uow.Rollback(ctx)
			return err
		}
		if err = uow.OrderRepository().Update(ctx, activeOrder); err != nil {
			_ = uow.Rollback(ctx)
			return err
		}
	}

	return uow.Commit(ctx)
}
