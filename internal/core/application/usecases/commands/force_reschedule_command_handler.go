package commands

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/core/domain/services"
	"produzione/internal/core/ports"
)

// ForceRescheduleCommandHandler moves an order's remaining work onto a
// work line from a new start date, spreading it over consecutive days up
// to the line's daily capacity. The capacity probe is deliberately skipped;
// every written cell is marked forced and the order carries the audit note.
type ForceRescheduleCommandHandler struct {
	uowFactory PlanningUoWFactory
	refData    ports.ReferenceDataGateway
	allocator  services.PlanningAllocator
}

// NewForceRescheduleCommandHandler creates a handler for forced reschedules.
func NewForceRescheduleCommandHandler(
	uowFactory PlanningUoWFactory,
	refData ports.ReferenceDataGateway,
	allocator services.PlanningAllocator,
) ForceRescheduleCommandHandler {
	return ForceRescheduleCommandHandler{
		uowFactory: uowFactory,
		refData:    refData,
		allocator:  allocator,
	}
}

// Handle processes the forced reschedule command.
// The remaining quantity is the ordered quantity minus the reconciled
// worked quantity; a fully worked order simply has its schedule cleared.
func (h ForceRescheduleCommandHandler) Handle(ctx context.Context, cmd ForceRescheduleCommand) error {
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
	if aggregate.Status().IsTerminal() {
		return ErrOrderIsNotSchedulable
	}

	line, err := h.refData.GetWorkLine(ctx, cmd.WorkLineID())
	if err != nil {
		return err
	}
	article, err := h.refData.GetArticle(ctx, aggregate.ArticleID())
	if err != nil {
		return err
	}

	remaining := aggregate.Quantity() - aggregate.WorkedQuantity()
	if remaining < 0 {
		remaining = 0
	}

	loads, err := h.allocator.SpreadQuantity(
		remaining, ports.EffectiveRate(line, article), line.DailyCapacity, cmd.StartDate())
	if err != nil {
		return err
	}

	proposed := make([]*planning.Allocation, 0, len(loads))
	for _, load := range loads {
		hours, hoursErr := planning.MorningHours(load.Hours)
		if hoursErr != nil {
			return hoursErr
		}
		cell, cellErr := planning.NewAllocation(
			kernel.NewUUID(), cmd.OrderID(), cmd.WorkLineID(), load.Date, hours)
		if cellErr != nil {
			return cellErr
		}
		if cellErr = cell.MarkForced(); cellErr != nil {
			return cellErr
		}
		proposed = append(proposed, cell)
	}

	planningRepo := uow.PlanningRepository()
	old, err := planningRepo.GetAllocationsByOrder(ctx, cmd.OrderID(), false)
	if err != nil {
		return err
	}

	for _, cell := range old {
		if err = cell.Remove(); err != nil {
			return err
		}
		if err = planningRepo.UpdateAllocation(ctx, cell); err != nil {
			return err
		}
	}
	for _, cell := range proposed {
		if err = planningRepo.AddAllocation(ctx, cell); err != nil {
			return err
		}
	}

	if err = aggregate.MarkForcedReschedule(cmd.Note()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	affectedDates := uniqueDates(old, proposed)
	if len(affectedDates) > 0 {
		from, to := dateSpan(affectedDates)
		committed, rangeErr := planningRepo.GetAllocationsByDateRange(ctx, from, to, false)
		if rangeErr != nil {
			return rangeErr
		}

		summaries, sumErr := rebuildSummaries(mergeGrid(committed, cmd.OrderID(), proposed), affectedDates)
		if sumErr != nil {
			return sumErr
		}
		if err = planningRepo.ReplaceSummaries(ctx, summaries); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
