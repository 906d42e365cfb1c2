package commands

import (
	"context"
	"errors"
	"strings"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/core/domain/services"
	"produzione/internal/core/ports"
	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotSchedulable is returned when a plan save targets a settled
// order. Settled orders are closed; their schedule is history.
var ErrOrderIsNotSchedulable = errors.New("settled orders cannot be rescheduled")

// SavePlanningCommandHandler replaces an order's schedule atomically:
// the old cells are logically removed, the proposed cells written, and the
// per-date summaries recomputed, all in one transaction.
//
// Capacity conflicts abort the save with SchedulingConflictError naming
// every over-committed slot and its holders, unless the command carries
// the force flag. A forced save writes the cells anyway, marks each as
// forced, and appends an audit note to the order's motivazione.
type SavePlanningCommandHandler struct {
	uowFactory PlanningUoWFactory
	refData    ports.ReferenceDataGateway
	allocator  services.PlanningAllocator
}

// NewSavePlanningCommandHandler creates a handler for plan saves.
func NewSavePlanningCommandHandler(
	uowFactory PlanningUoWFactory,
	refData ports.ReferenceDataGateway,
	allocator services.PlanningAllocator,
) SavePlanningCommandHandler {
	return SavePlanningCommandHandler{
		uowFactory: uowFactory,
		refData:    refData,
		allocator:  allocator,
	}
}

// Handle processes the plan save command.
func (h SavePlanningCommandHandler) Handle(ctx context.Context, cmd SavePlanningCommand) error {
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

	proposed := make([]*planning.Allocation, 0, len(cmd.Cells()))
	for _, cell := range cmd.Cells() {
		allocation, cellErr := planning.NewAllocation(
			kernel.NewUUID(), cmd.OrderID(), cell.WorkLineID, cell.Date, cell.Hours)
		if cellErr != nil {
			return cellErr
		}
		proposed = append(proposed, allocation)
	}

	planningRepo := uow.PlanningRepository()
	old, err := planningRepo.GetAllocationsByOrder(ctx, cmd.OrderID(), false)
	if err != nil {
		return err
	}

	affectedDates := uniqueDates(old, proposed)
	if len(affectedDates) == 0 {
		return uow.Commit(ctx)
	}

	from, to := dateSpan(affectedDates)
	committed, err := planningRepo.GetAllocationsByDateRange(ctx, from, to, false)
	if err != nil {
		return err
	}

	capacities, err := h.lineCapacities(ctx)
	if err != nil {
		return err
	}

	details, err := h.allocator.DetectConflicts(proposed, committed, capacities)
	if err != nil {
		return err
	}
	if len(details) > 0 {
		if !cmd.Force() {
			return errs.NewSchedulingConflictError(details)
		}
		if err = h.recordOverride(aggregate, proposed, details); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
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

	summaries, err := rebuildSummaries(mergeGrid(committed, cmd.OrderID(), proposed), affectedDates)
	if err != nil {
		return err
	}
	if err = planningRepo.ReplaceSummaries(ctx, summaries); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SavePlanningCommandHandler) lineCapacities(ctx context.Context) (map[kernel.UUID]decimal.Decimal, error) {
	lines, err := h.refData.GetAllWorkLines(ctx)
	if err != nil {
		return nil, err
	}

	capacities := make(map[kernel.UUID]decimal.Decimal, len(lines))
	for _, line := range lines {
		capacities[line.ID] = line.DailyCapacity
	}
	return capacities, nil
}

func (h SavePlanningCommandHandler) recordOverride(
	aggregate *order.Order,
	proposed []*planning.Allocation,
	details []errs.SchedulingConflictDetail,
) error {
	for _, cell := range proposed {
		if err := cell.MarkForced(); err != nil {
			return err
		}
	}

	slots := make([]string, 0, len(details))
	for _, detail := range details {
		slots = append(slots, detail.String())
	}
	return aggregate.MarkForcedReschedule("forced over capacity: " + strings.Join(slots, ", "))
}
