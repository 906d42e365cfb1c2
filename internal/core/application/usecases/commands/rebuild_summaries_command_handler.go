package commands

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
)

// RebuildSummariesCommandHandler rewrites the cached summary rows of a
// date window from the allocation grid. Summaries are normally maintained
// in the same transaction as each grid change; this rebuild is the safety
// net that repairs any drift, and it covers every day of the window so
// dates with no cells get their zero rows back too.
type RebuildSummariesCommandHandler struct {
	uowFactory PlanningUoWFactory
}

// NewRebuildSummariesCommandHandler creates a handler for summary rebuilds.
func NewRebuildSummariesCommandHandler(uowFactory PlanningUoWFactory) RebuildSummariesCommandHandler {
	return RebuildSummariesCommandHandler{uowFactory: uowFactory}
}

// Handle recomputes and replaces every summary row in the window.
func (h RebuildSummariesCommandHandler) Handle(ctx context.Context, cmd RebuildSummariesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	grid, err := uow.PlanningRepository().GetAllocationsByDateRange(ctx, cmd.From(), cmd.To(), false)
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	dates := make([]kernel.Date, 0)
	for date := cmd.From(); !date.After(cmd.To()); date = date.AddDays(1) {
		dates = append(dates, date)
	}

	summaries, err := rebuildSummaries(grid, dates)
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	if err = uow.PlanningRepository().ReplaceSummaries(ctx, summaries); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}
