package ports

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
)

// PlanningRepository defines the persistence contract for the scheduling
// grid: allocation cells keyed by (order, work line, date) and the
// denormalized per-day summaries derived from them.
type PlanningRepository interface {
	// AddAllocation persists a new allocation cell.
	AddAllocation(ctx context.Context, cell *planning.Allocation) error

	// UpdateAllocation persists changes to an existing cell, including
	// logical removal and the forced flag.
	UpdateAllocation(ctx context.Context, cell *planning.Allocation) error

	// GetAllocationsByOrder retrieves the cells of one order.
	// Removed cells are included only when includeRemoved is set.
	GetAllocationsByOrder(ctx context.Context, orderID kernel.UUID, includeRemoved bool) ([]*planning.Allocation, error)

	// GetAllocationsByDateRange retrieves every cell whose date falls in
	// [from, to], across all orders and work lines. Removed cells are
	// included only when includeRemoved is set.
	GetAllocationsByDateRange(ctx context.Context, from, to kernel.Date, includeRemoved bool) ([]*planning.Allocation, error)

	// GetAllocationsBySlot retrieves the active cells of one
	// (date, work line) slot. Used by the conflict probe.
	GetAllocationsBySlot(ctx context.Context, date kernel.Date, workLineID kernel.UUID) ([]*planning.Allocation, error)

	// ReplaceSummaries atomically replaces the stored summaries for the
	// given dates with the recomputed ones. Summaries are a cache over
	// the allocation cells and are always rewritten whole per date.
	ReplaceSummaries(ctx context.Context, summaries []*planning.Summary) error

	// GetSummariesByDateRange retrieves the stored summaries for [from, to].
	GetSummariesByDateRange(ctx context.Context, from, to kernel.Date) ([]*planning.Summary, error)
}
