// Package planning provides the scheduling grid entities: the Allocation
// planning cell (order, work line, date, per-shift hours), the Hours value
// object backing it, and the cached Summary aggregates per date.
//
// Allocations are owned by their order and only created, replaced or
// logically removed as a unit by the planning allocator. Summaries are
// derived data and must be recomputed in the same transaction as any
// allocation change touching their date.
package planning
