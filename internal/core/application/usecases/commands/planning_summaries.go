package commands

import (
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
)

// uniqueDates collects the distinct calendar days touched by a set of
// allocation cells, removed ones included: a cleared date still needs its
// summaries rewritten to zero.
func uniqueDates(groups ...[]*planning.Allocation) []kernel.Date {
	seen := make(map[string]kernel.Date)
	for _, group := range groups {
		for _, cell := range group {
			seen[cell.Date().String()] = cell.Date()
		}
	}

	dates := make([]kernel.Date, 0, len(seen))
	for _, date := range seen {
		dates = append(dates, date)
	}
	return dates
}

// dateSpan returns the earliest and latest of the given dates.
func dateSpan(dates []kernel.Date) (kernel.Date, kernel.Date) {
	from, to := dates[0], dates[0]
	for _, date := range dates[1:] {
		if date.Before(from) {
			from = date
		}
		if date.After(to) {
			to = date
		}
	}
	return from, to
}

// rebuildSummaries recomputes every summary row for the given dates from
// the post-save grid. Summaries are a cache; they are always rewritten
// whole per date inside the same transaction as the grid change.
func rebuildSummaries(grid []*planning.Allocation, dates []kernel.Date) ([]*planning.Summary, error) {
	summaries := make([]*planning.Summary, 0, len(dates)*len(planning.AllSummaryTypes()))
	for _, date := range dates {
		totals := planning.ComputeSummaries(date, grid)
		for _, summaryType := range planning.AllSummaryTypes() {
			summary, err := planning.NewSummary(kernel.NewUUID(), date, summaryType, totals[summaryType])
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, summary)
		}
	}
	return summaries, nil
}

// mergeGrid builds the post-save view of the grid for summary recomputation:
// the committed cells of other orders plus the order's proposed cells.
func mergeGrid(
	committed []*planning.Allocation,
	orderID kernel.UUID,
	proposed []*planning.Allocation,
) []*planning.Allocation {
	grid := make([]*planning.Allocation, 0, len(committed)+len(proposed))
	for _, cell := range committed {
		if cell.OrderID().IsEqual(orderID) {
			continue
		}
		grid = append(grid, cell)
	}
	return append(grid, proposed...)
}
