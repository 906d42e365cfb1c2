package services_test

import (
	"testing"
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/core/domain/services"
	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDate(t *testing.T, year int, month time.Month, day int) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(year, month, day)
	require.NoError(t, err)
	return d
}

func newAllocator(t *testing.T) services.PlanningAllocator {
	t.Helper()
	a, err := services.NewPlanningAllocator(services.DefaultGranularityMinutes)
	require.NoError(t, err)
	return a
}

func newCell(
	t *testing.T, orderID, lineID kernel.UUID, date kernel.Date, totalHours string,
) *planning.Allocation {
	t.Helper()
	h, err := planning.MorningHours(dec(totalHours))
	require.NoError(t, err)
	a, err := planning.NewAllocation(kernel.NewUUID(), orderID, lineID, date, h)
	require.NoError(t, err)
	return a
}

func TestNewPlanningAllocator(t *testing.T) {
	t.Run("rejects a non-positive granularity", func(t *testing.T) {
		_, err := services.NewPlanningAllocator(0)
		require.Error(t, err)

		_, err = services.NewPlanningAllocator(-15)
		require.Error(t, err)
	})
}

func TestCalculateHours(t *testing.T) {
	allocator := newAllocator(t)

	t.Run("exact division", func(t *testing.T) {
		h, err := allocator.CalculateHours(1000, dec("100"))
		require.NoError(t, err)
		assert.True(t, h.Equal(dec("10")), "got %s", h)
	})

	t.Run("zero quantity needs zero hours", func(t *testing.T) {
		h, err := allocator.CalculateHours(0, dec("100"))
		require.NoError(t, err)
		assert.True(t, h.IsZero())
	})

	t.Run("rounds up to the quarter hour", func(t *testing.T) {
		testCases := []struct {
			quantity int
			rate     string
			expected string
		}{
			{1010, "100", "10.25"}, // 10.1h -> 10.25h
			{1001, "100", "10.25"}, // 10.01h -> 10.25h
			{25, "100", "0.25"},    // 0.25h exactly
			{26, "100", "0.5"},     // 0.26h -> 0.5h
			{1, "100", "0.25"},     // minimal slot
			{7, "3", "2.5"},        // 2.333...h -> 2.5h
		}

		for _, tc := range testCases {
			h, err := allocator.CalculateHours(tc.quantity, dec(tc.rate))
			require.NoError(t, err)
			assert.True(t, h.Equal(dec(tc.expected)),
				"quantity %d at rate %s: expected %s, got %s", tc.quantity, tc.rate, tc.expected, h)
		}
	})

	t.Run("zero rate is a validation error, not infinity", func(t *testing.T) {
		_, err := allocator.CalculateHours(100, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative inputs are validation errors", func(t *testing.T) {
		_, err := allocator.CalculateHours(-1, dec("100"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = allocator.CalculateHours(100, dec("-5"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("coarser granularity rounds coarser", func(t *testing.T) {
		hourly, err := services.NewPlanningAllocator(60)
		require.NoError(t, err)

		h, err := hourly.CalculateHours(1010, dec("100"))
		require.NoError(t, err)
		assert.True(t, h.Equal(dec("11")), "got %s", h)
	})
}

func TestSpreadQuantity(t *testing.T) {
	allocator := newAllocator(t)
	start := mustDate(t, 2025, time.June, 2)

	t.Run("fills days up to capacity", func(t *testing.T) {
		// 2000 units at 100/h = 20h over 8h days: 8 + 8 + 4.
		loads, err := allocator.SpreadQuantity(2000, dec("100"), dec("8"), start)
		require.NoError(t, err)

		require.Len(t, loads, 3)
		assert.True(t, loads[0].Hours.Equal(dec("8")))
		assert.True(t, loads[1].Hours.Equal(dec("8")))
		assert.True(t, loads[2].Hours.Equal(dec("4")))
		assert.Equal(t, "2025-06-02", loads[0].Date.String())
		assert.Equal(t, "2025-06-03", loads[1].Date.String())
		assert.Equal(t, "2025-06-04", loads[2].Date.String())
	})

	t.Run("zero quantity spreads to nothing", func(t *testing.T) {
		loads, err := allocator.SpreadQuantity(0, dec("100"), dec("8"), start)
		require.NoError(t, err)
		assert.Empty(t, loads)
	})

	t.Run("rejects a non-positive capacity", func(t *testing.T) {
		_, err := allocator.SpreadQuantity(100, dec("100"), decimal.Zero, start)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProbeSlot(t *testing.T) {
	allocator := newAllocator(t)
	date := mustDate(t, 2025, time.June, 5)
	lineID := kernel.NewUUID()
	otherOrder := kernel.NewUUID()

	t.Run("free slot does not conflict", func(t *testing.T) {
		conflict, holders, err := allocator.ProbeSlot(date, lineID, dec("8"), nil, dec("8"))
		require.NoError(t, err)
		assert.False(t, conflict)
		assert.Empty(t, holders)
	})

	t.Run("over-committed slot conflicts and names holders", func(t *testing.T) {
		committed := []*planning.Allocation{
			newCell(t, otherOrder, lineID, date, "6"),
		}

		conflict, holders, err := allocator.ProbeSlot(date, lineID, dec("4"), committed, dec("8"))
		require.NoError(t, err)
		assert.True(t, conflict)
		require.Len(t, holders, 1)
		assert.True(t, holders[0].IsEqual(otherOrder))
	})

	t.Run("other dates and lines do not count", func(t *testing.T) {
		committed := []*planning.Allocation{
			newCell(t, otherOrder, kernel.NewUUID(), date, "8"),
			newCell(t, otherOrder, lineID, date.AddDays(1), "8"),
		}

		conflict, holders, err := allocator.ProbeSlot(date, lineID, dec("8"), committed, dec("8"))
		require.NoError(t, err)
		assert.False(t, conflict)
		assert.Empty(t, holders)
	})

	t.Run("removed allocations do not count", func(t *testing.T) {
		removed := newCell(t, otherOrder, lineID, date, "8")
		require.NoError(t, removed.Remove())

		conflict, _, err := allocator.ProbeSlot(date, lineID, dec("8"),
			[]*planning.Allocation{removed}, dec("8"))
		require.NoError(t, err)
		assert.False(t, conflict)
	})
}

func TestDetectConflicts(t *testing.T) {
	allocator := newAllocator(t)
	date := mustDate(t, 2025, time.June, 5)
	lineID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	otherOrder := kernel.NewUUID()
	capacities := map[kernel.UUID]decimal.Decimal{lineID: dec("8")}

	t.Run("fitting plan has no conflicts", func(t *testing.T) {
		proposed := []*planning.Allocation{newCell(t, orderID, lineID, date, "4")}
		committed := []*planning.Allocation{newCell(t, otherOrder, lineID, date, "4")}

		details, err := allocator.DetectConflicts(proposed, committed, capacities)
		require.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("over-committed slot is reported with its holders", func(t *testing.T) {
		proposed := []*planning.Allocation{newCell(t, orderID, lineID, date, "5")}
		committed := []*planning.Allocation{newCell(t, otherOrder, lineID, date, "4")}

		details, err := allocator.DetectConflicts(proposed, committed, capacities)
		require.NoError(t, err)

		require.Len(t, details, 1)
		assert.Equal(t, "2025-06-05", details[0].Date)
		assert.Equal(t, lineID.String(), details[0].WorkLine)
		assert.Equal(t, []string{otherOrder.String()}, details[0].Orders)
	})

	t.Run("own committed cells are replaced, not conflicting", func(t *testing.T) {
		proposed := []*planning.Allocation{newCell(t, orderID, lineID, date, "8")}
		committed := []*planning.Allocation{newCell(t, orderID, lineID, date, "8")}

		details, err := allocator.DetectConflicts(proposed, committed, capacities)
		require.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("conflicts are ordered by date", func(t *testing.T) {
		later := date.AddDays(2)
		proposed := []*planning.Allocation{
			newCell(t, orderID, lineID, later, "5"),
			newCell(t, orderID, lineID, date, "5"),
		}
		committed := []*planning.Allocation{
			newCell(t, otherOrder, lineID, date, "4"),
			newCell(t, otherOrder, lineID, later, "4"),
		}

		details, err := allocator.DetectConflicts(proposed, committed, capacities)
		require.NoError(t, err)

		require.Len(t, details, 2)
		assert.Equal(t, "2025-06-05", details[0].Date)
		assert.Equal(t, "2025-06-07", details[1].Date)
	})

	t.Run("unknown work line is an error", func(t *testing.T) {
		proposed := []*planning.Allocation{newCell(t, orderID, kernel.NewUUID(), date, "5")}

		_, err := allocator.DetectConflicts(proposed, nil, capacities)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
