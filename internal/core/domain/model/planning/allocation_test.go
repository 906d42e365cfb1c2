package planning_test

import (
	"testing"
	"time"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, year int, month time.Month, day int) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(year, month, day)
	require.NoError(t, err)
	return d
}

func mustHours(t *testing.T, morning, afternoon, night string) planning.Hours {
	t.Helper()
	h, err := planning.NewHours(dec(morning), dec(afternoon), dec(night))
	require.NoError(t, err)
	return h
}

func TestNewAllocation(t *testing.T) {
	t.Run("creates an active cell", func(t *testing.T) {
		a, err := planning.NewAllocation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustDate(t, 2025, time.June, 5),
			mustHours(t, "4", "4", "0"),
		)

		require.NoError(t, err)
		assert.Equal(t, kernel.StateActive, a.State())
		assert.False(t, a.Forced())
		assert.True(t, a.Hours().Total().Equal(dec("8")))
	})

	t.Run("rejects zero value identifiers", func(t *testing.T) {
		_, err := planning.NewAllocation(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			mustDate(t, 2025, time.June, 5), planning.ZeroHours(),
		)
		require.Error(t, err)

		_, err = planning.NewAllocation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.Date{}, planning.ZeroHours(),
		)
		require.Error(t, err)
	})
}

func TestAllocationMarkForcedAndRemove(t *testing.T) {
	a, err := planning.NewAllocation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustDate(t, 2025, time.June, 5), mustHours(t, "8", "0", "0"),
	)
	require.NoError(t, err)

	require.NoError(t, a.MarkForced())
	assert.True(t, a.Forced())

	require.NoError(t, a.Remove())
	assert.Equal(t, kernel.StateRemoved, a.State())

	require.ErrorIs(t, a.Remove(), planning.ErrAllocationIsRemoved)
	require.ErrorIs(t, a.MarkForced(), planning.ErrAllocationIsRemoved)
}

func TestAllocationValidate(t *testing.T) {
	var a planning.Allocation
	require.ErrorIs(t, a.Validate(), planning.ErrAllocationIsNotConstructed)
}

func TestComputeSummaries(t *testing.T) {
	date := mustDate(t, 2025, time.June, 5)
	otherDate := mustDate(t, 2025, time.June, 6)

	newCell := func(d kernel.Date, morning, afternoon, night string) *planning.Allocation {
		a, err := planning.NewAllocation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			d, mustHours(t, morning, afternoon, night),
		)
		require.NoError(t, err)
		return a
	}

	removed := newCell(date, "5", "0", "0")
	require.NoError(t, removed.Remove())

	cells := []*planning.Allocation{
		newCell(date, "4", "2", "0"),
		newCell(date, "1.5", "0", "1"),
		newCell(otherDate, "8", "0", "0"),
		removed,
	}

	totals := planning.ComputeSummaries(date, cells)

	assert.True(t, totals[planning.SummaryDailyTotal].Equal(dec("8.5")))
	assert.True(t, totals[planning.SummaryMorning].Equal(dec("5.5")))
	assert.True(t, totals[planning.SummaryAfternoon].Equal(dec("2")))
	assert.True(t, totals[planning.SummaryNight].Equal(dec("1")))
}

func TestNewSummary(t *testing.T) {
	t.Run("valid summary", func(t *testing.T) {
		s, err := planning.NewSummary(
			kernel.NewUUID(), mustDate(t, 2025, time.June, 5),
			planning.SummaryDailyTotal, dec("12.5"),
		)
		require.NoError(t, err)
		assert.Equal(t, planning.SummaryDailyTotal, s.Type())
		assert.True(t, s.Hours().Equal(dec("12.5")))
	})

	t.Run("rejects negative hours", func(t *testing.T) {
		_, err := planning.NewSummary(
			kernel.NewUUID(), mustDate(t, 2025, time.June, 5),
			planning.SummaryDailyTotal, dec("-1"),
		)
		require.Error(t, err)
	})

	t.Run("rejects an undefined type", func(t *testing.T) {
		_, err := planning.NewSummary(
			kernel.NewUUID(), mustDate(t, 2025, time.June, 5),
			planning.SummaryType(9), decimal.Zero,
		)
		require.Error(t, err)
	})
}
