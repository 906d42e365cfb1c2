package queries_test

import (
	"testing"
	"time"

	"produzione/internal/core/application/usecases/queries"
	"produzione/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T, year int, month time.Month, day int) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(year, month, day)
	require.NoError(t, err)
	return d
}

func TestNewGetPlanningDataQuery(t *testing.T) {
	from := testDate(t, 2025, time.July, 1)
	to := testDate(t, 2025, time.July, 31)

	t.Run("valid window", func(t *testing.T) {
		q, err := queries.NewGetPlanningDataQuery(from, to)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("single day window", func(t *testing.T) {
		_, err := queries.NewGetPlanningDataQuery(from, from)
		require.NoError(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := queries.NewGetPlanningDataQuery(to, from)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var q queries.GetPlanningDataQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetPlanningDataQueryIsNotConstructed)
	})
}

func TestNewCheckTodayQuery(t *testing.T) {
	date := testDate(t, 2025, time.July, 3)

	t.Run("valid probe", func(t *testing.T) {
		q, err := queries.NewCheckTodayQuery(date, kernel.NewUUID(), decimal.RequireFromString("2.5"))
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("zero additional hours is legal", func(t *testing.T) {
		_, err := queries.NewCheckTodayQuery(date, kernel.NewUUID(), decimal.Zero)
		require.NoError(t, err)
	})

	t.Run("rejects negative hours", func(t *testing.T) {
		_, err := queries.NewCheckTodayQuery(date, kernel.NewUUID(), decimal.RequireFromString("-1"))
		require.Error(t, err)
	})

	t.Run("rejects invalid work line", func(t *testing.T) {
		_, err := queries.NewCheckTodayQuery(date, kernel.UUID{}, decimal.Zero)
		require.Error(t, err)
	})
}

func TestNewCalculateHoursQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		q, err := queries.NewCalculateHoursQuery(kernel.NewUUID(), kernel.NewUUID(), 1000)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.Equal(t, 1000, q.Quantity())
	})

	t.Run("zero quantity is legal", func(t *testing.T) {
		_, err := queries.NewCalculateHoursQuery(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.NoError(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := queries.NewCalculateHoursQuery(kernel.NewUUID(), kernel.NewUUID(), -1)
		require.Error(t, err)
	})
}
