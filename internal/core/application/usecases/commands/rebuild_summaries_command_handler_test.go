package commands_test

import (
	"context"
	"errors"
	"testing"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRebuildSummariesCommandHandler_Handle_CoversEveryDayOfTheWindow(t *testing.T) {
	ctx := context.Background()

	from := testDate(t, 2026, 10, 1)
	to := testDate(t, 2026, 10, 2)
	lineID := kernel.NewUUID()

	// One cell on the first day; the second day has no cells and must
	// still get its zero rows.
	cell, err := planning.NewAllocation(
		kernel.NewUUID(), kernel.NewUUID(), lineID, from, mustHours(t, "6"))
	require.NoError(t, err)

	planningRepo := new(MockPlanningRepository)
	uow := new(MockPlanningUoW)
	factory := new(MockPlanningUoWFactory)

	var written []*planning.Summary
	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PlanningRepository").Return(planningRepo)
	planningRepo.On("GetAllocationsByDateRange", ctx, from, to, false).
		Return([]*planning.Allocation{cell}, nil)
	planningRepo.On("ReplaceSummaries", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]*planning.Summary)
		}).
		Return(nil)
	uow.On("Commit", ctx).Return(nil)

	cmd, err := commands.NewRebuildSummariesCommand(from, to)
	require.NoError(t, err)

	handler := commands.NewRebuildSummariesCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	// Two dates, four summary types each.
	require.Len(t, written, 8)

	totals := make(map[string]string)
	for _, summary := range written {
		totals[summary.Date().String()+"/"+summary.Type().String()] = summary.Hours().String()
	}
	assert.Equal(t, "6", totals["2026-10-01/DAILY_TOTAL"])
	assert.Equal(t, "0", totals["2026-10-02/DAILY_TOTAL"])

	planningRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRebuildSummariesCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	beginErr := errors.New("connection refused")

	uow := new(MockPlanningUoW)
	factory := new(MockPlanningUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(beginErr)

	cmd, err := commands.NewRebuildSummariesCommand(testDate(t, 2026, 10, 1), testDate(t, 2026, 10, 2))
	require.NoError(t, err)

	handler := commands.NewRebuildSummariesCommandHandler(factory)
	require.ErrorIs(t, handler.Handle(ctx, cmd), beginErr)
}

func TestNewRebuildSummariesCommand_RejectsInvertedWindow(t *testing.T) {
	_, err := commands.NewRebuildSummariesCommand(testDate(t, 2026, 10, 2), testDate(t, 2026, 10, 1))
	require.Error(t, err)
}

func TestRebuildSummariesCommandHandler_Handle_RejectsUnconstructedCommand(t *testing.T) {
	handler := commands.NewRebuildSummariesCommandHandler(new(MockPlanningUoWFactory))

	err := handler.Handle(context.Background(), commands.RebuildSummariesCommand{})
	require.ErrorIs(t, err, commands.ErrRebuildSummariesCommandIsNotConstructed)
}
