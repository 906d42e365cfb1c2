package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoredOrder(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "PRD000001", kernel.NewUUID(), 500,
		testDate(t, 2025, time.July, 15), testDate(t, 2025, time.July, 1), 1)
	require.NoError(t, err)

	steps := map[order.Status]func() error{
		order.InAllestimento: aggregate.StartPreparation,
		order.Lanciato:       aggregate.Launch,
		order.InAvanzamento:  aggregate.StartProgress,
	}
	for _, status := range []order.Status{order.InAllestimento, order.Lanciato, order.InAvanzamento} {
		if target < status {
			break
		}
		require.NoError(t, steps[status]())
	}
	return aggregate
}

func newStatusHandler(
	factory *MockProcessingUoWFactory, notifier *RecordingNotifier,
) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(factory, notifier, discardLogger())
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.InAllestimento, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	processingRepo := new(MockProcessingRepository)
	uow := new(MockProcessingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProcessingRepository").Return(processingRepo).Once(),
		processingRepo.On("ReconciledQuantity", mock.Anything, aggregate.ID()).Return(0, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &RecordingNotifier{}

	h := newStatusHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.InAllestimento, aggregate.Status())
	orderRepo.AssertExpectations(t)
	processingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SweepsCachesExactlyOnce(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.InAllestimento, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	processingRepo := new(MockProcessingRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProcessingRepository").Return(processingRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil)
	processingRepo.On("ReconciledQuantity", mock.Anything, aggregate.ID()).Return(0, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)
	notifier := &RecordingNotifier{}

	h := newStatusHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	// 6 scopes x 4 buckets, each exactly once.
	require.Len(t, notifier.Invalidated, 24)
	seen := make(map[string]int)
	for _, entry := range notifier.Invalidated {
		seen[entry]++
	}
	for entry, count := range seen {
		assert.Equal(t, 1, count, "entry %s swept %d times", entry, count)
	}
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Saldato, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	processingRepo := new(MockProcessingRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProcessingRepository").Return(processingRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	processingRepo.On("ReconciledQuantity", mock.Anything, aggregate.ID()).Return(0, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)
	notifier := &RecordingNotifier{}

	h := newStatusHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateTransitionInvalid)
	assert.Equal(t, order.Pianificato, aggregate.Status())
	assert.Empty(t, notifier.Invalidated, "failed transitions must not sweep caches")
}

func TestChangeOrderStatusCommandHandler_Handle_FulfillUsesReconciledSum(t *testing.T) {
	ctx := t.Context()

	t.Run("rejected while events do not cover the quantity", func(t *testing.T) {
		aggregate := newStoredOrder(t, order.InAvanzamento)
		cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Evaso, "")
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		processingRepo := new(MockProcessingRepository)
		uow := new(MockProcessingUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("ProcessingRepository").Return(processingRepo)
		uow.On("Rollback", ctx).Return(nil)
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		processingRepo.On("ReconciledQuantity", mock.Anything, aggregate.ID()).Return(499, nil)

		factory := new(MockProcessingUoWFactory)
		factory.On("Create").Return(uow)

		h := newStatusHandler(factory, &RecordingNotifier{})
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrStateTransitionInvalid)
		assert.Equal(t, order.InAvanzamento, aggregate.Status())
	})

	t.Run("fulfilled on the event sum even when the cache lags", func(t *testing.T) {
		aggregate := newStoredOrder(t, order.InAvanzamento)
		cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Evaso, "")
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		processingRepo := new(MockProcessingRepository)
		uow := new(MockProcessingUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("ProcessingRepository").Return(processingRepo)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil)
		// The cached counter is 0, but the event log says 500.
		processingRepo.On("ReconciledQuantity", mock.Anything, aggregate.ID()).Return(500, nil)

		factory := new(MockProcessingUoWFactory)
		factory.On("Create").Return(uow)

		h := newStatusHandler(factory, &RecordingNotifier{})
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Evaso, aggregate.Status())
		assert.True(t, aggregate.Autocontrollo())
		assert.Equal(t, 500, aggregate.WorkedQuantity())
	})
}

func TestChangeOrderStatusCommandHandler_Handle_RemovedOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	require.NoError(t, aggregate.Remove())
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.InAllestimento, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockProcessingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	factory := new(MockProcessingUoWFactory)
	factory.On("Create").Return(uow)

	h := newStatusHandler(factory, &RecordingNotifier{})
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsRemoved)
}

func TestNewChangeOrderStatusCommand_SuspendRequiresMotivazione(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Sospeso, "")
	require.ErrorIs(t, err, order.ErrMotivazioneIsRequired)

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Sospeso, "attrezzatura guasta")
	require.NoError(t, err)
	require.Equal(t, "attrezzatura guasta", cmd.Motivazione())
}
