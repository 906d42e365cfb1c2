package commands_test

import (
	"testing"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	cmd, err := commands.NewRemoveOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &RecordingNotifier{}

	h := commands.NewRemoveOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, aggregate.State().IsRemoved())
	assert.Len(t, notifier.Invalidated, 24, "removal sweeps every scope and bucket")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_AlreadyRemoved(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.Pianificato)
	require.NoError(t, aggregate.Remove())
	cmd, err := commands.NewRemoveOrderCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	notifier := &RecordingNotifier{}

	h := commands.NewRemoveOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsRemoved)
	assert.Empty(t, notifier.Invalidated, "failed removals must not sweep caches")
}

func TestRemoveOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String()))

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemoveOrderCommandHandler(factory, &RecordingNotifier{})
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
