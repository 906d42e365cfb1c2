package commands

import (
	"context"

	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/sequence"
	"produzione/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Reserves the next production number and creates the order in Pianificato
// status within a single transaction, so a rolled-back creation leaves no
// gap in the sequence.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.CacheNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	notifier ports.CacheNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
// Issues the production number from the sequence generator and persists the
// new order; both commit or roll back together. Under heavy concurrent
// creation the sequence generator may return ContentionError, which the
// caller can retry.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productionNumber, err := uow.SequenceGenerator().NextCode(ctx, sequence.ProductionNumbers())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		productionNumber,
		cmd.ArticleID(),
		cmd.Quantity(),
		cmd.DeliveryDate(),
		cmd.StartDate(),
		cmd.LineNumber(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	ports.InvalidateOrderCaches(ctx, h.notifier)
	return nil
}
