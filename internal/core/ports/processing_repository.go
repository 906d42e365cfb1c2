package ports

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/processing"
)

// ProcessingRepository defines the persistence contract for processing
// events. Events are append-only apart from logical removal; the sum of
// an order's active events is the authoritative worked quantity.
type ProcessingRepository interface {
	// Add persists a new processing event.
	Add(ctx context.Context, event *processing.Processing) error

	// Update persists changes to an existing event. In practice only
	// logical removal mutates an event.
	Update(ctx context.Context, event *processing.Processing) error

	// Get retrieves a processing event by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*processing.Processing, error)

	// GetByOrder retrieves the events of one order. Removed events are
	// included only when includeRemoved is set.
	GetByOrder(ctx context.Context, orderID kernel.UUID, includeRemoved bool) ([]*processing.Processing, error)

	// ReconciledQuantity returns the sum of the order's active events,
	// computed in storage. This, not the order's cached counter, is the
	// figure lifecycle decisions are made on.
	ReconciledQuantity(ctx context.Context, orderID kernel.UUID) (int, error)
}
