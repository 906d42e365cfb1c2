// Package ports defines repository and gateway interfaces for the
// production domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for production order
// aggregates. Updates are guarded by the aggregate's version counter:
// a stale version fails the write instead of silently overwriting a
// concurrent change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns VersionIsInvalidError when the stored version no longer
	// matches the aggregate's; the caller should reload and retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including logically removed orders. Callers that must not act on
	// removed orders check the aggregate's state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByProductionNumber retrieves an order by its business code.
	// Removed orders are excluded; the business code identifies the
	// live order only.
	GetByProductionNumber(ctx context.Context, productionNumber string) (*order.Order, error)

	// GetAllActive retrieves every non-removed order whose status still
	// accepts scheduling (anything short of the terminal status).
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetHighestProductionSuffix returns the largest numeric suffix
	// among all issued production numbers with the given prefix,
	// including those of removed orders. Removed orders keep their
	// code reserved so the sequence never reissues it. Returns 0 when
	// no code has been issued yet.
	GetHighestProductionSuffix(ctx context.Context, prefix string) (int, error)
}
