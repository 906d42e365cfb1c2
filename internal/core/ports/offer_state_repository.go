package ports

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/offerstate"
)

// OfferOrderStateRepository defines the persistence contract for the
// configurable offer/order state catalog.
type OfferOrderStateRepository interface {
	// Add persists a new state definition. The resulting catalog must
	// still satisfy offerstate.ValidateCatalog.
	Add(ctx context.Context, state *offerstate.OfferOrderState) error

	// Update persists changes to an existing state definition.
	Update(ctx context.Context, state *offerstate.OfferOrderState) error

	// Get retrieves a state definition by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offerstate.OfferOrderState, error)

	// GetAll retrieves the catalog ordered by sorting. Removed rows are
	// included only when includeRemoved is set.
	GetAll(ctx context.Context, includeRemoved bool) ([]*offerstate.OfferOrderState, error)
}
