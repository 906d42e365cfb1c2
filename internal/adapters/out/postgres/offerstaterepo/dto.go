// Package offerstaterepo persists the configurable offer/order state
// catalog.
package offerstaterepo

import (
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/offerstate"

	"github.com/google/uuid"
)

// OfferOrderStateDTO represents the database structure for one catalog row.
type OfferOrderStateDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	Sorting    int       `gorm:"index"`
	Initial    bool
	Production bool
	Removed    bool `gorm:"index"`
}

// TableName specifies the database table name for catalog rows.
func (OfferOrderStateDTO) TableName() string {
	return "offer_order_states"
}

func fromDomain(state *offerstate.OfferOrderState) OfferOrderStateDTO {
	return OfferOrderStateDTO{
		ID:         state.ID().Bytes(),
		Name:       state.Name(),
		Sorting:    state.Sorting(),
		Initial:    state.Initial(),
		Production: state.Production(),
		Removed:    state.State().IsRemoved(),
	}
}

func toDomain(dto OfferOrderStateDTO) (*offerstate.OfferOrderState, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state := kernel.StateActive
	if dto.Removed {
		state = kernel.StateRemoved
	}

	return offerstate.RestoreOfferOrderState(id, dto.Name, dto.Sorting, dto.Initial, dto.Production, state)
}
