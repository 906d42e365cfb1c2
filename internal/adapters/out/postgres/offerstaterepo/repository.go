package offerstaterepo

import (
	"context"
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/offerstate"
	"produzione/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferOrderStateRepository implements OfferOrderStateRepository using GORM.
type GormOfferOrderStateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferOrderStateRepository creates a new GORM catalog repository.
func NewGormOfferOrderStateRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferOrderStateRepository {
	return &GormOfferOrderStateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog row to the database.
func (r *GormOfferOrderStateRepository) Add(ctx context.Context, state *offerstate.OfferOrderState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	dto := fromDomain(state)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(state.ID(), state)
	return nil
}

// Update saves an existing catalog row.
func (r *GormOfferOrderStateRepository) Update(ctx context.Context, state *offerstate.OfferOrderState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	dto := fromDomain(state)
	result := r.db.WithContext(ctx).Model(&OfferOrderStateDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offer order state", state.ID().String())
	}

	r.tracker.TrackAggregate(state.ID(), state)
	return nil
}

// Get retrieves a catalog row by ID.
func (r *GormOfferOrderStateRepository) Get(ctx context.Context, id kernel.UUID) (*offerstate.OfferOrderState, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferOrderStateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer order state", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the catalog ordered by sorting.
func (r *GormOfferOrderStateRepository) GetAll(
	ctx context.Context,
	includeRemoved bool,
) ([]*offerstate.OfferOrderState, error) {
	query := r.db.WithContext(ctx)
	if !includeRemoved {
		query = query.Where("removed = false")
	}

	var dtos []OfferOrderStateDTO
	if err := query.Order("sorting").Find(&dtos).Error; err != nil {
		return nil, err
	}

	states := make([]*offerstate.OfferOrderState, 0, len(dtos))
	for _, dto := range dtos {
		state, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		states = append(states, state)
	}

	return states, nil
}
