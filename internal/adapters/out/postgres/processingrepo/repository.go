package processingrepo

import (
	"context"
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/processing"
	"produzione/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProcessingRepository implements ProcessingRepository using GORM.
type GormProcessingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProcessingRepository creates a new GORM processing repository.
func NewGormProcessingRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessingRepository {
	return &GormProcessingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new processing event to the database.
func (r *GormProcessingRepository) Add(ctx context.Context, event *processing.Processing) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// Update saves an existing event; in practice only removal mutates one.
func (r *GormProcessingRepository) Update(ctx context.Context, event *processing.Processing) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	result := r.db.WithContext(ctx).Model(&ProcessingDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("processing", event.ID().String())
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// Get retrieves a processing event by ID.
func (r *GormProcessingRepository) Get(ctx context.Context, id kernel.UUID) (*processing.Processing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("processing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the events of one order ordered by declaration time.
func (r *GormProcessingRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
	includeRemoved bool,
) ([]*processing.Processing, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes())
	if !includeRemoved {
		query = query.Where("removed = false")
	}

	var dtos []ProcessingDTO
	if err := query.Order("recorded_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]*processing.Processing, 0, len(dtos))
	for _, dto := range dtos {
		event, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		events = append(events, event)
	}

	return events, nil
}

// ReconciledQuantity sums the order's active events in the database.
// This is the figure lifecycle decisions run on; the order row's counter
// is only a cache of it.
func (r *GormProcessingRepository) ReconciledQuantity(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity), 0)
		FROM processings
		WHERE order_id = ? AND removed = false
	`, orderID.Bytes()).Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
