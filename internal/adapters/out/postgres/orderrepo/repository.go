package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database with optimistic locking:
// the write only lands when the stored version still matches the
// aggregate's, and bumps it by one. A stale aggregate gets
// VersionIsInvalidError and must be reloaded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("stored row no longer at version %d", aggregate.Version()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, removed orders included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProductionNumber retrieves the live order carrying a business code.
func (r *GormOrderRepository) GetByProductionNumber(
	ctx context.Context,
	productionNumber string,
) (*order.Order, error) {
	if productionNumber == "" {
		return nil, errs.NewValueIsRequiredError("production number")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "production_number = ? AND removed = false", productionNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", productionNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every non-removed order short of the terminal status.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("production_number").
		Find(&dtos, "removed = false AND status < ?", order.Saldato).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetHighestProductionSuffix returns the largest numeric suffix issued
// under a prefix, removed orders included. The suffix is compared
// numerically: PRD1000000 outranks PRD999999 even though it sorts lower
// as text.
func (r *GormOrderRepository) GetHighestProductionSuffix(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		return 0, errs.NewValueIsRequiredError("prefix")
	}

	var highest int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX((substring(production_number from ?))::int), 0)
		FROM orders
		WHERE production_number LIKE ?
		  AND substring(production_number from ?) ~ '^[0-9]+$'
	`, len(prefix)+1, prefix+"%", len(prefix)+1).Scan(&highest).Error
	if err != nil {
		return 0, err
	}

	return highest, nil
}
