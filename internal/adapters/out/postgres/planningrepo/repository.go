package planningrepo

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlanningRepository implements PlanningRepository using GORM.
type GormPlanningRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanningRepository creates a new GORM planning repository.
func NewGormPlanningRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanningRepository {
	return &GormPlanningRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAllocation saves a new grid cell to the database.
func (r *GormPlanningRepository) AddAllocation(ctx context.Context, cell *planning.Allocation) error {
	if err := cell.Validate(); err != nil {
		return err
	}

	dto := allocationFromDomain(cell)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(cell.ID(), cell)
	return nil
}

// UpdateAllocation saves an existing grid cell, including its removal flag.
func (r *GormPlanningRepository) UpdateAllocation(ctx context.Context, cell *planning.Allocation) error {
	if err := cell.Validate(); err != nil {
		return err
	}

	dto := allocationFromDomain(cell)
	result := r.db.WithContext(ctx).Model(&AllocationDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("allocation", cell.ID().String())
	}

	r.tracker.TrackAggregate(cell.ID(), cell)
	return nil
}

// GetAllocationsByOrder retrieves the cells of one order.
func (r *GormPlanningRepository) GetAllocationsByOrder(
	ctx context.Context,
	orderID kernel.UUID,
	includeRemoved bool,
) ([]*planning.Allocation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes())
	if !includeRemoved {
		query = query.Where("removed = false")
	}

	var dtos []AllocationDTO
	if err := query.Order("date, work_line_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toAllocations(dtos)
}

// GetAllocationsByDateRange retrieves every cell in [from, to].
func (r *GormPlanningRepository) GetAllocationsByDateRange(
	ctx context.Context,
	from, to kernel.Date,
	includeRemoved bool,
) ([]*planning.Allocation, error) {
	query := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", from.Time(), to.Time())
	if !includeRemoved {
		query = query.Where("removed = false")
	}

	var dtos []AllocationDTO
	if err := query.Order("date, work_line_id, order_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toAllocations(dtos)
}

// GetAllocationsBySlot retrieves the active cells of one (date, work line) slot.
func (r *GormPlanningRepository) GetAllocationsBySlot(
	ctx context.Context,
	date kernel.Date,
	workLineID kernel.UUID,
) ([]*planning.Allocation, error) {
	if err := workLineID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AllocationDTO
	err := r.db.WithContext(ctx).
		Where("date = ? AND work_line_id = ? AND removed = false", date.Time(), workLineID.Bytes()).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toAllocations(dtos)
}

// ReplaceSummaries rewrites the summary rows for the dates the given
// summaries cover. Old rows for those dates are dropped outright: summary
// rows are cache, not history.
func (r *GormPlanningRepository) ReplaceSummaries(ctx context.Context, summaries []*planning.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	dates := make([]any, 0)
	seen := make(map[string]bool)
	dtos := make([]SummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		if err := summary.Validate(); err != nil {
			return err
		}
		if !seen[summary.Date().String()] {
			dates = append(dates, summary.Date().Time())
			seen[summary.Date().String()] = true
		}
		dtos = append(dtos, summaryFromDomain(summary))
	}

	if err := r.db.WithContext(ctx).
		Where("date IN ?", dates).Delete(&SummaryDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetSummariesByDateRange retrieves the stored summaries for [from, to].
func (r *GormPlanningRepository) GetSummariesByDateRange(
	ctx context.Context,
	from, to kernel.Date,
) ([]*planning.Summary, error) {
	var dtos []SummaryDTO
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ? AND removed = false", from.Time(), to.Time()).
		Order("date, summary_type").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]*planning.Summary, 0, len(dtos))
	for _, dto := range dtos {
		summary, dtoErr := summaryToDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func toAllocations(dtos []AllocationDTO) ([]*planning.Allocation, error) {
	cells := make([]*planning.Allocation, 0, len(dtos))
	for _, dto := range dtos {
		cell, err := allocationToDomain(dto)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
