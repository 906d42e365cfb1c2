package queries

import (
	"context"

	"produzione/internal/core/domain/services"
	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculateHoursQueryHandler converts a quantity into labor hours at the
// effective throughput rate, rounded up to the scheduling granularity.
type CalculateHoursQueryHandler struct {
	db        *gorm.DB
	allocator services.PlanningAllocator
}

// NewCalculateHoursQueryHandler creates a handler for hour calculation queries.
func NewCalculateHoursQueryHandler(
	db *gorm.DB,
	allocator services.PlanningAllocator,
) CalculateHoursQueryHandler {
	return CalculateHoursQueryHandler{db: db, allocator: allocator}
}

// Handle executes the calculation.
// An unknown line or article surfaces as ObjectNotFoundError; a missing
// or zero rate as a validation error rather than a division by zero.
func (h CalculateHoursQueryHandler) Handle(
	ctx context.Context,
	query CalculateHoursQuery,
) (CalculateHoursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateHoursQueryResponse{}, err
	}

	rate, err := h.effectiveRate(ctx, query)
	if err != nil {
		return CalculateHoursQueryResponse{}, err
	}

	hours, err := h.allocator.CalculateHours(query.Quantity(), rate)
	if err != nil {
		return CalculateHoursQueryResponse{}, err
	}

	return CalculateHoursQueryResponse{Hours: hours, Rate: rate}, nil
}

func (h CalculateHoursQueryHandler) effectiveRate(
	ctx context.Context,
	query CalculateHoursQuery,
) (decimal.Decimal, error) {
	var lineRate decimal.Decimal

	result := h.db.WithContext(ctx).Raw(`
		SELECT throughput_rate FROM work_lines WHERE id = ?
	`, query.WorkLineID().String()).Scan(&lineRate)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, errs.NewObjectNotFoundError("work line", query.WorkLineID().String())
	}

	var articleRate decimal.NullDecimal

	result = h.db.WithContext(ctx).Raw(`
		SELECT throughput_rate FROM articles WHERE id = ?
	`, query.ArticleID().String()).Scan(&articleRate)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, errs.NewObjectNotFoundError("article", query.ArticleID().String())
	}

	if articleRate.Valid {
		return articleRate.Decimal, nil
	}
	return lineRate, nil
}
