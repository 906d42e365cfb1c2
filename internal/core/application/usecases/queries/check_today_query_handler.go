package queries

import (
	"context"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckTodayQueryHandler runs the slot conflict probe against the live
// grid. The committed hours come straight from the active allocation rows;
// the capacity from the work line catalog.
type CheckTodayQueryHandler struct {
	db *gorm.DB
}

// NewCheckTodayQueryHandler creates a handler for conflict probe queries.
func NewCheckTodayQueryHandler(db *gorm.DB) CheckTodayQueryHandler {
	return CheckTodayQueryHandler{db: db}
}

// Handle executes the probe.
// An unknown work line surfaces as ObjectNotFoundError.
func (h CheckTodayQueryHandler) Handle(
	ctx context.Context,
	query CheckTodayQuery,
) (CheckTodayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckTodayQueryResponse{}, err
	}

	capacity, err := h.lineCapacity(ctx, query.WorkLineID())
	if err != nil {
		return CheckTodayQueryResponse{}, err
	}

	committed, holders, err := h.slotLoad(ctx, query)
	if err != nil {
		return CheckTodayQueryResponse{}, err
	}

	return CheckTodayQueryResponse{
		Conflict:  committed.Add(query.AdditionalHours()).GreaterThan(capacity),
		Committed: committed,
		Capacity:  capacity,
		Holders:   holders,
	}, nil
}

func (h CheckTodayQueryHandler) lineCapacity(ctx context.Context, workLineID kernel.UUID) (decimal.Decimal, error) {
	var capacity decimal.Decimal

	result := h.db.WithContext(ctx).Raw(`
		SELECT daily_capacity FROM work_lines WHERE id = ?
	`, workLineID.String()).Scan(&capacity)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, errs.NewObjectNotFoundError("work line", workLineID.String())
	}

	return capacity, nil
}

func (h CheckTodayQueryHandler) slotLoad(
	ctx context.Context,
	query CheckTodayQuery,
) (decimal.Decimal, []kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, morning_hours + afternoon_hours + night_hours
		FROM planning_allocations
		WHERE date = ? AND work_line_id = ? AND removed = false
		ORDER BY order_id
	`, query.Date().Time(), query.WorkLineID().String()).Rows()
	if err != nil {
		return decimal.Zero, nil, err
	}
	defer rows.Close()

	committed := decimal.Zero
	holders := make([]kernel.UUID, 0)
	seen := make(map[kernel.UUID]bool)

	for rows.Next() {
		var orderID uuid.UUID
		var hours decimal.Decimal

		if err = rows.Scan(&orderID, &hours); err != nil {
			return decimal.Zero, nil, err
		}

		holder, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return decimal.Zero, nil, idErr
		}

		committed = committed.Add(hours)
		if !seen[holder] {
			holders = append(holders, holder)
			seen[holder] = true
		}
	}

	return committed, holders, rows.Err()
}
