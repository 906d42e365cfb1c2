package queries

import (
	"context"
	"time"

	"produzione/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPlanningDataQueryHandler retrieves the scheduling board from the
// database. Uses direct SQL for read performance; removed rows are
// filtered out at the query level.
type GetPlanningDataQueryHandler struct {
	db *gorm.DB
}

// NewGetPlanningDataQueryHandler creates a handler for planning board queries.
// Requires a GORM database connection for query execution.
func NewGetPlanningDataQueryHandler(db *gorm.DB) GetPlanningDataQueryHandler {
	return GetPlanningDataQueryHandler{db: db}
}

// Handle executes the query for the requested window.
// Returns the orders holding active cells in the window, the cells
// themselves, and the cached per-date summaries.
func (h GetPlanningDataQueryHandler) Handle(
	ctx context.Context,
	query GetPlanningDataQuery,
) (GetPlanningDataQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlanningDataQueryResponse{}, err
	}

	response := GetPlanningDataQueryResponse{
		Orders:    make([]PlanningOrderResponse, 0),
		Cells:     make([]PlanningCellResponse, 0),
		Summaries: make([]PlanningSummaryResponse, 0),
	}

	if err := h.loadOrders(ctx, query, &response); err != nil {
		return GetPlanningDataQueryResponse{}, err
	}
	if err := h.loadCells(ctx, query, &response); err != nil {
		return GetPlanningDataQueryResponse{}, err
	}
	if err := h.loadSummaries(ctx, query, &response); err != nil {
		return GetPlanningDataQueryResponse{}, err
	}

	return response, nil
}

func (h GetPlanningDataQueryHandler) loadOrders(
	ctx context.Context,
	query GetPlanningDataQuery,
	response *GetPlanningDataQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.production_number,
			o.article_id,
			o.quantity,
			o.worked_quantity,
			o.delivery_date,
			o.start_date,
			o.status,
			o.motivazione
		FROM orders o
		WHERE o.removed = false
		  AND o.id IN (
			SELECT DISTINCT order_id
			FROM planning_allocations
			WHERE date BETWEEN ? AND ? AND removed = false
		  )
		ORDER BY o.production_number
	`, query.From().Time(), query.To().Time()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp PlanningOrderResponse
		var id, articleID uuid.UUID
		var deliveryDate, startDate time.Time
		var status int

		err = rows.Scan(
			&id,
			&orderResp.ProductionNumber,
			&articleID,
			&orderResp.Quantity,
			&orderResp.WorkedQuantity,
			&deliveryDate,
			&startDate,
			&status,
			&orderResp.Motivazione,
		)
		if err != nil {
			return err
		}

		orderResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}
		orderResp.ArticleID, err = kernel.UUIDFromBytes(articleID[:])
		if err != nil {
			return err
		}
		orderResp.DeliveryDate = kernel.DateFromTime(deliveryDate)
		orderResp.StartDate = kernel.DateFromTime(startDate)
		orderResp.Status, err = statusName(status)
		if err != nil {
			return err
		}

		response.Orders = append(response.Orders, orderResp)
	}

	return rows.Err()
}

func (h GetPlanningDataQueryHandler) loadCells(
	ctx context.Context,
	query GetPlanningDataQuery,
	response *GetPlanningDataQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			work_line_id,
			date,
			morning_hours,
			afternoon_hours,
			night_hours,
			forced
		FROM planning_allocations
		WHERE date BETWEEN ? AND ? AND removed = false
		ORDER BY date, work_line_id
	`, query.From().Time(), query.To().Time()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cell PlanningCellResponse
		var orderID, workLineID uuid.UUID
		var date time.Time

		err = rows.Scan(
			&orderID,
			&workLineID,
			&date,
			&cell.Morning,
			&cell.Afternoon,
			&cell.Night,
			&cell.Forced,
		)
		if err != nil {
			return err
		}

		cell.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return err
		}
		cell.WorkLineID, err = kernel.UUIDFromBytes(workLineID[:])
		if err != nil {
			return err
		}
		cell.Date = kernel.DateFromTime(date)

		response.Cells = append(response.Cells, cell)
	}

	return rows.Err()
}

func (h GetPlanningDataQueryHandler) loadSummaries(
	ctx context.Context,
	query GetPlanningDataQuery,
	response *GetPlanningDataQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT date, summary_type, hours
		FROM planning_summaries
		WHERE date BETWEEN ? AND ? AND removed = false
		ORDER BY date, summary_type
	`, query.From().Time(), query.To().Time()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var summary PlanningSummaryResponse
		var date time.Time
		var hours decimal.Decimal

		if err = rows.Scan(&date, &summary.Type, &hours); err != nil {
			return err
		}

		summary.Date = kernel.DateFromTime(date)
		summary.Hours = hours
		response.Summaries = append(response.Summaries, summary)
	}

	return rows.Err()
}
