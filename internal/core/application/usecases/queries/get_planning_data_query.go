// Package queries contains read operations that do not modify system state.
// Implements the Query side of the CQRS pattern: handlers read the database
// directly with raw SQL and return flat read models, bypassing the
// aggregates and their invariant machinery.
package queries

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPlanningDataQueryIsNotConstructed = errors.New(
	"GetPlanningDataQuery must be created via NewGetPlanningDataQuery constructor",
)

// GetPlanningDataQuery retrieves the scheduling board for a date window:
// the orders planned in it, their grid cells, and the per-date summaries.
type GetPlanningDataQuery struct {
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

// NewGetPlanningDataQuery creates a planning board query with validation.
// The window is inclusive on both ends and must not be inverted.
func NewGetPlanningDataQuery(from, to kernel.Date) (GetPlanningDataQuery, error) {
	if err := from.Validate(); err != nil {
		return GetPlanningDataQuery{}, err
	}
	if err := to.Validate(); err != nil {
		return GetPlanningDataQuery{}, err
	}
	if to.Before(from) {
		return GetPlanningDataQuery{}, errors.New("window end precedes its start")
	}

	return GetPlanningDataQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPlanningDataQuery) Validate() error {
	return q.guard.Validate(ErrGetPlanningDataQueryIsNotConstructed)
}

// From returns the window start.
func (q GetPlanningDataQuery) From() kernel.Date {
	return q.from
}

// To returns the window end.
func (q GetPlanningDataQuery) To() kernel.Date {
	return q.to
}

// PlanningOrderResponse is the board's view of one planned order.
type PlanningOrderResponse struct {
	ID               kernel.UUID
	ProductionNumber string
	ArticleID        kernel.UUID
	Quantity         int
	WorkedQuantity   int
	DeliveryDate     kernel.Date
	StartDate        kernel.Date
	Status           string
	Motivazione      string
}

// PlanningCellResponse is one grid cell of the board.
type PlanningCellResponse struct {
	OrderID    kernel.UUID
	WorkLineID kernel.UUID
	Date       kernel.Date
	Morning    decimal.Decimal
	Afternoon  decimal.Decimal
	Night      decimal.Decimal
	Forced     bool
}

// PlanningSummaryResponse is one cached per-date aggregate row.
type PlanningSummaryResponse struct {
	Date  kernel.Date
	Type  string
	Hours decimal.Decimal
}

// GetPlanningDataQueryResponse is the complete board payload.
type GetPlanningDataQueryResponse struct {
	Orders    []PlanningOrderResponse
	Cells     []PlanningCellResponse
	Summaries []PlanningSummaryResponse
}
