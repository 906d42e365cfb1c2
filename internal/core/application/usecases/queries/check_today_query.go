package queries

import (
	"errors"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCheckTodayQueryIsNotConstructed = errors.New(
	"CheckTodayQuery must be created via NewCheckTodayQuery constructor",
)

// CheckTodayQuery probes one (date, work line) slot: would adding the
// given hours exceed the line's daily capacity? The probe never mutates
// anything; it backs the planner's pre-save check.
type CheckTodayQuery struct {
	date            kernel.Date
	workLineID      kernel.UUID
	additionalHours decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCheckTodayQuery creates a conflict probe query with validation.
// Zero additional hours is legal: it asks whether the slot is already
// over capacity.
func NewCheckTodayQuery(
	date kernel.Date,
	workLineID kernel.UUID,
	additionalHours decimal.Decimal,
) (CheckTodayQuery, error) {
	if err := date.Validate(); err != nil {
		return CheckTodayQuery{}, err
	}
	if err := workLineID.Validate(); err != nil {
		return CheckTodayQuery{}, err
	}
	if additionalHours.IsNegative() {
		return CheckTodayQuery{}, errs.NewValueIsInvalidError("additional hours")
	}

	return CheckTodayQuery{
		date:            date,
		workLineID:      workLineID,
		additionalHours: additionalHours,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckTodayQuery) Validate() error {
	return q.guard.Validate(ErrCheckTodayQueryIsNotConstructed)
}

// Date returns the probed calendar day.
func (q CheckTodayQuery) Date() kernel.Date {
	return q.date
}

// WorkLineID returns the probed work line.
func (q CheckTodayQuery) WorkLineID() kernel.UUID {
	return q.workLineID
}

// AdditionalHours returns the hours the caller wants to add to the slot.
func (q CheckTodayQuery) AdditionalHours() decimal.Decimal {
	return q.additionalHours
}

// CheckTodayQueryResponse reports the probe outcome: the slot's committed
// hours, the line's capacity, whether the addition would conflict, and
// the orders already holding the slot.
type CheckTodayQueryResponse struct {
	Conflict  bool
	Committed decimal.Decimal
	Capacity  decimal.Decimal
	Holders   []kernel.UUID
}
