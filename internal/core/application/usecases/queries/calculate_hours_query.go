package queries

import (
	"errors"
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"
	"produzione/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculateHoursQueryIsNotConstructed = errors.New(
	"CalculateHoursQuery must be created via NewCalculateHoursQuery constructor",
)

// CalculateHoursQuery asks how many labor hours a quantity of an article
// needs on a work line. The article's throughput override, when present,
// wins over the line's rate.
type CalculateHoursQuery struct {
	articleID  kernel.UUID
	workLineID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewCalculateHoursQuery creates an hour calculation query with validation.
func NewCalculateHoursQuery(
	articleID kernel.UUID,
	workLineID kernel.UUID,
	quantity int,
) (CalculateHoursQuery, error) {
	if err := articleID.Validate(); err != nil {
		return CalculateHoursQuery{}, err
	}
	if err := workLineID.Validate(); err != nil {
		return CalculateHoursQuery{}, err
	}
	if quantity < 0 {
		return CalculateHoursQuery{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return CalculateHoursQuery{
		articleID:  articleID,
		workLineID: workLineID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateHoursQuery) Validate() error {
	return q.guard.Validate(ErrCalculateHoursQueryIsNotConstructed)
}

// ArticleID returns the produced article.
func (q CalculateHoursQuery) ArticleID() kernel.UUID {
	return q.articleID
}

// WorkLineID returns the producing work line.
func (q CalculateHoursQuery) WorkLineID() kernel.UUID {
	return q.workLineID
}

// Quantity returns the quantity to convert into hours.
func (q CalculateHoursQuery) Quantity() int {
	return q.quantity
}

// CalculateHoursQueryResponse carries the calculated hours and the
// effective throughput rate they were derived from.
type CalculateHoursQueryResponse struct {
	Hours decimal.Decimal
	Rate  decimal.Decimal
}
