package planning

import (
	"fmt"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SummaryType names one cached aggregate over a planning date: the daily
// total plus one entry per shift.
type SummaryType int

const (
	// SummaryDailyTotal caches the total hours planned on a date.
	SummaryDailyTotal SummaryType = iota

	// SummaryMorning caches the morning shift hours on a date.
	SummaryMorning

	// SummaryAfternoon caches the afternoon shift hours on a date.
	SummaryAfternoon

	// SummaryNight caches the night shift hours on a date.
	SummaryNight
)

// AllSummaryTypes lists every summary type, in recomputation order.
func AllSummaryTypes() []SummaryType {
	return []SummaryType{SummaryDailyTotal, SummaryMorning, SummaryAfternoon, SummaryNight}
}

// String returns the persisted name of the summary type.
func (t SummaryType) String() string {
	switch t {
	case SummaryDailyTotal:
		return "DAILY_TOTAL"
	case SummaryMorning:
		return "MORNING"
	case SummaryAfternoon:
		return "AFTERNOON"
	case SummaryNight:
		return "NIGHT"
	default:
		return "UNKNOWN"
	}
}

// Validate checks that the summary type is one of the defined values.
func (t SummaryType) Validate() error {
	if t < SummaryDailyTotal || t > SummaryNight {
		return errs.NewValueIsInvalidErrorWithCause("summary type",
			fmt.Errorf("%d is not a valid summary type", t))
	}
	return nil
}

// Summary is a derived, cached aggregate row: the hours of one summary
// type on one date across all active allocations. Summaries exist to spare
// the dashboards a grid recomputation; they are rewritten inside the same
// transaction as any allocation change that touches their date.
type Summary struct {
	id          kernel.UUID
	date        kernel.Date
	summaryType SummaryType
	hours       decimal.Decimal
	state       kernel.EntityState

	isConstructed bool
}

// NewSummary creates a summary row with validation.
func NewSummary(
	id kernel.UUID,
	date kernel.Date,
	summaryType SummaryType,
	hours decimal.Decimal,
) (*Summary, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := date.Validate(); err != nil {
		return nil, err
	}
	if err := summaryType.Validate(); err != nil {
		return nil, err
	}
	if hours.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("summary hours",
			fmt.Errorf("%s is negative", hours))
	}

	return &Summary{
		id:            id,
		date:          date,
		summaryType:   summaryType,
		hours:         hours,
		state:         kernel.StateActive,
		isConstructed: true,
	}, nil
}

// RestoreSummary reconstructs a summary row from persistence.
func RestoreSummary(
	id kernel.UUID,
	date kernel.Date,
	summaryType SummaryType,
	hours decimal.Decimal,
	state kernel.EntityState,
) (*Summary, error) {
	s, err := NewSummary(id, date, summaryType, hours)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// Validate ensures the Summary was properly constructed.
func (s *Summary) Validate() error {
	if s == nil || !s.isConstructed {
		return errs.NewValueIsRequiredError("Summary must be created via NewSummary or RestoreSummary")
	}
	return nil
}

// ID returns the summary row identifier.
func (s *Summary) ID() kernel.UUID {
	return s.id
}

// Date returns the summarized date.
func (s *Summary) Date() kernel.Date {
	return s.date
}

// Type returns the summary type.
func (s *Summary) Type() SummaryType {
	return s.summaryType
}

// Hours returns the cached aggregate hours.
func (s *Summary) Hours() decimal.Decimal {
	return s.hours
}

// State returns the logical-removal state.
func (s *Summary) State() kernel.EntityState {
	return s.state
}

// ComputeSummaries derives the cached aggregates for one date from the
// active allocations falling on it. Removed allocations and allocations on
// other dates contribute nothing.
func ComputeSummaries(date kernel.Date, allocations []*Allocation) map[SummaryType]decimal.Decimal {
	totals := map[SummaryType]decimal.Decimal{
		SummaryDailyTotal: decimal.Zero,
		SummaryMorning:    decimal.Zero,
		SummaryAfternoon:  decimal.Zero,
		SummaryNight:      decimal.Zero,
	}

	for _, a := range allocations {
		if a.State().IsRemoved() || !a.Date().IsEqual(date) {
			continue
		}
		h := a.Hours()
		totals[SummaryDailyTotal] = totals[SummaryDailyTotal].Add(h.Total())
		totals[SummaryMorning] = totals[SummaryMorning].Add(h.Morning())
		totals[SummaryAfternoon] = totals[SummaryAfternoon].Add(h.Afternoon())
		totals[SummaryNight] = totals[SummaryNight].Add(h.Night())
	}

	return totals
}
