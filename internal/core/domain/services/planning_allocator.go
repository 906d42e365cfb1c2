package services

import (
	"fmt"
	"sort"

	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultGranularityMinutes is the scheduling granularity used when no
// explicit configuration is supplied: hours round up to the quarter hour.
const DefaultGranularityMinutes = 15

var sixty = decimal.NewFromInt(60)

// DayLoad is one day of a spread plan: the hours an order claims on its
// start line for a single calendar day.
type DayLoad struct {
	Date  kernel.Date
	Hours decimal.Decimal
}

// PlanningAllocator is the domain service behind the scheduling grid. It
// converts quantities into labor hours at a work line's throughput rate,
// spreads an outstanding quantity across calendar days, and detects
// capacity conflicts between allocations competing for the same
// (date, work line) slot.
//
// Business rules:
//   - hours are quantity / throughput, rounded up to the scheduling
//     granularity; a zero or missing rate is an input error, never a
//     division producing infinity
//   - a slot conflicts when the hours of all active allocations on it,
//     plus the proposal, exceed the line's daily capacity
//   - allocations already owned by the proposing order never conflict
//     with it: saving a plan replaces them
//
// PlanningAllocator holds no I/O; callers load the committed grid and
// line capacities through the ports and pass them in.
type PlanningAllocator struct {
	granularityMinutes int
}

// NewPlanningAllocator creates an allocator with the given scheduling
// granularity in minutes.
func NewPlanningAllocator(granularityMinutes int) (PlanningAllocator, error) {
	if granularityMinutes <= 0 {
		return PlanningAllocator{}, errs.NewValueIsInvalidErrorWithCause("granularity",
			fmt.Errorf("%d minutes is not greater than 0", granularityMinutes))
	}
	return PlanningAllocator{granularityMinutes: granularityMinutes}, nil
}

// CalculateHours returns the labor hours needed to produce the given
// quantity at the given throughput rate (units per hour), rounded up to
// the scheduling granularity.
//
// Returns:
//   - zero hours for a zero quantity
//   - ValueIsInvalidError for a negative quantity or a rate that is zero,
//     negative, or missing
func (a PlanningAllocator) CalculateHours(quantity int, rate decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if !rate.IsPositive() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("throughput rate",
			fmt.Errorf("%s is not greater than 0", rate))
	}
	if quantity == 0 {
		return decimal.Zero, nil
	}

	raw := decimal.NewFromInt(int64(quantity)).Div(rate)
	step := decimal.NewFromInt(int64(a.granularityMinutes)).Div(sixty)
	return raw.Div(step).Ceil().Mul(step), nil
}

// SpreadQuantity distributes the hours needed for a quantity across
// consecutive calendar days starting at start, filling each day up to the
// line's daily capacity. The last day carries the remainder.
func (a PlanningAllocator) SpreadQuantity(
	quantity int,
	rate decimal.Decimal,
	dailyCapacity decimal.Decimal,
	start kernel.Date,
) ([]DayLoad, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if !dailyCapacity.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("daily capacity",
			fmt.Errorf("%s is not greater than 0", dailyCapacity))
	}

	total, err := a.CalculateHours(quantity, rate)
	if err != nil {
		return nil, err
	}

	loads := make([]DayLoad, 0)
	day := start
	for remaining := total; remaining.IsPositive(); day = day.AddDays(1) {
		h := decimal.Min(remaining, dailyCapacity)
		loads = append(loads, DayLoad{Date: day, Hours: h})
		remaining = remaining.Sub(h)
	}
	return loads, nil
}

// ProbeSlot is the conflict probe behind check-today: it reports whether
// adding additionalHours to the committed allocations on one
// (date, work line) slot would exceed the line's daily capacity, and
// which orders already hold the slot. It never mutates anything.
func (a PlanningAllocator) ProbeSlot(
	date kernel.Date,
	workLineID kernel.UUID,
	additionalHours decimal.Decimal,
	committed []*planning.Allocation,
	dailyCapacity decimal.Decimal,
) (bool, []kernel.UUID, error) {
	if !dailyCapacity.IsPositive() {
		return false, nil, errs.NewValueIsInvalidErrorWithCause("daily capacity",
			fmt.Errorf("%s is not greater than 0", dailyCapacity))
	}

	total := additionalHours
	holders := make([]kernel.UUID, 0)
	seen := make(map[kernel.UUID]bool)
	for _, c := range committed {
		if c.State().IsRemoved() || !c.Date().IsEqual(date) || !c.WorkLineID().IsEqual(workLineID) {
			continue
		}
		total = total.Add(c.Hours().Total())
		if !seen[c.OrderID()] {
			holders = append(holders, c.OrderID())
			seen[c.OrderID()] = true
		}
	}

	return total.GreaterThan(dailyCapacity), holders, nil
}

// DetectConflicts re-runs the conflict probe for every (date, work line)
// slot touched by a proposed plan against the committed grid. Committed
// allocations owned by a proposing order are skipped: the save replaces
// them. The returned details name every over-committed slot and the
// orders holding it, ordered by date then work line.
//
// An empty result means the plan fits.
func (a PlanningAllocator) DetectConflicts(
	proposed []*planning.Allocation,
	committed []*planning.Allocation,
	capacities map[kernel.UUID]decimal.Decimal,
) ([]errs.SchedulingConflictDetail, error) {
	type slot struct {
		date string
		line kernel.UUID
	}

	proposingOrders := make(map[kernel.UUID]bool)
	for _, p := range proposed {
		proposingOrders[p.OrderID()] = true
	}

	proposedHours := make(map[slot]decimal.Decimal)
	slotDates := make(map[slot]kernel.Date)
	for _, p := range proposed {
		if p.State().IsRemoved() {
			continue
		}
		s := slot{date: p.Date().String(), line: p.WorkLineID()}
		if _, ok := proposedHours[s]; !ok {
			proposedHours[s] = decimal.Zero
			slotDates[s] = p.Date()
		}
		proposedHours[s] = proposedHours[s].Add(p.Hours().Total())
	}

	details := make([]errs.SchedulingConflictDetail, 0)
	for s, hours := range proposedHours {
		capacity, ok := capacities[s.line]
		if !ok {
			return nil, errs.NewObjectNotFoundError("work line", s.line.String())
		}

		others := make([]*planning.Allocation, 0)
		for _, c := range committed {
			if proposingOrders[c.OrderID()] {
				continue
			}
			others = append(others, c)
		}

		conflict, holders, err := a.ProbeSlot(slotDates[s], s.line, hours, others, capacity)
		if err != nil {
			return nil, err
		}
		if !conflict {
			continue
		}

		orderRefs := make([]string, 0, len(holders))
		for _, h := range holders {
			orderRefs = append(orderRefs, h.String())
		}
		details = append(details, errs.SchedulingConflictDetail{
			Date:     s.date,
			WorkLine: s.line.String(),
			Orders:   orderRefs,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].Date != details[j].Date {
			return details[i].Date < details[j].Date
		}
		return details[i].WorkLine < details[j].WorkLine
	})
	return details, nil
}
