package planning

import (
	"fmt"

	"produzione/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Hours is the structured hour value of one planning cell: the planned
// labor hours broken down per shift. Decimal arithmetic keeps capacity
// comparisons exact; binary floats would drift across repeated summary
// recomputation.
//
// Hours is an immutable value object; arithmetic returns new values.
type Hours struct {
	morning   decimal.Decimal
	afternoon decimal.Decimal
	night     decimal.Decimal
}

// NewHours creates an Hours value from its per-shift components.
// Each component must be zero or positive.
func NewHours(morning, afternoon, night decimal.Decimal) (Hours, error) {
	for _, h := range []decimal.Decimal{morning, afternoon, night} {
		if h.IsNegative() {
			return Hours{}, errs.NewValueIsInvalidErrorWithCause("hours",
				fmt.Errorf("%s is negative", h))
		}
	}
	return Hours{morning: morning, afternoon: afternoon, night: night}, nil
}

// ZeroHours returns an empty hour value.
func ZeroHours() Hours {
	return Hours{
		morning:   decimal.Zero,
		afternoon: decimal.Zero,
		night:     decimal.Zero,
	}
}

// MorningHours creates an Hours value assigned entirely to the morning
// shift, the default placement for single-shift lines.
func MorningHours(h decimal.Decimal) (Hours, error) {
	return NewHours(h, decimal.Zero, decimal.Zero)
}

// Morning returns the morning shift hours.
func (h Hours) Morning() decimal.Decimal {
	return h.morning
}

// Afternoon returns the afternoon shift hours.
func (h Hours) Afternoon() decimal.Decimal {
	return h.afternoon
}

// Night returns the night shift hours.
func (h Hours) Night() decimal.Decimal {
	return h.night
}

// Total returns the summed hours across all shifts.
func (h Hours) Total() decimal.Decimal {
	return h.morning.Add(h.afternoon).Add(h.night)
}

// Add returns the per-shift sum of two hour values.
func (h Hours) Add(other Hours) Hours {
	return Hours{
		morning:   h.morning.Add(other.morning),
		afternoon: h.afternoon.Add(other.afternoon),
		night:     h.night.Add(other.night),
	}
}

// IsZero reports whether no shift carries any hours.
func (h Hours) IsZero() bool {
	return h.Total().IsZero()
}

// IsEqual compares two hour values per shift.
func (h Hours) IsEqual(other Hours) bool {
	return h.morning.Equal(other.morning) &&
		h.afternoon.Equal(other.afternoon) &&
		h.night.Equal(other.night)
}

// String renders the breakdown for logs and conflict messages.
func (h Hours) String() string {
	return fmt.Sprintf("%s/%s/%s (tot %s)", h.morning, h.afternoon, h.night, h.Total())
}
