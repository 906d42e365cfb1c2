package kernel

import (
	"time"

	"produzione/internal/pkg/errs"
)

// ErrDateIsNotConstructed indicates that a Date was not initialized through
// one of the constructor functions.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateFromTime, or DateFromString")

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a value object representing a calendar day without a time
// component. Planning cells and summaries are keyed by Date; two dates are
// equal when they name the same day, regardless of the time zone the
// source timestamp carried.
//
// The zero value is invalid; use NewDate, DateFromTime, or DateFromString.
// Date is immutable and safe for concurrent use.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month and day.
// Returns an error if the components do not name a real calendar day
// (for example February 30th).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidError("date")
	}
	return Date{t: t}, nil
}

// DateFromTime truncates a timestamp to its calendar day.
func DateFromTime(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateFromString parses a Date from its "YYYY-MM-DD" representation.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return Date{t: t}, nil
}

// String returns the "YYYY-MM-DD" representation.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time returns the date as a UTC midnight timestamp for persistence.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date shifted by the given number of days.
// Negative values shift backwards.
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsEqual compares two dates for equality by calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Validate returns ErrDateIsNotConstructed for the zero value, nil otherwise.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
