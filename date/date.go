// Package date provides the calendar-date value type used throughout the
// pricing core, plus the arithmetic spec §4.1 requires: month/year addition
// with end-of-month clamping, exact day differences, and parsing.
//
// Grounded on the teacher's utils/dates.go (DateParser, AddMonth, Days),
// generalized to a proper value type with AddYears clamping (Feb 29) and
// JSON round-trip.
package date

import (
	"fmt"
	"sort"
	"time"
)

// Date is an immutable Gregorian calendar date with no time-of-day
// component. It wraps time.Time truncated to midnight UTC so comparisons
// and arithmetic are exact.
type Date struct {
	t time.Time
}

// New builds a Date from year/month/day, normalizing to midnight UTC.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

const layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date.Parse: %w", err)
	}
	return Date{t: t}, nil
}

// MustParse parses s, panicking on error. Intended for package-level
// fixtures and tests, not for untrusted input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string { return d.t.Format(layout) }

// Time returns the underlying time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0, or 1 as d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	default:
		return 0
	}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysBetween returns the exact integer day count from d to o (o - d).
func DaysBetween(d, o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n months, preserving day-of-month when legal and otherwise
// clamping to the last day of the target month (e.g. Jan 31 + 1mo = Feb 28/29).
func (d Date) AddMonths(n int) Date {
	y, m, day := d.t.Date()
	totalMonths := int(m) - 1 + n
	targetYear := y + totalMonths/12
	targetMonth := totalMonths % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}
	dim := daysInMonth(targetYear, time.Month(targetMonth+1))
	if day > dim {
		day = dim
	}
	return New(targetYear, time.Month(targetMonth+1), day)
}

// AddYears adds n years, clamping Feb 29 to Feb 28 when the target year is
// not a leap year.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// IsEndOfMonth reports whether d is the last calendar day of its month.
func (d Date) IsEndOfMonth() bool {
	return d.Day() == daysInMonth(d.Year(), d.Month())
}

// EndOfMonth returns the last calendar day of d's month.
func (d Date) EndOfMonth() Date {
	return New(d.Year(), d.Month(), daysInMonth(d.Year(), d.Month()))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("date.UnmarshalJSON: invalid date %q", b)
	}
	parsed, err := Parse(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Sort sorts dates in ascending order, in place.
func Sort(dates []Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}
