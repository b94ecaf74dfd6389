package calendar

import "time"

// BusinessDayConvention governs how a date that falls on a non-business day
// rolls onto a business day (spec §4.1).
type BusinessDayConvention string

const (
	// Following rolls forward to the next business day.
	Following BusinessDayConvention = "following"
	// ModifiedFollowing rolls forward unless that crosses into the next
	// calendar month, in which case it rolls backward instead.
	ModifiedFollowing BusinessDayConvention = "modified_following"
	// Preceding rolls backward to the previous business day.
	Preceding BusinessDayConvention = "preceding"
	// ModifiedPreceding rolls backward unless that crosses into the previous
	// calendar month, in which case it rolls forward instead.
	ModifiedPreceding BusinessDayConvention = "modified_preceding"
	// NoAdjustment leaves the date unchanged even if it is not a business day.
	NoAdjustment BusinessDayConvention = "unadjusted"
	// EndOfMonth moves to the last business day of the month when the
	// unadjusted date was itself the last calendar day of its month; any
	// other date is adjusted Modified Following.
	EndOfMonth BusinessDayConvention = "end_of_month"
)

// AdjustWithConvention rolls t onto a business day of cal per conv.
func AdjustWithConvention(cal CalendarID, t time.Time, conv BusinessDayConvention) time.Time {
	switch conv {
	case NoAdjustment:
		return t
	case Following:
		return NextBusinessDay(cal, t)
	case Preceding:
		return PreviousBusinessDay(cal, t)
	case ModifiedFollowing:
		adjusted := NextBusinessDay(cal, t)
		if adjusted.Month() != t.Month() {
			return PreviousBusinessDay(cal, t)
		}
		return adjusted
	case ModifiedPreceding:
		adjusted := PreviousBusinessDay(cal, t)
		if adjusted.Month() != t.Month() {
			return NextBusinessDay(cal, t)
		}
		return adjusted
	case EndOfMonth:
		if daysInMonth(t.Year(), t.Month()) == t.Day() {
			return LastBusinessDayOfMonth(cal, t)
		}
		return AdjustWithConvention(cal, t, ModifiedFollowing)
	default:
		return AdjustWithConvention(cal, t, ModifiedFollowing)
	}
}

// AdjustCalendar rolls t onto a business day of cal per conv, for callers
// holding a Calendar rather than a CalendarID (e.g. a JointCalendar).
func AdjustCalendar(cal Calendar, t time.Time, conv BusinessDayConvention) time.Time {
	next := func(d time.Time) time.Time {
		for !cal.IsBusinessDay(d) {
			d = d.AddDate(0, 0, 1)
		}
		return d
	}
	prev := func(d time.Time) time.Time {
		for !cal.IsBusinessDay(d) {
			d = d.AddDate(0, 0, -1)
		}
		return d
	}
	switch conv {
	case NoAdjustment:
		return t
	case Following:
		return next(t)
	case Preceding:
		return prev(t)
	case ModifiedPreceding:
		adjusted := prev(t)
		if adjusted.Month() != t.Month() {
			return next(t)
		}
		return adjusted
	case EndOfMonth:
		if daysInMonth(t.Year(), t.Month()) == t.Day() {
			nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
			return prev(nextMonth.AddDate(0, 0, -1))
		}
		fallthrough
	case ModifiedFollowing:
		fallthrough
	default:
		adjusted := next(t)
		if adjusted.Month() != t.Month() {
			return prev(t)
		}
		return adjusted
	}
}
