package calendar_test

import (
	"testing"
	"time"

	"github.com/meenmo/molib/calendar"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessDayWeekend(t *testing.T) {
	sat := time.Date(2025, time.August, 2, 0, 0, 0, 0, time.UTC)
	assert.False(t, calendar.IsBusinessDay(calendar.WE, sat))
}

func TestTarget2GoodFriday2025(t *testing.T) {
	goodFriday := time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC)
	assert.False(t, calendar.IsBusinessDay(calendar.TARGET, goodFriday))
}

func TestSIFMANewYearObservedFriday(t *testing.T) {
	// Jan 1 2022 was a Saturday; observed New Year's Day rolls to Dec 31 2021 (Fri).
	observed := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.False(t, calendar.IsBusinessDay(calendar.FD, observed))
}

func TestAdjustModifiedFollowingStaysInMonth(t *testing.T) {
	// Aug 31 2025 is a Sunday; Modified Following must not cross into September.
	sunday := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)
	got := calendar.Adjust(calendar.WE, sunday)
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 29, got.Day())
}

func TestAddBusinessDaysNegative(t *testing.T) {
	fri := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	got := calendar.AddBusinessDays(calendar.WE, fri, -1)
	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, 31, got.Day())
}

func TestJointCalendarIntersection(t *testing.T) {
	joint := calendar.NewJointCalendar(calendar.AsCalendar(calendar.TARGET), calendar.AsCalendar(calendar.UK))
	goodFriday := time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC)
	assert.False(t, joint.IsBusinessDay(goodFriday))

	ordinaryDay := time.Date(2025, time.August, 4, 0, 0, 0, 0, time.UTC)
	assert.True(t, joint.IsBusinessDay(ordinaryDay))
}

func TestEasterKnownDates(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), calendar.Easter(2025))
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), calendar.Easter(2024))
}

func TestLastBusinessDayOfMonth(t *testing.T) {
	mid := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	got := calendar.LastBusinessDayOfMonth(calendar.WE, mid)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 28, got.Day())
}
