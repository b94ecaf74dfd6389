package date_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/stretchr/testify/assert"
)

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	d := date.New(2024, 1, 31)
	got := d.AddMonths(1)
	assert.Equal(t, date.New(2024, 2, 29), got) // 2024 is a leap year
}

func TestAddYearsClampsFeb29(t *testing.T) {
	d := date.New(2024, 2, 29)
	got := d.AddYears(1)
	assert.Equal(t, date.New(2025, 2, 28), got)
}

func TestDaysBetweenExact(t *testing.T) {
	a := date.New(2025, 1, 1)
	b := date.New(2025, 4, 1)
	assert.Equal(t, 90, date.DaysBetween(a, b))
}

func TestAddDaysRoundTrip(t *testing.T) {
	d := date.New(2025, 6, 15)
	for _, n := range []int{0, 1, -1, 30, -30, 365} {
		got := date.DaysBetween(d, d.AddDays(n))
		assert.Equal(t, n, got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := date.New(2025, 3, 7)
	b, err := d.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"2025-03-07"`, string(b))

	var out date.Date
	assert.NoError(t, out.UnmarshalJSON(b))
	assert.True(t, d.Equal(out))
}

func TestCompare(t *testing.T) {
	a := date.New(2025, 1, 1)
	b := date.New(2025, 1, 2)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}
