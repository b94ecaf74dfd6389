package daycount_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/daycount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAct360(t *testing.T) {
	start := date.New(2025, 1, 1)
	end := date.New(2025, 7, 1)
	yf, err := daycount.YearFraction(start, end, daycount.Act360, daycount.Period{})
	require.NoError(t, err)
	assert.InDelta(t, 181.0/360.0, yf, 1e-9)
}

func TestAct365F(t *testing.T) {
	start := date.New(2025, 1, 1)
	end := date.New(2026, 1, 1)
	yf, err := daycount.YearFraction(start, end, daycount.Act365F, daycount.Period{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, yf, 1e-9)
}

func TestAct365LLeapSpan(t *testing.T) {
	start := date.New(2024, 1, 1)
	end := date.New(2024, 12, 31)
	yf, err := daycount.YearFraction(start, end, daycount.Act365L, daycount.Period{})
	require.NoError(t, err)
	assert.InDelta(t, 365.0/366.0, yf, 1e-9)
}

func TestThirty360USEndOfFebruary(t *testing.T) {
	start := date.New(2025, 2, 28)
	end := date.New(2025, 3, 31)
	yf, err := daycount.YearFraction(start, end, daycount.Thirty360US, daycount.Period{})
	require.NoError(t, err)
	// 30/360 US clamps Feb 28 -> 30 and Mar 31 -> 30, giving exactly 30 days.
	assert.InDelta(t, 30.0/360.0, yf, 1e-9)
}

func TestActActICMARequiresPeriod(t *testing.T) {
	start := date.New(2025, 1, 1)
	end := date.New(2025, 4, 1)
	_, err := daycount.YearFraction(start, end, daycount.ActActICMA, daycount.Period{})
	assert.Error(t, err)

	period := daycount.Period{Start: date.New(2025, 1, 1), End: date.New(2025, 7, 1), Frequency: 2}
	yf, err := daycount.YearFraction(start, end, daycount.ActActICMA, period)
	require.NoError(t, err)
	assert.InDelta(t, 90.0/(181.0*2), yf, 1e-9)
}

func TestEndBeforeStartErrors(t *testing.T) {
	_, err := daycount.YearFraction(date.New(2025, 2, 1), date.New(2025, 1, 1), daycount.Act360, daycount.Period{})
	assert.Error(t, err)
}
