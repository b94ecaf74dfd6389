package curve_test

import (
	"testing"

	"github.com/meenmo/molib/curve"
	"github.com/meenmo/molib/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentedCurveDFAtPillars(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	pillars := []curve.Pillar{
		{Date: anchor, Time: 0, DF: 1.0},
		{Date: date.New(2026, 1, 1), Time: 1.0, DF: 0.97},
		{Date: date.New(2027, 1, 1), Time: 2.0, DF: 0.93},
	}
	c, err := curve.NewSegmentedCurve(anchor, pillars)
	require.NoError(t, err)

	df, err := c.DF(date.New(2026, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 0.97, df, 1e-9)
}

func TestSegmentedCurveZeroRatePositive(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	pillars := []curve.Pillar{
		{Date: anchor, Time: 0, DF: 1.0},
		{Date: date.New(2026, 1, 1), Time: 1.0, DF: 0.95},
	}
	c, err := curve.NewSegmentedCurve(anchor, pillars)
	require.NoError(t, err)

	z, err := c.ZeroRate(date.New(2026, 1, 1))
	require.NoError(t, err)
	assert.Greater(t, z, 0.0)
}

func TestBootstrapDepositsAndSwap(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	deposit := curve.Deposit{MaturityDate: date.New(2025, 7, 1), Rate: 0.03, DCF: 0.5}
	swapMaturity := date.New(2027, 1, 1)
	swap := curve.Swap{
		MaturityDate:      swapMaturity,
		Rate:              0.032,
		PeriodEndDates:    []date.Date{date.New(2026, 1, 1), swapMaturity},
		DayCountFractions: []float64{1.0, 1.0},
	}

	c, err := curve.Bootstrap(anchor, []curve.CalibrationInstrument{deposit, swap})
	require.NoError(t, err)

	df, err := c.DF(date.New(2025, 7, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/(1.0+0.03*0.5), df, 1e-6)

	dfSwap, err := c.DF(swapMaturity)
	require.NoError(t, err)
	assert.Less(t, dfSwap, 1.0)
	assert.Greater(t, dfSwap, 0.0)
}

func TestDerivedCurveParallelBump(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	pillars := []curve.Pillar{
		{Date: anchor, Time: 0, DF: 1.0},
		{Date: date.New(2026, 1, 1), Time: 1.0, DF: 0.97},
	}
	base, err := curve.NewSegmentedCurve(anchor, pillars)
	require.NoError(t, err)

	bumped := curve.NewDerivedCurve(base, curve.Bump{BP: 100})
	baseZero, err := base.ZeroRate(date.New(2026, 1, 1))
	require.NoError(t, err)
	bumpedZero, err := bumped.ZeroRate(date.New(2026, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, baseZero+0.01, bumpedZero, 1e-9)
}

func TestBootstrapRejectsEmptyInstrumentList(t *testing.T) {
	_, err := curve.Bootstrap(date.New(2025, 1, 1), nil)
	assert.Error(t, err)
}
