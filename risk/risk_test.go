package risk_test

import (
	"testing"

	"github.com/meenmo/molib/curve"
	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/risk"
	"github.com/meenmo/molib/yield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveYearSemiAnnualBond() []risk.Cashflow {
	var cfs []risk.Cashflow
	for i := 1; i <= 10; i++ {
		t := float64(i) * 0.5
		amount := 2.5
		if i == 10 {
			amount += 100.0
		}
		cfs = append(cfs, risk.Cashflow{YearsFromSettlement: t, Amount: amount})
	}
	return cfs
}

func TestDurationPositiveAndBelowMaturity(t *testing.T) {
	cfs := fiveYearSemiAnnualBond()
	dur := risk.ComputeDuration(cfs, 0.05, 2, yield.Compounded)
	assert.Greater(t, dur.Macaulay, 0.0)
	assert.Less(t, dur.Macaulay, 5.0)
	assert.Less(t, dur.Modified, dur.Macaulay)
}

func TestConvexityPositive(t *testing.T) {
	cfs := fiveYearSemiAnnualBond()
	conv := risk.ComputeConvexity(cfs, 0.05, 2, yield.Compounded)
	assert.Greater(t, conv, 0.0)
}

func TestDV01Positive(t *testing.T) {
	cfs := fiveYearSemiAnnualBond()
	dv01 := risk.ComputeDV01(cfs, 0.05, 2, yield.Compounded)
	assert.Greater(t, dv01, 0.0)
}

func TestCalculateBundlesAllMetrics(t *testing.T) {
	cfs := fiveYearSemiAnnualBond()
	m := risk.Calculate(cfs, 0.05, 2, yield.Compounded)
	assert.Equal(t, m.DV01, m.BPV)
	assert.Greater(t, m.Duration.Macaulay, 0.0)
}

func TestEstimatePriceChangeMatchesSignOfYieldMove(t *testing.T) {
	cfs := fiveYearSemiAnnualBond()
	m := risk.Calculate(cfs, 0.05, 2, yield.Compounded)
	change := risk.EstimatePriceChange(m, 100.0, 0.01)
	assert.Less(t, change, 0.0) // yields up, price down
}

func flatCurve(t *testing.T, anchor date.Date, zero float64) curve.Curve {
	t.Helper()
	pillars := []curve.Pillar{
		{Date: anchor, Time: 0.0, DF: 1.0},
		{Date: anchor.AddDays(3650), Time: 10.0, DF: 1.0 / pow(1+zero, 10)},
	}
	c, err := curve.NewSegmentedCurve(anchor, pillars)
	require.NoError(t, err)
	return c
}

func pow(base float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= base
	}
	return result
}

func TestEffectiveDurationPositive(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	base := flatCurve(t, anchor, 0.03)
	maturity := anchor.AddDays(3650)

	priceFn := func(c curve.Curve) (float64, error) {
		df, err := c.DF(maturity)
		if err != nil {
			return 0, err
		}
		return 100.0 * df, nil
	}
	basePrice, err := priceFn(base)
	require.NoError(t, err)

	ed, err := risk.EffectiveDuration(basePrice, 10.0, priceFn, base)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, ed, 1.0)
}

func TestKeyRateDurationProfileSumsToEffectiveDuration(t *testing.T) {
	anchor := date.New(2025, 1, 1)
	base := flatCurve(t, anchor, 0.03)
	maturity := anchor.AddDays(3650)

	priceFn := func(c curve.Curve) (float64, error) {
		df, err := c.DF(maturity)
		if err != nil {
			return 0, err
		}
		return 100.0 * df, nil
	}
	basePrice, err := priceFn(base)
	require.NoError(t, err)

	profile, err := risk.KeyRateDurationProfile(basePrice, []float64{2, 5, 10}, 10.0, priceFn, base)
	require.NoError(t, err)
	require.Len(t, profile, 3)

	total := 0.0
	for _, bucket := range profile {
		total += bucket.Duration
	}
	assert.InDelta(t, 10.0, total, 1.0)
}
