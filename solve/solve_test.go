package solve_test

import (
	"math"
	"testing"

	"github.com/meenmo/molib/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewtonSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2.0 }
	df := func(x float64) float64 { return 2.0 * x }

	result, err := solve.Newton(f, df, 1.5, 0, 10, solve.DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, result.Root, 1e-9)
}

func TestBrentBracketedCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }

	result, err := solve.Brent(f, 1.0, 2.0, solve.DefaultConfig())
	require.NoError(t, err)
	assert.Less(t, math.Abs(f(result.Root)), 1e-9)
}

func TestBrentUnbracketedErrors(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1.0 }
	_, err := solve.Brent(f, -1.0, 1.0, solve.DefaultConfig())
	assert.Error(t, err)
}

func TestHybridWithBoundsSolvesCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2.0*x - 5.0 }
	df := func(x float64) float64 { return 3.0*x*x - 2.0 }

	bounds := [2]float64{1.0, 3.0}
	result, err := solve.Hybrid(f, df, 0.0, &bounds, solve.DefaultConfig())
	require.NoError(t, err)
	assert.Less(t, math.Abs(f(result.Root)), 1e-9)
}

func TestHybridWithoutBoundsSolvesSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2.0 }
	df := func(x float64) float64 { return 2.0 * x }

	result, err := solve.Hybrid(f, df, 1.5, nil, solve.DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, result.Root, 1e-9)
}

func TestYTMLikeCalculation(t *testing.T) {
	targetPrice, coupon, face := 95.0, 5.0, 100.0
	years := 5

	priceFromYield := func(y float64) float64 {
		pv := 0.0
		for tp := 1; tp <= years; tp++ {
			pv += coupon / math.Pow(1+y, float64(tp))
		}
		pv += face / math.Pow(1+y, float64(years))
		return pv - targetPrice
	}
	dPriceFromYield := func(y float64) float64 {
		dpv := 0.0
		for tp := 1; tp <= years; tp++ {
			dpv -= float64(tp) * coupon / math.Pow(1+y, float64(tp+1))
		}
		dpv -= float64(years) * face / math.Pow(1+y, float64(years+1))
		return dpv
	}

	bounds := [2]float64{0.0, 0.20}
	result, err := solve.Hybrid(priceFromYield, dPriceFromYield, 0.05, &bounds, solve.DefaultConfig())
	require.NoError(t, err)
	assert.Less(t, math.Abs(priceFromYield(result.Root)), 1e-9)
	assert.Greater(t, result.Root, 0.05)
}
