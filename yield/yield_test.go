package yield_test

import (
	"math"
	"testing"

	"github.com/meenmo/molib/yield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveYieldRoundTripsCompounded(t *testing.T) {
	offsets := []float64{0.5, 1.0, 1.5, 2.0}
	amounts := []float64{2.5, 2.5, 2.5, 102.5}
	price := yield.DirtyPriceFromYield(0.04, offsets, amounts, 2, yield.Compounded)

	result, err := yield.SolveYield(price, offsets, amounts, 2, yield.Compounded)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, result.Root, 1e-6)
}

func TestSolveYieldDiscountBasis(t *testing.T) {
	offsets := []float64{0.25}
	amounts := []float64{100.0}
	price := yield.DirtyPriceFromYield(0.02, offsets, amounts, 1, yield.Discount)

	result, err := yield.SolveYield(price, offsets, amounts, 1, yield.Discount)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, result.Root, 1e-6)
}

func TestSolveYieldRejectsMismatchedLengths(t *testing.T) {
	_, err := yield.SolveYield(100, []float64{1, 2}, []float64{1}, 2, yield.Compounded)
	assert.Error(t, err)
}

func TestSimpleDiscountFactorMonotone(t *testing.T) {
	low := yield.DirtyPriceFromYield(0.01, []float64{1}, []float64{100}, 1, yield.Simple)
	high := yield.DirtyPriceFromYield(0.05, []float64{1}, []float64{100}, 1, yield.Simple)
	assert.Greater(t, low, high)
	assert.False(t, math.IsNaN(low) || math.IsNaN(high))
}
