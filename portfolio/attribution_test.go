package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
)

func TestCalculateAttributionDecomposesReturn(t *testing.T) {
	in := portfolio.AttributionInput{
		HoldingID:      "1",
		StartPrice:     100.0,
		EndPrice:       98.0,
		CouponAccrued:  2.0,
		StartDuration:  6.0,
		StartSpreadDur: 5.0,
		StartYield:     400,
		EndYield:       430,
		StartSpread:    100,
		EndSpread:      100,
	}
	a := portfolio.CalculateAttribution(in)
	assert.InDelta(t, 0.0, a.TotalReturnPct, 1e-9)
	assert.InDelta(t, 2.0, a.IncomeReturn, 1e-9)
	assert.InDelta(t, -1.8, a.RatesReturn, 1e-9)
	assert.InDelta(t, 0.0, a.SpreadReturn, 1e-9)
}

func TestCalculateAttributionZeroStartPriceIsSafe(t *testing.T) {
	a := portfolio.CalculateAttribution(portfolio.AttributionInput{HoldingID: "1"})
	assert.Equal(t, 0.0, a.TotalReturnPct)
}

func TestAggregateAttributionWeights(t *testing.T) {
	inputs := []portfolio.AttributionInput{
		{HoldingID: "1", StartPrice: 100, EndPrice: 101, Weight: 0.5},
		{HoldingID: "2", StartPrice: 100, EndPrice: 103, Weight: 0.5},
	}
	out := portfolio.AggregateAttribution(inputs)
	assert.InDelta(t, 2.0, out.TotalReturnPct, 1e-9)
	assert.Len(t, out.ByHolding, 2)
}

func TestAggregateAttributionZeroTotalWeight(t *testing.T) {
	out := portfolio.AggregateAttribution([]portfolio.AttributionInput{{HoldingID: "1"}})
	assert.Equal(t, 0.0, out.TotalReturnPct)
}
