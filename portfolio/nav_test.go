package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNAVBreakdownPercentages(t *testing.T) {
	p, err := portfolio.NewBuilder("Fund").
		AsOf(date.New(2026, 7, 31)).
		AddHolding(sampleHolding("1", 900_000, 100.0)).
		AddCash(portfolio.NewCashPosition(100_000, "USD")).
		Build()
	require.NoError(t, err)

	nav := portfolio.CalculateNAVBreakdown(p)
	assert.InDelta(t, 1_000_000, nav.NAV, 1e-6)
	assert.InDelta(t, 90.0, nav.SecuritiesPct(), 1e-6)
	assert.InDelta(t, 10.0, nav.CashPct(), 1e-6)
	assert.InDelta(t, 0.0, nav.AccruedPct(), 1e-6)
}

func TestNAVBreakdownZeroNAVPercentagesAreZero(t *testing.T) {
	nav := portfolio.NavBreakdown{}
	assert.Equal(t, 0.0, nav.SecuritiesPct())
	assert.Equal(t, 0.0, nav.CashPct())
	assert.Equal(t, 0.0, nav.AccruedPct())
}
