package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleETFFund(t *testing.T) portfolio.Portfolio {
	t.Helper()
	p, err := portfolio.NewBuilder("Bond ETF").
		AsOf(date.New(2026, 7, 31)).
		AddHolding(sampleHolding("1", 5_000_000, 100.0)).
		AddHolding(sampleHolding("2", 5_000_000, 100.0)).
		AddCash(portfolio.NewCashPosition(100_000, "USD")).
		SharesOutstanding(100_000).
		Build()
	require.NoError(t, err)
	return p
}

func TestCalculateETFNAV(t *testing.T) {
	fund := sampleETFFund(t)
	nav := portfolio.CalculateETFNAV(portfolio.ETFSnapshot{Fund: fund})
	require.NotNil(t, nav)
	assert.InDelta(t, fund.NAV()/100_000, *nav, 1e-9)
}

func TestCalculatePremiumDiscount(t *testing.T) {
	fund := sampleETFFund(t)
	inav := fund.NAV() / 100_000

	pd, ok := portfolio.CalculatePremiumDiscount(portfolio.ETFSnapshot{Fund: fund, MarketPrice: inav * 1.001})
	require.True(t, ok)
	assert.Greater(t, pd.Premium, 0.0)
	assert.InDelta(t, 10.0, pd.PremiumPctBP, 0.5)
}

func TestCalculatePremiumDiscountNoSharesOutstanding(t *testing.T) {
	fund, err := portfolio.NewBuilder("Fund").AsOf(date.New(2026, 7, 31)).Build()
	require.NoError(t, err)
	_, ok := portfolio.CalculatePremiumDiscount(portfolio.ETFSnapshot{Fund: fund, MarketPrice: 100})
	assert.False(t, ok)
}

func TestCalculateSECYieldWeightsByMarketValue(t *testing.T) {
	inputs := []portfolio.SECYieldInput{
		{HoldingID: "1", Weight: 0.5, CouponIncome30: 0.004},
		{HoldingID: "2", Weight: 0.5, CouponIncome30: 0.004},
	}
	yld := portfolio.CalculateSECYield(inputs)
	assert.Greater(t, yld, 0.0)
}

func TestCalculateSECYieldEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, portfolio.CalculateSECYield(nil))
}

func TestBuildCreationBasketScalesProRata(t *testing.T) {
	fund := sampleETFFund(t)
	basket := portfolio.BuildCreationBasket(portfolio.ETFSnapshot{Fund: fund}, 50_000)
	require.Len(t, basket.Units, 2)
	for _, u := range basket.Units {
		assert.InDelta(t, 2_500_000, u.ParAmount, 1.0)
	}
}

func TestArbitrageOpportunityForRespectsThreshold(t *testing.T) {
	fund := sampleETFFund(t)
	inav := fund.NAV() / 100_000

	_, ok := portfolio.ArbitrageOpportunityFor(portfolio.ETFSnapshot{Fund: fund, MarketPrice: inav}, 5.0)
	assert.False(t, ok)

	opp, ok := portfolio.ArbitrageOpportunityFor(portfolio.ETFSnapshot{Fund: fund, MarketPrice: inav * 1.01}, 5.0)
	require.True(t, ok)
	assert.Equal(t, "create", opp.Direction)
}

func TestRunComplianceChecksFlagsConcentration(t *testing.T) {
	fund := sampleETFFund(t)
	rules := []portfolio.ComplianceRule{
		{Name: "issuer_cap", MaxWeightPct: 40, BucketKeyOf: func(h portfolio.Holding) string { return h.Classification.Issuer }},
	}
	checks := portfolio.RunComplianceChecks(fund, rules, portfolio.DefaultAnalyticsConfig)
	require.Len(t, checks, 1)
	assert.False(t, checks[0].Passed)
	assert.NotEmpty(t, checks[0].Breaches)
}
