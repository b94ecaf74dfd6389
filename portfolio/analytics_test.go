package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateYieldMetricsWeightsByMarketValue(t *testing.T) {
	h1 := sampleHolding("1", 1_000_000, 100.0) // YTM 4.5
	h2 := sampleHolding("2", 1_000_000, 100.0)
	h2.Analytics.YTM = dur(6.0)

	m := portfolio.CalculateYieldMetrics([]portfolio.Holding{h1, h2}, portfolio.DefaultAnalyticsConfig)
	require.NotNil(t, m.YTM)
	assert.InDelta(t, 5.25, *m.YTM, 1e-9)
	assert.InDelta(t, 100.0, m.YTMCoveragePct, 1e-9)
}

func TestCalculateYieldMetricsCoverageExcludesMissingData(t *testing.T) {
	h1 := sampleHolding("1", 1_000_000, 100.0)
	h2 := sampleHolding("2", 1_000_000, 100.0)
	h2.Analytics.YTM = nil

	m := portfolio.CalculateYieldMetrics([]portfolio.Holding{h1, h2}, portfolio.DefaultAnalyticsConfig)
	require.NotNil(t, m.YTM)
	assert.InDelta(t, 4.5, *m.YTM, 1e-9)
	assert.InDelta(t, 50.0, m.YTMCoveragePct, 1e-9)
}

func TestCalculateRiskMetricsSumsDV01Additively(t *testing.T) {
	h1 := sampleHolding("1", 1_000_000, 100.0) // DV01 600
	h2 := sampleHolding("2", 2_000_000, 100.0)
	h2.Analytics.DV01 = dur(1200.0)

	m := portfolio.CalculateRiskMetrics([]portfolio.Holding{h1, h2}, portfolio.DefaultAnalyticsConfig)
	assert.InDelta(t, 1800.0, m.TotalDV01, 1e-9)
	require.NotNil(t, m.ModifiedDuration)
}

func TestCalculateSpreadMetricsBestSpreadPrefersOAS(t *testing.T) {
	h := sampleHolding("1", 1_000_000, 100.0)
	oas := 80.0
	h.Analytics.OAS = &oas

	m := portfolio.CalculateSpreadMetrics([]portfolio.Holding{h}, portfolio.DefaultAnalyticsConfig)
	require.NotNil(t, m.BestSpread)
	assert.InDelta(t, 80.0, *m.BestSpread, 1e-9)
}

func TestCalculateSpreadMetricsBestSpreadFallsBackToZSpread(t *testing.T) {
	h := sampleHolding("1", 1_000_000, 100.0) // only ZSpread set

	m := portfolio.CalculateSpreadMetrics([]portfolio.Holding{h}, portfolio.DefaultAnalyticsConfig)
	require.NotNil(t, m.BestSpread)
	assert.InDelta(t, 120.0, *m.BestSpread, 1e-9)
}

func TestPortfolioAnalyticsIsComplete(t *testing.T) {
	a := portfolio.PortfolioAnalytics{
		Yields:  portfolio.YieldMetrics{YTM: dur(5.0)},
		Risk:    portfolio.RiskMetrics{ModifiedDuration: dur(6.0)},
		Spreads: portfolio.SpreadMetrics{BestSpread: dur(100.0)},
	}
	assert.True(t, a.IsComplete())

	incomplete := portfolio.PortfolioAnalytics{}
	assert.False(t, incomplete.IsComplete())
}
