package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketBySectorGroupsAndWeights(t *testing.T) {
	h1 := sampleHolding("1", 1_000_000, 100.0) // SectorCorporate
	h2 := sampleHolding("2", 1_000_000, 100.0)
	h2.Classification.Sector = portfolio.SectorGovernment

	buckets := portfolio.BucketBySector([]portfolio.Holding{h1, h2}, portfolio.DefaultAnalyticsConfig)
	require.Len(t, buckets, 2)
	for _, b := range buckets {
		assert.InDelta(t, 50.0, b.WeightPct, 1e-9)
		assert.Equal(t, 1, b.HoldingCount)
	}
}

func TestMaturityBandOrdering(t *testing.T) {
	short := sampleHolding("1", 1_000_000, 100.0)
	short.Analytics.YearsToMaturity = dur(0.5)
	long := sampleHolding("2", 1_000_000, 100.0)
	long.Analytics.YearsToMaturity = dur(25.0)

	buckets := portfolio.BucketByMaturity([]portfolio.Holding{long, short}, portfolio.DefaultAnalyticsConfig)
	require.Len(t, buckets, 2)
	assert.Equal(t, string(portfolio.Maturity0to1), buckets[0].Key)
	assert.Equal(t, string(portfolio.Maturity20Plus), buckets[1].Key)
}

func TestBucketByMaturityMissingDataGoesToNone(t *testing.T) {
	h := sampleHolding("1", 1_000_000, 100.0)
	h.Analytics.YearsToMaturity = nil

	buckets := portfolio.BucketByMaturity([]portfolio.Holding{h}, portfolio.DefaultAnalyticsConfig)
	require.Len(t, buckets, 1)
	assert.Equal(t, string(portfolio.MaturityNone), buckets[0].Key)
}

func TestBucketByClassifierCustomKey(t *testing.T) {
	h := sampleHolding("1", 1_000_000, 100.0)
	buckets := portfolio.BucketByClassifier([]portfolio.Holding{h}, portfolio.DefaultAnalyticsConfig, func(h portfolio.Holding) string {
		return h.Currency
	})
	require.Len(t, buckets, 1)
	assert.Equal(t, "USD", buckets[0].Key)
}
