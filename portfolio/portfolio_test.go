package portfolio_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dur(v float64) *float64 { return &v }

func sampleHolding(id string, par, price float64) portfolio.Holding {
	return portfolio.Holding{
		ID:           id,
		ParAmount:    par,
		MarketPrice:  price,
		Currency:     "USD",
		Classification: portfolio.Classification{
			Sector: portfolio.SectorCorporate,
			Rating: portfolio.RatingBBB,
			Issuer: "ISSUER_" + id,
		},
		Analytics: portfolio.HoldingAnalytics{
			YTM:              dur(4.5),
			ModifiedDuration: dur(6.0),
			Convexity:        dur(0.5),
			DV01:             dur(600.0),
			ZSpread:          dur(120.0),
			YearsToMaturity:  dur(7.0),
			CouponRate:       dur(4.0),
		},
	}
}

func TestBuilderBuildAutoGeneratesID(t *testing.T) {
	p, err := portfolio.NewBuilder("Core Bond Fund").
		AsOf(date.New(2026, 7, 31)).
		AddHolding(sampleHolding("1", 1_000_000, 99.5)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "COREBONDFUND", p.ID)
	assert.Equal(t, "USD", p.BaseCurrency)
}

func TestBuilderBuildRequiresName(t *testing.T) {
	_, err := portfolio.NewBuilder("").AsOf(date.New(2026, 7, 31)).Build()
	assert.Error(t, err)
}

func TestBuilderBuildRequiresAsOf(t *testing.T) {
	_, err := portfolio.NewBuilder("Fund").Build()
	assert.Error(t, err)
}

func TestNAVSumsComponents(t *testing.T) {
	p, err := portfolio.NewBuilder("Fund").
		AsOf(date.New(2026, 7, 31)).
		AddHolding(sampleHolding("1", 1_000_000, 100.0)).
		AddCash(portfolio.NewCashPosition(50_000, "USD")).
		Liabilities(10_000).
		Build()
	require.NoError(t, err)
	assert.InDelta(t, 1_040_000, p.NAV(), 1e-6)
}

func TestNAVPerShareNilWithoutShares(t *testing.T) {
	p, err := portfolio.NewBuilder("Fund").AsOf(date.New(2026, 7, 31)).Build()
	require.NoError(t, err)
	assert.Nil(t, p.NAVPerShare())
}

func TestNAVPerShareComputed(t *testing.T) {
	p, err := portfolio.NewBuilder("Fund").
		AsOf(date.New(2026, 7, 31)).
		AddHolding(sampleHolding("1", 1_000_000, 100.0)).
		SharesOutstanding(10_000).
		Build()
	require.NoError(t, err)
	require.NotNil(t, p.NAVPerShare())
	assert.InDelta(t, 100.0, *p.NAVPerShare(), 1e-6)
}

func TestIsMultiCurrency(t *testing.T) {
	h1 := sampleHolding("1", 1_000_000, 100.0)
	h2 := sampleHolding("2", 1_000_000, 100.0)
	h2.Currency = "EUR"
	h2.FXRate = 1.1
	p, err := portfolio.NewBuilder("Fund").
		AsOf(date.New(2026, 7, 31)).
		AddHoldings(h1, h2).
		Build()
	require.NoError(t, err)
	assert.True(t, p.IsMultiCurrency())
	assert.ElementsMatch(t, []string{"USD", "EUR"}, p.Currencies())
}
