package marketdata_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/marketdata"
	"github.com/stretchr/testify/assert"
)

func TestAddAndGetFixing(t *testing.T) {
	store := marketdata.NewFixingStore()
	store.Add(marketdata.Fixing{Date: date.New(2024, 1, 2), Index: "SOFR", Rate: 0.053})

	rate, ok := store.Get("SOFR", date.New(2024, 1, 2))
	assert.True(t, ok)
	assert.Equal(t, 0.053, rate)
}

func TestMissingFixing(t *testing.T) {
	store := marketdata.NewFixingStore()
	_, ok := store.Get("SOFR", date.New(2024, 1, 2))
	assert.False(t, ok)
}

func TestRangeOrdersChronologically(t *testing.T) {
	store := marketdata.NewFixingStore()
	store.AddMany([]marketdata.Fixing{
		{Date: date.New(2024, 1, 4), Index: "SOFR", Rate: 0.0531},
		{Date: date.New(2024, 1, 2), Index: "SOFR", Rate: 0.0530},
		{Date: date.New(2024, 1, 3), Index: "SOFR", Rate: 0.0532},
	})

	got := store.Range("SOFR", date.New(2024, 1, 2), date.New(2024, 1, 4))
	assert.Len(t, got, 3)
	assert.Equal(t, 0.0530, got[0].Rate)
	assert.Equal(t, 0.0532, got[1].Rate)
	assert.Equal(t, 0.0531, got[2].Rate)
}

func TestLastBeforeBetweenFixings(t *testing.T) {
	store := marketdata.NewFixingStore()
	store.AddMany([]marketdata.Fixing{
		{Date: date.New(2024, 1, 2), Index: "SOFR", Rate: 0.0530},
		{Date: date.New(2024, 1, 3), Index: "SOFR", Rate: 0.0532},
		{Date: date.New(2024, 1, 5), Index: "SOFR", Rate: 0.0531},
	})

	f, ok := store.LastBefore("SOFR", date.New(2024, 1, 4))
	assert.True(t, ok)
	assert.Equal(t, 0.0532, f.Rate)

	_, ok = store.LastBefore("SOFR", date.New(2024, 1, 1))
	assert.False(t, ok)
}

func TestHasIndexAndCount(t *testing.T) {
	store := marketdata.NewFixingStore()
	assert.False(t, store.HasIndex("SOFR"))

	store.Add(marketdata.Fixing{Date: date.New(2024, 1, 2), Index: "SOFR", Rate: 0.053})
	assert.True(t, store.HasIndex("SOFR"))
	assert.Equal(t, 1, store.Count("SOFR"))
}

func TestCurveMarketDataSorted(t *testing.T) {
	data := marketdata.CurveMarketData{
		Quotes: []marketdata.Quote{
			{Kind: marketdata.QuoteSwap, Maturity: date.New(2030, 1, 1), Rate: 0.04},
			{Kind: marketdata.QuoteDeposit, Maturity: date.New(2025, 1, 1), Rate: 0.03},
		},
	}
	sorted := data.Sorted()
	assert.True(t, sorted[0].Maturity.Before(sorted[1].Maturity))
}
