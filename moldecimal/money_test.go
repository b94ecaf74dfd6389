package moldecimal_test

import (
	"testing"

	"github.com/meenmo/molib/moldecimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyAddSub(t *testing.T) {
	usd, _ := moldecimal.CurrencyByCode("USD")
	a, err := moldecimal.NewMoney("100.005", usd)
	require.NoError(t, err)
	b, err := moldecimal.NewMoney("0.005", usd)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.True(t, sum.Amount.Equal(decimal.NewFromFloat(100.01)))
}

func TestMoneyAddCrossCurrencyPanics(t *testing.T) {
	usd, _ := moldecimal.CurrencyByCode("USD")
	eur, _ := moldecimal.CurrencyByCode("EUR")
	a, _ := moldecimal.NewMoney("1", usd)
	b, _ := moldecimal.NewMoney("1", eur)

	assert.Panics(t, func() { a.Add(b) })
}

func TestMoneyRoundedBankersRounding(t *testing.T) {
	jpy, _ := moldecimal.CurrencyByCode("JPY")
	m, err := moldecimal.NewMoney("100.5", jpy)
	require.NoError(t, err)
	assert.Equal(t, "100", m.Rounded().Amount.String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	usd, _ := moldecimal.CurrencyByCode("USD")
	m, _ := moldecimal.NewMoney("1234.5600", usd)

	b, err := m.MarshalJSON()
	require.NoError(t, err)

	var out moldecimal.Money
	require.NoError(t, out.UnmarshalJSON(b))
	assert.True(t, m.Amount.Equal(out.Amount))
	assert.Equal(t, m.Currency.Code, out.Currency.Code)
}

func TestSpreadAddSameKind(t *testing.T) {
	a := moldecimal.NewSpread(100, moldecimal.SpreadZ)
	b := moldecimal.NewSpread(25, moldecimal.SpreadZ)
	assert.Equal(t, 125.0, a.Add(b).Float64())
}

func TestSpreadAddDifferentKindPanics(t *testing.T) {
	a := moldecimal.NewSpread(100, moldecimal.SpreadZ)
	b := moldecimal.NewSpread(25, moldecimal.SpreadG)
	assert.Panics(t, func() { a.Add(b) })
}
