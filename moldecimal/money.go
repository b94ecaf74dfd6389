// Package moldecimal provides the arbitrary-precision decimal value types
// used anywhere money, price, yield, or spread data crosses a package
// boundary. Internal solver and interpolation math stays on float64 (see
// package solve and interpolate); conversion at the edges rounds with
// banker's rounding for display only — accumulation never rounds
// mid-stream.
package moldecimal

import (
	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.DivisionPrecision = 34
}

// Money is a currency-tagged decimal amount.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney builds a Money from a decimal string to avoid binary-float loss.
func NewMoney(amount string, ccy Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: d, Currency: ccy}, nil
}

// MoneyFromFloat constructs Money from a float64, for call sites that only
// have a computed float (e.g. a solver result) and need to cross back into
// the decimal world for display.
func MoneyFromFloat(v float64, ccy Currency) Money {
	return Money{Amount: decimal.NewFromFloat(v), Currency: ccy}
}

// Add returns m + other. Panics if currencies differ — callers must convert
// via an FX rate before combining cross-currency amounts.
func (m Money) Add(other Money) Money {
	if m.Currency.Code != other.Currency.Code {
		panic("moldecimal: Add across currencies " + m.Currency.Code + " and " + other.Currency.Code)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// Sub returns m - other, same-currency constraint as Add.
func (m Money) Sub(other Money) Money {
	if m.Currency.Code != other.Currency.Code {
		panic("moldecimal: Sub across currencies " + m.Currency.Code + " and " + other.Currency.Code)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

// Mul scales the amount by a dimensionless decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// Float64 returns the amount as a float64, for handoff into solvers.
func (m Money) Float64() float64 {
	f, _ := m.Amount.Float64()
	return f
}

// Rounded rounds m to the currency's minor-unit precision using banker's
// rounding, for display only.
func (m Money) Rounded() Money {
	return Money{Amount: m.Amount.RoundBank(int32(m.Currency.MinorUnits)), Currency: m.Currency}
}

func (m Money) String() string {
	return m.Amount.StringFixedBank(int32(m.Currency.MinorUnits)) + " " + m.Currency.Code
}

// jsonMoney is the wire shape for Money: amount as a decimal string so no
// binary-float precision is lost in transit.
type jsonMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON renders Money with the amount as a decimal string, per the
// round-trip-stable serialized form contract (spec §6).
func (m Money) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(jsonMoney{Amount: m.Amount.String(), Currency: m.Currency.Code})
}

// UnmarshalJSON parses the wire shape produced by MarshalJSON. The currency
// is rebuilt from its code alone: minor units come from the built-in presets
// (2 for an unknown code) and the symbol is not restored.
func (m *Money) UnmarshalJSON(b []byte) error {
	var jm jsonMoney
	if err := gojson.Unmarshal(b, &jm); err != nil {
		return err
	}
	amt, err := decimal.NewFromString(jm.Amount)
	if err != nil {
		return err
	}
	m.Amount = amt
	m.Currency = Currency{Code: jm.Currency, MinorUnits: defaultMinorUnits(jm.Currency)}
	return nil
}
