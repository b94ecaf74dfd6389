package moldecimal

import (
	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Price is a percentage-of-par quote, tagged clean or dirty.
//
// Invariant: Value must be > 0 (spec §3 Price invariants).
type Price struct {
	Value    decimal.Decimal
	Currency Currency
	Dirty    bool
}

// NewCleanPrice builds a clean Price from a float (e.g. 98.50).
func NewCleanPrice(v float64, ccy Currency) Price {
	return Price{Value: decimal.NewFromFloat(v), Currency: ccy, Dirty: false}
}

// NewDirtyPrice builds a dirty Price from a float.
func NewDirtyPrice(v float64, ccy Currency) Price {
	return Price{Value: decimal.NewFromFloat(v), Currency: ccy, Dirty: true}
}

// Float64 returns the quote as a float64 for solver consumption.
func (p Price) Float64() float64 {
	f, _ := p.Value.Float64()
	return f
}

// WithAccrued returns the dirty price given accrued interest (per-100), or
// the clean price if accrued is subtracted from an already-dirty quote.
func (p Price) WithAccrued(accrued decimal.Decimal) Price {
	if p.Dirty {
		return Price{Value: p.Value.Sub(accrued), Currency: p.Currency, Dirty: false}
	}
	return Price{Value: p.Value.Add(accrued), Currency: p.Currency, Dirty: true}
}

type jsonPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Dirty    bool   `json:"dirty"`
}

func (p Price) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(jsonPrice{Value: p.Value.String(), Currency: p.Currency.Code, Dirty: p.Dirty})
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var jp jsonPrice
	if err := gojson.Unmarshal(b, &jp); err != nil {
		return err
	}
	v, err := decimal.NewFromString(jp.Value)
	if err != nil {
		return err
	}
	p.Value = v
	p.Currency = Currency{Code: jp.Currency, MinorUnits: defaultMinorUnits(jp.Currency)}
	p.Dirty = jp.Dirty
	return nil
}
