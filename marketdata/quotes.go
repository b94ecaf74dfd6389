package marketdata

import "github.com/meenmo/molib/date"

// QuoteKind discriminates the instrument families a curve bootstrap
// consumes, mirroring curve.CalibrationInstrument's concrete types.
type QuoteKind string

const (
	QuoteDeposit      QuoteKind = "deposit"
	QuoteFRA          QuoteKind = "fra"
	QuoteSwap         QuoteKind = "swap"
	QuoteOIS          QuoteKind = "ois"
	QuoteTreasuryBill QuoteKind = "treasury_bill"
	QuoteCouponBond   QuoteKind = "coupon_bond"
)

// Quote is a single market input for curve calibration: a tenor-dated rate
// or price observation, tagged by instrument family so a caller can map it
// onto the appropriate curve.CalibrationInstrument.
type Quote struct {
	Kind     QuoteKind
	Maturity date.Date
	Rate     float64 // par rate, deposit rate, or discount rate, as applicable
	Price    float64 // dirty price, for QuoteCouponBond
}

// CurveMarketData bundles the quotes needed to bootstrap one curve, plus an
// AsOf anchor date, per spec §4.7's curve-inputs requirement.
type CurveMarketData struct {
	AsOf   date.Date
	Quotes []Quote
}

// Sorted returns the quotes ordered by ascending maturity, the order
// curve.Bootstrap requires for its sequential pillar solve.
func (m CurveMarketData) Sorted() []Quote {
	quotes := append([]Quote{}, m.Quotes...)
	for i := 1; i < len(quotes); i++ {
		for j := i; j > 0 && quotes[j].Maturity.Before(quotes[j-1].Maturity); j-- {
			quotes[j], quotes[j-1] = quotes[j-1], quotes[j]
		}
	}
	return quotes
}
