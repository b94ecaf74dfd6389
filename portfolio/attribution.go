package portfolio

// AttributionInput is the start/end snapshot a single holding's return
// decomposes from, per spec §4.7 "Attribution".
type AttributionInput struct {
	HoldingID      string
	StartPrice     float64
	EndPrice       float64
	CouponAccrued  float64 // coupon + accrued received over the period
	StartDuration  float64
	StartSpreadDur float64
	StartYield     float64
	EndYield       float64
	StartSpread    float64
	EndSpread      float64
	Weight         float64 // start-of-period portfolio weight
}

// HoldingAttribution decomposes one holding's total return into income,
// rates, and spread components, with a residual absorbing second-order and
// cross terms the linear decomposition misses.
type HoldingAttribution struct {
	HoldingID      string
	TotalReturnPct float64
	IncomeReturn   float64
	RatesReturn    float64
	SpreadReturn   float64
	Residual       float64
}

// CalculateAttribution decomposes the holding's total return (price change
// + income, computed from in's prices and CouponAccrued) into
// income/rates/spread components:
//
//	income = coupon+accrued / start_price
//	rates  = -duration * Δyield
//	spread = -spread_duration * Δspread
//	residual = total - (income + rates + spread)
func CalculateAttribution(in AttributionInput) HoldingAttribution {
	if in.StartPrice == 0 {
		return HoldingAttribution{HoldingID: in.HoldingID}
	}

	priceReturn := (in.EndPrice - in.StartPrice) / in.StartPrice
	income := in.CouponAccrued / in.StartPrice
	total := priceReturn + income

	dy := (in.EndYield - in.StartYield) / 10000.0
	ratesReturn := -in.StartDuration * dy

	ds := (in.EndSpread - in.StartSpread) / 10000.0
	spreadReturn := -in.StartSpreadDur * ds

	residual := total - (income + ratesReturn + spreadReturn)

	return HoldingAttribution{
		HoldingID:      in.HoldingID,
		TotalReturnPct: total * 100,
		IncomeReturn:   income * 100,
		RatesReturn:    ratesReturn * 100,
		SpreadReturn:   spreadReturn * 100,
		Residual:       residual * 100,
	}
}

// PortfolioAttribution is the weight-aggregated attribution across
// holdings.
type PortfolioAttribution struct {
	TotalReturnPct float64
	IncomeReturn   float64
	RatesReturn    float64
	SpreadReturn   float64
	Residual       float64
	ByHolding      []HoldingAttribution
}

// AggregateAttribution weights each holding's attribution by in.Weight and
// sums to the portfolio level.
func AggregateAttribution(inputs []AttributionInput) PortfolioAttribution {
	out := PortfolioAttribution{ByHolding: make([]HoldingAttribution, len(inputs))}
	totalWeight := 0.0
	for _, in := range inputs {
		totalWeight += in.Weight
	}
	if totalWeight == 0 {
		return out
	}

	for i, in := range inputs {
		a := CalculateAttribution(in)
		out.ByHolding[i] = a
		w := in.Weight / totalWeight
		out.TotalReturnPct += a.TotalReturnPct * w
		out.IncomeReturn += a.IncomeReturn * w
		out.RatesReturn += a.RatesReturn * w
		out.SpreadReturn += a.SpreadReturn * w
		out.Residual += a.Residual * w
	}
	return out
}
