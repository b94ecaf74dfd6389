package curve

import (
	"math"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/molerr"
	"github.com/meenmo/molib/solve"
)

// CalibrationInstrument is one market quote the bootstrap solves for: given
// the curve built so far (all earlier pillars), it returns the residual
// function whose root is the unknown pillar's discount factor.
//
// Grounded on original_source/crates/convex-curves/src/instruments/
// {deposit,fra,ois}.rs (trait-object calibration instruments) and on the
// teacher's buildOISCoupons/solveOISDiscountFactor, which this interface
// generalizes away from a single IRS/OIS leg convention.
type CalibrationInstrument interface {
	Maturity() date.Date
	// Residual returns f(df) whose root is the unknown discount factor at
	// Maturity, given the already-bootstrapped prior pillars.
	Residual(prior []Pillar, anchor date.Date) func(df float64) float64
}

// Deposit is a single-period money-market deposit: DF(maturity) =
// 1 / (1 + rate*dcf).
type Deposit struct {
	MaturityDate date.Date
	Rate         float64 // simple annualized rate, decimal
	DCF          float64 // day-count fraction from settlement to maturity
}

func (d Deposit) Maturity() date.Date { return d.MaturityDate }

func (d Deposit) Residual(_ []Pillar, _ date.Date) func(float64) float64 {
	target := 1.0 / (1.0 + d.Rate*d.DCF)
	return func(df float64) float64 { return df - target }
}

// FRA is a forward-rate agreement: given the DF at the FRA's start (already
// bootstrapped), solves for the DF at its end such that the implied forward
// equals Rate.
type FRA struct {
	StartDate, EndDate date.Date
	Rate               float64
	DCF                float64
}

func (f FRA) Maturity() date.Date { return f.EndDate }

func (f FRA) Residual(prior []Pillar, _ date.Date) func(float64) float64 {
	dfStart := dfAt(prior, f.StartDate)
	return func(dfEnd float64) float64 {
		implied := (dfStart/dfEnd - 1.0) / f.DCF
		return implied - f.Rate
	}
}

// Swap is a par interest-rate swap: the fixed leg (annuity of Frequency
// payments/year at Rate over periods with DayCountFractions) must price to
// par against the floating leg, discounted off the curve being built.
// Mirrors the teacher's buildOISCoupons/solveOISDiscountFactor par-swap
// condition, generalized to arbitrary frequency/day count.
type Swap struct {
	MaturityDate      date.Date
	Rate              float64
	PeriodEndDates    []date.Date // fixed-leg payment dates, ascending, last == MaturityDate
	DayCountFractions []float64   // per period, same length as PeriodEndDates
}

func (s Swap) Maturity() date.Date { return s.MaturityDate }

func (s Swap) Residual(prior []Pillar, anchor date.Date) func(float64) float64 {
	return func(dfMaturity float64) float64 {
		annuity := 0.0
		for i, d := range s.PeriodEndDates {
			var df float64
			if d.Equal(s.MaturityDate) {
				df = dfMaturity
			} else {
				df = dfAtOrInterpolated(prior, anchor, d)
			}
			annuity += s.DayCountFractions[i] * df
		}
		dfStart := 1.0
		if len(prior) > 0 {
			dfStart = prior[0].DF
		}
		floatingLeg := dfStart - dfMaturity
		return s.Rate*annuity - floatingLeg
	}
}

// OIS is a par overnight-index swap: identical par condition to Swap, kept
// as a distinct type so callers can tag instruments by kind (spec §9's
// CalibrationInstrument kind discriminator) even though the math is shared.
type OIS struct {
	Swap
}

// TreasuryBill is a discount-basis money-market instrument: DF(maturity) =
// 1 - DiscountRate*DCF (US T-bill quoting convention).
type TreasuryBill struct {
	MaturityDate date.Date
	DiscountRate float64
	DCF          float64
}

func (b TreasuryBill) Maturity() date.Date { return b.MaturityDate }

func (b TreasuryBill) Residual(_ []Pillar, _ date.Date) func(float64) float64 {
	target := 1.0 - b.DiscountRate*b.DCF
	return func(df float64) float64 { return df - target }
}

// CouponBond calibrates off a bond's clean/dirty price: the unknown
// maturity DF must make the discounted cash flows (from prior pillars plus
// the unknown final DF) equal the bond's dirty price per unit face.
type CouponBond struct {
	MaturityDate    date.Date
	DirtyPrice      float64 // per 100 face
	CouponDates     []date.Date
	CouponAmounts   []float64 // per 100 face, including final redemption on the last date
}

func (b CouponBond) Maturity() date.Date { return b.MaturityDate }

func (b CouponBond) Residual(prior []Pillar, anchor date.Date) func(float64) float64 {
	return func(dfMaturity float64) float64 {
		pv := 0.0
		for i, d := range b.CouponDates {
			var df float64
			if d.Equal(b.MaturityDate) {
				df = dfMaturity
			} else {
				df = dfAtOrInterpolated(prior, anchor, d)
			}
			pv += b.CouponAmounts[i] * df
		}
		return pv - b.DirtyPrice
	}
}

func dfAt(pillars []Pillar, d date.Date) float64 {
	for _, p := range pillars {
		if p.Date.Equal(d) {
			return p.DF
		}
	}
	return 1.0
}

// dfAtOrInterpolated looks up an exact pillar or log-linearly interpolates
// between the two bracketing pillars already bootstrapped — matching the
// teacher's interpolateUnknownDF log-linear scheme.
func dfAtOrInterpolated(pillars []Pillar, anchor date.Date, d date.Date) float64 {
	if len(pillars) == 0 {
		return 1.0
	}
	t := float64(date.DaysBetween(anchor, d)) / 365.0
	if t <= 0 {
		return 1.0
	}
	var lo, hi *Pillar
	for i := range pillars {
		p := &pillars[i]
		if p.Time <= t {
			lo = p
		}
		if p.Time >= t && hi == nil {
			hi = p
		}
	}
	switch {
	case lo == nil:
		return hi.DF
	case hi == nil:
		return lo.DF
	case lo.Time == hi.Time:
		return lo.DF
	default:
		w := (t - lo.Time) / (hi.Time - lo.Time)
		logLo, logHi := math.Log(lo.DF), math.Log(hi.DF)
		return math.Exp(logLo + w*(logHi-logLo))
	}
}

// Bootstrap solves a sorted-by-maturity list of CalibrationInstruments
// sequentially, each instrument's unknown discount factor found via
// solve.Brent on the bracket [1e-6, 1.5] against the instruments
// bootstrapped so far — the generic
// form of the teacher's bootstrapDiscountFactors loop.
func Bootstrap(anchor date.Date, instruments []CalibrationInstrument) (*SegmentedCurve, error) {
	if len(instruments) == 0 {
		return nil, molerr.New(molerr.InvalidInput, "curve.Bootstrap", "need at least one instrument")
	}
	pillars := []Pillar{{Date: anchor, Time: 0, DF: 1.0}}

	for _, inst := range instruments {
		maturity := inst.Maturity()
		t := float64(date.DaysBetween(anchor, maturity)) / 365.0
		if t <= 0 {
			return nil, molerr.New(molerr.InvalidInput, "curve.Bootstrap", "instrument maturity must be after anchor").
				WithContext("maturity", maturity.String())
		}
		residual := inst.Residual(pillars, anchor)

		bounds := [2]float64{1e-6, 1.5}
		result, err := solve.Brent(residual, bounds[0], bounds[1], solve.DefaultConfig())
		if err != nil {
			return nil, molerr.Wrap(molerr.CalibrationFailure, "curve.Bootstrap", err).
				WithContext("maturity", maturity.String())
		}
		pillars = append(pillars, Pillar{Date: maturity, Time: t, DF: result.Root})
	}

	return NewSegmentedCurve(anchor, pillars)
}
