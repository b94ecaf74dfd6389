// Package risk computes bond price-sensitivity metrics: Macaulay,
// modified, and effective duration, convexity, DV01/BPV, and key-rate
// duration profiles, spec §4.6.
//
// Grounded on original_source/crates/convex-bonds/src/risk/mod.rs
// (RiskCalculator::duration/convexity/dv01, identical weighted-time-to-PV
// and bump-and-reprice formulas), in the teacher's float64-domain,
// struct-of-results style (solve/curve packages return plain Result
// structs rather than an accumulator object).
package risk

import (
	"math"

	"github.com/meenmo/molib/curve"
	"github.com/meenmo/molib/yield"
)

// Cashflow is a dated amount discounted from settlement for risk metrics.
type Cashflow struct {
	YearsFromSettlement float64
	Amount              float64
}

// Duration holds the three duration measures spec §4.6 requires.
type Duration struct {
	Macaulay float64 // years
	Modified float64 // % price change per unit yield change
	Dollar   float64 // modified * dirtyPrice / 100 (DV01-scaled dollar duration)
}

// Metrics bundles the full risk-metric set for one bond at one yield.
type Metrics struct {
	Duration  Duration
	Convexity float64
	DV01      float64 // per 100 face, per 1bp
	BPV       float64 // alias of DV01
}

// Calculate reproduces the teacher's RiskCalculator.calculate: duration,
// convexity, and DV01 in one pass at the given yield/frequency/method.
func Calculate(cashflows []Cashflow, y float64, frequency int, method yield.Method) Metrics {
	dur := ComputeDuration(cashflows, y, frequency, method)
	conv := ComputeConvexity(cashflows, y, frequency, method)
	dv01 := ComputeDV01(cashflows, y, frequency, method)
	return Metrics{Duration: dur, Convexity: conv, DV01: dv01, BPV: dv01}
}

func discountFactorAt(y, t float64, frequency int, method yield.Method) float64 {
	switch method {
	case yield.Simple, yield.AddOn:
		return 1.0 / (1.0 + y*t)
	case yield.Discount:
		return 1.0 - y*t
	default:
		if frequency <= 0 {
			return math.Exp(-y * t)
		}
		f := float64(frequency)
		return math.Pow(1.0+y/f, -t*f)
	}
}

// ComputeDuration computes Macaulay, modified, and dollar duration, per the
// teacher's weighted-time-over-PV formula.
func ComputeDuration(cashflows []Cashflow, y float64, frequency int, method yield.Method) Duration {
	pv, weightedTime := 0.0, 0.0
	for _, cf := range cashflows {
		df := discountFactorAt(y, cf.YearsFromSettlement, frequency, method)
		cfPV := cf.Amount * df
		pv += cfPV
		weightedTime += cf.YearsFromSettlement * cfPV
	}

	macaulay := 0.0
	if pv > 0 {
		macaulay = weightedTime / pv
	}

	modified := macaulay
	if frequency > 0 {
		modified = macaulay / (1.0 + y/float64(frequency))
	}

	dollar := modified * pv / 100.0

	return Duration{Macaulay: macaulay, Modified: modified, Dollar: dollar}
}

// ComputeConvexity mirrors the teacher's convexity formula: sum of
// t*(t+1/freq)*cf_pv, normalized by pv*(1+y/freq)^2.
func ComputeConvexity(cashflows []Cashflow, y float64, frequency int, method yield.Method) float64 {
	pv, convexSum := 0.0, 0.0
	freq := float64(frequency)
	if freq <= 0 {
		freq = 1.0
	}

	for _, cf := range cashflows {
		df := discountFactorAt(y, cf.YearsFromSettlement, frequency, method)
		cfPV := cf.Amount * df
		pv += cfPV

		periodT := cf.YearsFromSettlement + 1.0/freq
		convexSum += cf.YearsFromSettlement * periodT * cfPV
	}

	if pv <= 0 || frequency <= 0 {
		return 0
	}
	denom := pv * (1.0 + y/freq) * (1.0 + y/freq)
	return convexSum / denom
}

// ComputeDV01 bumps yield by +/-1bp and reprices, returning
// (priceDown - priceUp) / 2, per the teacher's bump-and-reprice DV01.
func ComputeDV01(cashflows []Cashflow, y float64, frequency int, method yield.Method) float64 {
	const bp = 0.0001
	priceAt := func(yy float64) float64 {
		p := 0.0
		for _, cf := range cashflows {
			p += cf.Amount * discountFactorAt(yy, cf.YearsFromSettlement, frequency, method)
		}
		return p
	}
	priceUp := priceAt(y + bp)
	priceDown := priceAt(y - bp)
	return (priceDown - priceUp) / 2.0
}

// EstimatePriceChange approximates ΔP from duration and convexity for a
// given yield change dy, per the teacher's estimate_price_change:
//
//	ΔP ≈ -D_mod * P * Δy + 0.5 * C * P * Δy²
func EstimatePriceChange(m Metrics, price, dy float64) float64 {
	durationEffect := -m.Duration.Modified * price * dy
	convexityEffect := 0.5 * m.Convexity * price * dy * dy
	return durationEffect + convexityEffect
}

// EffectiveDuration computes duration via full bump-and-reprice against a
// curve (rather than a flat yield), appropriate for bonds with optionality
// where the modified-duration closed form does not hold: the curve, not the
// cash flows, absorbs the bump, so it captures changes in the cash flows
// themselves (e.g. a callable bond's exercise decision) when priceFn
// re-derives them from the bumped curve.
func EffectiveDuration(dirtyPrice float64, bumpBP float64, priceFn func(bumped curve.Curve) (float64, error), base curve.Curve) (float64, error) {
	upCurve := curve.NewDerivedCurve(base, curve.Bump{Time: 0, BP: bumpBP})
	downCurve := curve.NewDerivedCurve(base, curve.Bump{Time: 0, BP: -bumpBP})

	priceUp, err := priceFn(upCurve)
	if err != nil {
		return 0, err
	}
	priceDown, err := priceFn(downCurve)
	if err != nil {
		return 0, err
	}

	dy := 2.0 * bumpBP * 1e-4
	return (priceDown - priceUp) / (dirtyPrice * dy), nil
}

// KeyRateBucket is one tenor's key-rate duration contribution.
type KeyRateBucket struct {
	Time     float64 // years
	Duration float64
}

// KeyRateDurationProfile computes a key-rate duration at each bucket time by
// bumping only that pillar (via curve.DerivedCurve's localized bump) and
// repricing, holding all other pillars fixed — spec §4.6's KRD requirement.
func KeyRateDurationProfile(dirtyPrice float64, bucketTimes []float64, bumpBP float64, priceFn func(bumped curve.Curve) (float64, error), base curve.Curve) ([]KeyRateBucket, error) {
	profile := make([]KeyRateBucket, 0, len(bucketTimes))
	for i, t := range bucketTimes {
		width := bucketWidth(bucketTimes, i)
		upCurve := curve.NewDerivedCurve(base, curve.Bump{Time: t, BP: bumpBP, Width: width})
		downCurve := curve.NewDerivedCurve(base, curve.Bump{Time: t, BP: -bumpBP, Width: width})

		priceUp, err := priceFn(upCurve)
		if err != nil {
			return nil, err
		}
		priceDown, err := priceFn(downCurve)
		if err != nil {
			return nil, err
		}

		dy := 2.0 * bumpBP * 1e-4
		krd := (priceDown - priceUp) / (dirtyPrice * dy)
		profile = append(profile, KeyRateBucket{Time: t, Duration: krd})
	}
	return profile, nil
}

// bucketWidth picks the triangular kernel half-width for bucketTimes[i] as
// the distance to its nearer neighbor, so adjacent buckets' kernels meet at
// the midpoint and tile the curve without overlap or gaps.
func bucketWidth(bucketTimes []float64, i int) float64 {
	width := math.Inf(1)
	if i > 0 {
		width = math.Min(width, bucketTimes[i]-bucketTimes[i-1])
	}
	if i < len(bucketTimes)-1 {
		width = math.Min(width, bucketTimes[i+1]-bucketTimes[i])
	}
	if math.IsInf(width, 1) {
		return 0 // single bucket: parallel bump
	}
	return width
}
