// Package yield converts between bond price and yield under the four
// yield methods spec §4.4 names, and derives yield-to-worst across a
// bond's call/put schedule.
//
// Grounded on the teacher's bond/yield.go (solveYield/dirtyPriceAndDeriv:
// Newton-Raphson against a dirty-price function with ACT/ACT ICMA
// fractional first period, clamped bounds) generalized to the 4 yield
// methods per original_source/crates/convex-yas/src/yields/street.rs and
// convex-bonds/src/types/yield_convention.rs.
package yield

import (
	"math"

	"github.com/meenmo/molib/bond"
	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/moldecimal"
	"github.com/meenmo/molib/molerr"
	"github.com/meenmo/molib/solve"
)

// Method is the compounding convention a yield is solved/quoted under.
type Method string

const (
	Compounded Method = "compounded" // standard (1+y/f)^(-t*f) discounting
	Simple     Method = "simple"     // 1/(1+y*t) discounting, money-market style
	Discount   Method = "discount"   // 1 - y*t, T-bill discount-rate style
	AddOn      Method = "add_on"     // 1/(1+y*t) on a 360-day add-on basis (same shape as Simple)
)

// DirtyPriceFromYield computes the dirty price per 100 face given y under
// method, discounting coupons' fractional-year offsets from settlement.
// offsets[i] is the year fraction from settlement to coupons[i]'s date.
func DirtyPriceFromYield(y float64, offsets []float64, amounts []float64, frequency int, method Method) float64 {
	price := 0.0
	for i, t := range offsets {
		price += amounts[i] * discountFactor(y, t, frequency, method)
	}
	return price
}

func discountFactor(y, t float64, frequency int, method Method) float64 {
	switch method {
	case Simple, AddOn:
		return 1.0 / (1.0 + y*t)
	case Discount:
		return 1.0 - y*t
	default:
		f := float64(frequency)
		return math.Pow(1.0+y/f, -t*f)
	}
}

func discountFactorDeriv(y, t float64, frequency int, method Method) float64 {
	switch method {
	case Simple, AddOn:
		denom := 1.0 + y*t
		return -t / (denom * denom)
	case Discount:
		return -t
	default:
		f := float64(frequency)
		return -t * math.Pow(1.0+y/f, -t*f-1.0)
	}
}

// SolveYield finds y such that DirtyPriceFromYield(y, ...) == dirtyPrice,
// via Newton-Raphson with the teacher's bond-yield bounds/tolerance,
// falling back to solve.Hybrid's Brent bracket if Newton fails to converge.
func SolveYield(dirtyPrice float64, offsets, amounts []float64, frequency int, method Method) (solve.Result, error) {
	if len(offsets) != len(amounts) || len(offsets) == 0 {
		return solve.Result{}, molerr.New(molerr.InvalidInput, "yield.SolveYield", "offsets/amounts mismatch")
	}

	f := func(y float64) float64 {
		return DirtyPriceFromYield(y, offsets, amounts, frequency, method) - dirtyPrice
	}
	df := func(y float64) float64 {
		d := 0.0
		for i, t := range offsets {
			d += amounts[i] * discountFactorDeriv(y, t, frequency, method)
		}
		return d
	}

	bounds := [2]float64{-0.05, 0.50}
	cfg := solve.DefaultConfig()
	return solve.Hybrid(f, df, 0.025, &bounds, cfg)
}

// CallPutOption is one embedded redemption date spec §4.2's
// CallablePuttable bond can be exercised at.
type CallPutOption struct {
	Date  date.Date
	Price float64 // per 100 face, strike of the option
}

// YieldToWorst computes the yield to every scheduled redemption date (final
// maturity plus each call/put option) and returns the lowest — the
// "worst" outcome for a long bondholder, spec §4.4.
func YieldToWorst(dirtyPrice float64, settlement date.Date, schedule bond.Schedule, couponAmounts []float64, frequency int, method Method, options []CallPutOption, daysPerYear float64) (solve.Result, date.Date, error) {
	candidates := append([]CallPutOption{}, options...)
	if n := len(schedule.Periods); n > 0 {
		candidates = append(candidates, CallPutOption{Date: schedule.Periods[n-1].End, Price: 100.0})
	}
	if len(candidates) == 0 {
		return solve.Result{}, date.Date{}, molerr.New(molerr.BondSpecError, "yield.YieldToWorst", "no redemption dates available")
	}

	best := solve.Result{Root: math.Inf(1)}
	var bestDate date.Date
	found := false

	for _, candidate := range candidates {
		offsets, amounts := cashflowsTo(settlement, schedule, couponAmounts, candidate, daysPerYear)
		if len(offsets) == 0 {
			continue
		}
		result, err := SolveYield(dirtyPrice, offsets, amounts, frequency, method)
		if err != nil {
			continue
		}
		if !found || result.Root < best.Root {
			best, bestDate, found = result, candidate.Date, true
		}
	}
	if !found {
		return solve.Result{}, date.Date{}, molerr.New(molerr.SolverNonConvergence, "yield.YieldToWorst", "no candidate redemption converged")
	}
	return best, bestDate, nil
}

// cashflowsTo restricts the schedule's coupons to those up to and including
// redeemAt.Date and pays redeemAt.Price on the coupon dated redeemAt.Date.
// As with bond.GenerateCashflows, only the last entry of couponAmounts
// includes the par redemption; there it is replaced by redeemAt.Price.
func cashflowsTo(settlement date.Date, schedule bond.Schedule, couponAmounts []float64, redeemAt CallPutOption, daysPerYear float64) ([]float64, []float64) {
	var offsets, amounts []float64
	for i, p := range schedule.Periods {
		if p.End.After(redeemAt.Date) {
			break
		}
		if !p.End.After(settlement) {
			continue
		}
		offsets = append(offsets, float64(date.DaysBetween(settlement, p.End))/daysPerYear)
		amt := couponAmounts[i]
		if p.End.Equal(redeemAt.Date) {
			if i == len(schedule.Periods)-1 {
				amt -= 100.0 // the final amount already carries par
			}
			amt += redeemAt.Price
		}
		amounts = append(amounts, amt)
	}
	return offsets, amounts
}

// ToSpreadDecimal converts a solved yield into a moldecimal.Yield tagged
// with its compounding basis, for serialization at package boundaries.
func ToSpreadDecimal(root float64, frequency int) moldecimal.Yield {
	tag := moldecimal.CompAnnual
	switch frequency {
	case 2:
		tag = moldecimal.CompSemiAnnual
	case 4:
		tag = moldecimal.CompQuarterly
	case 12:
		tag = moldecimal.CompMonthly
	}
	return moldecimal.NewYield(root, tag)
}
