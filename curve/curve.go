// Package curve builds and evaluates discount/zero curves: a generic
// Curve interface, composable segment/derived curves, and a multi-
// instrument bootstrap loop.
//
// Grounded on the teacher's swap/curve/curve.go (BuildCurve's settlement ->
// payment-date grid -> par-rate interpolation -> sequential DF bootstrap ->
// zero-rate derivation pipeline, and its log-linear DF interpolation) and
// swap/basis/curve.go, generalized per
// original_source/crates/convex-curves/src/{lib,traits}.rs and
// convex-engine/src/curve_builder.rs into a CalibrationInstrument-driven
// bootstrap that is not tied to a single IRS/OIS leg convention — the
// concrete Deposit/FRA/Swap/OIS instruments in instruments.go adapt the
// teacher's OIS-specific bootstrap (buildOISCoupons/solveOISDiscountFactor)
// into instances of that interface.
package curve

import (
	"math"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/interpolate"
	"github.com/meenmo/molib/molerr"
)

// Curve is the read interface every curve implementation satisfies:
// discount factor and continuously-compounded zero rate at any maturity.
type Curve interface {
	DF(d date.Date) (float64, error)
	ZeroRate(d date.Date) (float64, error)
	Anchor() date.Date
}

// ForwardRate derives the simple forward rate between two dates on any curve.
func ForwardRate(c Curve, start, end date.Date, dcf float64) (float64, error) {
	dfStart, err := c.DF(start)
	if err != nil {
		return 0, err
	}
	dfEnd, err := c.DF(end)
	if err != nil {
		return 0, err
	}
	if dcf <= 0 {
		return 0, molerr.New(molerr.InvalidInput, "curve.ForwardRate", "day-count fraction must be positive")
	}
	return (dfStart/dfEnd - 1.0) / dcf, nil
}

// Pillar is one bootstrapped curve node.
type Pillar struct {
	Date date.Date
	Time float64 // year fraction from anchor, on the curve's own time basis
	DF   float64
}

// SegmentedCurve is a curve defined by discount factors at a sorted set of
// pillars, with discount factors elsewhere obtained by interpolating the
// continuously-compounded zero rate (log-linear on DF, equivalently linear
// on zero*time) — the teacher's interpolateDF/interpolatePseudoDiscountFactor
// pattern, held in an interpolate.Interpolator (an interpolate.Linear).
type SegmentedCurve struct {
	anchor  date.Date
	pillars []Pillar
	interp  interpolate.Interpolator
}

// NewSegmentedCurve builds a curve from pillars (must be sorted ascending
// by Time, Time[0] == 0 with DF == 1.0), interpolating zero*time linearly
// between pillars and extrapolating it linearly beyond the last pillar.
func NewSegmentedCurve(anchor date.Date, pillars []Pillar) (*SegmentedCurve, error) {
	if len(pillars) < 2 {
		return nil, molerr.New(molerr.InvalidInput, "curve.NewSegmentedCurve", "need at least 2 pillars")
	}
	xs := make([]float64, len(pillars))
	ys := make([]float64, len(pillars)) // zero*time = -ln(DF)
	for i, p := range pillars {
		if p.DF <= 0 {
			return nil, molerr.New(molerr.CurveError, "curve.NewSegmentedCurve", "non-positive discount factor").
				WithContext("date", p.Date.String())
		}
		xs[i] = p.Time
		ys[i] = -math.Log(p.DF)
	}
	interp, err := interpolate.NewLinear(xs, ys, interpolate.ExtrapolationLinear)
	if err != nil {
		return nil, molerr.Wrap(molerr.CurveError, "curve.NewSegmentedCurve", err)
	}
	return &SegmentedCurve{anchor: anchor, pillars: pillars, interp: interp}, nil
}

func (c *SegmentedCurve) Anchor() date.Date { return c.anchor }

func (c *SegmentedCurve) timeOf(d date.Date) float64 {
	return float64(date.DaysBetween(c.anchor, d)) / 365.0
}

func (c *SegmentedCurve) DF(d date.Date) (float64, error) {
	t := c.timeOf(d)
	if t == 0 {
		return 1.0, nil
	}
	negLogDF, err := c.interp.At(t)
	if err != nil {
		return 0, molerr.Wrap(molerr.CurveError, "curve.SegmentedCurve.DF", err)
	}
	return math.Exp(-negLogDF), nil
}

func (c *SegmentedCurve) ZeroRate(d date.Date) (float64, error) {
	t := c.timeOf(d)
	if t <= 0 {
		return 0, molerr.New(molerr.InvalidInput, "curve.SegmentedCurve.ZeroRate", "date must be after anchor")
	}
	df, err := c.DF(d)
	if err != nil {
		return 0, err
	}
	return -math.Log(df) / t, nil
}

// Pillars returns the bootstrapped pillar set (read-only use: copy before mutating).
func (c *SegmentedCurve) Pillars() []Pillar { return c.pillars }

// DerivedCurve applies a parallel or key-rate bump to a base curve without
// re-bootstrapping — used for risk-metric bump-and-reprice (spec §5).
type DerivedCurve struct {
	base  Curve
	bumps []Bump
}

// Bump is a shift of BP basis points applied to the zero rate around Time.
// Width is the triangular kernel's half-width in years: zero means the bump
// is flat across the whole curve (a parallel shift); a positive Width
// decays linearly to zero at Time±Width, localizing the bump to a single
// key-rate bucket per spec §4.6's KRD requirement.
type Bump struct {
	Time  float64 // year fraction from anchor
	BP    float64 // basis points
	Width float64 // 0 = parallel; >0 = triangular key-rate localization
}

func NewDerivedCurve(base Curve, bumps ...Bump) *DerivedCurve {
	return &DerivedCurve{base: base, bumps: bumps}
}

func (d *DerivedCurve) Anchor() date.Date { return d.base.Anchor() }

func (d *DerivedCurve) totalBumpAt(t float64) float64 {
	total := 0.0
	for _, b := range d.bumps {
		if b.Width <= 0 {
			total += b.BP / 10000.0
			continue
		}
		kernel := 1.0 - math.Abs(t-b.Time)/b.Width
		if kernel < 0 {
			kernel = 0
		}
		total += (b.BP / 10000.0) * kernel
	}
	return total
}

func (d *DerivedCurve) ZeroRate(dt date.Date) (float64, error) {
	base, err := d.base.ZeroRate(dt)
	if err != nil {
		return 0, err
	}
	t := float64(date.DaysBetween(d.base.Anchor(), dt)) / 365.0
	return base + d.totalBumpAt(t), nil
}

func (d *DerivedCurve) DF(dt date.Date) (float64, error) {
	t := float64(date.DaysBetween(d.base.Anchor(), dt)) / 365.0
	if t <= 0 {
		return 1.0, nil
	}
	z, err := d.ZeroRate(dt)
	if err != nil {
		return 0, err
	}
	return math.Exp(-z * t), nil
}
