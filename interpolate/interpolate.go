// Package interpolate implements the interpolation methods used to fill
// gaps between curve pillars and to evaluate parametric curve families.
//
// Grounded on the teacher's swap/curve/curve.go (interpolateDF,
// interpolatePseudoDiscountFactor — both log-linear over discount factors)
// generalized per original_source/crates/convex-math/src/interpolation/
// {cubic_spline,log_linear}.rs, with MonotoneConvex/PiecewiseConstant/
// NelsonSiegel added directly from spec §4.3's method table (the Rust
// reference only implements Linear/LogLinear/CubicSpline in full;
// NelsonSiegel/Svensson ship as point-evaluation only, no calibrator).
package interpolate

import (
	"math"
	"sort"

	"github.com/meenmo/molib/molerr"
)

// ExtrapolationPolicy governs behavior when x falls outside [min(xs), max(xs)].
type ExtrapolationPolicy string

const (
	// ExtrapolationForbidden errors on out-of-range x.
	ExtrapolationForbidden ExtrapolationPolicy = "forbidden"
	// ExtrapolationFlat holds the boundary value constant.
	ExtrapolationFlat ExtrapolationPolicy = "flat"
	// ExtrapolationLinear extends the boundary segment's slope.
	ExtrapolationLinear ExtrapolationPolicy = "linear"
)

// Interpolator evaluates a curve of (x, y) points at an arbitrary x.
type Interpolator interface {
	At(x float64) (float64, error)
	MinX() float64
	MaxX() float64
}

func validate(xs, ys []float64, minPoints int) error {
	if len(xs) != len(ys) {
		return molerr.New(molerr.InvalidInput, "interpolate", "xs and ys must have the same length")
	}
	if len(xs) < minPoints {
		return molerr.New(molerr.InvalidInput, "interpolate", "insufficient data points").
			WithContext("have", len(xs)).WithContext("need", minPoints)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return molerr.New(molerr.InvalidInput, "interpolate", "x values must be strictly increasing")
		}
	}
	return nil
}

// findSegment returns i such that xs[i] <= x < xs[i+1], clamped to
// [0, len(xs)-2].
func findSegment(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i > 0 && (i == len(xs) || xs[i] != x) {
		i--
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	if i < 0 {
		i = 0
	}
	return i
}

func extrapolate(xs, ys []float64, x float64, policy ExtrapolationPolicy) (float64, error) {
	minX, maxX := xs[0], xs[len(xs)-1]
	switch policy {
	case ExtrapolationFlat:
		if x < minX {
			return ys[0], nil
		}
		return ys[len(ys)-1], nil
	case ExtrapolationLinear:
		if x < minX {
			slope := (ys[1] - ys[0]) / (xs[1] - xs[0])
			return ys[0] + slope*(x-minX), nil
		}
		n := len(xs)
		slope := (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
		return ys[n-1] + slope*(x-maxX), nil
	default:
		return 0, molerr.New(molerr.OutOfBounds, "interpolate", "extrapolation not allowed").
			WithContext("x", x).WithContext("min", minX).WithContext("max", maxX)
	}
}

func inRange(xs []float64, x float64) bool {
	return x >= xs[0] && x <= xs[len(xs)-1]
}

// Linear interpolates piecewise-linearly between adjacent points.
type Linear struct {
	xs, ys []float64
	policy ExtrapolationPolicy
}

func NewLinear(xs, ys []float64, policy ExtrapolationPolicy) (*Linear, error) {
	if err := validate(xs, ys, 2); err != nil {
		return nil, err
	}
	return &Linear{xs: xs, ys: ys, policy: policy}, nil
}

func (l *Linear) At(x float64) (float64, error) {
	if !inRange(l.xs, x) {
		return extrapolate(l.xs, l.ys, x, l.policy)
	}
	i := findSegment(l.xs, x)
	w := (x - l.xs[i]) / (l.xs[i+1] - l.xs[i])
	return l.ys[i] + w*(l.ys[i+1]-l.ys[i]), nil
}

func (l *Linear) MinX() float64 { return l.xs[0] }
func (l *Linear) MaxX() float64 { return l.xs[len(l.xs)-1] }

// LogLinear interpolates log(y) linearly then exponentiates — the discount
// factor interpolation the teacher's curve bootstrap uses throughout
// (interpolateDF, interpolatePseudoDiscountFactor).
type LogLinear struct {
	xs, logYs, ys []float64
	policy        ExtrapolationPolicy
}

func NewLogLinear(xs, ys []float64, policy ExtrapolationPolicy) (*LogLinear, error) {
	if err := validate(xs, ys, 2); err != nil {
		return nil, err
	}
	logYs := make([]float64, len(ys))
	for i, y := range ys {
		if y <= 0 {
			return nil, molerr.New(molerr.MathDomainError, "interpolate.NewLogLinear", "y values must be positive")
		}
		logYs[i] = math.Log(y)
	}
	return &LogLinear{xs: xs, logYs: logYs, ys: ys, policy: policy}, nil
}

func (l *LogLinear) At(x float64) (float64, error) {
	if !inRange(l.xs, x) {
		y, err := extrapolate(l.xs, l.ys, x, l.policy)
		return y, err
	}
	i := findSegment(l.xs, x)
	w := (x - l.xs[i]) / (l.xs[i+1] - l.xs[i])
	logY := l.logYs[i] + w*(l.logYs[i+1]-l.logYs[i])
	return math.Exp(logY), nil
}

func (l *LogLinear) MinX() float64 { return l.xs[0] }
func (l *LogLinear) MaxX() float64 { return l.xs[len(l.xs)-1] }

// PiecewiseConstant holds the value of the preceding pillar constant across
// each segment (common for short-end money-market forward curves).
type PiecewiseConstant struct {
	xs, ys []float64
	policy ExtrapolationPolicy
}

func NewPiecewiseConstant(xs, ys []float64, policy ExtrapolationPolicy) (*PiecewiseConstant, error) {
	if err := validate(xs, ys, 1); err != nil {
		return nil, err
	}
	return &PiecewiseConstant{xs: xs, ys: ys, policy: policy}, nil
}

func (p *PiecewiseConstant) At(x float64) (float64, error) {
	if !inRange(p.xs, x) {
		return extrapolate(p.xs, p.ys, x, p.policy)
	}
	i := findSegment(p.xs, x)
	return p.ys[i], nil
}

func (p *PiecewiseConstant) MinX() float64 { return p.xs[0] }
func (p *PiecewiseConstant) MaxX() float64 { return p.xs[len(p.xs)-1] }
