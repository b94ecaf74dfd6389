package interpolate

import "github.com/meenmo/molib/molerr"

// CubicSpline is a natural cubic spline: piecewise cubics with continuous
// first and second derivatives, and zero second derivative at both
// endpoints.
//
// Grounded directly on
// original_source/crates/convex-math/src/interpolation/cubic_spline.rs
// (compute_second_derivatives' tridiagonal solve, find_segment's clamped
// binary search).
type CubicSpline struct {
	xs, ys, y2s []float64
	policy      ExtrapolationPolicy
}

func NewCubicSpline(xs, ys []float64, policy ExtrapolationPolicy) (*CubicSpline, error) {
	if err := validate(xs, ys, 3); err != nil {
		return nil, err
	}
	return &CubicSpline{xs: xs, ys: ys, y2s: secondDerivatives(xs, ys), policy: policy}, nil
}

func secondDerivatives(xs, ys []float64) []float64 {
	n := len(xs)
	y2s := make([]float64, n)
	u := make([]float64, n-1)

	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*y2s[i-1] + 2.0
		y2s[i] = (sig - 1.0) / p
		u[i] = (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - (ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6.0*u[i]/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}

	for i := n - 2; i >= 0; i-- {
		y2s[i] = y2s[i]*y2s[i+1] + u[i]
	}
	return y2s
}

func (c *CubicSpline) At(x float64) (float64, error) {
	if !inRange(c.xs, x) {
		return extrapolate(c.xs, c.ys, x, c.policy)
	}
	i := findSegment(c.xs, x)

	xLo, xHi := c.xs[i], c.xs[i+1]
	yLo, yHi := c.ys[i], c.ys[i+1]
	y2Lo, y2Hi := c.y2s[i], c.y2s[i+1]

	h := xHi - xLo
	if h <= 0 {
		return 0, molerr.New(molerr.InvalidInput, "interpolate.CubicSpline.At", "degenerate segment")
	}
	a := (xHi - x) / h
	b := (x - xLo) / h

	y := a*yLo + b*yHi + ((a*a*a-a)*y2Lo+(b*b*b-b)*y2Hi)*(h*h)/6.0
	return y, nil
}

func (c *CubicSpline) MinX() float64 { return c.xs[0] }
func (c *CubicSpline) MaxX() float64 { return c.xs[len(c.xs)-1] }
