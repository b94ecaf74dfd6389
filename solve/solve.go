// Package solve implements the root-finding algorithms the pricing core
// uses to invert price<->yield and to bootstrap curves: Newton-Raphson,
// Brent's method, and a hybrid that falls back from one to the other.
//
// Grounded on the teacher's bond/yield.go (solveYield: Newton-Raphson with
// clamped bounds, tolerance/iteration constants, divergence via non-finite
// derivative) and generalized per
// original_source/crates/convex-math/src/solvers/hybrid.rs (divergence
// detection via residual growth, auto-bracket expansion, hybrid fallback).
package solve

import (
	"math"

	"github.com/meenmo/molib/molerr"
	"github.com/rs/zerolog"
)

// Config bounds a solve call. Tolerance is on |f(x)|, MaxIterations caps
// each method attempted.
type Config struct {
	Tolerance     float64
	MaxIterations int
	// Logger, if non-nil, receives per-iteration diagnostics (teacher's
	// pattern of optional zerolog wiring, e.g. swap/curve.go's bootstrap trace).
	Logger *zerolog.Logger
}

// DefaultConfig mirrors the teacher's yieldTolerance/yieldMaxIter constants.
func DefaultConfig() Config {
	return Config{Tolerance: 1e-12, MaxIterations: 100}
}

// Result reports where a solver landed and how hard it worked to get there.
type Result struct {
	Root       float64
	Iterations int
	Residual   float64
	Method     string
}

func (c Config) log(iter int, x, fx float64, method string) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug().Int("iter", iter).Float64("x", x).Float64("fx", fx).Str("method", method).Msg("solve step")
}

// Newton runs Newton-Raphson from x0 using analytic derivative df, clamped
// to [lo, hi] at every step (per the teacher's clamp(y, yieldFloor,
// yieldCeiling) pattern).
func Newton(f, df func(float64) float64, x0, lo, hi float64, cfg Config) (Result, error) {
	x := clamp(x0, lo, hi)
	prevResidual := math.MaxFloat64
	divergence := 0

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultConfig().MaxIterations
	}

	for iter := 0; iter < maxIter; iter++ {
		fx := f(x)
		residual := math.Abs(fx)
		cfg.log(iter, x, fx, "newton")

		if residual < cfg.Tolerance {
			return Result{Root: x, Iterations: iter, Residual: fx, Method: "newton"}, nil
		}
		if residual > prevResidual*2.0 {
			divergence++
			if divergence >= 3 {
				return Result{}, molerr.New(molerr.SolverNonConvergence, "solve.Newton", "diverging")
			}
		} else {
			divergence = 0
		}
		prevResidual = residual

		dfx := df(x)
		if math.Abs(dfx) < 1e-15 {
			return Result{}, molerr.New(molerr.SolverNonConvergence, "solve.Newton", "derivative too small")
		}

		step := fx / dfx
		if math.Abs(step) > 1e10 {
			return Result{}, molerr.New(molerr.SolverNonConvergence, "solve.Newton", "step too large")
		}

		x = clamp(x-step, lo, hi)
		if !isFinite(x) {
			return Result{}, molerr.New(molerr.SolverNonConvergence, "solve.Newton", "non-finite iterate")
		}
		if math.Abs(step) < cfg.Tolerance {
			return Result{Root: x, Iterations: iter + 1, Residual: f(x), Method: "newton"}, nil
		}
	}

	return Result{}, molerr.
		New(molerr.SolverNonConvergence, "solve.Newton", "did not converge").
		WithContext("iterations", maxIter)
}

// Brent finds a root in [a, b] where f(a) and f(b) have opposite signs,
// combining bisection, secant, and inverse quadratic interpolation steps.
func Brent(f func(float64) float64, a, b float64, cfg Config) (Result, error) {
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return Result{}, molerr.New(molerr.SolverNonConvergence, "solve.Brent", "root not bracketed")
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c, fc := a, fa
	mflag := true
	var d float64

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultConfig().MaxIterations
	}

	for iter := 0; iter < maxIter; iter++ {
		cfg.log(iter, b, fb, "brent")
		if math.Abs(fb) < cfg.Tolerance || math.Abs(b-a) < cfg.Tolerance {
			return Result{Root: b, Iterations: iter, Residual: fb, Method: "brent"}, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant.
			s = b - fb*(b-a)/(fb-fa)
		}

		lowBound := (3*a + b) / 4.0
		useBisection := (s < math.Min(lowBound, b) || s > math.Max(lowBound, b)) ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2.0) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2.0) ||
			(mflag && math.Abs(b-c) < cfg.Tolerance) ||
			(!mflag && math.Abs(c-d) < cfg.Tolerance)

		if useBisection {
			s = (a + b) / 2.0
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb

		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}

		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return Result{}, molerr.
		New(molerr.SolverNonConvergence, "solve.Brent", "did not converge").
		WithContext("iterations", maxIter)
}

// Hybrid tries Newton-Raphson first for its quadratic convergence, falling
// back to Brent (with the supplied bounds, or an auto-expanded bracket) if
// Newton diverges, stalls on a near-zero derivative, or never converges.
func Hybrid(f, df func(float64) float64, x0 float64, bounds *[2]float64, cfg Config) (Result, error) {
	lo, hi := math.Inf(-1), math.Inf(1)
	if bounds != nil {
		lo, hi = bounds[0], bounds[1]
	}

	newtonCfg := cfg
	if newtonCfg.MaxIterations <= 0 || newtonCfg.MaxIterations > 20 {
		newtonCfg.MaxIterations = 20
	}

	result, err := Newton(f, df, x0, lo, hi, newtonCfg)
	if err == nil {
		return result, nil
	}

	if bounds != nil {
		return Brent(f, bounds[0], bounds[1], cfg)
	}

	a, b, found := findBracket(f, x0)
	if !found {
		return Result{}, molerr.
			New(molerr.SolverNonConvergence, "solve.Hybrid", "newton failed and no bracket found").
			WithContext("cause", err.Error())
	}
	return Brent(f, a, b, cfg)
}

// findBracket expands outward from x0 looking for a sign change, mirroring
// original_source's find_bracket exponential-expansion search.
func findBracket(f func(float64) float64, x0 float64) (float64, float64, bool) {
	left, right := x0, x0
	if math.Abs(x0) < 1e-10 {
		left, right = -1.0, 1.0
	}
	delta := 0.1
	fInit := f(x0)

	for i := 0; i < 50; i++ {
		left -= delta
		right += delta
		fLeft, fRight := f(left), f(right)

		switch {
		case fLeft*fInit < 0:
			return left, x0, true
		case fRight*fInit < 0:
			return x0, right, true
		case fLeft*fRight < 0:
			return left, right, true
		}

		delta *= 2.0
		if delta > 1e6 {
			break
		}
	}
	return 0, 0, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
