package interpolate

import (
	"math"

	"github.com/meenmo/molib/molerr"
)

// NelsonSiegel is the parametric yield-curve family
//
//	z(m) = beta0 + beta1*((1-e^(-m/tau))/(m/tau)) + beta2*((1-e^(-m/tau))/(m/tau) - e^(-m/tau))
//
// beta0 is the long-run level, beta1 the short-term slope component,
// beta2 the medium-term curvature component, tau the decay parameter.
//
// No teacher or original_source equivalent calibrates this family: this
// package ships point evaluation of a parameter set supplied by the caller,
// not a calibrator — nothing in this module fits beta0..tau to market
// quotes.
type NelsonSiegel struct {
	Beta0, Beta1, Beta2, Tau float64
}

func (ns NelsonSiegel) At(m float64) (float64, error) {
	if ns.Tau <= 0 {
		return 0, molerr.New(molerr.InvalidInput, "interpolate.NelsonSiegel.At", "tau must be positive")
	}
	if m <= 0 {
		return ns.Beta0 + ns.Beta1, nil
	}
	x := m / ns.Tau
	decay := math.Exp(-x)
	slopeTerm := (1 - decay) / x
	return ns.Beta0 + ns.Beta1*slopeTerm + ns.Beta2*(slopeTerm-decay), nil
}

func (ns NelsonSiegel) MinX() float64 { return 0 }
func (ns NelsonSiegel) MaxX() float64 { return math.Inf(1) }

// Svensson extends Nelson-Siegel with a second curvature hump
// (beta3, tau2), giving more flexibility at the long end.
type Svensson struct {
	Beta0, Beta1, Beta2, Beta3, Tau1, Tau2 float64
}

func (sv Svensson) At(m float64) (float64, error) {
	if sv.Tau1 <= 0 || sv.Tau2 <= 0 {
		return 0, molerr.New(molerr.InvalidInput, "interpolate.Svensson.At", "tau1 and tau2 must be positive")
	}
	if m <= 0 {
		return sv.Beta0 + sv.Beta1, nil
	}
	x1, x2 := m/sv.Tau1, m/sv.Tau2
	decay1, decay2 := math.Exp(-x1), math.Exp(-x2)
	slope1 := (1 - decay1) / x1
	slope2 := (1 - decay2) / x2
	return sv.Beta0 + sv.Beta1*slope1 + sv.Beta2*(slope1-decay1) + sv.Beta3*(slope2-decay2), nil
}

func (sv Svensson) MinX() float64 { return 0 }
func (sv Svensson) MaxX() float64 { return math.Inf(1) }
