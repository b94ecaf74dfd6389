// Package env reads the four environment knobs spec §6 names — solver
// tolerance, iteration cap, parallel-reduction threshold, and default
// decimal rounding mode. It is opt-in: no package in this module calls
// LoadFromEnv on its own initialization path; a caller wires the result
// into solve.Config/portfolio thresholds/moldecimal rounding explicitly.
//
// Grounded on the teacher's swap/config package (plain Config struct +
// DefaultConfig + Get/Set) for the scalar-knobs shape, generalized to read
// from the process environment via stdlib os.LookupEnv rather than
// hardcoded defaults alone — deliberately stdlib for the parsing itself,
// since four scalars don't warrant a config-file library like
// spf13/viper (see DESIGN.md). RoundingMode.Apply reuses moldecimal's
// shopspring/decimal dependency rather than reimplementing rounding.
package env

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// RoundingMode names which of decimal.Decimal's rounding methods the
// engine's display-boundary conversions should use.
type RoundingMode string

const (
	RoundBankers RoundingMode = "bankers" // decimal.RoundBank — default, matches moldecimal.Money.Rounded
	RoundUp      RoundingMode = "up"
	RoundDown    RoundingMode = "down"
	RoundCeiling RoundingMode = "ceiling"
	RoundFloor   RoundingMode = "floor"
)

// Apply rounds v to places decimal places using the method m names. Up/Down
// fall back to decimal.Decimal's ordinary Round, which rounds half away
// from zero; Ceiling/Floor shift to integer first since decimal.Decimal's
// Ceil/Floor take no precision argument, matching how moldecimal only ever
// rounds at the currency's minor-unit boundary.
func (m RoundingMode) Apply(v decimal.Decimal, places int32) decimal.Decimal {
	shift := decimal.New(1, places)
	switch m {
	case RoundCeiling:
		return v.Mul(shift).Ceil().Div(shift)
	case RoundFloor:
		return v.Mul(shift).Floor().Div(shift)
	case RoundUp, RoundDown:
		return v.Round(places)
	default:
		return v.RoundBank(places)
	}
}

const (
	solverToleranceVar         = "MOLIB_SOLVER_TOLERANCE"
	solverMaxIterationsVar     = "MOLIB_SOLVER_MAX_ITERATIONS"
	parallelReductionThreshold = "MOLIB_PARALLEL_REDUCTION_THRESHOLD"
	defaultRoundingVar         = "MOLIB_DEFAULT_ROUNDING"
)

// Config holds the engine-wide knobs spec §6 says the environment may set.
type Config struct {
	SolverTolerance            float64
	SolverMaxIterations        int
	ParallelReductionThreshold int
	DefaultRounding            RoundingMode
}

// DefaultConfig mirrors solve.DefaultConfig's tolerance/iteration defaults
// and the teacher's config package's scale for everything else.
var DefaultConfig = Config{
	SolverTolerance:            1e-12,
	SolverMaxIterations:        100,
	ParallelReductionThreshold: 1000,
	DefaultRounding:            RoundBankers,
}

// LoadFromEnv reads the four knobs from the process environment,
// falling back to DefaultConfig's value for anything unset or unparseable.
// It never reads filesystem paths, network endpoints, or credentials, per
// spec §6's explicit boundary.
func LoadFromEnv() Config {
	cfg := DefaultConfig

	if v, ok := os.LookupEnv(solverToleranceVar); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.SolverTolerance = parsed
		}
	}
	if v, ok := os.LookupEnv(solverMaxIterationsVar); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.SolverMaxIterations = parsed
		}
	}
	if v, ok := os.LookupEnv(parallelReductionThreshold); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.ParallelReductionThreshold = parsed
		}
	}
	if v, ok := os.LookupEnv(defaultRoundingVar); ok {
		if mode, ok := parseRoundingMode(v); ok {
			cfg.DefaultRounding = mode
		}
	}

	return cfg
}

func parseRoundingMode(s string) (RoundingMode, bool) {
	switch s {
	case "bankers", "to_nearest_even":
		return RoundBankers, true
	case "up":
		return RoundUp, true
	case "down":
		return RoundDown, true
	case "ceiling":
		return RoundCeiling, true
	case "floor":
		return RoundFloor, true
	default:
		return RoundBankers, false
	}
}
