package portfolio

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ActiveWeight is a single holding/bucket's weight versus its benchmark
// counterpart.
type ActiveWeight struct {
	Key             string
	PortfolioWeight float64
	BenchmarkWeight float64
	ActiveWeight    float64
}

// ActiveWeights compares portfolio and benchmark weight by key (sector,
// rating, or any other bucket key a caller extracts), per spec §4.7
// "Benchmark comparison".
func ActiveWeights(portfolio, benchmark []BucketMetrics) []ActiveWeight {
	pByKey := map[string]float64{}
	for _, b := range portfolio {
		pByKey[b.Key] = b.WeightPct
	}
	bByKey := map[string]float64{}
	for _, b := range benchmark {
		bByKey[b.Key] = b.WeightPct
	}

	seen := map[string]bool{}
	var keys []string
	for _, b := range portfolio {
		if !seen[b.Key] {
			seen[b.Key] = true
			keys = append(keys, b.Key)
		}
	}
	for _, b := range benchmark {
		if !seen[b.Key] {
			seen[b.Key] = true
			keys = append(keys, b.Key)
		}
	}

	out := make([]ActiveWeight, 0, len(keys))
	for _, k := range keys {
		pw, bw := pByKey[k], bByKey[k]
		out = append(out, ActiveWeight{Key: k, PortfolioWeight: pw, BenchmarkWeight: bw, ActiveWeight: pw - bw})
	}
	return out
}

// BenchmarkComparison is the portfolio-vs-benchmark summary spec §4.7
// describes: duration gap, spread gap, and active weights by bucket.
type BenchmarkComparison struct {
	DurationGap    float64
	SpreadGap      float64
	ActiveWeights  []ActiveWeight
	TrackingError  *float64
}

// Compare computes a BenchmarkComparison from already-aggregated portfolio
// and benchmark analytics plus per-bucket weight breakdowns.
func Compare(portfolioAnalytics, benchmarkAnalytics PortfolioAnalytics, portfolioBuckets, benchmarkBuckets []BucketMetrics) BenchmarkComparison {
	durationGap := 0.0
	if portfolioAnalytics.Risk.ModifiedDuration != nil && benchmarkAnalytics.Risk.ModifiedDuration != nil {
		durationGap = *portfolioAnalytics.Risk.ModifiedDuration - *benchmarkAnalytics.Risk.ModifiedDuration
	}
	spreadGap := 0.0
	if portfolioAnalytics.Spreads.BestSpread != nil && benchmarkAnalytics.Spreads.BestSpread != nil {
		spreadGap = *portfolioAnalytics.Spreads.BestSpread - *benchmarkAnalytics.Spreads.BestSpread
	}

	return BenchmarkComparison{
		DurationGap:   durationGap,
		SpreadGap:     spreadGap,
		ActiveWeights: ActiveWeights(portfolioBuckets, benchmarkBuckets),
	}
}

// EstimateTrackingError estimates annualized tracking error from historical
// active-weight return series (one float64 per period, already expressed as
// portfolio-minus-benchmark excess return), using gonum/stat's StdDev —
// spec §4.7 leaves the covariance input external to the core ("optional
// external input"); this only aggregates what the caller supplies.
func EstimateTrackingError(periodicExcessReturns []float64, periodsPerYear float64) float64 {
	if len(periodicExcessReturns) < 2 {
		return 0
	}
	return stat.StdDev(periodicExcessReturns, nil) * math.Sqrt(periodsPerYear)
}
