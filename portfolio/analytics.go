package portfolio

import (
	"gonum.org/v1/gonum/stat"
)

// weightedMetric runs a weighted average of a per-holding optional metric
// over holdings that actually have it, reporting the fraction of holdings
// (by count) that had data. Uses gonum/stat.Mean's weighted form, grounded
// on aristath-sentinel's formulas package (stat.Mean(data, weights)).
func weightedMetric(holdings []Holding, weighting WeightingMethod, get func(Holding) (float64, bool)) (value *float64, coveragePct float64) {
	if len(holdings) == 0 {
		return nil, 0
	}

	var values, weights []float64
	for _, h := range holdings {
		v, ok := get(h)
		if !ok {
			continue
		}
		w := h.WeightValue(weighting)
		if w == 0 {
			continue
		}
		values = append(values, v)
		weights = append(weights, w)
	}

	coveragePct = 100.0 * float64(len(values)) / float64(len(holdings))
	if len(values) == 0 {
		return nil, coveragePct
	}
	mean := stat.Mean(values, weights)
	return &mean, coveragePct
}

// YieldMetrics is the portfolio-level weighted yield summary.
type YieldMetrics struct {
	YTM            *float64
	YTW            *float64
	YTC            *float64
	CurrentYield   *float64
	YTMCoveragePct float64
	YTWCoveragePct float64
}

// CalculateYieldMetrics weights each yield kind over holdings that report
// it, per spec §4.7 "Weighted metrics".
func CalculateYieldMetrics(holdings []Holding, cfg AnalyticsConfig) YieldMetrics {
	ytm, ytmCov := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.YTM == nil {
			return 0, false
		}
		return *h.Analytics.YTM, true
	})
	ytw, ytwCov := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.YTW == nil {
			return 0, false
		}
		return *h.Analytics.YTW, true
	})
	ytc, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.YTC == nil {
			return 0, false
		}
		return *h.Analytics.YTC, true
	})
	cy, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.CurrentYield == nil {
			return 0, false
		}
		return *h.Analytics.CurrentYield, true
	})

	return YieldMetrics{YTM: ytm, YTW: ytw, YTC: ytc, CurrentYield: cy, YTMCoveragePct: ytmCov, YTWCoveragePct: ytwCov}
}

// RiskMetrics is the portfolio-level duration/convexity/DV01 summary.
// DV01 and CS01 are additive sums (spec §4.7 "Additive metrics"), not
// weighted averages.
type RiskMetrics struct {
	ModifiedDuration    *float64
	MacaulayDuration    *float64
	EffectiveDuration   *float64
	Convexity           *float64
	TotalDV01           float64
	TotalCS01           float64
	DurationCoveragePct float64
	PartialDV01s        map[float64]float64
}

// CalculateRiskMetrics weights durations/convexity and sums DV01/CS01 and
// key-rate partial DV01s across holdings.
func CalculateRiskMetrics(holdings []Holding, cfg AnalyticsConfig) RiskMetrics {
	modDur, durCov := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.ModifiedDuration == nil {
			return 0, false
		}
		return *h.Analytics.ModifiedDuration, true
	})
	macDur, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.MacaulayDuration == nil {
			return 0, false
		}
		return *h.Analytics.MacaulayDuration, true
	})
	effDur, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.EffectiveDuration == nil {
			return 0, false
		}
		return *h.Analytics.EffectiveDuration, true
	})
	convexity, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.Convexity == nil {
			return 0, false
		}
		return *h.Analytics.Convexity, true
	})

	totalDV01 := maybeParallelFold(holdings, cfg,
		func(chunk []Holding) float64 {
			sum := 0.0
			for _, h := range chunk {
				if h.Analytics.DV01 != nil {
					sum += *h.Analytics.DV01
				}
			}
			return sum
		},
		func(a, b float64) float64 { return a + b },
	)
	totalCS01 := maybeParallelFold(holdings, cfg,
		func(chunk []Holding) float64 {
			sum := 0.0
			for _, h := range chunk {
				if h.Analytics.CS01 != nil {
					sum += *h.Analytics.CS01
				}
			}
			return sum
		},
		func(a, b float64) float64 { return a + b },
	)

	partials := map[float64]float64{}
	for _, h := range holdings {
		for tenor, krd := range h.Analytics.KeyRateDurations {
			if h.Analytics.DV01 == nil {
				continue
			}
			partials[tenor] += krd * (*h.Analytics.DV01)
		}
	}

	return RiskMetrics{
		ModifiedDuration:    modDur,
		MacaulayDuration:    macDur,
		EffectiveDuration:   effDur,
		Convexity:           convexity,
		TotalDV01:           totalDV01,
		TotalCS01:           totalCS01,
		DurationCoveragePct: durCov,
		PartialDV01s:        partials,
	}
}

// SpreadMetrics is the portfolio-level weighted spread summary. BestSpread
// prefers OAS, then Z-spread, then ASW, then G-spread — the teacher's
// "best available" convention for a single headline spread figure.
type SpreadMetrics struct {
	GSpread            *float64
	ISpread            *float64
	ZSpread            *float64
	ASW                *float64
	OAS                *float64
	BestSpread         *float64
	ZSpreadCoveragePct float64
}

// CalculateSpreadMetrics weights each spread kind over holdings reporting
// it.
func CalculateSpreadMetrics(holdings []Holding, cfg AnalyticsConfig) SpreadMetrics {
	g, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.GSpread == nil {
			return 0, false
		}
		return *h.Analytics.GSpread, true
	})
	i, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.ISpread == nil {
			return 0, false
		}
		return *h.Analytics.ISpread, true
	})
	z, zCov := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.ZSpread == nil {
			return 0, false
		}
		return *h.Analytics.ZSpread, true
	})
	asw, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.ASW == nil {
			return 0, false
		}
		return *h.Analytics.ASW, true
	})
	oas, _ := weightedMetric(holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.OAS == nil {
			return 0, false
		}
		return *h.Analytics.OAS, true
	})

	best := oas
	if best == nil {
		best = z
	}
	if best == nil {
		best = asw
	}
	if best == nil {
		best = g
	}

	return SpreadMetrics{GSpread: g, ISpread: i, ZSpread: z, ASW: asw, OAS: oas, BestSpread: best, ZSpreadCoveragePct: zCov}
}

// PortfolioAnalytics bundles every portfolio-level metric spec §4.7
// describes into a single snapshot, the primary output for portfolio-level
// reporting, grounded on
// original_source/crates/convex-portfolio/src/analytics/summary.rs.
type PortfolioAnalytics struct {
	PortfolioID         string
	PortfolioName       string
	AsOfDate            string
	BaseCurrency        string
	HoldingCount        int
	NAV                 NavBreakdown
	Yields              YieldMetrics
	Risk                RiskMetrics
	Spreads             SpreadMetrics
	WeightedAvgMaturity *float64
	WeightedAvgCoupon   *float64
}

// CalculatePortfolioAnalytics computes the full analytics snapshot for p.
func CalculatePortfolioAnalytics(p Portfolio, cfg AnalyticsConfig) PortfolioAnalytics {
	maturity, _ := weightedMetric(p.Holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.YearsToMaturity == nil {
			return 0, false
		}
		return *h.Analytics.YearsToMaturity, true
	})
	coupon, _ := weightedMetric(p.Holdings, cfg.Weighting, func(h Holding) (float64, bool) {
		if h.Analytics.CouponRate == nil {
			return 0, false
		}
		return *h.Analytics.CouponRate, true
	})

	return PortfolioAnalytics{
		PortfolioID:         p.ID,
		PortfolioName:       p.Name,
		AsOfDate:            p.AsOf.String(),
		BaseCurrency:        p.BaseCurrency,
		HoldingCount:        p.HoldingCount(),
		NAV:                 CalculateNAVBreakdown(p),
		Yields:              CalculateYieldMetrics(p.Holdings, cfg),
		Risk:                CalculateRiskMetrics(p.Holdings, cfg),
		Spreads:             CalculateSpreadMetrics(p.Holdings, cfg),
		WeightedAvgMaturity: maturity,
		WeightedAvgCoupon:   coupon,
	}
}

// IsComplete reports whether YTM, a duration figure, and a spread figure
// are all populated — the teacher's definition of "complete" analytics.
func (a PortfolioAnalytics) IsComplete() bool {
	return a.Yields.YTM != nil && a.Risk.ModifiedDuration != nil && a.Spreads.BestSpread != nil
}

// DataCoveragePct averages YTM, duration, and Z-spread coverage.
func (a PortfolioAnalytics) DataCoveragePct() float64 {
	return (a.Yields.YTMCoveragePct + a.Risk.DurationCoveragePct + a.Spreads.ZSpreadCoveragePct) / 3.0
}
