package portfolio

// TenorShift is a key-rate bump applied at a single tenor point, in basis
// points.
type TenorShift struct {
	TenorYears float64
	BP         float64
}

// RateScenario is either a flat parallel shift or a set of tenor-specific
// key-rate shifts, per spec §4.7 "Stress scenarios". Exactly one of
// ParallelBP or TenorShifts should be set.
type RateScenario struct {
	ParallelBP  float64
	TenorShifts []TenorShift
}

// SpreadScenario widens (positive) or tightens (negative) spreads, either
// uniformly or scoped to a sector/rating.
type SpreadScenario struct {
	BP     float64
	Sector Sector // zero value ("") applies to all sectors
	Rating CreditRating
}

// StressScenario names a combination of rate and spread shocks to apply
// together.
type StressScenario struct {
	Name   string
	Rates  []RateScenario
	Spread []SpreadScenario
}

// Standard returns the teacher's conventional stress-test battery: +/-100bp
// parallel, +/-25bp spread widening/tightening, and a 50bp curve steepener
// (2Y -25bp, 30Y +25bp). No flattener is included.
func Standard() []StressScenario {
	return []StressScenario{
		{Name: "rates_up_100bp", Rates: []RateScenario{{ParallelBP: 100}}},
		{Name: "rates_down_100bp", Rates: []RateScenario{{ParallelBP: -100}}},
		{Name: "spread_widen_25bp", Spread: []SpreadScenario{{BP: 25}}},
		{Name: "spread_tighten_25bp", Spread: []SpreadScenario{{BP: -25}}},
		{
			Name: "curve_steepener_50bp",
			Rates: []RateScenario{{TenorShifts: []TenorShift{
				{TenorYears: 2, BP: -25},
				{TenorYears: 30, BP: 25},
			}}},
		},
	}
}

// StressResult is one holding's estimated P&L under a StressScenario.
type StressResult struct {
	HoldingID      string
	StartValue     float64
	EstimatedDelta float64
	EndValue       float64
}

// StressSummary aggregates per-holding StressResults to the portfolio
// level.
type StressSummary struct {
	ScenarioName string
	StartNAV     float64
	DeltaNAV     float64
	EndNAV       float64
	Results      []StressResult
}

// rateShiftForHolding returns the effective parallel-equivalent bp move a
// holding experiences under a RateScenario: its own tenor's interpolated
// shift for TenorShifts, or the flat ParallelBP otherwise.
func rateShiftForHolding(h Holding, scenario RateScenario) float64 {
	if len(scenario.TenorShifts) == 0 {
		return scenario.ParallelBP
	}
	if h.Analytics.YearsToMaturity == nil {
		return 0
	}
	t := *h.Analytics.YearsToMaturity
	shifts := scenario.TenorShifts
	if t <= shifts[0].TenorYears {
		return shifts[0].BP
	}
	if t >= shifts[len(shifts)-1].TenorYears {
		return shifts[len(shifts)-1].BP
	}
	for i := 0; i < len(shifts)-1; i++ {
		lo, hi := shifts[i], shifts[i+1]
		if t >= lo.TenorYears && t <= hi.TenorYears {
			frac := (t - lo.TenorYears) / (hi.TenorYears - lo.TenorYears)
			return lo.BP + frac*(hi.BP-lo.BP)
		}
	}
	return 0
}

func spreadShiftForHolding(h Holding, scenario SpreadScenario) float64 {
	if scenario.Sector != "" && h.Classification.Sector != scenario.Sector {
		return 0
	}
	if scenario.Rating != "" && h.Classification.Rating != scenario.Rating {
		return 0
	}
	return scenario.BP
}

// estimateHoldingDelta estimates a holding's dollar P&L from a combined
// rate+spread bp move via the second-order duration/convexity expansion
// (spec §4.6's EstimatePriceChange, inlined here since StressScenario
// aggregates multiple RateScenario/SpreadScenario entries per call).
func estimateHoldingDelta(h Holding, scenario StressScenario) float64 {
	totalBP := 0.0
	for _, r := range scenario.Rates {
		totalBP += rateShiftForHolding(h, r)
	}
	for _, s := range scenario.Spread {
		totalBP += spreadShiftForHolding(h, s)
	}
	if totalBP == 0 {
		return 0
	}
	dy := totalBP / 10000.0
	mv := h.BaseMarketValue()

	duration := 0.0
	if h.Analytics.ModifiedDuration != nil {
		duration = *h.Analytics.ModifiedDuration
	}
	convexity := 0.0
	if h.Analytics.Convexity != nil {
		convexity = *h.Analytics.Convexity
	}
	return -duration*mv*dy + 0.5*convexity*mv*dy*dy
}

// RunStressScenario applies scenario to every holding, summing per-holding
// P&L estimates to a portfolio-level StressSummary.
func RunStressScenario(p Portfolio, scenario StressScenario, cfg AnalyticsConfig) StressSummary {
	startNAV := p.NAV()
	results := make([]StressResult, len(p.Holdings))
	for i, h := range p.Holdings {
		start := h.BaseMarketValue()
		delta := estimateHoldingDelta(h, scenario)
		results[i] = StressResult{HoldingID: h.ID, StartValue: start, EstimatedDelta: delta, EndValue: start + delta}
	}

	totalDelta := maybeParallelFold(p.Holdings, cfg,
		func(chunk []Holding) float64 {
			sum := 0.0
			for _, h := range chunk {
				sum += estimateHoldingDelta(h, scenario)
			}
			return sum
		},
		func(a, b float64) float64 { return a + b },
	)

	return StressSummary{
		ScenarioName: scenario.Name,
		StartNAV:     startNAV,
		DeltaNAV:     totalDelta,
		EndNAV:       startNAV + totalDelta,
		Results:      results,
	}
}

// RunStressScenarios runs every scenario and returns one StressSummary per
// scenario, in the order given.
func RunStressScenarios(p Portfolio, scenarios []StressScenario, cfg AnalyticsConfig) []StressSummary {
	out := make([]StressSummary, len(scenarios))
	for i, s := range scenarios {
		out[i] = RunStressScenario(p, s, cfg)
	}
	return out
}

// WorstCase returns the StressSummary with the most negative DeltaNAV.
func WorstCase(summaries []StressSummary) (StressSummary, bool) {
	if len(summaries) == 0 {
		return StressSummary{}, false
	}
	worst := summaries[0]
	for _, s := range summaries[1:] {
		if s.DeltaNAV < worst.DeltaNAV {
			worst = s
		}
	}
	return worst, true
}

// BestCase returns the StressSummary with the most positive DeltaNAV.
func BestCase(summaries []StressSummary) (StressSummary, bool) {
	if len(summaries) == 0 {
		return StressSummary{}, false
	}
	best := summaries[0]
	for _, s := range summaries[1:] {
		if s.DeltaNAV > best.DeltaNAV {
			best = s
		}
	}
	return best, true
}
