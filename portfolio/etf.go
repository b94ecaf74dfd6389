package portfolio

import "sort"

// ETFSnapshot is the intra-day state spec §4.8 reduces to iNAV: a Portfolio's
// holdings/cash/FX plus the fund's outstanding shares and last traded market
// price, the last of which drives premium/discount.
//
// Grounded on original_source/crates/convex-portfolio/src/lib.rs's etf module
// manifest (calculate_etf_nav/calculate_inav, calculate_sec_yield,
// calculate_premium_discount_stats, build_creation_basket/analyze_basket,
// run_compliance_checks) — etf.rs itself was not part of the retrieval pack,
// so the functions below follow the manifest's exported names and spec
// §4.8's prose rather than a ported implementation.
type ETFSnapshot struct {
	Fund            Portfolio
	MarketPrice     float64 // last traded price per share
	SecondaryVolume float64 // shares traded, for liquidity context
}

// CalculateETFNAV is calculate_etf_nav: the fund's NAV per share from its
// holdings/cash/FX snapshot, identical to Portfolio.NAVPerShare but named to
// match the ETF surface spec §4.8 describes.
func CalculateETFNAV(s ETFSnapshot) *float64 {
	return s.Fund.NAVPerShare()
}

// CalculateINAV is calculate_inav: the intra-day indicative NAV, the same
// NAV-per-share figure recomputed against the current snapshot. Distinct
// from CalculateETFNAV only in intent — iNAV is meant to be recomputed on
// every holdings/price update during the trading day, while ETF NAV is the
// official end-of-day figure.
func CalculateINAV(s ETFSnapshot) *float64 {
	return CalculateETFNAV(s)
}

// PremiumDiscount is calculate_premium_discount_stats' output: how far
// MarketPrice trades from iNAV, in both currency and percentage terms.
type PremiumDiscount struct {
	INAV         float64
	MarketPrice  float64
	Premium      float64 // MarketPrice - iNAV; negative means a discount
	PremiumPctBP float64 // Premium / iNAV, in basis points
}

// CalculatePremiumDiscount computes s's premium/discount versus iNAV. Returns
// false if iNAV isn't computable (no SharesOutstanding).
func CalculatePremiumDiscount(s ETFSnapshot) (PremiumDiscount, bool) {
	inav := CalculateINAV(s)
	if inav == nil || *inav == 0 {
		return PremiumDiscount{}, false
	}
	premium := s.MarketPrice - *inav
	return PremiumDiscount{
		INAV:         *inav,
		MarketPrice:  s.MarketPrice,
		Premium:      premium,
		PremiumPctBP: premium / *inav * 10000.0,
	}, true
}

// SECYieldInput bundles the regulator-defined 30-day SEC yield formula's
// per-holding inputs: coupon income over the trailing 30 days and the
// holding's weight in the fund.
type SECYieldInput struct {
	HoldingID      string
	Weight         float64 // base-currency market-value weight in the fund
	CouponIncome30 float64 // coupon accrued over the trailing 30 days, per unit of MarketValue
	Yield          float64 // current yield to maturity, percent
}

// CalculateSECYield is calculate_sec_yield: the 30-day SEC standardized
// yield: the weighted trailing-30-day income yield compounded over six
// 30-day periods and doubled (the regulator's semi-annual convention):
//
//	SEC yield = 2 * ((1 + a)^6 - 1)
//
// where a is the fund-level 30-day income rate implied by weighting each
// holding's CouponIncome30 by Weight.
func CalculateSECYield(inputs []SECYieldInput) float64 {
	totalWeight := 0.0
	weightedIncome := 0.0
	for _, in := range inputs {
		totalWeight += in.Weight
		weightedIncome += in.Weight * in.CouponIncome30
	}
	if totalWeight == 0 {
		return 0
	}
	a := weightedIncome / totalWeight
	return 2.0 * (pow6(1.0+a) - 1.0)
}

func pow6(x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	return x3 * x3
}

// CalculateDistributionYield is the teacher's simpler trailing-distribution
// yield: the fund's most recent periodic distribution per share, annualized
// by the distribution frequency, divided by iNAV.
func CalculateDistributionYield(s ETFSnapshot, lastDistributionPerShare float64, distributionsPerYear float64) *float64 {
	inav := CalculateINAV(s)
	if inav == nil || *inav == 0 {
		return nil
	}
	v := lastDistributionPerShare * distributionsPerYear / *inav * 100.0
	return &v
}

// CreationUnit is one holding's required par amount per creation-unit block,
// the fund's published creation basket composition.
type CreationUnit struct {
	HoldingID string
	ParAmount float64
}

// CreationBasket is build_creation_basket's output: the in-kind basket an
// authorized participant delivers to create one creation-unit block of
// shares, proportional to each holding's current weight in the fund.
type CreationBasket struct {
	SharesPerUnit float64
	Units         []CreationUnit
	CashComponent float64 // residual cash to true up fractional par
}

// BuildCreationBasket derives a pro-rata creation basket for sharesPerUnit
// shares from the fund's current holdings, scaled by each holding's share of
// NAV.
func BuildCreationBasket(s ETFSnapshot, sharesPerUnit float64) CreationBasket {
	nav := s.Fund.NAV()
	if nav <= 0 || sharesPerUnit <= 0 {
		return CreationBasket{SharesPerUnit: sharesPerUnit}
	}
	inavPerShare := nav
	if shares := s.Fund.SharesOutstanding; shares != nil && *shares > 0 {
		inavPerShare = nav / *shares
	}
	unitValue := inavPerShare * sharesPerUnit
	unitFraction := unitValue / nav

	units := make([]CreationUnit, 0, len(s.Fund.Holdings))
	for _, h := range s.Fund.Holdings {
		units = append(units, CreationUnit{HoldingID: h.ID, ParAmount: h.ParAmount * unitFraction})
	}
	cash := s.Fund.TotalCash() * unitFraction
	return CreationBasket{SharesPerUnit: sharesPerUnit, Units: units, CashComponent: cash}
}

// BasketAnalysis is analyze_basket's output: how closely a proposed
// CreationBasket tracks the fund's actual composition, bucket by bucket.
type BasketAnalysis struct {
	TrackingErrorBP float64 // weighted absolute deviation across buckets, in bp of fund NAV
	ByBucket        []ActiveWeight
}

// AnalyzeBasket compares a creation basket's sector weights against the
// fund's own, reusing ActiveWeights/BucketBySector for the per-bucket
// breakdown.
func AnalyzeBasket(fund Portfolio, basket CreationBasket, cfg AnalyticsConfig) BasketAnalysis {
	basketHoldings := make([]Holding, 0, len(basket.Units))
	byID := map[string]Holding{}
	for _, h := range fund.Holdings {
		byID[h.ID] = h
	}
	for _, u := range basket.Units {
		if h, ok := byID[u.HoldingID]; ok {
			h.ParAmount = u.ParAmount
			basketHoldings = append(basketHoldings, h)
		}
	}

	fundBuckets := BucketBySector(fund.Holdings, cfg)
	basketBuckets := BucketBySector(basketHoldings, cfg)
	active := ActiveWeights(basketBuckets, fundBuckets)

	sum := 0.0
	for _, a := range active {
		sum += absFloat(a.ActiveWeight)
	}
	return BasketAnalysis{TrackingErrorBP: sum * 100.0, ByBucket: active}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ArbitrageOpportunity reports when MarketPrice deviates from iNAV by more
// than thresholdBP, the signal an authorized participant trades the
// creation/redemption mechanism against.
type ArbitrageOpportunity struct {
	Direction   string // "create" (fund trades rich) or "redeem" (fund trades cheap)
	PremiumBP   float64
	ThresholdBP float64
}

// ArbitrageOpportunityFor evaluates s's premium/discount against
// thresholdBP and reports a direction, or false if within tolerance or iNAV
// is unavailable.
func ArbitrageOpportunityFor(s ETFSnapshot, thresholdBP float64) (ArbitrageOpportunity, bool) {
	pd, ok := CalculatePremiumDiscount(s)
	if !ok || absFloat(pd.PremiumPctBP) < thresholdBP {
		return ArbitrageOpportunity{}, false
	}
	direction := "redeem"
	if pd.PremiumPctBP > 0 {
		direction = "create"
	}
	return ArbitrageOpportunity{Direction: direction, PremiumBP: pd.PremiumPctBP, ThresholdBP: thresholdBP}, true
}

// ComplianceRule is a single diversification or concentration limit a fund
// must satisfy, expressed as a maximum bucket weight.
type ComplianceRule struct {
	Name         string
	BucketKeyOf  func(Holding) string
	MaxWeightPct float64
}

// ComplianceCheck is one rule's evaluation result.
type ComplianceCheck struct {
	RuleName  string
	Passed    bool
	Breaches  []BucketMetrics // buckets exceeding MaxWeightPct
}

// RunComplianceChecks evaluates every rule against the fund's holdings,
// grounded on the 1940 Act-style diversification limits (e.g. no single
// issuer above 25% for a non-diversified fund, no single issuer above 5% for
// 75% of a diversified fund's assets) without hardcoding a specific regime;
// callers supply the rule set.
func RunComplianceChecks(fund Portfolio, rules []ComplianceRule, cfg AnalyticsConfig) []ComplianceCheck {
	out := make([]ComplianceCheck, 0, len(rules))
	for _, rule := range rules {
		buckets := BucketByClassifier(fund.Holdings, cfg, rule.BucketKeyOf)
		var breaches []BucketMetrics
		for _, b := range buckets {
			if b.WeightPct > rule.MaxWeightPct {
				breaches = append(breaches, b)
			}
		}
		sort.Slice(breaches, func(i, j int) bool { return breaches[i].WeightPct > breaches[j].WeightPct })
		out = append(out, ComplianceCheck{RuleName: rule.Name, Passed: len(breaches) == 0, Breaches: breaches})
	}
	return out
}
