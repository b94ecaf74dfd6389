package portfolio

import "sort"

// BucketMetrics summarizes one classification bucket: its NAV share, weight,
// and weighted risk/yield figures, per spec §4.7 "Bucketing".
type BucketMetrics struct {
	Key              string
	HoldingCount     int
	MarketValue      float64
	WeightPct        float64
	YTM              *float64
	ModifiedDuration *float64
	ZSpread          *float64
}

func bucketHoldings(holdings []Holding, cfg AnalyticsConfig, keyOf func(Holding) string) []BucketMetrics {
	totalMV := 0.0
	for _, h := range holdings {
		totalMV += h.BaseMarketValue()
	}

	byKey := map[string][]Holding{}
	var keys []string
	for _, h := range holdings {
		k := keyOf(h)
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], h)
	}
	sort.Strings(keys)

	out := make([]BucketMetrics, 0, len(keys))
	for _, k := range keys {
		bucket := byKey[k]
		mv := 0.0
		for _, h := range bucket {
			mv += h.BaseMarketValue()
		}
		weightPct := 0.0
		if totalMV > 0 {
			weightPct = mv / totalMV * 100.0
		}
		yields := CalculateYieldMetrics(bucket, cfg)
		risk := CalculateRiskMetrics(bucket, cfg)
		spreads := CalculateSpreadMetrics(bucket, cfg)

		out = append(out, BucketMetrics{
			Key:              k,
			HoldingCount:     len(bucket),
			MarketValue:      mv,
			WeightPct:        weightPct,
			YTM:              yields.YTM,
			ModifiedDuration: risk.ModifiedDuration,
			ZSpread:          spreads.ZSpread,
		})
	}
	return out
}

// BucketBySector groups holdings by Classification.Sector.
func BucketBySector(holdings []Holding, cfg AnalyticsConfig) []BucketMetrics {
	return bucketHoldings(holdings, cfg, func(h Holding) string { return string(h.Classification.Sector) })
}

// BucketByRating groups holdings by Classification.Rating.
func BucketByRating(holdings []Holding, cfg AnalyticsConfig) []BucketMetrics {
	return bucketHoldings(holdings, cfg, func(h Holding) string { return string(h.Classification.Rating) })
}

// BucketByCurrency groups holdings by settlement currency.
func BucketByCurrency(holdings []Holding, cfg AnalyticsConfig) []BucketMetrics {
	return bucketHoldings(holdings, cfg, func(h Holding) string { return h.Currency })
}

// BucketByIssuer groups holdings by Classification.Issuer.
func BucketByIssuer(holdings []Holding, cfg AnalyticsConfig) []BucketMetrics {
	return bucketHoldings(holdings, cfg, func(h Holding) string { return h.Classification.Issuer })
}

// BucketByClassifier groups holdings by an arbitrary caller-supplied key
// extractor, the teacher's bucket_by_custom_field/bucket_by_classifier.
func BucketByClassifier(holdings []Holding, cfg AnalyticsConfig, keyOf func(Holding) string) []BucketMetrics {
	return bucketHoldings(holdings, cfg, keyOf)
}

// MaturityBand is one of the fixed maturity bands spec §4.7 names.
type MaturityBand string

const (
	Maturity0to1   MaturityBand = "0-1Y"
	Maturity1to3   MaturityBand = "1-3Y"
	Maturity3to5   MaturityBand = "3-5Y"
	Maturity5to7   MaturityBand = "5-7Y"
	Maturity7to10  MaturityBand = "7-10Y"
	Maturity10to20 MaturityBand = "10-20Y"
	Maturity20Plus MaturityBand = "20+Y"
	MaturityNone   MaturityBand = "N/A"
)

// maturityBandOf classifies years-to-maturity into the spec's fixed bands.
func maturityBandOf(years float64) MaturityBand {
	switch {
	case years < 1:
		return Maturity0to1
	case years < 3:
		return Maturity1to3
	case years < 5:
		return Maturity3to5
	case years < 7:
		return Maturity5to7
	case years < 10:
		return Maturity7to10
	case years < 20:
		return Maturity10to20
	default:
		return Maturity20Plus
	}
}

// BucketByMaturity groups holdings into the fixed maturity bands, using
// MaturityNone for a holding with no YearsToMaturity figure.
func BucketByMaturity(holdings []Holding, cfg AnalyticsConfig) []BucketMetrics {
	// bucketHoldings sorts keys alphabetically, which scrambles maturity-band
	// order; reorder the fixed bands explicitly after grouping.
	grouped := bucketHoldings(holdings, cfg, func(h Holding) string {
		if h.Analytics.YearsToMaturity == nil {
			return string(MaturityNone)
		}
		return string(maturityBandOf(*h.Analytics.YearsToMaturity))
	})

	order := []MaturityBand{
		Maturity0to1, Maturity1to3, Maturity3to5, Maturity5to7,
		Maturity7to10, Maturity10to20, Maturity20Plus, MaturityNone,
	}
	byKey := map[string]BucketMetrics{}
	for _, b := range grouped {
		byKey[b.Key] = b
	}
	out := make([]BucketMetrics, 0, len(grouped))
	for _, band := range order {
		if b, ok := byKey[string(band)]; ok {
			out = append(out, b)
		}
	}
	return out
}
