package portfolio

// NavBreakdown is the detailed NAV decomposition spec §4.7 requires:
// securities market value, accrued interest, cash, and liabilities, summed
// to NAV, with NAV per share when shares are outstanding.
//
// Grounded on original_source/crates/convex-portfolio/src/analytics/nav.rs.
type NavBreakdown struct {
	SecuritiesMarketValue float64
	AccruedInterest       float64
	TotalCash             float64
	Liabilities           float64
	NAV                   float64
	SharesOutstanding     *float64
	NAVPerShare           *float64
}

// CalculateNAVBreakdown builds a NavBreakdown from a Portfolio.
func CalculateNAVBreakdown(p Portfolio) NavBreakdown {
	securities := p.SecuritiesMarketValue()
	accrued := p.TotalAccruedInterest()
	cash := p.TotalCash()
	liabilities := p.TotalLiabilities()
	nav := securities + accrued + cash - liabilities

	return NavBreakdown{
		SecuritiesMarketValue: securities,
		AccruedInterest:       accrued,
		TotalCash:             cash,
		Liabilities:           liabilities,
		NAV:                   nav,
		SharesOutstanding:     p.SharesOutstanding,
		NAVPerShare:           p.NAVPerShare(),
	}
}

// SecuritiesPct returns the securities share of NAV as a percentage.
func (b NavBreakdown) SecuritiesPct() float64 { return pctOfNAV(b.SecuritiesMarketValue, b.NAV) }

// CashPct returns the cash share of NAV as a percentage.
func (b NavBreakdown) CashPct() float64 { return pctOfNAV(b.TotalCash, b.NAV) }

// AccruedPct returns the accrued-interest share of NAV as a percentage.
func (b NavBreakdown) AccruedPct() float64 { return pctOfNAV(b.AccruedInterest, b.NAV) }

func pctOfNAV(component, nav float64) float64 {
	if nav <= 0 {
		return 0
	}
	return component / nav * 100.0
}
