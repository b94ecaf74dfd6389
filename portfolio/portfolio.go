package portfolio

import (
	"strings"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/molerr"
)

// Portfolio is an immutable collection of holdings and cash positions as of
// a given date, grounded on original_source's Portfolio/PortfolioBuilder.
type Portfolio struct {
	ID                string
	Name              string
	BaseCurrency      string
	AsOf              date.Date
	Holdings          []Holding
	Cash              []CashPosition
	SharesOutstanding *float64 // set for ETF-style NAV/share reporting
	Liabilities       float64
}

// HoldingCount returns the number of holdings.
func (p Portfolio) HoldingCount() int { return len(p.Holdings) }

// SecuritiesMarketValue sums BaseMarketValue across all holdings.
func (p Portfolio) SecuritiesMarketValue() float64 {
	total := 0.0
	for _, h := range p.Holdings {
		total += h.BaseMarketValue()
	}
	return total
}

// TotalAccruedInterest sums BaseAccruedInterest across all holdings.
func (p Portfolio) TotalAccruedInterest() float64 {
	total := 0.0
	for _, h := range p.Holdings {
		total += h.BaseAccruedInterest()
	}
	return total
}

// TotalCash sums cash positions' BaseValue.
func (p Portfolio) TotalCash() float64 {
	total := 0.0
	for _, c := range p.Cash {
		total += c.BaseValue()
	}
	return total
}

// TotalLiabilities returns the portfolio's liabilities in base currency.
func (p Portfolio) TotalLiabilities() float64 { return p.Liabilities }

// NAV returns the net asset value: securities + accrued + cash - liabilities
// (spec §4.7 "NAV breakdown").
func (p Portfolio) NAV() float64 {
	return p.SecuritiesMarketValue() + p.TotalAccruedInterest() + p.TotalCash() - p.TotalLiabilities()
}

// NAVPerShare returns NAV / SharesOutstanding, or nil if shares aren't set
// or are non-positive.
func (p Portfolio) NAVPerShare() *float64 {
	if p.SharesOutstanding == nil || *p.SharesOutstanding <= 0 {
		return nil
	}
	v := p.NAV() / *p.SharesOutstanding
	return &v
}

// IsMultiCurrency reports whether holdings span more than one currency.
func (p Portfolio) IsMultiCurrency() bool {
	return len(p.Currencies()) > 1
}

// Currencies returns the distinct currencies held, including cash.
func (p Portfolio) Currencies() []string {
	seen := map[string]bool{}
	var out []string
	add := func(ccy string) {
		if ccy == "" {
			ccy = p.BaseCurrency
		}
		if !seen[ccy] {
			seen[ccy] = true
			out = append(out, ccy)
		}
	}
	for _, h := range p.Holdings {
		add(h.Currency)
	}
	for _, c := range p.Cash {
		add(c.Currency)
	}
	return out
}

func (p Portfolio) validate() error {
	if p.Name == "" {
		return molerr.New(molerr.InvalidInput, "portfolio.Builder.Build", "missing field: name")
	}
	if p.AsOf.IsZero() {
		return molerr.New(molerr.InvalidInput, "portfolio.Builder.Build", "missing field: as_of_date")
	}
	return nil
}

// Builder constructs a Portfolio fluently, mirroring the teacher's
// PortfolioBuilder (id/name/base_currency/as_of_date/add_holding/add_cash/
// shares_outstanding/liabilities, auto-generated id from name, validation
// on Build).
type Builder struct {
	id                string
	name              string
	baseCurrency      string
	asOf              date.Date
	holdings          []Holding
	cash              []CashPosition
	sharesOutstanding *float64
	liabilities       float64
}

// NewBuilder starts a Builder defaulted to USD base currency.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, baseCurrency: "USD"}
}

// ID sets the portfolio id, overriding the auto-generated default.
func (b *Builder) ID(id string) *Builder { b.id = id; return b }

// BaseCurrency sets the reporting currency.
func (b *Builder) BaseCurrency(ccy string) *Builder { b.baseCurrency = ccy; return b }

// AsOf sets the portfolio's as-of date.
func (b *Builder) AsOf(d date.Date) *Builder { b.asOf = d; return b }

// AddHolding appends a single holding.
func (b *Builder) AddHolding(h Holding) *Builder {
	b.holdings = append(b.holdings, h)
	return b
}

// AddHoldings appends multiple holdings.
func (b *Builder) AddHoldings(hs ...Holding) *Builder {
	b.holdings = append(b.holdings, hs...)
	return b
}

// AddCash appends a cash position.
func (b *Builder) AddCash(c CashPosition) *Builder {
	b.cash = append(b.cash, c)
	return b
}

// Liabilities sets the portfolio's liabilities.
func (b *Builder) Liabilities(v float64) *Builder { b.liabilities = v; return b }

// SharesOutstanding sets the ETF/fund share count for NAV-per-share
// reporting.
func (b *Builder) SharesOutstanding(v float64) *Builder {
	b.sharesOutstanding = &v
	return b
}

// Build assembles and validates the Portfolio, auto-generating an id from
// name (alphanumeric, uppercase, capped at 20 characters) when none was set,
// per the teacher's PortfolioBuilder::build.
func (b *Builder) Build() (Portfolio, error) {
	id := b.id
	if id == "" {
		id = autoID(b.name)
	}
	p := Portfolio{
		ID:                id,
		Name:              b.name,
		BaseCurrency:      b.baseCurrency,
		AsOf:              b.asOf,
		Holdings:          b.holdings,
		Cash:              b.cash,
		SharesOutstanding: b.sharesOutstanding,
		Liabilities:       b.liabilities,
	}
	if err := p.validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

func autoID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if sb.Len() >= 20 {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return strings.ToUpper(sb.String())
}
