package bond

import (
	"github.com/meenmo/molib/calendar"
	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/daycount"
	"github.com/meenmo/molib/molerr"
)

// Kind discriminates the bond variants spec §4.2 requires.
type Kind string

const (
	FixedCoupon     Kind = "fixed_coupon"
	ZeroCoupon      Kind = "zero_coupon"
	FloatingRate    Kind = "floating_rate"
	CallablePutt    Kind = "callable_puttable"
	Amortizing      Kind = "amortizing"
	InflationLinked Kind = "inflation_linked"
)

// StubType mirrors original_source's StubPeriodRules::StubType: how an
// irregular first/last coupon period is day-counted.
type StubType string

const (
	StubNone         StubType = "none"
	StubShort        StubType = "short"
	StubLong         StubType = "long"
	StubInterpolated StubType = "interpolated"
)

// StubPeriodRules governs irregular coupon handling, grounded on
// original_source/crates/convex-bonds/src/types/stub_rules.rs.
type StubPeriodRules struct {
	FirstPeriod StubType
	LastPeriod  StubType
}

// RegularStubRules is the default for a bond with no irregular periods.
func RegularStubRules() StubPeriodRules {
	return StubPeriodRules{FirstPeriod: StubNone, LastPeriod: StubNone}
}

// ExDividendRules governs whether a holder of record on the coupon date or
// a prior ex-dividend date receives the next coupon (UK Gilt / JGB style
// markets settle "ex" the coupon inside a short window before payment).
type ExDividendRules struct {
	// Days is the number of business days before the coupon date that the
	// bond goes ex-dividend. Zero means no ex-dividend period (most markets).
	Days int
	Cal  calendar.CalendarID
}

// IsExDividend reports whether settlement falls within the ex-dividend
// window preceding couponDate.
func (r ExDividendRules) IsExDividend(settlement, couponDate date.Date) bool {
	if r.Days <= 0 {
		return false
	}
	exDate := calendar.AddBusinessDays(r.Cal, couponDate.Time(), -r.Days)
	return !settlement.Time().Before(exDate) && settlement.Before(couponDate)
}

// SettlementRules governs standard settlement lag by market (T+1 US
// Treasury, T+2 most corporates, T+3 some EM markets).
type SettlementRules struct {
	Cal            calendar.CalendarID
	SettlementDays int
}

// SettlementDate advances trade by the market's standard settlement lag.
func (r SettlementRules) SettlementDate(trade date.Date) date.Date {
	return date.FromTime(calendar.AddBusinessDays(r.Cal, trade.Time(), r.SettlementDays))
}

// ConventionBundle packages the market conventions a bond prices under —
// the analogue of the teacher's per-market constants scattered across
// bond/yield.go and swap/conventions.go, gathered into one value per spec
// §4.2/§4.6.
type ConventionBundle struct {
	DayCount        daycount.Convention
	Calendar        calendar.CalendarID
	BusinessDayConv calendar.BusinessDayConvention
	CouponFrequency int // payments per year
	Settlement      SettlementRules
	ExDividend      ExDividendRules
	Stub            StubPeriodRules
}

// Preset market convention bundles (spec §4.2's required market presets).
var (
	USTreasuryConventions = ConventionBundle{
		DayCount: daycount.ActActICMA, Calendar: calendar.GT, BusinessDayConv: calendar.Following,
		CouponFrequency: 2, Settlement: SettlementRules{Cal: calendar.GT, SettlementDays: 1},
	}
	USCorporateConventions = ConventionBundle{
		DayCount: daycount.Thirty360US, Calendar: calendar.FD, BusinessDayConv: calendar.Following,
		CouponFrequency: 2, Settlement: SettlementRules{Cal: calendar.FD, SettlementDays: 2},
	}
	UKGiltConventions = ConventionBundle{
		DayCount: daycount.ActActICMA, Calendar: calendar.UK, BusinessDayConv: calendar.Following,
		CouponFrequency: 2, Settlement: SettlementRules{Cal: calendar.UK, SettlementDays: 1},
		ExDividend: ExDividendRules{Days: 7, Cal: calendar.UK},
	}
	GermanBundConventions = ConventionBundle{
		DayCount: daycount.ActActICMA, Calendar: calendar.TARGET, BusinessDayConv: calendar.Following,
		CouponFrequency: 1, Settlement: SettlementRules{Cal: calendar.TARGET, SettlementDays: 2},
	}
	EurobondConventions = ConventionBundle{
		DayCount: daycount.Thirty360E, Calendar: calendar.TARGET, BusinessDayConv: calendar.Following,
		CouponFrequency: 1, Settlement: SettlementRules{Cal: calendar.TARGET, SettlementDays: 2},
	}
)

// Schedule is a generated set of coupon/principal cash-flow dates.
type Schedule struct {
	Periods []daycount.Period
}

// GenerateSchedule builds the coupon schedule from issue to maturity,
// stepping back from maturity in (12/frequency)-month increments per
// standard bond convention. No stub is generated: the first period is a
// full regular period that starts on the last roll date on or before issue,
// so issue may fall inside it — mirrors the teacher's
// swap/instrument.go schedule-generation style, generalized to bonds.
func GenerateSchedule(issue, maturity date.Date, freq int, cal calendar.CalendarID, conv calendar.BusinessDayConvention) (Schedule, error) {
	if freq <= 0 {
		return Schedule{}, molerr.New(molerr.BondSpecError, "bond.GenerateSchedule", "frequency must be positive")
	}
	if !maturity.After(issue) {
		return Schedule{}, molerr.New(molerr.BondSpecError, "bond.GenerateSchedule", "maturity must be after issue")
	}
	monthsPerPeriod := 12 / freq

	var unadjusted []date.Date
	cur := maturity
	for cur.After(issue) {
		unadjusted = append([]date.Date{cur}, unadjusted...)
		cur = cur.AddMonths(-monthsPerPeriod)
	}
	// cur is now <= issue: this is the regular roll date that starts the
	// period ending on the schedule's first coupon.
	starts := append([]date.Date{cur}, unadjusted[:len(unadjusted)-1]...)

	periods := make([]daycount.Period, len(unadjusted))
	for i, end := range unadjusted {
		adjustedEnd := date.FromTime(calendar.AdjustWithConvention(cal, end.Time(), conv))
		periods[i] = daycount.Period{Start: starts[i], End: adjustedEnd, Frequency: freq}
	}
	return Schedule{Periods: periods}, nil
}

// Coupon is one scheduled coupon payment.
type Coupon struct {
	Period daycount.Period
	Amount float64 // per 100 face
}

// GenerateCashflows turns a schedule into coupon amounts (per 100 face) at
// the stated annual rate, plus redemption of face value at maturity, using
// conv.DayCount for the fractional-period adjustment spec requires on stub
// periods.
func GenerateCashflows(schedule Schedule, couponRatePct float64, conv ConventionBundle) ([]Coupon, error) {
	coupons := make([]Coupon, len(schedule.Periods))
	perPeriodRate := couponRatePct / float64(conv.CouponFrequency)

	for i, p := range schedule.Periods {
		yf, err := daycount.YearFraction(p.Start, p.End, conv.DayCount, p)
		if err != nil {
			return nil, molerr.Wrap(molerr.BondSpecError, "bond.GenerateCashflows", err)
		}
		regularYF := 1.0 / float64(conv.CouponFrequency)
		amount := perPeriodRate
		if yf != regularYF && regularYF > 0 {
			// Stub period: scale the regular coupon by the actual/regular
			// fraction rather than paying a full period's coupon.
			amount = perPeriodRate * (yf / regularYF)
		}
		coupons[i] = Coupon{Period: p, Amount: amount}
	}
	if len(coupons) > 0 {
		coupons[len(coupons)-1].Amount += 100.0
	}
	return coupons, nil
}

// AccruedInterest computes accrued interest per 100 face as of settlement,
// using conv.DayCount against the coupon period containing settlement.
func AccruedInterest(schedule Schedule, couponRatePct float64, conv ConventionBundle, settlement date.Date) (float64, error) {
	perPeriodRate := couponRatePct / float64(conv.CouponFrequency)
	for _, p := range schedule.Periods {
		if !settlement.Before(p.Start) && settlement.Before(p.End) {
			yf, err := daycount.YearFraction(p.Start, settlement, conv.DayCount, p)
			if err != nil {
				return 0, molerr.Wrap(molerr.BondSpecError, "bond.AccruedInterest", err)
			}
			fullYF, err := daycount.YearFraction(p.Start, p.End, conv.DayCount, p)
			if err != nil {
				return 0, molerr.Wrap(molerr.BondSpecError, "bond.AccruedInterest", err)
			}
			if fullYF == 0 {
				return 0, nil
			}
			return perPeriodRate * (yf / fullYF), nil
		}
	}
	return 0, molerr.New(molerr.BondSpecError, "bond.AccruedInterest", "settlement outside schedule")
}
