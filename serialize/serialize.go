// Package serialize defines the wire DTOs spec §9 requires for bonds,
// curves, and portfolios, and their conversions to/from the domain types.
//
// Grounded on original_source/crates/convex-api/src/dto/common.rs
// (DateInput/to_date/From<Date>, CurrencyCode/FrequencyCode/DayCountCode
// enums with explicit From conversions both ways), re-expressed as Go
// structs with (Un)MarshalJSON-free plain fields since goccy/go-json
// (the teacher pack's JSON library, per penny-vault-pv-data) handles
// struct tags without needing serde-style derive macros.
package serialize

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/meenmo/molib/bond"
	"github.com/meenmo/molib/calendar"
	"github.com/meenmo/molib/curve"
	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/daycount"
	"github.com/meenmo/molib/molerr"
)

// DateDTO mirrors the teacher's DateInput: a plain year/month/day triple
// at the wire boundary instead of date.Date's internal representation.
type DateDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ToDate converts the wire form to a date.Date, validating the calendar
// date the way the teacher's DateInput::to_date does.
func (d DateDTO) ToDate() (date.Date, error) {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return date.Date{}, molerr.New(molerr.InvalidInput, "serialize.DateDTO.ToDate", "invalid calendar date")
	}
	month := time.Month(d.Month)
	dt := date.New(d.Year, month, d.Day)
	if dt.Month() != month || dt.Day() != d.Day {
		return date.Date{}, molerr.New(molerr.InvalidInput, "serialize.DateDTO.ToDate", "date overflowed its month")
	}
	return dt, nil
}

// DateDTOFrom converts a date.Date to its wire form, the teacher's
// `impl From<Date> for DateInput`.
func DateDTOFrom(d date.Date) DateDTO {
	return DateDTO{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}
}

// FrequencyCode is the wire form of coupon frequency, per the teacher's
// FrequencyCode enum (Annual/SemiAnnual/Quarterly/Monthly).
type FrequencyCode string

const (
	FreqAnnual     FrequencyCode = "annual"
	FreqSemiAnnual FrequencyCode = "semi_annual"
	FreqQuarterly  FrequencyCode = "quarterly"
	FreqMonthly    FrequencyCode = "monthly"
)

// ToPeriodsPerYear converts the wire code to an integer frequency,
// defaulting to semi-annual as the teacher's FrequencyCode::default() does.
func (f FrequencyCode) ToPeriodsPerYear() int {
	switch f {
	case FreqAnnual:
		return 1
	case FreqQuarterly:
		return 4
	case FreqMonthly:
		return 12
	default:
		return 2
	}
}

// FrequencyCodeFrom converts an integer payments-per-year frequency to its
// wire code, defaulting to semi-annual for unrecognized values per the
// teacher's fallback arm.
func FrequencyCodeFrom(periodsPerYear int) FrequencyCode {
	switch periodsPerYear {
	case 1:
		return FreqAnnual
	case 4:
		return FreqQuarterly
	case 12:
		return FreqMonthly
	default:
		return FreqSemiAnnual
	}
}

// DayCountCode is the wire form of a day-count convention.
type DayCountCode string

const (
	DCAct360      DayCountCode = "act_360"
	DCAct365Fixed DayCountCode = "act_365_fixed"
	DCAct365L     DayCountCode = "act_365_l"
	DCActActISDA  DayCountCode = "act_act_isda"
	DCActActICMA  DayCountCode = "act_act_icma"
	DCThirty360US DayCountCode = "thirty_360_us"
	DCThirty360E  DayCountCode = "thirty_360_e"
	DCThirty360EP DayCountCode = "thirty_360_e_plus"
)

// ToConvention converts the wire code to daycount.Convention, defaulting to
// 30/360 US per the teacher's DayCountCode::default().
func (c DayCountCode) ToConvention() daycount.Convention {
	switch c {
	case DCAct360:
		return daycount.Act360
	case DCAct365Fixed:
		return daycount.Act365F
	case DCAct365L:
		return daycount.Act365L
	case DCActActISDA:
		return daycount.ActActISDA
	case DCActActICMA:
		return daycount.ActActICMA
	case DCThirty360E:
		return daycount.Thirty360E
	case DCThirty360EP:
		return daycount.Thirty360EP
	default:
		return daycount.Thirty360US
	}
}

// DayCountCodeFrom converts a daycount.Convention to its wire code.
func DayCountCodeFrom(conv daycount.Convention) DayCountCode {
	switch conv {
	case daycount.Act360:
		return DCAct360
	case daycount.Act365F:
		return DCAct365Fixed
	case daycount.Act365L:
		return DCAct365L
	case daycount.ActActISDA:
		return DCActActISDA
	case daycount.ActActICMA:
		return DCActActICMA
	case daycount.Thirty360E:
		return DCThirty360E
	case daycount.Thirty360EP:
		return DCThirty360EP
	default:
		return DCThirty360US
	}
}

// BondDTO is the wire form of a fixed-coupon bond definition.
type BondDTO struct {
	Kind       bond.Kind           `json:"kind"`
	Issue      DateDTO             `json:"issue"`
	Maturity   DateDTO             `json:"maturity"`
	CouponRate float64             `json:"coupon_rate_pct"`
	Frequency  FrequencyCode       `json:"frequency"`
	DayCount   DayCountCode        `json:"day_count"`
	CalendarID calendar.CalendarID `json:"calendar"`
}

// PillarDTO is the wire form of one curve pillar.
type PillarDTO struct {
	Date DateDTO `json:"date"`
	Time float64 `json:"time"`
	DF   float64 `json:"discount_factor"`
}

// PillarDTOsFrom converts a slice of curve.Pillar to their wire form.
func PillarDTOsFrom(pillars []curve.Pillar) []PillarDTO {
	out := make([]PillarDTO, len(pillars))
	for i, p := range pillars {
		out[i] = PillarDTO{Date: DateDTOFrom(p.Date), Time: p.Time, DF: p.DF}
	}
	return out
}

// Marshal serializes v using the teacher pack's JSON library
// (goccy/go-json), a drop-in accelerated replacement for encoding/json.
func Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, molerr.Wrap(molerr.InvalidInput, "serialize.Marshal", err)
	}
	return b, nil
}

// Unmarshal deserializes data into v using goccy/go-json.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return molerr.Wrap(molerr.InvalidInput, "serialize.Unmarshal", err)
	}
	return nil
}
