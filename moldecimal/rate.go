package moldecimal

import (
	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// CompoundingTag labels the compounding convention a Yield is quoted under.
// It is defined here, with no dependency on other packages of the module.
type CompoundingTag string

const (
	CompSimple     CompoundingTag = "simple"
	CompAnnual     CompoundingTag = "annual"
	CompSemiAnnual CompoundingTag = "semi_annual"
	CompQuarterly  CompoundingTag = "quarterly"
	CompMonthly    CompoundingTag = "monthly"
	CompDaily      CompoundingTag = "daily"
	CompContinuous CompoundingTag = "continuous"
)

// Yield is an annualized decimal rate tagged with its compounding basis.
type Yield struct {
	Rate        decimal.Decimal
	Compounding CompoundingTag
}

func NewYield(rate float64, comp CompoundingTag) Yield {
	return Yield{Rate: decimal.NewFromFloat(rate), Compounding: comp}
}

func (y Yield) Float64() float64 {
	f, _ := y.Rate.Float64()
	return f
}

type jsonYield struct {
	Rate        string `json:"rate"`
	Compounding string `json:"compounding"`
}

func (y Yield) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(jsonYield{Rate: y.Rate.String(), Compounding: string(y.Compounding)})
}

func (y *Yield) UnmarshalJSON(b []byte) error {
	var jy jsonYield
	if err := gojson.Unmarshal(b, &jy); err != nil {
		return err
	}
	r, err := decimal.NewFromString(jy.Rate)
	if err != nil {
		return err
	}
	y.Rate = r
	y.Compounding = CompoundingTag(jy.Compounding)
	return nil
}

// SpreadKind tags which family a Spread belongs to; same-kind arithmetic is
// closed (spec §3 Spread invariant), cross-kind arithmetic is a caller error.
type SpreadKind string

const (
	SpreadZ           SpreadKind = "z"
	SpreadG           SpreadKind = "g"
	SpreadI           SpreadKind = "i"
	SpreadASWParPar   SpreadKind = "asw_par_par"
	SpreadASWProceeds SpreadKind = "asw_proceeds"
	SpreadOAS         SpreadKind = "oas"
	SpreadCredit      SpreadKind = "credit"
)

// Spread is a basis-point value tagged with its kind.
type Spread struct {
	BasisPoints decimal.Decimal
	Kind        SpreadKind
}

func NewSpread(bp float64, kind SpreadKind) Spread {
	return Spread{BasisPoints: decimal.NewFromFloat(bp), Kind: kind}
}

func (s Spread) Float64() float64 {
	f, _ := s.BasisPoints.Float64()
	return f
}

// Add returns s + other. Panics on kind mismatch — same-kind arithmetic is
// the only operation spec §3 guarantees is meaningful.
func (s Spread) Add(other Spread) Spread {
	if s.Kind != other.Kind {
		panic("moldecimal: Add across spread kinds " + string(s.Kind) + " and " + string(other.Kind))
	}
	return Spread{BasisPoints: s.BasisPoints.Add(other.BasisPoints), Kind: s.Kind}
}
