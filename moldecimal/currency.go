package moldecimal

// Currency describes an ISO-4217 currency: its code, display symbol, and the
// conventions used when rounding amounts for display (minor_units) or
// quoting settlement lag.
type Currency struct {
	Code             string
	Symbol           string
	MinorUnits       int
	DefaultSettleLag int // business days
}

var registry = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", MinorUnits: 2, DefaultSettleLag: 1},
	"EUR": {Code: "EUR", Symbol: "€", MinorUnits: 2, DefaultSettleLag: 2},
	"GBP": {Code: "GBP", Symbol: "£", MinorUnits: 2, DefaultSettleLag: 1},
	"JPY": {Code: "JPY", Symbol: "¥", MinorUnits: 0, DefaultSettleLag: 2},
	"KRW": {Code: "KRW", Symbol: "₩", MinorUnits: 0, DefaultSettleLag: 1},
}

// CurrencyByCode looks up a known ISO-4217 currency preset. ok is false for
// an unregistered code; callers may still construct a Currency literal
// directly for currencies not in this built-in set.
func CurrencyByCode(code string) (cur Currency, ok bool) {
	cur, ok = registry[code]
	return cur, ok
}

func defaultMinorUnits(code string) int {
	if c, ok := registry[code]; ok {
		return c.MinorUnits
	}
	return 2
}
