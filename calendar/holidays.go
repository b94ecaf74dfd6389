package calendar

import "time"

// Easter returns the Gregorian date of Easter Sunday for year, via the
// anonymous Gregorian algorithm (Computus). Used to derive Good Friday and
// Easter Monday, which anchor TARGET2 and UK market holidays.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// nthWeekday returns the date of the n-th occurrence of weekday in month
// (n=1 is the first, n=-1 is the last).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	if n > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		offset := (int(weekday) - int(first.Weekday()) + 7) % 7
		return first.AddDate(0, 0, offset+7*(n-1))
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset+7*(n+1))
}

// observedUS shifts a fixed date that falls on Saturday to the preceding
// Friday and Sunday to the following Monday (US federal/Treasury convention).
func observedUS(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

// observedUK shifts a fixed date that falls on a weekend to the following
// Monday (UK bank holiday substitute-day convention).
func observedUK(t time.Time) time.Time {
	if t.Weekday() == time.Saturday {
		return t.AddDate(0, 0, 2)
	}
	if t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, 1)
	}
	return t
}

func fixed(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// sifmaHolidays returns the US bond-market (SIFMA) holiday calendar: the
// federal holiday set observed by the Treasury and dollar fixed-income
// markets, fixed dates with Saturday/Sunday observance shifting.
func sifmaHolidays(minYear, maxYear int) []time.Time {
	var out []time.Time
	for y := minYear; y <= maxYear; y++ {
		out = append(out,
			observedUS(fixed(y, time.January, 1)),   // New Year's Day
			nthWeekday(y, time.January, time.Monday, 3),  // MLK Day
			nthWeekday(y, time.February, time.Monday, 3), // Washington's Birthday
			Easter(y).AddDate(0, 0, -2),              // Good Friday
			nthWeekday(y, time.May, time.Monday, -1),     // Memorial Day
			observedUS(fixed(y, time.June, 19)),      // Juneteenth
			observedUS(fixed(y, time.July, 4)),       // Independence Day
			nthWeekday(y, time.September, time.Monday, 1), // Labor Day
			nthWeekday(y, time.October, time.Monday, 2),  // Columbus Day
			observedUS(fixed(y, time.November, 11)),  // Veterans Day
			nthWeekday(y, time.November, time.Thursday, 4), // Thanksgiving
			observedUS(fixed(y, time.December, 25)),  // Christmas
		)
	}
	return out
}

// usGovernmentHolidays is the US Treasury securities settlement calendar.
// Identical in this implementation to the SIFMA set; kept as a distinct
// generator because the two calendars diverge on early-close days that this
// package does not model (spec tracks full closures only).
func usGovernmentHolidays(minYear, maxYear int) []time.Time {
	return sifmaHolidays(minYear, maxYear)
}

// target2Holidays returns the TARGET2 Eurosystem settlement calendar:
// New Year's Day, Good Friday, Easter Monday, Labour Day, Christmas Day and
// Boxing Day — no observance shift, as TARGET2 simply falls on the fixed date.
func target2Holidays(minYear, maxYear int) []time.Time {
	var out []time.Time
	for y := minYear; y <= maxYear; y++ {
		easter := Easter(y)
		out = append(out,
			fixed(y, time.January, 1),
			easter.AddDate(0, 0, -2), // Good Friday
			easter.AddDate(0, 0, 1),  // Easter Monday
			fixed(y, time.May, 1),    // Labour Day
			fixed(y, time.December, 25),
			fixed(y, time.December, 26),
		)
	}
	return out
}

// ukHolidayDates returns the UK bank-holiday calendar (England & Wales):
// New Year's Day, Good Friday, Easter Monday, early May bank holiday, spring
// bank holiday, summer bank holiday, Christmas and Boxing Day, with weekend
// substitute-day shifting.
func ukHolidayDates(minYear, maxYear int) []time.Time {
	var out []time.Time
	for y := minYear; y <= maxYear; y++ {
		easter := Easter(y)
		out = append(out,
			observedUK(fixed(y, time.January, 1)),
			easter.AddDate(0, 0, -2), // Good Friday
			easter.AddDate(0, 0, 1),  // Easter Monday
			nthWeekday(y, time.May, time.Monday, 1),      // Early May bank holiday
			nthWeekday(y, time.May, time.Monday, -1),     // Spring bank holiday
			nthWeekday(y, time.August, time.Monday, -1),  // Summer bank holiday
			observedUK(fixed(y, time.December, 25)),
			christmasBoxingDay(y),
		)
	}
	return out
}

// christmasBoxingDay applies the UK's two-day substitute rule: if Dec 25/26
// fall on a weekend, both holidays roll to the next available weekdays.
func christmasBoxingDay(y int) time.Time {
	boxing := fixed(y, time.December, 26)
	switch boxing.Weekday() {
	case time.Saturday, time.Sunday:
		return fixed(y, time.December, 28)
	case time.Monday:
		// Christmas fell on Sunday and takes Dec 26 as its substitute.
		return fixed(y, time.December, 27)
	default:
		return boxing
	}
}

// japanHolidays returns an approximation of Japan's national holiday
// calendar: fixed and nth-weekday holidays, plus Vernal/Autumnal Equinox Day
// approximated as Mar 20 / Sep 23 (the true dates depend on an astronomical
// ephemeris this package does not carry). Holidays falling on a Sunday
// substitute to the following Monday (furikae-kyūjitsu); Saturday holidays
// are not substituted.
func japanHolidays(minYear, maxYear int) []time.Time {
	var out []time.Time
	for y := minYear; y <= maxYear; y++ {
		out = append(out,
			substituteJP(fixed(y, time.January, 1)),
			nthWeekday(y, time.January, time.Monday, 2),  // Coming of Age Day
			substituteJP(fixed(y, time.February, 11)),    // National Foundation Day
			substituteJP(fixed(y, time.February, 23)),    // Emperor's Birthday
			substituteJP(fixed(y, time.March, 20)),        // Vernal Equinox (approx.)
			substituteJP(fixed(y, time.April, 29)),        // Showa Day
			substituteJP(fixed(y, time.May, 3)),           // Constitution Day
			substituteJP(fixed(y, time.May, 4)),           // Greenery Day
			substituteJP(fixed(y, time.May, 5)),           // Children's Day
			nthWeekday(y, time.July, time.Monday, 3),      // Marine Day
			nthWeekday(y, time.August, time.Monday, 1),    // Mountain Day (fixed Aug 11, approximated)
			nthWeekday(y, time.September, time.Monday, 3), // Respect for the Aged Day
			substituteJP(fixed(y, time.September, 23)),    // Autumnal Equinox (approx.)
			nthWeekday(y, time.October, time.Monday, 2),   // Sports Day
			substituteJP(fixed(y, time.November, 3)),       // Culture Day
			substituteJP(fixed(y, time.November, 23)),      // Labour Thanksgiving Day
		)
	}
	return out
}

func substituteJP(t time.Time) time.Time {
	if t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// krHolidayDates returns the Korean Exchange (KRX) fixed-date holiday
// calendar only. Seollal and Chuseok follow the lunar calendar and are not
// modeled here — no lunar-calendar conversion library is wired into this
// module, so callers pricing KRW instruments around those windows must
// supply explicit overrides.
func krHolidayDates(minYear, maxYear int) []time.Time {
	var out []time.Time
	for y := minYear; y <= maxYear; y++ {
		out = append(out,
			fixed(y, time.January, 1),
			fixed(y, time.March, 1),   // Independence Movement Day
			fixed(y, time.May, 5),     // Children's Day
			fixed(y, time.June, 6),    // Memorial Day
			fixed(y, time.August, 15), // Liberation Day
			fixed(y, time.October, 3), // National Foundation Day
			fixed(y, time.October, 9), // Hangul Day
			fixed(y, time.December, 25),
		)
	}
	return out
}
