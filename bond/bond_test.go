package bond_test

import (
	"testing"

	"github.com/meenmo/molib/bond"
	"github.com/meenmo/molib/calendar"
	"github.com/meenmo/molib/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScheduleSemiAnnual(t *testing.T) {
	issue := date.New(2024, 1, 15)
	maturity := date.New(2027, 1, 15)
	sched, err := bond.GenerateSchedule(issue, maturity, 2, calendar.WE, calendar.ModifiedFollowing)
	require.NoError(t, err)
	assert.Equal(t, 6, len(sched.Periods))
	assert.True(t, sched.Periods[len(sched.Periods)-1].End.Equal(maturity))
}

func TestGenerateScheduleRejectsMaturityBeforeIssue(t *testing.T) {
	_, err := bond.GenerateSchedule(date.New(2027, 1, 1), date.New(2024, 1, 1), 2, calendar.WE, calendar.ModifiedFollowing)
	assert.Error(t, err)
}

func TestGenerateCashflowsFinalIncludesRedemption(t *testing.T) {
	issue := date.New(2024, 1, 15)
	maturity := date.New(2026, 1, 15)
	sched, err := bond.GenerateSchedule(issue, maturity, 2, calendar.WE, calendar.ModifiedFollowing)
	require.NoError(t, err)

	conv := bond.USTreasuryConventions
	coupons, err := bond.GenerateCashflows(sched, 4.0, conv)
	require.NoError(t, err)
	require.NotEmpty(t, coupons)
	assert.Greater(t, coupons[len(coupons)-1].Amount, 100.0)
}

func TestAccruedInterestHalfPeriod(t *testing.T) {
	issue := date.New(2024, 1, 15)
	maturity := date.New(2026, 1, 15)
	sched, err := bond.GenerateSchedule(issue, maturity, 2, calendar.WE, calendar.ModifiedFollowing)
	require.NoError(t, err)

	settlement := sched.Periods[0].Start.AddDays(date.DaysBetween(sched.Periods[0].Start, sched.Periods[0].End) / 2)
	ai, err := bond.AccruedInterest(sched, 4.0, bond.USTreasuryConventions, settlement)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ai, 0.05) // ~half of the 2.0 semiannual coupon
}

func TestExDividendWindow(t *testing.T) {
	rules := bond.ExDividendRules{Days: 7, Cal: calendar.UK}
	coupon := date.New(2025, 6, 15)
	settlementInside := date.New(2025, 6, 10)
	settlementOutside := date.New(2025, 5, 1)

	assert.True(t, rules.IsExDividend(settlementInside, coupon))
	assert.False(t, rules.IsExDividend(settlementOutside, coupon))
}
