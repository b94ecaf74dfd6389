package serialize_test

import (
	"testing"

	"github.com/meenmo/molib/date"
	"github.com/meenmo/molib/daycount"
	"github.com/meenmo/molib/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateDTORoundTrips(t *testing.T) {
	d := date.New(2025, 6, 20)
	dto := serialize.DateDTOFrom(d)
	assert.Equal(t, 2025, dto.Year)
	assert.Equal(t, 6, dto.Month)
	assert.Equal(t, 20, dto.Day)

	back, err := dto.ToDate()
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestDateDTORejectsInvalidMonth(t *testing.T) {
	_, err := serialize.DateDTO{Year: 2025, Month: 13, Day: 1}.ToDate()
	assert.Error(t, err)
}

func TestDateDTORejectsOverflowDay(t *testing.T) {
	_, err := serialize.DateDTO{Year: 2025, Month: 2, Day: 30}.ToDate()
	assert.Error(t, err)
}

func TestFrequencyCodeRoundTrips(t *testing.T) {
	assert.Equal(t, 4, serialize.FreqQuarterly.ToPeriodsPerYear())
	assert.Equal(t, serialize.FreqQuarterly, serialize.FrequencyCodeFrom(4))
	assert.Equal(t, serialize.FreqSemiAnnual, serialize.FrequencyCodeFrom(99))
}

func TestDayCountCodeRoundTrips(t *testing.T) {
	assert.Equal(t, daycount.ActActICMA, serialize.DCActActICMA.ToConvention())
	assert.Equal(t, serialize.DCActActICMA, serialize.DayCountCodeFrom(daycount.ActActICMA))
}

func TestMarshalUnmarshalRoundTrips(t *testing.T) {
	dto := serialize.DateDTOFrom(date.New(2025, 1, 15))
	b, err := serialize.Marshal(dto)
	require.NoError(t, err)

	var back serialize.DateDTO
	err = serialize.Unmarshal(b, &back)
	require.NoError(t, err)
	assert.Equal(t, dto, back)
}
