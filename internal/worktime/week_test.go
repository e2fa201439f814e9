package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekToken_Format(t *testing.T) {
	assert.Equal(t, "2022-W25", WeekToken(day(2022, 6, 22)))
	assert.Equal(t, "2024-W03", WeekToken(day(2024, 1, 17)))
}

func TestWeekToken_ISOYearAtNewYear(t *testing.T) {
	// 2021-01-01 belongs to ISO week 53 of 2020.
	assert.Equal(t, "2020-W53", WeekToken(day(2021, 1, 1)))
	// 2024-12-30 belongs to ISO week 1 of 2025.
	assert.Equal(t, "2025-W01", WeekToken(day(2024, 12, 30)))
}

func TestResolveWeekBounds_MondayStart(t *testing.T) {
	now := time.Date(2022, 6, 22, 15, 0, 0, 0, time.UTC) // Wednesday
	start, end, err := ResolveWeekBounds("2022-W25", now, 0)
	require.NoError(t, err)
	assert.Equal(t, day(2022, 6, 20), start)
	assert.Equal(t, day(2022, 6, 27), end)
}

func TestResolveWeekBounds_ShiftedStartBeforeViewerWeekday(t *testing.T) {
	// Wednesday start (weekStart0 = 2), viewed on a Friday: window begins
	// on the Wednesday of the nominal week.
	now := time.Date(2022, 6, 24, 9, 0, 0, 0, time.UTC)
	start, end, err := ResolveWeekBounds("2022-W25", now, 2)
	require.NoError(t, err)
	assert.Equal(t, day(2022, 6, 22), start)
	assert.Equal(t, day(2022, 6, 29), end)
}

func TestResolveWeekBounds_ShiftedStartAfterViewerWeekday(t *testing.T) {
	// Thursday start (weekStart0 = 3), viewed on a Tuesday: shifting the
	// nominal Monday forward would skip into the next period, so the
	// window slides back seven days and still contains now.
	now := time.Date(2022, 6, 21, 9, 0, 0, 0, time.UTC)
	start, end, err := ResolveWeekBounds("2022-W25", now, 3)
	require.NoError(t, err)
	assert.Equal(t, day(2022, 6, 16), start)
	assert.Equal(t, day(2022, 6, 23), end)
	assert.True(t, !now.Before(start) && now.Before(end))
}

func TestResolveWeekBounds_HalfOpenInterval(t *testing.T) {
	now := time.Date(2022, 6, 22, 0, 0, 0, 0, time.UTC)
	start, end, err := ResolveWeekBounds("2022-W25", now, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
}

func TestResolveWeekBounds_InvalidTokens(t *testing.T) {
	now := time.Now()
	for _, token := range []string{"", "2022", "2022-25", "2022-W00", "2022-W54", "22-W25", "2022-Wxx", "2022-W25-extra"} {
		_, _, err := ResolveWeekBounds(token, now, 0)
		assert.ErrorIs(t, err, ErrInvalidWeekToken, "token %q", token)
	}
}

func TestResolveWeekBounds_RoundTripContainsNow(t *testing.T) {
	// The token WeeksSince produces for the current week must resolve to a
	// window containing now, whatever day the viewer is on and wherever
	// the week is configured to start.
	base := time.Date(2022, 6, 13, 12, 0, 0, 0, time.UTC)
	for weekStart0 := 0; weekStart0 < 7; weekStart0++ {
		for offset := 0; offset < 14; offset++ {
			now := base.AddDate(0, 0, offset)
			weeks := WeeksSince(now.AddDate(0, 0, -30), now, weekStart0)
			require.NotEmpty(t, weeks)

			start, end, err := ResolveWeekBounds(weeks[0], now, weekStart0)
			require.NoError(t, err)
			assert.True(t, !now.Before(start) && now.Before(end),
				"weekStart0=%d now=%s token=%s window=[%s,%s)", weekStart0, now, weeks[0], start, end)
		}
	}
}

func TestWeekStart_SameDay(t *testing.T) {
	// Monday viewer, Monday start: week begins today at midnight.
	now := time.Date(2022, 6, 20, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, day(2022, 6, 20), WeekStart(now, 0))
}

func TestWeekStart_StepsBack(t *testing.T) {
	now := time.Date(2022, 6, 22, 8, 0, 0, 0, time.UTC) // Wednesday
	assert.Equal(t, day(2022, 6, 20), WeekStart(now, 0))
	// Thursday start: most recent Thursday is the previous week's.
	assert.Equal(t, day(2022, 6, 16), WeekStart(now, 3))
}

func TestWeeksSince_Enumerates(t *testing.T) {
	first := day(2022, 5, 31) // Tuesday
	now := day(2022, 6, 22)   // Wednesday three weeks later
	weeks := WeeksSince(first, now, 0)
	assert.Equal(t, []string{"2022-W25", "2022-W24", "2022-W23", "2022-W22"}, weeks)
}

func TestWeeksSince_SingleWeek(t *testing.T) {
	first := day(2022, 6, 20)
	now := day(2022, 6, 22)
	assert.Equal(t, []string{"2022-W25"}, WeeksSince(first, now, 0))
}

func TestWeekday0(t *testing.T) {
	assert.Equal(t, 0, Weekday0(day(2022, 6, 20))) // Monday
	assert.Equal(t, 6, Weekday0(day(2022, 6, 26))) // Sunday
}

func TestHumanizeSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0h 0m"},
		{59, "0h 0m"},
		{60, "0h 1m"},
		{6600, "1h 50m"},
		{22500, "6h 15m"},
		{-5400, "-1h 30m"},
		{-59, "-0h 0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanizeSeconds(tt.seconds), "seconds=%d", tt.seconds)
	}
}
