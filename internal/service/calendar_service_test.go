package service

import (
	"context"
	"testing"
	"time"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService_Fetch_CreatesDefault(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	cal, err := env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)
	assert.NotEmpty(t, cal.ID)
	assert.Equal(t, "Europe/London", cal.Timezone)
	assert.Equal(t, 1, cal.WeekStart)
	assert.Equal(t, 7.5, cal.HoursPerDay)
	assert.Equal(t, "MTWTF--", cal.WorkDays)

	again, err := env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, cal.ID, again.ID, "second fetch returns the stored calendar")
}

func TestCalendarService_FetchExisting(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	_, err := env.calendar.FetchExisting(ctx, env.userID)
	assert.ErrorIs(t, err, domain.ErrCalendarMissing)

	_, err = env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)

	cal, err := env.calendar.FetchExisting(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, env.userID, cal.UserID)
}

func TestCalendarService_Update(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	cal, err := env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)

	cal.WeekStart = 7
	cal.HoursPerDay = 8
	cal.WorkDays = "-TWTF-S"
	require.NoError(t, env.calendar.Update(ctx, cal))

	fetched, err := env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.WeekStart)
	assert.Equal(t, 8.0, fetched.HoursPerDay)
	assert.Equal(t, "-TWTF-S", fetched.WorkDays)
}

func TestCalendarService_Update_Invalid(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	cal, err := env.calendar.Fetch(ctx, env.userID)
	require.NoError(t, err)

	cal.WorkDays = "MTW"
	assert.Error(t, env.calendar.Update(ctx, cal))

	cal.WorkDays = "MTWTF--"
	cal.Timezone = "Nowhere/Invalid"
	assert.Error(t, env.calendar.Update(ctx, cal))
}
