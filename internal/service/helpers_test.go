package service

import (
	"context"
	"testing"
	"time"

	"github.com/clocked-app/clocked/internal/repository"
	"github.com/clocked-app/clocked/internal/testutil"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// testEnv wires real repositories over an in-memory database with a fake
// clock, the way the serve command wires the real thing.
type testEnv struct {
	entries   *repository.SQLiteTimeEntryRepo
	leaves    *repository.SQLiteLeaveRepo
	calendars *repository.SQLiteWorkCalendarRepo
	clock     *clockwork.FakeClock

	tracking  TrackingService
	leave     LeaveService
	calendar  CalendarService
	stats     StatsService
	userID    string
}

func newTestEnv(t *testing.T, at time.Time) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(database)
	entries := repository.NewSQLiteTimeEntryRepo(database)
	leaves := repository.NewSQLiteLeaveRepo(database)
	calendars := repository.NewSQLiteWorkCalendarRepo(database)
	uow := testutil.NewTestUoW(database)
	clock := clockwork.NewFakeClockAt(at)

	user := testutil.NewTestUser()
	require.NoError(t, users.Create(ctx, user))

	calendarSvc := NewCalendarService(calendars)

	return &testEnv{
		entries:   entries,
		leaves:    leaves,
		calendars: calendars,
		clock:     clock,
		tracking:  NewTrackingService(entries, uow, clock),
		leave:     NewLeaveService(leaves),
		calendar:  calendarSvc,
		stats:     NewStatsService(entries, leaves, calendarSvc, clock),
		userID:    user.ID,
	}
}

// london returns a time in the default calendar's timezone.
func london(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}
