package service

import (
	"context"
	"time"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/holiday"
)

// TrackingService owns the clock in/out and break lifecycle plus manual
// edits to time entries. All operations are scoped to one user.
type TrackingService interface {
	ClockIn(ctx context.Context, userID, note string) (*domain.TimeEntry, error)
	ClockOut(ctx context.Context, userID string) (*domain.TimeEntry, error)
	StartBreak(ctx context.Context, userID, note string) (*domain.BreakInterval, error)
	EndBreak(ctx context.Context, userID string) (*domain.BreakInterval, error)
	// Current returns the running entry; ErrNoOpenEntry when clocked out.
	Current(ctx context.Context, userID string) (*domain.TimeEntry, error)

	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, userID, id string) (*domain.TimeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, userID, id string) error
}

type LeaveService interface {
	Create(ctx context.Context, l *domain.LeaveEntry) error
	GetByID(ctx context.Context, userID, id string) (*domain.LeaveEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.LeaveEntry, error)
	Update(ctx context.Context, l *domain.LeaveEntry) error
	Delete(ctx context.Context, userID, id string) error
}

// CalendarService manages per-user work calendars. Fetch creates the
// default calendar on first access; FetchExisting surfaces
// ErrCalendarMissing instead.
type CalendarService interface {
	Fetch(ctx context.Context, userID string) (*domain.WorkCalendar, error)
	FetchExisting(ctx context.Context, userID string) (*domain.WorkCalendar, error)
	Update(ctx context.Context, c *domain.WorkCalendar) error
}

// WeekEntries is one resolved week with the records falling inside it.
type WeekEntries struct {
	Token        string
	Start        time.Time
	End          time.Time
	TimeEntries  []*domain.TimeEntry
	LeaveEntries []*domain.LeaveEntry
}

// StatsService derives dashboard figures from raw records. Everything is
// recomputed per call; nothing is cached.
type StatsService interface {
	Stats(ctx context.Context, userID string) (*domain.TimeStats, error)
	WeekList(ctx context.Context, userID string) ([]string, error)
	WeekBounds(ctx context.Context, userID, token string) (time.Time, time.Time, error)
	EntriesForWeek(ctx context.Context, userID, token string) (*WeekEntries, error)
}

// HolidayService lists public holidays for the user's configured region.
type HolidayService interface {
	Upcoming(ctx context.Context, userID string) ([]holiday.Holiday, error)
	Previous(ctx context.Context, userID string) ([]holiday.Holiday, error)
	Next(ctx context.Context, userID string) (*holiday.Holiday, error)
}
