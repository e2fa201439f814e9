package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/clocked-app/clocked/internal/worktime"
	"github.com/jonboulle/clockwork"
)

type statsService struct {
	entries   repository.TimeEntryRepo
	leaves    repository.LeaveRepo
	calendars CalendarService
	clock     clockwork.Clock
}

func NewStatsService(entries repository.TimeEntryRepo, leaves repository.LeaveRepo, calendars CalendarService, clock clockwork.Clock) StatsService {
	return &statsService{entries: entries, leaves: leaves, calendars: calendars, clock: clock}
}

// sumLogged totals the attributed seconds of a homogeneous loggable batch.
func sumLogged(items []domain.Loggable, now time.Time, cal *domain.WorkCalendar) (int64, error) {
	var total int64
	for _, item := range items {
		logged, err := item.Logged(now, cal)
		if err != nil {
			return 0, err
		}
		total += logged
	}
	return total, nil
}

func loggables(entries []*domain.TimeEntry, leaves []*domain.LeaveEntry) []domain.Loggable {
	items := make([]domain.Loggable, 0, len(entries)+len(leaves))
	for _, e := range entries {
		items = append(items, e)
	}
	for _, l := range leaves {
		items = append(items, l)
	}
	return items
}

// loggedSince totals time and leave records starting at or after the
// given instant.
func (s *statsService) loggedSince(ctx context.Context, userID string, since int64, now time.Time, cal *domain.WorkCalendar) (int64, error) {
	entries, err := s.entries.ListSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	leaves, err := s.leaves.ListSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	return sumLogged(loggables(entries, leaves), now, cal)
}

// firstStart returns the earliest record start across time and leave
// entries, or ok=false when the user has no records at all.
func (s *statsService) firstStart(ctx context.Context, userID string) (int64, bool, error) {
	firstEntry, entryErr := s.entries.FirstStart(ctx, userID)
	if entryErr != nil && !errors.Is(entryErr, repository.ErrNotFound) {
		return 0, false, entryErr
	}
	firstLeave, leaveErr := s.leaves.FirstStart(ctx, userID)
	if leaveErr != nil && !errors.Is(leaveErr, repository.ErrNotFound) {
		return 0, false, leaveErr
	}

	switch {
	case entryErr == nil && leaveErr == nil:
		if firstLeave < firstEntry {
			return firstLeave, true, nil
		}
		return firstEntry, true, nil
	case entryErr == nil:
		return firstEntry, true, nil
	case leaveErr == nil:
		return firstLeave, true, nil
	default:
		return 0, false, nil
	}
}

// Stats recomputes the dashboard figures from scratch: today's and this
// week's logged and remaining time, plus the all-time overtime balance.
// The all-time pass rescans the user's full history on every call rather
// than maintaining a running aggregate, so the figure can never drift
// from the stored records.
func (s *statsService) Stats(ctx context.Context, userID string) (*domain.TimeStats, error) {
	cal, err := s.calendars.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc, err := cal.Location()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().In(loc)
	today := worktime.StartOfDay(now)
	weekStart := worktime.WeekStart(now, cal.WeekStart0())

	loggedToday, err := s.loggedSince(ctx, userID, today.Unix(), now, cal)
	if err != nil {
		return nil, err
	}
	loggedWeek, err := s.loggedSince(ctx, userID, weekStart.Unix(), now, cal)
	if err != nil {
		return nil, err
	}

	dailyTarget := int64(math.Round(cal.HoursPerDay * 3600))
	var todoToday int64
	if cal.IsWorkDay(now) {
		todoToday = dailyTarget
	}
	todoWeek := dailyTarget * int64(cal.TotalWorkDays())

	remainingToday := max(0, todoToday-loggedToday)
	remainingWeek := max(0, todoWeek-loggedWeek)

	overtime, err := s.overtime(ctx, userID, now, today, cal)
	if err != nil {
		return nil, err
	}

	return &domain.TimeStats{
		LoggedToday:       worktime.HumanizeSeconds(loggedToday),
		LoggedThisWeek:    worktime.HumanizeSeconds(loggedWeek),
		RemainingToday:    worktime.HumanizeSeconds(remainingToday),
		RemainingThisWeek: worktime.HumanizeSeconds(remainingWeek),
		Overtime:          worktime.HumanizeSeconds(overtime),
	}, nil
}

// overtime is all-time logged seconds minus the expected seconds between
// the user's first recorded day and today, both inclusive.
func (s *statsService) overtime(ctx context.Context, userID string, now, today time.Time, cal *domain.WorkCalendar) (int64, error) {
	first, ok, err := s.firstStart(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	leaves, err := s.leaves.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	logged, err := sumLogged(loggables(entries, leaves), now, cal)
	if err != nil {
		return 0, err
	}

	firstDay := time.Unix(first, 0).In(now.Location())
	expected := worktime.ExpectedHours(firstDay, today, cal.HoursPerDay, cal.WorkDays)
	return logged - int64(math.Round(expected*3600)), nil
}

func (s *statsService) WeekList(ctx context.Context, userID string) ([]string, error) {
	cal, err := s.calendars.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc, err := cal.Location()
	if err != nil {
		return nil, err
	}

	first, ok, err := s.firstStart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	now := s.clock.Now().In(loc)
	return worktime.WeeksSince(time.Unix(first, 0).In(loc), now, cal.WeekStart0()), nil
}

func (s *statsService) WeekBounds(ctx context.Context, userID, token string) (time.Time, time.Time, error) {
	cal, err := s.calendars.Fetch(ctx, userID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	loc, err := cal.Location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	now := s.clock.Now().In(loc)
	return worktime.ResolveWeekBounds(token, now, cal.WeekStart0())
}

func (s *statsService) EntriesForWeek(ctx context.Context, userID, token string) (*WeekEntries, error) {
	start, end, err := s.WeekBounds(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListBetween(ctx, userID, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	leaves, err := s.leaves.ListBetween(ctx, userID, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}

	return &WeekEntries{
		Token:        token,
		Start:        start,
		End:          end,
		TimeEntries:  entries,
		LeaveEntries: leaves,
	}, nil
}
