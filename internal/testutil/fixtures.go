package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/google/uuid"
)

var testEmailCounter atomic.Int64

// NewTestUser builds a user with a unique email.
func NewTestUser() *domain.User {
	n := testEmailCounter.Add(1)
	return &domain.User{
		ID:        uuid.New().String(),
		Email:     fmt.Sprintf("user%d@example.com", n),
		CreatedAt: time.Now().Unix(),
	}
}

// Calendar options
type CalendarOption func(*domain.WorkCalendar)

func WithTimezone(tz string) CalendarOption {
	return func(c *domain.WorkCalendar) {
		c.Timezone = tz
	}
}

func WithWeekStart(day int) CalendarOption {
	return func(c *domain.WorkCalendar) {
		c.WeekStart = day
	}
}

func WithWorkDays(mask string) CalendarOption {
	return func(c *domain.WorkCalendar) {
		c.WorkDays = mask
	}
}

func WithHoursPerDay(h float64) CalendarOption {
	return func(c *domain.WorkCalendar) {
		c.HoursPerDay = h
	}
}

func WithHolidayRegion(region string) CalendarOption {
	return func(c *domain.WorkCalendar) {
		c.HolidayRegion = region
	}
}

// NewTestCalendar builds a default work calendar for the user, modified by opts.
func NewTestCalendar(userID string, opts ...CalendarOption) *domain.WorkCalendar {
	c := domain.DefaultWorkCalendar(userID)
	c.ID = uuid.New().String()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TimeEntry options
type EntryOption func(*domain.TimeEntry)

func WithEnd(end int64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.End = &end
	}
}

func WithNote(note string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Note = note
	}
}

// WithBreak appends a closed break interval.
func WithBreak(start, end int64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Breaks = append(e.Breaks, domain.BreakInterval{
			ID:          uuid.New().String(),
			TimeEntryID: e.ID,
			Start:       start,
			End:         &end,
		})
	}
}

// WithOpenBreak appends a still-running break interval.
func WithOpenBreak(start int64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Breaks = append(e.Breaks, domain.BreakInterval{
			ID:          uuid.New().String(),
			TimeEntryID: e.ID,
			Start:       start,
		})
	}
}

// NewTestEntry builds a time entry; without WithEnd it is an open entry.
func NewTestEntry(userID string, start int64, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Start:  start,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Leave options
type LeaveOption func(*domain.LeaveEntry)

func WithLeaveType(t domain.LeaveType) LeaveOption {
	return func(l *domain.LeaveEntry) {
		l.Type = t
	}
}

func WithLeaveNote(note string) LeaveOption {
	return func(l *domain.LeaveEntry) {
		l.Note = note
	}
}

func AsPublicHoliday() LeaveOption {
	return func(l *domain.LeaveEntry) {
		l.PublicHoliday = true
	}
}

// NewTestLeave builds an annual leave entry of the given length in days.
func NewTestLeave(userID string, start int64, days float64, opts ...LeaveOption) *domain.LeaveEntry {
	l := &domain.LeaveEntry{
		ID:       uuid.New().String(),
		UserID:   userID,
		Type:     domain.LeaveAnnual,
		Start:    start,
		Duration: days,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
