package domain

import (
	"fmt"
	"time"
)

// WorkCalendar is a user's work schedule configuration: timezone, which
// weekday the week starts on, the daily hour target and which days count
// as work days. One per user, created with defaults on first access.
type WorkCalendar struct {
	ID       string
	UserID   string
	Timezone string
	// WeekStart is 1-indexed: 1 = Monday, 7 = Sunday.
	WeekStart   int
	HoursPerDay float64
	// WorkDays is a 7 character mask starting on Monday: the day letter for
	// a work day, '-' for a day off, e.g. "MTWTF--".
	WorkDays      string
	HolidayRegion string
}

// DefaultWorkCalendar returns the calendar a user starts with.
func DefaultWorkCalendar(userID string) *WorkCalendar {
	return &WorkCalendar{
		UserID:      userID,
		Timezone:    "Europe/London",
		WeekStart:   1,
		HoursPerDay: 7.5,
		WorkDays:    "MTWTF--",
	}
}

// dayNames is indexed Monday=0 to match the WorkDays mask.
var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Validate checks the constraints the store also enforces.
func (c *WorkCalendar) Validate() error {
	if len(c.WorkDays) != 7 {
		return fmt.Errorf("work days mask %q must be exactly 7 characters", c.WorkDays)
	}
	if c.WeekStart < 1 || c.WeekStart > 7 {
		return fmt.Errorf("week start %d must be between 1 (Monday) and 7 (Sunday)", c.WeekStart)
	}
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day %v must be positive", c.HoursPerDay)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// WeekStart0 is the zero-indexed week start weekday (Monday = 0).
func (c *WorkCalendar) WeekStart0() int {
	return c.WeekStart - 1
}

// Location resolves the calendar's timezone.
func (c *WorkCalendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsWorkDay reports whether the given instant falls on a configured work day.
func (c *WorkCalendar) IsWorkDay(t time.Time) bool {
	idx := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return idx < len(c.WorkDays) && c.WorkDays[idx] != '-'
}

// TotalWorkDays counts the work days in the mask.
func (c *WorkCalendar) TotalWorkDays() int {
	n := 0
	for i := 0; i < len(c.WorkDays); i++ {
		if c.WorkDays[i] != '-' {
			n++
		}
	}
	return n
}

// WorkDayNames returns the full names of the configured work days.
func (c *WorkCalendar) WorkDayNames() []string {
	var names []string
	for i := 0; i < len(c.WorkDays) && i < 7; i++ {
		if c.WorkDays[i] != '-' {
			names = append(names, dayNames[i])
		}
	}
	return names
}
