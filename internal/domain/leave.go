package domain

import (
	"math"
	"time"
)

type LeaveType string

const (
	LeaveAnnual LeaveType = "annual"
	LeaveSick   LeaveType = "sick"
)

// ValidLeaveTypes is the canonical set of accepted leave type strings.
var ValidLeaveTypes = map[string]bool{
	"annual": true, "sick": true,
}

// LeaveEntry is a whole or fractional day taken off. Start is midnight of
// the first day in the user's timezone; Duration is in days.
type LeaveEntry struct {
	ID            string
	UserID        string
	Type          LeaveType
	Start         int64
	Duration      float64
	PublicHoliday bool
	Note          string
}

// Logged returns the leave's contribution in seconds. Days convert through
// the calendar's hours-per-day target; the work-day mask is not consulted,
// a recorded half day always counts as half a day.
func (l *LeaveEntry) Logged(_ time.Time, cal *WorkCalendar) (int64, error) {
	return int64(math.Round(l.Duration * cal.HoursPerDay * 3600)), nil
}

// StartUnix implements Loggable.
func (l *LeaveEntry) StartUnix() int64 {
	return l.Start
}

// Loggable is the shared capability of time and leave entries: both
// contribute attributed seconds to daily, weekly and all-time totals.
type Loggable interface {
	Logged(now time.Time, cal *WorkCalendar) (int64, error)
	StartUnix() int64
}

var (
	_ Loggable = (*TimeEntry)(nil)
	_ Loggable = (*LeaveEntry)(nil)
)
