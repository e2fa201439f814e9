package domain

import (
	"fmt"
	"time"
)

// TimeEntry is a single clock-in/clock-out record. End is nil while the
// user is clocked in; at most one entry per user may be open at a time.
type TimeEntry struct {
	ID     string
	UserID string
	Start  int64
	End    *int64
	Note   string
	Breaks []BreakInterval
}

// Open reports whether the entry is still running.
func (e *TimeEntry) Open() bool {
	return e.End == nil
}

// OpenBreak returns the entry's running break, or nil if none.
func (e *TimeEntry) OpenBreak() *BreakInterval {
	for i := range e.Breaks {
		if e.Breaks[i].End == nil {
			return &e.Breaks[i]
		}
	}
	return nil
}

// Logged returns the seconds attributed to this entry at the given instant,
// net of breaks. An open entry (or open break) is charged up to now, so the
// figure moves in real time. A negative result means the stored intervals
// are impossible and is surfaced as ErrDataIntegrity.
func (e *TimeEntry) Logged(now time.Time, _ *WorkCalendar) (int64, error) {
	end := now.Unix()
	if e.End != nil {
		end = *e.End
	}

	var breaks int64
	for _, b := range e.Breaks {
		breaks += b.Seconds(now)
	}

	logged := end - e.Start - breaks
	if logged < 0 {
		return 0, fmt.Errorf("time entry %s: %w", e.ID, ErrDataIntegrity)
	}
	return logged, nil
}

// StartUnix implements Loggable.
func (e *TimeEntry) StartUnix() int64 {
	return e.Start
}

// BreakInterval is a pause inside a time entry. End is nil while the break
// is running; breaks never overlap within the same entry.
type BreakInterval struct {
	ID          string
	TimeEntryID string
	Start       int64
	End         *int64
	Note        string
}

// Seconds returns the break's length at the given instant. An open break
// is charged up to now.
func (b *BreakInterval) Seconds(now time.Time) int64 {
	end := now.Unix()
	if b.End != nil {
		end = *b.End
	}
	return end - b.Start
}

// Duration renders the break's length for display, e.g. "15 minutes".
func (b *BreakInterval) Duration(now time.Time) string {
	minutes := b.Seconds(now) / 60
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
