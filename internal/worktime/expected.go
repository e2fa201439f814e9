// Package worktime holds the pure calendar arithmetic of the accounting
// engine: expected hours, week boundaries, week tokens and duration
// humanizing. Nothing here touches storage or the real clock.
package worktime

import "time"

// Weekday0 maps a time to its zero-indexed weekday with Monday = 0,
// matching the work-day mask layout.
func Weekday0(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ExpectedHours calculates the work hours expected between two dates,
// inclusive of both endpoints. Both dates are normalized to midnight
// first. workDays is the 7 character Monday-first mask ("MTWTF--"); a
// position counts as a work day iff it is not '-'.
//
// The range is walked day by day. Closed-form weekend adjustments kept
// disagreeing at range boundaries, and ranges are bounded by a user's
// account age, so O(days) enumeration is fine.
func ExpectedHours(start, end time.Time, hoursPerDay float64, workDays string) float64 {
	start = StartOfDay(start)
	end = StartOfDay(end)

	if end.Before(start) {
		return 0
	}

	var isWorkDay [7]bool
	for i := 0; i < len(workDays) && i < 7; i++ {
		isWorkDay[i] = workDays[i] != '-'
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkDay[Weekday0(d)] {
			count++
		}
	}

	return float64(count) * hoursPerDay
}
