package worktime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidWeekToken is returned when a week token fails to parse.
var ErrInvalidWeekToken = errors.New("invalid week token")

var weekTokenRe = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// WeekToken formats the ISO week containing t as "<year>-W<week>",
// e.g. "2024-W03". The ISO year is used, not the calendar year, so the
// token round-trips through ResolveWeekBounds across New Year.
func WeekToken(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// isoWeekMonday returns midnight of the Monday starting the given ISO week.
// January 4th is always inside ISO week 1.
func isoWeekMonday(year, week int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	week1Monday := jan4.AddDate(0, 0, -Weekday0(jan4))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// ResolveWeekBounds converts a week token into the concrete [start, end)
// window for a viewer whose week starts on weekStart0 (Monday = 0) and
// whose current local time is now. The nominal ISO Monday is shifted
// forward to the configured start-of-week day; if that shift would move
// past the viewer's current weekday the whole window slides back seven
// days, keeping "this week" stable on every day of the configured week.
func ResolveWeekBounds(token string, now time.Time, weekStart0 int) (time.Time, time.Time, error) {
	m := weekTokenRe.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekToken, token)
	}

	year, _ := strconv.Atoi(m[1])
	week, err := strconv.Atoi(m[2])
	if err != nil || week < 1 || week > 53 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekToken, token)
	}

	start := isoWeekMonday(year, week, now.Location())
	if weekStart0 > 0 {
		start = start.AddDate(0, 0, weekStart0)
		if weekStart0 > Weekday0(now) {
			start = start.AddDate(0, 0, -7)
		}
	}

	return start, start.AddDate(0, 0, 7), nil
}

// WeekStart returns midnight of the current week's first day: the most
// recent occurrence of weekStart0 on or before now.
func WeekStart(now time.Time, weekStart0 int) time.Time {
	today := StartOfDay(now)
	delta := (Weekday0(now) - weekStart0 + 7) % 7
	return today.AddDate(0, 0, -delta)
}

// WeeksSince enumerates every week token from the week containing first
// up to and including the week containing now, most recent first. The
// starting day is aligned backward while its weekday is after the
// configured week start, then weeks are walked by their ISO Mondays so
// the newest token always resolves to the window containing now.
func WeeksSince(first, now time.Time, weekStart0 int) []string {
	first = StartOfDay(first)
	if d := Weekday0(first) - weekStart0; d > 0 {
		first = first.AddDate(0, 0, -d)
	}
	first = first.AddDate(0, 0, -Weekday0(first))
	last := StartOfDay(now).AddDate(0, 0, -Weekday0(now))

	var weeks []string
	for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
		weeks = append(weeks, WeekToken(d))
	}

	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}
