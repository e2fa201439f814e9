package domain

// TimeStats is the derived stats block shown on the dashboard. Every field
// is a humanized duration ("6h 15m"); the overtime figure carries its own
// sign, the display layer never re-derives it. Computed fresh per query.
type TimeStats struct {
	LoggedThisWeek    string
	LoggedToday       string
	RemainingThisWeek string
	RemainingToday    string
	Overtime          string
}
