package worktime

import "fmt"

// HumanizeSeconds renders a signed duration as a short "{H}h {M}m" string.
// Seconds are truncated, never shown. Negative durations carry a leading
// '-'; the sign is part of the string so callers never re-derive it.
func HumanizeSeconds(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%s%dh %dm", sign, hours, minutes)
}
