package domain

import "errors"

var (
	// ErrDataIntegrity marks a record whose stored intervals are impossible,
	// e.g. a break longer than its owning entry. Never clamped away.
	ErrDataIntegrity = errors.New("inconsistent time record")

	// ErrNoOpenEntry is returned when a clock-out or break operation is
	// requested but the user has no open time entry.
	ErrNoOpenEntry = errors.New("no open time entry")

	// ErrNoOpenBreak is returned when ending a break that was never started.
	ErrNoOpenBreak = errors.New("no open break")

	// ErrEntryOpen is returned when clocking in while an entry is still open.
	ErrEntryOpen = errors.New("a time entry is already open")

	// ErrBreakOpen is returned when starting a break while one is running.
	ErrBreakOpen = errors.New("a break is already open")

	// ErrCalendarMissing is returned when a user has no work calendar and
	// default creation is suppressed.
	ErrCalendarMissing = errors.New("no work calendar configured")
)
