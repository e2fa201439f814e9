package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarProvider_ForYear(t *testing.T) {
	p := NewCalendarProvider()

	holidays, err := p.ForYear("GB/ENG", 2022)
	require.NoError(t, err)
	require.NotEmpty(t, holidays)

	for i := 1; i < len(holidays); i++ {
		assert.False(t, holidays[i].Date.Before(holidays[i-1].Date), "holidays are ordered by date")
	}

	names := make(map[string]bool)
	for _, h := range holidays {
		names[h.Name] = true
		assert.Equal(t, 2022, h.Date.Year())
	}
	assert.True(t, names["Christmas Day"])
}

func TestCalendarProvider_UnknownRegion(t *testing.T) {
	p := NewCalendarProvider()

	_, err := p.ForYear("XX", 2022)
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestUpcomingAndPrevious_SplitAroundToday(t *testing.T) {
	p := NewCalendarProvider()
	today := time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC)

	upcoming, err := Upcoming(p, "GB", today)
	require.NoError(t, err)
	require.NotEmpty(t, upcoming)
	for _, h := range upcoming {
		assert.False(t, h.Date.Before(today))
	}

	previous, err := Previous(p, "GB", today)
	require.NoError(t, err)
	require.NotEmpty(t, previous)
	for _, h := range previous {
		assert.True(t, h.Date.Before(today))
	}
	for i := 1; i < len(previous); i++ {
		assert.False(t, previous[i].Date.After(previous[i-1].Date), "previous holidays are most recent first")
	}
}

func TestNext(t *testing.T) {
	p := NewCalendarProvider()
	today := time.Date(2022, time.December, 20, 0, 0, 0, 0, time.UTC)

	next, err := Next(p, "GB", today)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.False(t, next.Date.Before(today))
}
