// Package holiday resolves public holidays for a country/region code.
// Holidays are display data only; they never enter the accounting math.
package holiday

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/us"
)

// ErrUnknownRegion is returned for a region code with no holiday catalog.
var ErrUnknownRegion = errors.New("unknown holiday region")

// Holiday is a single observed public holiday.
type Holiday struct {
	Date time.Time
	Name string
}

// Provider returns the observed holidays of a region for one year.
type Provider interface {
	ForYear(region string, year int) ([]Holiday, error)
}

// catalogs maps the country part of a region code ("GB" in "GB/ENG") to
// its holiday definitions.
var catalogs = map[string][]*cal.Holiday{
	"GB": gb.Holidays,
	"US": us.Holidays,
	"DE": de.Holidays,
	"FR": fr.Holidays,
	"IE": ie.Holidays,
}

// CalendarProvider implements Provider over static country catalogs.
type CalendarProvider struct{}

func NewCalendarProvider() *CalendarProvider {
	return &CalendarProvider{}
}

// ForYear returns the region's observed holidays for the given year,
// ordered by date. Subdivision suffixes ("GB/ENG") select only the
// country catalog; subdivision-specific holidays are not distinguished.
func (p *CalendarProvider) ForYear(region string, year int) ([]Holiday, error) {
	country := strings.ToUpper(strings.SplitN(region, "/", 2)[0])
	defs, ok := catalogs[country]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}

	holidays := make([]Holiday, 0, len(defs))
	for _, def := range defs {
		_, observed := def.Calc(year)
		if observed.IsZero() {
			continue
		}
		holidays = append(holidays, Holiday{Date: observed, Name: def.Name})
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays, nil
}

// Upcoming returns the holidays on or after today, looking across the
// current and following year.
func Upcoming(p Provider, region string, today time.Time) ([]Holiday, error) {
	var out []Holiday
	for _, year := range []int{today.Year(), today.Year() + 1} {
		holidays, err := p.ForYear(region, year)
		if err != nil {
			return nil, err
		}
		for _, h := range holidays {
			if !h.Date.Before(today) {
				out = append(out, h)
			}
		}
	}
	return out, nil
}

// Previous returns the holidays before today, most recent first, looking
// across the current and previous year.
func Previous(p Provider, region string, today time.Time) ([]Holiday, error) {
	var out []Holiday
	for _, year := range []int{today.Year(), today.Year() - 1} {
		holidays, err := p.ForYear(region, year)
		if err != nil {
			return nil, err
		}
		for _, h := range holidays {
			if h.Date.Before(today) {
				out = append(out, h)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// Next returns the first holiday on or after today, or nil if the
// catalogs have none within the next year.
func Next(p Provider, region string, today time.Time) (*Holiday, error) {
	upcoming, err := Upcoming(p, region, today)
	if err != nil {
		return nil, err
	}
	if len(upcoming) == 0 {
		return nil, nil
	}
	return &upcoming[0], nil
}
