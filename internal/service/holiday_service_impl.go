package service

import (
	"context"
	"time"

	"github.com/clocked-app/clocked/internal/holiday"
	"github.com/clocked-app/clocked/internal/worktime"
	"github.com/jonboulle/clockwork"
)

type holidayService struct {
	provider  holiday.Provider
	calendars CalendarService
	clock     clockwork.Clock
}

func NewHolidayService(provider holiday.Provider, calendars CalendarService, clock clockwork.Clock) HolidayService {
	return &holidayService{provider: provider, calendars: calendars, clock: clock}
}

func (s *holidayService) today(ctx context.Context, userID string) (time.Time, string, error) {
	cal, err := s.calendars.Fetch(ctx, userID)
	if err != nil {
		return time.Time{}, "", err
	}
	loc, err := cal.Location()
	if err != nil {
		return time.Time{}, "", err
	}
	region := cal.HolidayRegion
	if region == "" {
		region = "GB"
	}
	return worktime.StartOfDay(s.clock.Now().In(loc)), region, nil
}

func (s *holidayService) Upcoming(ctx context.Context, userID string) ([]holiday.Holiday, error) {
	today, region, err := s.today(ctx, userID)
	if err != nil {
		return nil, err
	}
	return holiday.Upcoming(s.provider, region, today)
}

func (s *holidayService) Previous(ctx context.Context, userID string) ([]holiday.Holiday, error) {
	today, region, err := s.today(ctx, userID)
	if err != nil {
		return nil, err
	}
	return holiday.Previous(s.provider, region, today)
}

func (s *holidayService) Next(ctx context.Context, userID string) (*holiday.Holiday, error) {
	today, region, err := s.today(ctx, userID)
	if err != nil {
		return nil, err
	}
	return holiday.Next(s.provider, region, today)
}
