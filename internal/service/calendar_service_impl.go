package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/google/uuid"
)

type calendarService struct {
	calendars repository.WorkCalendarRepo
}

func NewCalendarService(calendars repository.WorkCalendarRepo) CalendarService {
	return &calendarService{calendars: calendars}
}

// Fetch returns the user's calendar, creating the default one on first
// access so every user always has a working configuration.
func (s *calendarService) Fetch(ctx context.Context, userID string) (*domain.WorkCalendar, error) {
	cal, err := s.calendars.GetByUser(ctx, userID)
	if err == nil {
		return cal, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	cal = domain.DefaultWorkCalendar(userID)
	cal.ID = uuid.New().String()
	if err := s.calendars.Create(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}

func (s *calendarService) FetchExisting(ctx context.Context, userID string) (*domain.WorkCalendar, error) {
	cal, err := s.calendars.GetByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrCalendarMissing)
	}
	return cal, err
}

func (s *calendarService) Update(ctx context.Context, c *domain.WorkCalendar) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.calendars.Update(ctx, c)
}
