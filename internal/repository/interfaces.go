package repository

import (
	"context"

	"github.com/clocked-app/clocked/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type WorkCalendarRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.WorkCalendar, error)
	Create(ctx context.Context, c *domain.WorkCalendar) error
	Update(ctx context.Context, c *domain.WorkCalendar) error
}

// TimeEntryRepo persists clock records. Entries always come back with
// their breaks attached, ordered most recent start first.
type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	ListSince(ctx context.Context, userID string, since int64) ([]*domain.TimeEntry, error)
	ListBetween(ctx context.Context, userID string, start, end int64) ([]*domain.TimeEntry, error)
	// FindOpen returns the user's running entry; ErrNotFound when clocked out.
	FindOpen(ctx context.Context, userID string) (*domain.TimeEntry, error)
	// FirstStart returns the earliest start timestamp; ErrNotFound when
	// the user has no entries.
	FirstStart(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, userID, id string) error

	CreateBreak(ctx context.Context, b *domain.BreakInterval) error
	UpdateBreak(ctx context.Context, b *domain.BreakInterval) error
}

type LeaveRepo interface {
	Create(ctx context.Context, l *domain.LeaveEntry) error
	GetByID(ctx context.Context, id string) (*domain.LeaveEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.LeaveEntry, error)
	ListSince(ctx context.Context, userID string, since int64) ([]*domain.LeaveEntry, error)
	ListBetween(ctx context.Context, userID string, start, end int64) ([]*domain.LeaveEntry, error)
	FirstStart(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, l *domain.LeaveEntry) error
	Delete(ctx context.Context, userID, id string) error
}
