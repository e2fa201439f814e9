package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clocked-app/clocked/internal/db"
	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type trackingService struct {
	entries repository.TimeEntryRepo
	uow     db.UnitOfWork
	clock   clockwork.Clock
}

func NewTrackingService(entries repository.TimeEntryRepo, uow db.UnitOfWork, clock clockwork.Clock) TrackingService {
	return &trackingService{entries: entries, uow: uow, clock: clock}
}

func (s *trackingService) ClockIn(ctx context.Context, userID, note string) (*domain.TimeEntry, error) {
	entry := &domain.TimeEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Start:  s.clock.Now().Unix(),
		Note:   note,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		if _, err := txEntries.FindOpen(ctx, userID); err == nil {
			return domain.ErrEntryOpen
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		return txEntries.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ClockOut closes the running entry. A break still open at that moment
// is closed at the same instant, keeping every break inside its entry.
func (s *trackingService) ClockOut(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	var entry *domain.TimeEntry

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		open, err := txEntries.FindOpen(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNoOpenEntry
		} else if err != nil {
			return err
		}

		now := s.clock.Now().Unix()
		if b := open.OpenBreak(); b != nil {
			b.End = &now
			if err := txEntries.UpdateBreak(ctx, b); err != nil {
				return err
			}
		}

		open.End = &now
		if err := txEntries.Update(ctx, open); err != nil {
			return err
		}
		entry = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *trackingService) StartBreak(ctx context.Context, userID, note string) (*domain.BreakInterval, error) {
	var brk *domain.BreakInterval

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		open, err := txEntries.FindOpen(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNoOpenEntry
		} else if err != nil {
			return err
		}

		if open.OpenBreak() != nil {
			return domain.ErrBreakOpen
		}

		brk = &domain.BreakInterval{
			ID:          uuid.New().String(),
			TimeEntryID: open.ID,
			Start:       s.clock.Now().Unix(),
			Note:        note,
		}
		return txEntries.CreateBreak(ctx, brk)
	})
	if err != nil {
		return nil, err
	}
	return brk, nil
}

func (s *trackingService) EndBreak(ctx context.Context, userID string) (*domain.BreakInterval, error) {
	var brk *domain.BreakInterval

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		open, err := txEntries.FindOpen(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNoOpenEntry
		} else if err != nil {
			return err
		}

		b := open.OpenBreak()
		if b == nil {
			return domain.ErrNoOpenBreak
		}

		now := s.clock.Now().Unix()
		b.End = &now
		if err := txEntries.UpdateBreak(ctx, b); err != nil {
			return err
		}
		brk = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return brk, nil
}

func (s *trackingService) Current(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	entry, err := s.entries.FindOpen(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.ErrNoOpenEntry
	}
	return entry, err
}

func (s *trackingService) Create(ctx context.Context, e *domain.TimeEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.End != nil && *e.End < e.Start {
		return fmt.Errorf("time entry %s: %w", e.ID, domain.ErrDataIntegrity)
	}
	return s.entries.Create(ctx, e)
}

func (s *trackingService) GetByID(ctx context.Context, userID, id string) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("time entry %s: %w", id, repository.ErrNotFound)
	}
	return entry, nil
}

func (s *trackingService) ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	return s.entries.ListByUser(ctx, userID)
}

func (s *trackingService) Update(ctx context.Context, e *domain.TimeEntry) error {
	if e.End != nil && *e.End < e.Start {
		return fmt.Errorf("time entry %s: %w", e.ID, domain.ErrDataIntegrity)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)

		existing, err := txEntries.GetByID(ctx, e.ID)
		if err != nil {
			return err
		}
		if existing.UserID != e.UserID {
			return fmt.Errorf("time entry %s: %w", e.ID, repository.ErrNotFound)
		}

		if err := txEntries.Update(ctx, e); err != nil {
			return err
		}
		for i := range e.Breaks {
			if err := txEntries.UpdateBreak(ctx, &e.Breaks[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *trackingService) Delete(ctx context.Context, userID, id string) error {
	return s.entries.Delete(ctx, userID, id)
}
