package service

import (
	"context"
	"fmt"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/google/uuid"
)

type leaveService struct {
	leaves repository.LeaveRepo
}

func NewLeaveService(leaves repository.LeaveRepo) LeaveService {
	return &leaveService{leaves: leaves}
}

func validateLeave(l *domain.LeaveEntry) error {
	if !domain.ValidLeaveTypes[string(l.Type)] {
		return fmt.Errorf("unknown leave type %q", l.Type)
	}
	if l.Duration <= 0 {
		return fmt.Errorf("leave duration %v must be positive", l.Duration)
	}
	return nil
}

func (s *leaveService) Create(ctx context.Context, l *domain.LeaveEntry) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if err := validateLeave(l); err != nil {
		return err
	}
	return s.leaves.Create(ctx, l)
}

func (s *leaveService) GetByID(ctx context.Context, userID, id string) (*domain.LeaveEntry, error) {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave.UserID != userID {
		return nil, fmt.Errorf("leave entry %s: %w", id, repository.ErrNotFound)
	}
	return leave, nil
}

func (s *leaveService) ListByUser(ctx context.Context, userID string) ([]*domain.LeaveEntry, error) {
	return s.leaves.ListByUser(ctx, userID)
}

func (s *leaveService) Update(ctx context.Context, l *domain.LeaveEntry) error {
	if err := validateLeave(l); err != nil {
		return err
	}

	existing, err := s.leaves.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing.UserID != l.UserID {
		return fmt.Errorf("leave entry %s: %w", l.ID, repository.ErrNotFound)
	}
	return s.leaves.Update(ctx, l)
}

func (s *leaveService) Delete(ctx context.Context, userID, id string) error {
	return s.leaves.Delete(ctx, userID, id)
}
