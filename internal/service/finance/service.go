package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focalflow/internal/derive"
	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/repository"
)

var ErrInvalidCategory = errors.New("invalid expense category")

// Store is the expense persistence surface.
type Store interface {
	Insert(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, id, userID string) (*model.Expense, error)
	ListByUser(ctx context.Context, userID string) ([]model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, id, userID string) error
}

var _ Store = (*repository.ExpenseRepository)(nil)

// StatsInvalidator drops cached dashboard aggregates after a write.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Service struct {
	repo     Store
	notifier *event.Notifier
	stats    StatsInvalidator
}

func NewService(repo Store, notifier *event.Notifier, stats StatsInvalidator) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		stats:    stats,
	}
}

func validCategory(c model.ExpenseCategory) bool {
	switch c {
	case model.CategoryGear, model.CategorySoftware, model.CategoryMarketing,
		model.CategoryTravel, model.CategoryOther:
		return true
	}
	return false
}

// List returns the user's expenses narrowed to the window by expense date.
func (s *Service) List(ctx context.Context, userID string, window derive.Window) ([]model.Expense, error) {
	expenses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return derive.FilterByWindow(expenses, func(e model.Expense) (time.Time, bool) {
		return e.Date, !e.Date.IsZero()
	}, window, time.Now()), nil
}

func (s *Service) Create(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	if !validCategory(e.Category) {
		return nil, ErrInvalidCategory
	}

	e.ID = uuid.NewString()
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.afterWrite(ctx, event.ActionCreated, e.ID, e.UserID)
	return s.repo.FindByID(ctx, e.ID, e.UserID)
}

func (s *Service) Update(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	if !validCategory(e.Category) {
		return nil, ErrInvalidCategory
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, event.ActionUpdated, e.ID, e.UserID)
	return s.repo.FindByID(ctx, e.ID, e.UserID)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.afterWrite(ctx, event.ActionDeleted, id, userID)
	return nil
}

func (s *Service) afterWrite(ctx context.Context, action, id, userID string) {
	s.notifier.Changed("expense", action, id, userID)
	if s.stats != nil {
		s.stats.Invalidate(ctx, userID)
	}
}
