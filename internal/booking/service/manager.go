package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type ManagerService struct {
	Store store.Store
}

func (s *ManagerService) Create(ctx context.Context, m domain.Manager) (domain.Manager, error) {
	now := time.Now()
	m.ID = idx.New().String()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.Store.Managers().CreateManager(ctx, m); err != nil {
		return domain.Manager{}, err
	}
	return m, nil
}

func (s *ManagerService) Get(ctx context.Context, id string) (domain.Manager, error) {
	m, err := s.Store.Managers().GetManagerByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Manager{}, ErrNotFound
	}
	return m, err
}

func (s *ManagerService) List(ctx context.Context, p store.Page) ([]domain.Manager, error) {
	return s.Store.Managers().ListManagers(ctx, p)
}

func (s *ManagerService) Update(ctx context.Context, m domain.Manager) (domain.Manager, error) {
	if err := s.Store.Managers().UpdateManager(ctx, m); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Manager{}, ErrNotFound
		}
		return domain.Manager{}, err
	}
	return s.Get(ctx, m.ID)
}

func (s *ManagerService) Delete(ctx context.Context, id string) error {
	err := s.Store.Managers().DeleteManager(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
