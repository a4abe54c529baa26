package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type AgencyManagerService struct {
	Store store.Store
}

// Create validates the referenced agency and manager exist before linking.
func (s *AgencyManagerService) Create(ctx context.Context, am domain.AgencyManager) (domain.AgencyManager, error) {
	if _, err := s.Store.Agencies().GetAgencyByID(ctx, am.AgencyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AgencyManager{}, ErrNotFound
		}
		return domain.AgencyManager{}, err
	}
	if _, err := s.Store.Managers().GetManagerByID(ctx, am.ManagerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AgencyManager{}, ErrNotFound
		}
		return domain.AgencyManager{}, err
	}

	now := time.Now()
	am.ID = idx.New().String()
	am.CreatedAt = now
	am.UpdatedAt = now
	if err := s.Store.AgencyManagers().CreateAgencyManager(ctx, am); err != nil {
		return domain.AgencyManager{}, err
	}
	return am, nil
}

func (s *AgencyManagerService) Get(ctx context.Context, id string) (domain.AgencyManager, error) {
	am, err := s.Store.AgencyManagers().GetAgencyManagerByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.AgencyManager{}, ErrNotFound
	}
	return am, err
}

func (s *AgencyManagerService) List(ctx context.Context, p store.Page) ([]domain.AgencyManager, error) {
	return s.Store.AgencyManagers().ListAgencyManagers(ctx, p)
}

func (s *AgencyManagerService) Update(ctx context.Context, am domain.AgencyManager) (domain.AgencyManager, error) {
	if err := s.Store.AgencyManagers().UpdateAgencyManager(ctx, am); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AgencyManager{}, ErrNotFound
		}
		return domain.AgencyManager{}, err
	}
	return s.Get(ctx, am.ID)
}

func (s *AgencyManagerService) Delete(ctx context.Context, id string) error {
	err := s.Store.AgencyManagers().DeleteAgencyManager(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
