package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type AgencyService struct {
	Store store.Store
}

func (s *AgencyService) Create(ctx context.Context, a domain.Agency) (domain.Agency, error) {
	now := time.Now()
	a.ID = idx.New().String()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.Store.Agencies().CreateAgency(ctx, a); err != nil {
		return domain.Agency{}, err
	}
	return a, nil
}

func (s *AgencyService) Get(ctx context.Context, id string) (domain.Agency, error) {
	a, err := s.Store.Agencies().GetAgencyByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Agency{}, ErrNotFound
	}
	return a, err
}

func (s *AgencyService) List(ctx context.Context, p store.Page) ([]domain.Agency, error) {
	return s.Store.Agencies().ListAgencies(ctx, p)
}

func (s *AgencyService) Update(ctx context.Context, a domain.Agency) (domain.Agency, error) {
	if err := s.Store.Agencies().UpdateAgency(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agency{}, ErrNotFound
		}
		return domain.Agency{}, err
	}
	return s.Get(ctx, a.ID)
}

func (s *AgencyService) Delete(ctx context.Context, id string) error {
	err := s.Store.Agencies().DeleteAgency(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
