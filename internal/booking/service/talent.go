package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type TalentService struct {
	Store store.Store
}

func (s *TalentService) Create(ctx context.Context, t domain.Talent) (domain.Talent, error) {
	now := time.Now()
	t.ID = idx.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := s.Store.Talents().CreateTalent(ctx, t); err != nil {
		return domain.Talent{}, err
	}
	return t, nil
}

func (s *TalentService) Get(ctx context.Context, id string) (domain.Talent, error) {
	t, err := s.Store.Talents().GetTalentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Talent{}, ErrNotFound
	}
	return t, err
}

func (s *TalentService) List(ctx context.Context, p store.Page) ([]domain.Talent, error) {
	return s.Store.Talents().ListTalents(ctx, p)
}

func (s *TalentService) Update(ctx context.Context, t domain.Talent) (domain.Talent, error) {
	if err := s.Store.Talents().UpdateTalent(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Talent{}, ErrNotFound
		}
		return domain.Talent{}, err
	}
	return s.Get(ctx, t.ID)
}

func (s *TalentService) Delete(ctx context.Context, id string) error {
	err := s.Store.Talents().DeleteTalent(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
