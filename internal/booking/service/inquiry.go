package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type InquiryService struct {
	Store store.Store
}

// Create validates the talent exists and opens the inquiry as PENDING.
func (s *InquiryService) Create(ctx context.Context, i domain.Inquiry) (domain.Inquiry, error) {
	if _, err := s.Store.Talents().GetTalentByID(ctx, i.TalentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Inquiry{}, ErrNotFound
		}
		return domain.Inquiry{}, err
	}

	now := time.Now()
	i.ID = idx.New().String()
	if i.Status == "" {
		i.Status = domain.InquiryPending
	}
	i.CreatedAt = now
	i.UpdatedAt = now
	if err := s.Store.Inquiries().CreateInquiry(ctx, i); err != nil {
		return domain.Inquiry{}, err
	}
	return i, nil
}

func (s *InquiryService) Get(ctx context.Context, id string) (domain.Inquiry, error) {
	i, err := s.Store.Inquiries().GetInquiryByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Inquiry{}, ErrNotFound
	}
	return i, err
}

func (s *InquiryService) List(ctx context.Context, p store.Page) ([]domain.Inquiry, error) {
	return s.Store.Inquiries().ListInquiries(ctx, p)
}

func (s *InquiryService) ListByTalent(ctx context.Context, talentID string, p store.Page) ([]domain.Inquiry, error) {
	return s.Store.Inquiries().ListInquiriesByTalent(ctx, talentID, p)
}

func (s *InquiryService) Update(ctx context.Context, i domain.Inquiry) (domain.Inquiry, error) {
	if err := s.Store.Inquiries().UpdateInquiry(ctx, i); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Inquiry{}, ErrNotFound
		}
		return domain.Inquiry{}, err
	}
	return s.Get(ctx, i.ID)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	err := s.Store.Inquiries().DeleteInquiry(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
