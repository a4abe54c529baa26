package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/idx"
)

type InvoiceService struct {
	Store store.Store
}

// Create validates the talent exists and derives the total when the caller
// left it zero.
func (s *InvoiceService) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	if _, err := s.Store.Talents().GetTalentByID(ctx, inv.TalentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrNotFound
		}
		return domain.Invoice{}, err
	}

	now := time.Now()
	inv.ID = idx.New().String()
	if inv.TotalFee == 0 {
		inv.TotalFee = inv.Fee + inv.LogisticFee
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if err := s.Store.Invoices().CreateInvoice(ctx, inv); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (domain.Invoice, error) {
	inv, err := s.Store.Invoices().GetInvoiceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invoice{}, ErrNotFound
	}
	return inv, err
}

func (s *InvoiceService) List(ctx context.Context, p store.Page) ([]domain.Invoice, error) {
	return s.Store.Invoices().ListInvoices(ctx, p)
}

func (s *InvoiceService) ListByTalent(ctx context.Context, talentID string, p store.Page) ([]domain.Invoice, error) {
	return s.Store.Invoices().ListInvoicesByTalent(ctx, talentID, p)
}

func (s *InvoiceService) Update(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	if inv.TotalFee == 0 {
		inv.TotalFee = inv.Fee + inv.LogisticFee
	}
	if err := s.Store.Invoices().UpdateInvoice(ctx, inv); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrNotFound
		}
		return domain.Invoice{}, err
	}
	return s.Get(ctx, inv.ID)
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	err := s.Store.Invoices().DeleteInvoice(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
