package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type inquiriesRepo struct {
	db dbtx
}

const inquiryColumns = `id, user_id, talent_id, event_type, event_date, venue,
	city, country, budget, message, status, created_at, updated_at`

func scanInquiry(row interface{ Scan(...any) error }) (domain.Inquiry, error) {
	var i domain.Inquiry
	err := row.Scan(
		&i.ID, &i.UserID, &i.TalentID, &i.EventType, &i.EventDate, &i.Venue,
		&i.City, &i.Country, &i.Budget, &i.Message, &i.Status,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return domain.Inquiry{}, mapNotFound(err)
	}
	return i, nil
}

func (r *inquiriesRepo) CreateInquiry(ctx context.Context, i domain.Inquiry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, user_id, talent_id, event_type, event_date, venue,
			city, country, budget, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.UserID, i.TalentID, i.EventType, i.EventDate, i.Venue,
		i.City, i.Country, i.Budget, i.Message, i.Status, i.CreatedAt, i.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *inquiriesRepo) GetInquiryByID(ctx context.Context, id string) (domain.Inquiry, error) {
	return scanInquiry(r.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id))
}

func (r *inquiriesRepo) ListInquiries(ctx context.Context, p store.Page) ([]domain.Inquiry, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInquiries(rows)
}

func (r *inquiriesRepo) ListInquiriesByTalent(ctx context.Context, talentID string, p store.Page) ([]domain.Inquiry, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE talent_id = ?
		ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		talentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInquiries(rows)
}

func collectInquiries(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Inquiry, error) {
	var out []domain.Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *inquiriesRepo) UpdateInquiry(ctx context.Context, i domain.Inquiry) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE inquiries
		SET event_type = ?, event_date = ?, venue = ?, city = ?, country = ?,
			budget = ?, message = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		i.EventType, i.EventDate, i.Venue, i.City, i.Country,
		i.Budget, i.Message, i.Status, time.Now().UTC(), i.ID,
	))
}

func (r *inquiriesRepo) DeleteInquiry(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM inquiries WHERE id = ?`, id,
	))
}
