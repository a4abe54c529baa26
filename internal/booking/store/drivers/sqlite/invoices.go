package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type invoicesRepo struct {
	db dbtx
}

const invoiceColumns = `id, talent_id, agency_id, manager_id, client_name, client_email,
	event_type, event_date, bill_option, fee, logistic_info, logistic_fee, terms,
	total_fee, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (domain.Invoice, error) {
	var (
		inv                 domain.Invoice
		agencyID, managerID sql.NullString
	)
	err := row.Scan(
		&inv.ID, &inv.TalentID, &agencyID, &managerID, &inv.ClientName, &inv.ClientEmail,
		&inv.EventType, &inv.EventDate, &inv.BillOption, &inv.Fee, &inv.LogisticInfo,
		&inv.LogisticFee, &inv.Terms, &inv.TotalFee, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invoice{}, mapNotFound(err)
	}
	inv.AgencyID = mapNullString(agencyID)
	inv.ManagerID = mapNullString(managerID)
	return inv, nil
}

func (r *invoicesRepo) CreateInvoice(ctx context.Context, inv domain.Invoice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (id, talent_id, agency_id, manager_id, client_name, client_email,
			event_type, event_date, bill_option, fee, logistic_info, logistic_fee, terms,
			total_fee, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TalentID, mapStringNull(inv.AgencyID), mapStringNull(inv.ManagerID),
		inv.ClientName, inv.ClientEmail, inv.EventType, inv.EventDate, inv.BillOption,
		inv.Fee, inv.LogisticInfo, inv.LogisticFee, inv.Terms, inv.TotalFee,
		inv.CreatedAt, inv.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *invoicesRepo) GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error) {
	return scanInvoice(r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
}

func (r *invoicesRepo) ListInvoices(ctx context.Context, p store.Page) ([]domain.Invoice, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (r *invoicesRepo) ListInvoicesByTalent(ctx context.Context, talentID string, p store.Page) ([]domain.Invoice, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE talent_id = ?
		ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		talentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func collectInvoices(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invoicesRepo) UpdateInvoice(ctx context.Context, inv domain.Invoice) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE invoices
		SET agency_id = ?, manager_id = ?, client_name = ?, client_email = ?,
			event_type = ?, event_date = ?, bill_option = ?, fee = ?,
			logistic_info = ?, logistic_fee = ?, terms = ?, total_fee = ?, updated_at = ?
		WHERE id = ?`,
		mapStringNull(inv.AgencyID), mapStringNull(inv.ManagerID), inv.ClientName,
		inv.ClientEmail, inv.EventType, inv.EventDate, inv.BillOption, inv.Fee,
		inv.LogisticInfo, inv.LogisticFee, inv.Terms, inv.TotalFee, time.Now().UTC(), inv.ID,
	))
}

func (r *invoicesRepo) DeleteInvoice(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM invoices WHERE id = ?`, id,
	))
}
