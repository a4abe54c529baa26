package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type agenciesRepo struct {
	db dbtx
}

const agencyColumns = `id, user_id, agency_name, reg_number, industry, address,
	state, country, created_at, updated_at`

func scanAgency(row interface{ Scan(...any) error }) (domain.Agency, error) {
	var a domain.Agency
	err := row.Scan(
		&a.ID, &a.UserID, &a.AgencyName, &a.RegNumber, &a.Industry, &a.Address,
		&a.State, &a.Country, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Agency{}, mapNotFound(err)
	}
	return a, nil
}

func (r *agenciesRepo) CreateAgency(ctx context.Context, a domain.Agency) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agencies (id, user_id, agency_name, reg_number, industry, address,
			state, country, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.AgencyName, a.RegNumber, a.Industry, a.Address,
		a.State, a.Country, a.CreatedAt, a.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *agenciesRepo) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	return scanAgency(r.db.QueryRowContext(ctx,
		`SELECT `+agencyColumns+` FROM agencies WHERE id = ?`, id))
}

func (r *agenciesRepo) ListAgencies(ctx context.Context, p store.Page) ([]domain.Agency, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agencyColumns+` FROM agencies ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Agency
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *agenciesRepo) UpdateAgency(ctx context.Context, a domain.Agency) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE agencies
		SET agency_name = ?, reg_number = ?, industry = ?, address = ?,
			state = ?, country = ?, updated_at = ?
		WHERE id = ?`,
		a.AgencyName, a.RegNumber, a.Industry, a.Address,
		a.State, a.Country, time.Now().UTC(), a.ID,
	))
}

func (r *agenciesRepo) DeleteAgency(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM agencies WHERE id = ?`, id,
	))
}
