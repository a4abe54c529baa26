package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type managersRepo struct {
	db dbtx
}

const managerColumns = `id, user_id, agency_id, agency_name, reg_number, industry,
	address, state, country, created_at, updated_at`

func scanManager(row interface{ Scan(...any) error }) (domain.Manager, error) {
	var (
		m        domain.Manager
		agencyID sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.UserID, &agencyID, &m.AgencyName, &m.RegNumber, &m.Industry,
		&m.Address, &m.State, &m.Country, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Manager{}, mapNotFound(err)
	}
	m.AgencyID = mapNullString(agencyID)
	return m, nil
}

func (r *managersRepo) CreateManager(ctx context.Context, m domain.Manager) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO managers (id, user_id, agency_id, agency_name, reg_number, industry,
			address, state, country, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, mapStringNull(m.AgencyID), m.AgencyName, m.RegNumber, m.Industry,
		m.Address, m.State, m.Country, m.CreatedAt, m.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *managersRepo) GetManagerByID(ctx context.Context, id string) (domain.Manager, error) {
	return scanManager(r.db.QueryRowContext(ctx,
		`SELECT `+managerColumns+` FROM managers WHERE id = ?`, id))
}

func (r *managersRepo) ListManagers(ctx context.Context, p store.Page) ([]domain.Manager, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+managerColumns+` FROM managers ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Manager
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *managersRepo) UpdateManager(ctx context.Context, m domain.Manager) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE managers
		SET agency_id = ?, agency_name = ?, reg_number = ?, industry = ?,
			address = ?, state = ?, country = ?, updated_at = ?
		WHERE id = ?`,
		mapStringNull(m.AgencyID), m.AgencyName, m.RegNumber, m.Industry,
		m.Address, m.State, m.Country, time.Now().UTC(), m.ID,
	))
}

func (r *managersRepo) DeleteManager(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM managers WHERE id = ?`, id,
	))
}
