package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type agencyManagersRepo struct {
	db dbtx
}

const agencyManagerColumns = `id, user_id, agency_id, manager_id, created_at, updated_at`

func scanAgencyManager(row interface{ Scan(...any) error }) (domain.AgencyManager, error) {
	var am domain.AgencyManager
	err := row.Scan(&am.ID, &am.UserID, &am.AgencyID, &am.ManagerID, &am.CreatedAt, &am.UpdatedAt)
	if err != nil {
		return domain.AgencyManager{}, mapNotFound(err)
	}
	return am, nil
}

func (r *agencyManagersRepo) CreateAgencyManager(ctx context.Context, am domain.AgencyManager) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agency_managers (id, user_id, agency_id, manager_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		am.ID, am.UserID, am.AgencyID, am.ManagerID, am.CreatedAt, am.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *agencyManagersRepo) GetAgencyManagerByID(ctx context.Context, id string) (domain.AgencyManager, error) {
	return scanAgencyManager(r.db.QueryRowContext(ctx,
		`SELECT `+agencyManagerColumns+` FROM agency_managers WHERE id = ?`, id))
}

func (r *agencyManagersRepo) ListAgencyManagers(ctx context.Context, p store.Page) ([]domain.AgencyManager, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agencyManagerColumns+` FROM agency_managers ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AgencyManager
	for rows.Next() {
		am, err := scanAgencyManager(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, am)
	}
	return out, rows.Err()
}

func (r *agencyManagersRepo) UpdateAgencyManager(ctx context.Context, am domain.AgencyManager) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE agency_managers
		SET agency_id = ?, manager_id = ?, updated_at = ?
		WHERE id = ?`,
		am.AgencyID, am.ManagerID, time.Now().UTC(), am.ID,
	))
}

func (r *agencyManagersRepo) DeleteAgencyManager(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM agency_managers WHERE id = ?`, id,
	))
}
