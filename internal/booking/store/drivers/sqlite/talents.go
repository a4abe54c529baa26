package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type talentsRepo struct {
	db dbtx
}

const talentColumns = `id, user_id, stage_name, category, bio, fee_range, created_at, updated_at`

func scanTalent(row interface{ Scan(...any) error }) (domain.Talent, error) {
	var t domain.Talent
	err := row.Scan(
		&t.ID, &t.UserID, &t.StageName, &t.Category, &t.Bio, &t.FeeRange,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Talent{}, mapNotFound(err)
	}
	return t, nil
}

func (r *talentsRepo) CreateTalent(ctx context.Context, t domain.Talent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO talents (id, user_id, stage_name, category, bio, fee_range, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.StageName, t.Category, t.Bio, t.FeeRange, t.CreatedAt, t.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *talentsRepo) GetTalentByID(ctx context.Context, id string) (domain.Talent, error) {
	return scanTalent(r.db.QueryRowContext(ctx,
		`SELECT `+talentColumns+` FROM talents WHERE id = ?`, id))
}

func (r *talentsRepo) ListTalents(ctx context.Context, p store.Page) ([]domain.Talent, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+talentColumns+` FROM talents ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Talent
	for rows.Next() {
		t, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *talentsRepo) UpdateTalent(ctx context.Context, t domain.Talent) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE talents
		SET stage_name = ?, category = ?, bio = ?, fee_range = ?, updated_at = ?
		WHERE id = ?`,
		t.StageName, t.Category, t.Bio, t.FeeRange, time.Now().UTC(), t.ID,
	))
}

func (r *talentsRepo) DeleteTalent(ctx context.Context, id string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM talents WHERE id = ?`, id,
	))
}
