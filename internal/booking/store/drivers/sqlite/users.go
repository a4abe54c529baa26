package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, telephone, password_hash, full_name, mobile_number,
	role, is_email_verified, is_phone_verified, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                domain.User
		email, telephone sql.NullString
	)
	err := row.Scan(
		&u.ID, &email, &telephone, &u.PasswordHash, &u.FullName, &u.MobileNumber,
		&u.Role, &u.IsEmailVerified, &u.IsPhoneVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = mapNullString(email)
	u.Telephone = mapNullString(telephone)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, telephone, password_hash, full_name, mobile_number,
			role, is_email_verified, is_phone_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, mapStringNull(u.Email), mapStringNull(u.Telephone), u.PasswordHash,
		u.FullName, u.MobileNumber, u.Role, u.IsEmailVerified, u.IsPhoneVerified,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) GetUserByTelephone(ctx context.Context, telephone string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE telephone = ?`, telephone))
}

func (r *usersRepo) ListUsers(ctx context.Context, p store.Page) ([]domain.User, error) {
	limit, offset := page(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return affectedOrNotFound(r.db.ExecContext(ctx, `
		UPDATE users
		SET email = ?, telephone = ?, full_name = ?, mobile_number = ?, role = ?,
			is_email_verified = ?, is_phone_verified = ?, updated_at = ?
		WHERE id = ?`,
		mapStringNull(u.Email), mapStringNull(u.Telephone), u.FullName, u.MobileNumber,
		u.Role, u.IsEmailVerified, u.IsPhoneVerified, time.Now().UTC(), u.ID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID,
	))
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`UPDATE users SET is_email_verified = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	))
}

func (r *usersRepo) MarkPhoneVerified(ctx context.Context, userID string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`UPDATE users SET is_phone_verified = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = ?`, userID,
	))
}
