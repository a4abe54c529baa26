package sqlite

import (
	"context"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, user_id, token_hash, kind, expires_at, blacklisted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.Kind, t.ExpiresAt, t.Blacklisted, t.CreatedAt,
	)
	return mapWriteErr(err)
}

func (r *tokensRepo) GetTokenByHash(ctx context.Context, hash string, kind domain.TokenKind) (domain.Token, error) {
	var t domain.Token
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, kind, expires_at, blacklisted, created_at
		FROM tokens WHERE token_hash = ? AND kind = ?`, hash, kind,
	).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.Kind, &t.ExpiresAt, &t.Blacklisted, &t.CreatedAt)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tokensRepo) DeleteTokenByHash(ctx context.Context, hash string, kind domain.TokenKind) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`DELETE FROM tokens WHERE token_hash = ? AND kind = ?`, hash, kind,
	))
}

func (r *tokensRepo) DeleteUserTokens(ctx context.Context, userID string, kind domain.TokenKind) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tokens WHERE user_id = ? AND kind = ?`, userID, kind,
	)
	return err
}

func (r *tokensRepo) BlacklistToken(ctx context.Context, hash string) error {
	return affectedOrNotFound(r.db.ExecContext(ctx,
		`UPDATE tokens SET blacklisted = 1 WHERE token_hash = ?`, hash,
	))
}

func (r *tokensRepo) DeleteExpiredTokens(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tokens WHERE expires_at < ?`, cutoff,
	)
	return err
}
