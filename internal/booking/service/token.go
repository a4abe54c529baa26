package service

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/idx"
	"github.com/castlinehq/castline/pkg/jwtx"
)

// TokenService issues and verifies the four token kinds. Access tokens are
// stateless JWTs; refresh, reset-password, and verify-email tokens are also
// persisted (by SHA-256 fingerprint, never raw) so they can be revoked and
// consumed exactly once.
type TokenService struct {
	JWT    *jwtx.HS256
	Store  store.Store
	Issuer string

	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	ResetPasswordTTL time.Duration
	VerifyEmailTTL   time.Duration
}

// IssueAuthTokens signs a fresh access/refresh pair for the user and persists
// the refresh record.
func (s *TokenService) IssueAuthTokens(ctx context.Context, user domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	accessClaims := jwtx.NewClaims(user.ID, jwtx.KindAccess, s.Issuer, s.AccessTTL, now)
	access, err := s.JWT.Sign(accessClaims)
	if err != nil {
		return nil, err
	}

	refresh, record, err := s.signStored(user.ID, jwtx.KindRefresh, domain.TokenRefresh, s.RefreshTTL, now)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Tokens().CreateToken(ctx, record); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		Access:  domain.TokenInfo{Token: access, ExpiresAt: now.Add(s.AccessTTL)},
		Refresh: domain.TokenInfo{Token: refresh, ExpiresAt: record.ExpiresAt},
	}, nil
}

// IssueResetPasswordToken looks up the account by email and mints a persisted
// RESET_PASSWORD token. Unknown email returns ErrNotFound so the forgot
// endpoint can 404 rather than silently succeed.
func (s *TokenService) IssueResetPasswordToken(ctx context.Context, email string) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrNotFound
		}
		return "", domain.User{}, err
	}

	now := time.Now()
	value, record, err := s.signStored(user.ID, jwtx.KindResetPassword, domain.TokenResetPassword, s.ResetPasswordTTL, now)
	if err != nil {
		return "", domain.User{}, err
	}
	if err := s.Store.Tokens().CreateToken(ctx, record); err != nil {
		return "", domain.User{}, err
	}
	return value, user, nil
}

// IssueVerifyEmailToken mints a persisted VERIFY_EMAIL token for the user.
func (s *TokenService) IssueVerifyEmailToken(ctx context.Context, user domain.User) (string, error) {
	now := time.Now()
	value, record, err := s.signStored(user.ID, jwtx.KindVerifyEmail, domain.TokenVerifyEmail, s.VerifyEmailTTL, now)
	if err != nil {
		return "", err
	}
	if err := s.Store.Tokens().CreateToken(ctx, record); err != nil {
		return "", err
	}
	return value, nil
}

// Verify checks signature, expiry, and kind, and for persisted kinds also
// requires a live (present, not blacklisted) record. Every failure mode is
// collapsed into ErrUnauthorized.
func (s *TokenService) Verify(ctx context.Context, value, kind string) (domain.Token, error) {
	claims, err := s.JWT.VerifyKind(value, kind)
	if err != nil {
		return domain.Token{}, ErrUnauthorized
	}

	if kind == jwtx.KindAccess {
		// Stateless: nothing persisted to cross-check.
		return domain.Token{UserID: claims.Subject, ExpiresAt: claims.ExpiresAtTime()}, nil
	}

	record, err := s.Store.Tokens().GetTokenByHash(ctx, cryptox.FingerprintToken(value), storedKind(kind))
	if err != nil {
		return domain.Token{}, ErrUnauthorized
	}
	if record.Blacklisted {
		return domain.Token{}, ErrUnauthorized
	}
	return record, nil
}

// Rotate redeems a refresh token for a fresh pair. The old record is deleted
// and the new one created in a single transaction, so a replayed token loses
// the race and fails verification.
func (s *TokenService) Rotate(ctx context.Context, value string) (*domain.TokenPair, error) {
	record, err := s.Verify(ctx, value, jwtx.KindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, record.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	now := time.Now()
	accessClaims := jwtx.NewClaims(user.ID, jwtx.KindAccess, s.Issuer, s.AccessTTL, now)
	access, err := s.JWT.Sign(accessClaims)
	if err != nil {
		return nil, err
	}

	refresh, newRecord, err := s.signStored(user.ID, jwtx.KindRefresh, domain.TokenRefresh, s.RefreshTTL, now)
	if err != nil {
		return nil, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tokens().DeleteTokenByHash(ctx, record.TokenHash, domain.TokenRefresh); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnauthorized
			}
			return err
		}
		return tx.Tokens().CreateToken(ctx, newRecord)
	})
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		Access:  domain.TokenInfo{Token: access, ExpiresAt: now.Add(s.AccessTTL)},
		Refresh: domain.TokenInfo{Token: refresh, ExpiresAt: newRecord.ExpiresAt},
	}, nil
}

// Revoke deletes the refresh record backing the given token value.
// Returns ErrNotFound when there is nothing to revoke.
func (s *TokenService) Revoke(ctx context.Context, value string) error {
	err := s.Store.Tokens().DeleteTokenByHash(ctx, cryptox.FingerprintToken(value), domain.TokenRefresh)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// ConsumeSingleUse verifies a single-use token (reset-password or verify-email)
// and atomically purges EVERY token of that kind for the owning user, so the
// same link can never be redeemed twice and stale links die with it.
func (s *TokenService) ConsumeSingleUse(ctx context.Context, value, kind string) (string, error) {
	record, err := s.Verify(ctx, value, kind)
	if err != nil {
		return "", err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Tokens().DeleteUserTokens(ctx, record.UserID, record.Kind)
	})
	if err != nil {
		return "", err
	}
	return record.UserID, nil
}

func (s *TokenService) signStored(
	userID, kind string,
	storeKind domain.TokenKind,
	ttl time.Duration,
	now time.Time,
) (string, domain.Token, error) {
	claims := jwtx.NewClaims(userID, kind, s.Issuer, ttl, now)
	value, err := s.JWT.Sign(claims)
	if err != nil {
		return "", domain.Token{}, err
	}

	record := domain.Token{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(value),
		Kind:      storeKind,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	return value, record, nil
}

func storedKind(kind string) domain.TokenKind {
	switch kind {
	case jwtx.KindResetPassword:
		return domain.TokenResetPassword
	case jwtx.KindVerifyEmail:
		return domain.TokenVerifyEmail
	default:
		return domain.TokenRefresh
	}
}
