package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/notify"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/idx"
	"github.com/castlinehq/castline/pkg/jwtx"
	"github.com/castlinehq/castline/pkg/otpx"
	"github.com/castlinehq/castline/pkg/slogx"
)

// AuthService orchestrates the login, logout, refresh, password-reset,
// email-verification, and OTP flows on top of the token service.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	OTP    *otpx.Engine
	Mailer notify.Mailer
	SMS    notify.SMSSender
}

// RegisterInput carries the account fields shared by every registration
// route. Role comes from the route, not the payload.
type RegisterInput struct {
	Email        string
	Telephone    string
	Password     string
	FullName     string
	MobileNumber string
	Role         domain.Role
}

// Register creates the account and signs it straight in. Duplicate email or
// telephone comes back as ErrEmailTaken / ErrTelephoneTaken.
func (a *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, *domain.TokenPair, error) {
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, nil, err
	}

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		Telephone:    in.Telephone,
		PasswordHash: hash,
		FullName:     in.FullName,
		MobileNumber: in.MobileNumber,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, nil, a.takenError(ctx, in)
		}
		return domain.User{}, nil, err
	}

	pair, err := a.Tokens.IssueAuthTokens(ctx, user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// takenError decides which uniqueness constraint tripped. The insert error
// itself doesn't say, so probe for the email first.
func (a *AuthService) takenError(ctx context.Context, in RegisterInput) error {
	if in.Email != "" {
		if _, err := a.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
			return ErrEmailTaken
		}
	}
	if in.Telephone != "" {
		if _, err := a.Store.Users().GetUserByTelephone(ctx, in.Telephone); err == nil {
			return ErrTelephoneTaken
		}
	}
	return ErrEmailTaken
}

// LoginWithEmail authenticates by email + password. A missing account and a
// wrong password are indistinguishable to the caller.
func (a *AuthService) LoginWithEmail(ctx context.Context, email, password string) (domain.User, *domain.TokenPair, error) {
	user, err := a.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrBadEmailLogin
		}
		return domain.User{}, nil, err
	}
	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		return domain.User{}, nil, ErrBadEmailLogin
	}

	pair, err := a.Tokens.IssueAuthTokens(ctx, user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// LoginWithPhone authenticates by telephone + password with the same
// uniform-failure property as LoginWithEmail.
func (a *AuthService) LoginWithPhone(ctx context.Context, telephone, password string) (domain.User, *domain.TokenPair, error) {
	user, err := a.Store.Users().GetUserByTelephone(ctx, telephone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrBadPhoneLogin
		}
		return domain.User{}, nil, err
	}
	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		return domain.User{}, nil, ErrBadPhoneLogin
	}

	pair, err := a.Tokens.IssueAuthTokens(ctx, user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// Logout revokes the session behind the given refresh token. Absent and
// blacklisted records both come back as ErrNotFound.
func (a *AuthService) Logout(ctx context.Context, refreshToken string) error {
	record, err := a.Store.Tokens().GetTokenByHash(ctx,
		cryptox.FingerprintToken(refreshToken), domain.TokenRefresh)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if record.Blacklisted {
		return ErrNotFound
	}
	return a.Tokens.Revoke(ctx, refreshToken)
}

// Refresh rotates the refresh token for a new pair. Every failure mode is
// collapsed into ErrUnauthorized.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	pair, err := a.Tokens.Rotate(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return pair, nil
}

// ForgotPassword mints a reset token for the account and mails it out.
// Unknown email returns ErrNotFound.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	token, user, err := a.Tokens.IssueResetPasswordToken(ctx, email)
	if err != nil {
		return err
	}

	if err := a.Mailer.SendResetPasswordEmail(ctx, user.Email, token); err != nil {
		slogx.FromContext(ctx).Error("reset password email delivery failed",
			slog.Any("error", err), slog.String("user_id", user.ID))
	}
	return nil
}

// ResetPassword redeems a reset token and replaces the password. All refresh
// sessions for the user are revoked so stolen sessions die with the old
// password. Failures collapse into ErrPasswordReset.
func (a *AuthService) ResetPassword(ctx context.Context, tokenValue, newPassword string) error {
	userID, err := a.Tokens.ConsumeSingleUse(ctx, tokenValue, jwtx.KindResetPassword)
	if err != nil {
		return ErrPasswordReset
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return ErrPasswordReset
	}

	err = a.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Tokens().DeleteUserTokens(ctx, userID, domain.TokenRefresh)
	})
	if err != nil {
		return ErrPasswordReset
	}
	return nil
}

// SendVerificationEmail issues a verify-email token for the user and mails it.
func (a *AuthService) SendVerificationEmail(ctx context.Context, userID string) error {
	user, err := a.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	token, err := a.Tokens.IssueVerifyEmailToken(ctx, user)
	if err != nil {
		return err
	}

	if err := a.Mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		slogx.FromContext(ctx).Error("verification email delivery failed",
			slog.Any("error", err), slog.String("user_id", user.ID))
	}
	return nil
}

// VerifyEmail redeems a verify-email token and flips the flag. Failures
// collapse into ErrEmailVerification.
func (a *AuthService) VerifyEmail(ctx context.Context, tokenValue string) error {
	userID, err := a.Tokens.ConsumeSingleUse(ctx, tokenValue, jwtx.KindVerifyEmail)
	if err != nil {
		return ErrEmailVerification
	}
	if err := a.Store.Users().MarkEmailVerified(ctx, userID); err != nil {
		return ErrEmailVerification
	}
	return nil
}

// CreateOTP mints a challenge for the telephone and sends the code by SMS.
// The capsule (not the code) is returned to the client.
func (a *AuthService) CreateOTP(ctx context.Context, telephone string) (otpx.Challenge, error) {
	challenge, err := a.OTP.CreateChallenge(telephone)
	if err != nil {
		return otpx.Challenge{}, err
	}

	if err := a.SMS.SendOTP(ctx, telephone, challenge.Code); err != nil {
		slogx.FromContext(ctx).Error("otp sms delivery failed",
			slog.Any("error", err), slog.String("telephone", telephone))
	}
	return challenge, nil
}

// VerifyOTP checks the code against the capsule. On success, an account with
// that telephone (if any) gets its phone marked verified.
func (a *AuthService) VerifyOTP(ctx context.Context, telephone, otp, capsule string) error {
	switch a.OTP.VerifyChallenge(telephone, otp, capsule) {
	case otpx.Success:
	case otpx.Expired:
		return ErrOTPExpired
	default:
		return ErrInvalidOTP
	}

	user, err := a.Store.Users().GetUserByTelephone(ctx, telephone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil // valid OTP for a number with no account is still a success
		}
		return err
	}
	return a.Store.Users().MarkPhoneVerified(ctx, user.ID)
}
