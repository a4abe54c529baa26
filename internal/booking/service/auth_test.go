package service

import (
	"context"
	"testing"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/notify"
	"github.com/castlinehq/castline/internal/booking/store/drivers/sqlite"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/jwtx"
	"github.com/castlinehq/castline/pkg/otpx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	tokens := &TokenService{
		JWT:              jwtx.NewHS256([]byte("test-secret"), "test-issuer"),
		Store:            st,
		Issuer:           "test-issuer",
		AccessTTL:        30 * time.Minute,
		RefreshTTL:       30 * 24 * time.Hour,
		ResetPasswordTTL: 10 * time.Minute,
		VerifyEmailTTL:   10 * time.Minute,
	}

	return &AuthService{
		Store:  st,
		Tokens: tokens,
		OTP:    &otpx.Engine{Secret: []byte("otp-secret")},
		Mailer: notify.LogMailer{},
		SMS:    notify.LogSMSSender{},
	}
}

func registerUser(t *testing.T, a *AuthService, email, telephone string) (domain.User, *domain.TokenPair) {
	t.Helper()

	user, pair, err := a.Register(context.Background(), RegisterInput{
		Email:     email,
		Telephone: telephone,
		Password:  "hunter2hunter2",
		FullName:  "Test User",
		Role:      domain.RoleUser,
	})
	require.NoError(t, err)
	require.NotNil(t, pair)
	return user, pair
}

func TestLoginWithEmailRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	registerUser(t, a, "alice@example.com", "")

	user, pair, err := a.LoginWithEmail(ctx, "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, pair.Access.Token)
	require.NotEmpty(t, pair.Refresh.Token)
	require.NotEqual(t, pair.Access.Token, pair.Refresh.Token)
}

func TestLoginFailureIsUniform(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	registerUser(t, a, "alice@example.com", "+15550001111")

	// Wrong password and unknown account must be indistinguishable.
	_, _, wrongPassword := a.LoginWithEmail(ctx, "alice@example.com", "nope")
	_, _, unknownUser := a.LoginWithEmail(ctx, "bob@example.com", "hunter2hunter2")
	require.ErrorIs(t, wrongPassword, ErrBadEmailLogin)
	require.ErrorIs(t, unknownUser, ErrBadEmailLogin)

	_, _, wrongPhone := a.LoginWithPhone(ctx, "+15550009999", "hunter2hunter2")
	require.ErrorIs(t, wrongPhone, ErrBadPhoneLogin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	registerUser(t, a, "alice@example.com", "")

	_, _, err := a.Register(ctx, RegisterInput{
		Email:    "alice@example.com",
		Password: "anotherpassword",
		Role:     domain.RoleTalent,
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRefreshRotationIsSingleUse(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	_, pair := registerUser(t, a, "alice@example.com", "")

	rotated, err := a.Refresh(ctx, pair.Refresh.Token)
	require.NoError(t, err)
	require.NotEqual(t, pair.Refresh.Token, rotated.Refresh.Token)

	// The original token was consumed by the rotation.
	_, err = a.Refresh(ctx, pair.Refresh.Token)
	require.ErrorIs(t, err, ErrUnauthorized)

	// The rotated token still works.
	_, err = a.Refresh(ctx, rotated.Refresh.Token)
	require.NoError(t, err)
}

func TestLogoutThenRefreshFails(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	_, pair := registerUser(t, a, "alice@example.com", "")

	require.NoError(t, a.Logout(ctx, pair.Refresh.Token))

	_, err := a.Refresh(ctx, pair.Refresh.Token)
	require.ErrorIs(t, err, ErrUnauthorized)

	// Logging out again finds nothing to revoke.
	require.ErrorIs(t, a.Logout(ctx, pair.Refresh.Token), ErrNotFound)
}

func TestBlacklistedRefreshTokenIsDead(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	_, pair := registerUser(t, a, "alice@example.com", "")

	hash := cryptox.FingerprintToken(pair.Refresh.Token)
	require.NoError(t, a.Store.Tokens().BlacklistToken(ctx, hash))

	// The record survives but no flow will honor it.
	_, err := a.Refresh(ctx, pair.Refresh.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorIs(t, a.Logout(ctx, pair.Refresh.Token), ErrNotFound)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	_, pair := registerUser(t, a, "alice@example.com", "")

	_, err := a.Refresh(ctx, pair.Access.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestResetPasswordFlow(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	user, pair := registerUser(t, a, "alice@example.com", "")

	require.ErrorIs(t, a.ForgotPassword(ctx, "nobody@example.com"), ErrNotFound)

	token, _, err := a.Tokens.IssueResetPasswordToken(ctx, user.Email)
	require.NoError(t, err)

	require.NoError(t, a.ResetPassword(ctx, token, "newpassword123"))

	// Old password dead, new one live.
	_, _, err = a.LoginWithEmail(ctx, user.Email, "hunter2hunter2")
	require.ErrorIs(t, err, ErrBadEmailLogin)
	_, _, err = a.LoginWithEmail(ctx, user.Email, "newpassword123")
	require.NoError(t, err)

	// Reset is single-use.
	require.ErrorIs(t, a.ResetPassword(ctx, token, "thirdpassword"), ErrPasswordReset)

	// Existing refresh sessions were revoked with the password.
	_, err = a.Refresh(ctx, pair.Refresh.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestResetPasswordPurgesSiblingTokens(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	user, _ := registerUser(t, a, "alice@example.com", "")

	first, _, err := a.Tokens.IssueResetPasswordToken(ctx, user.Email)
	require.NoError(t, err)
	second, _, err := a.Tokens.IssueResetPasswordToken(ctx, user.Email)
	require.NoError(t, err)

	// Redeeming the second purges the first as well.
	require.NoError(t, a.ResetPassword(ctx, second, "newpassword123"))
	require.ErrorIs(t, a.ResetPassword(ctx, first, "otherpassword"), ErrPasswordReset)
}

func TestVerifyEmailFlow(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	user, _ := registerUser(t, a, "alice@example.com", "")
	require.False(t, user.IsEmailVerified)

	token, err := a.Tokens.IssueVerifyEmailToken(ctx, user)
	require.NoError(t, err)

	require.NoError(t, a.VerifyEmail(ctx, token))

	updated, err := a.Store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, updated.IsEmailVerified)

	// Single-use.
	require.ErrorIs(t, a.VerifyEmail(ctx, token), ErrEmailVerification)
	require.ErrorIs(t, a.VerifyEmail(ctx, "garbage"), ErrEmailVerification)
}

func TestOTPFlowMarksPhoneVerified(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)
	user, _ := registerUser(t, a, "", "+15550001111")
	require.False(t, user.IsPhoneVerified)

	challenge, err := a.CreateOTP(ctx, user.Telephone)
	require.NoError(t, err)
	require.NotEmpty(t, challenge.Capsule)
	require.Len(t, challenge.Code, otpx.DefaultDigits)

	wrong := "0000"
	if challenge.Code == wrong {
		wrong = "0001"
	}
	require.ErrorIs(t, a.VerifyOTP(ctx, user.Telephone, wrong, challenge.Capsule), ErrInvalidOTP)
	require.NoError(t, a.VerifyOTP(ctx, user.Telephone, challenge.Code, challenge.Capsule))

	updated, err := a.Store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, updated.IsPhoneVerified)
}

func TestVerifyOTPUnknownNumberStillSucceeds(t *testing.T) {
	ctx := context.Background()
	a := newAuthService(t)

	challenge, err := a.CreateOTP(ctx, "+15550002222")
	require.NoError(t, err)
	require.NoError(t, a.VerifyOTP(ctx, "+15550002222", challenge.Code, challenge.Capsule))
}
