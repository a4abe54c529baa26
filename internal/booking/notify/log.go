package notify

import (
	"context"
	"log/slog"

	"github.com/castlinehq/castline/pkg/slogx"
)

// LogMailer writes deliveries to the structured log instead of a real
// provider. Token values are never logged; only their destination.
type LogMailer struct{}

func (LogMailer) SendResetPasswordEmail(ctx context.Context, to, token string) error {
	slogx.FromContext(ctx).Info("reset password email queued", slog.String("to", to))
	return nil
}

func (LogMailer) SendVerificationEmail(ctx context.Context, to, token string) error {
	slogx.FromContext(ctx).Info("verification email queued", slog.String("to", to))
	return nil
}

// LogSMSSender logs OTP deliveries. The code itself stays out of the log.
type LogSMSSender struct{}

func (LogSMSSender) SendOTP(ctx context.Context, telephone, code string) error {
	slogx.FromContext(ctx).Info("otp sms queued", slog.String("telephone", telephone))
	return nil
}
