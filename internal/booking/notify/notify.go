// Package notify abstracts the out-of-band delivery channels (email, SMS).
// The server never blocks a request on delivery succeeding; failures are
// logged and the operation carries on.
package notify

import "context"

// Mailer sends transactional email.
type Mailer interface {
	SendResetPasswordEmail(ctx context.Context, to, token string) error
	SendVerificationEmail(ctx context.Context, to, token string) error
}

// SMSSender delivers short messages, used for OTP codes.
type SMSSender interface {
	SendOTP(ctx context.Context, telephone, code string) error
}
