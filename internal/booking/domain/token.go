package domain

import "time"

// TokenKind enumerates the persisted token record kinds. Access tokens are
// stateless and never stored, so they have no kind here.
type TokenKind string

const (
	TokenRefresh       TokenKind = "REFRESH"
	TokenResetPassword TokenKind = "RESET_PASSWORD"
	TokenVerifyEmail   TokenKind = "VERIFY_EMAIL"
)

// Token models a stored token record. TokenHash is the SHA-256 fingerprint
// of the signed JWT; the raw value is only ever held by the client.
type Token struct {
	ID          string
	UserID      string
	TokenHash   string
	Kind        TokenKind
	ExpiresAt   time.Time
	Blacklisted bool
	CreatedAt   time.Time
}

// TokenInfo is one half of an issued pair: the signed value plus its expiry,
// so clients can schedule refreshes without decoding the JWT.
type TokenInfo struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires"`
}

// TokenPair is what login, registration, and refresh return.
type TokenPair struct {
	Access  TokenInfo `json:"access"`
	Refresh TokenInfo `json:"refresh"`
}
