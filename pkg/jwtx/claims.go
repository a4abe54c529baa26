package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "type" claim. Access tokens are stateless and
// verified purely by signature and expiry; the other kinds are additionally
// backed by a persisted token record.
const (
	KindAccess        = "access"
	KindRefresh       = "refresh"
	KindResetPassword = "resetPassword"
	KindVerifyEmail   = "verifyEmail"
)

// Claims are the claims embedded in every token the service issues.
type Claims struct {
	jwt.RegisteredClaims

	// Kind discriminates access/refresh/resetPassword/verifyEmail tokens so
	// one kind can never be replayed as another.
	Kind string `json:"type"`
}

// NewClaims builds minimally-correct claims for a token of the given kind.
func NewClaims(subject, kind, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}
}

// ExpiresAtTime returns the expiry timestamp, or the zero time when absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
