// Package otpx implements a stateless phone-verification challenge scheme.
//
// The server never stores the generated code. Instead the caller holds a
// signed capsule binding telephone, code, and expiry together; verification
// re-derives the HMAC from the caller-supplied parts and compares. A leaked
// but expired capsule can never validate because expiry is checked before
// any signature comparison.
package otpx

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of a challenge verification.
type Result int

const (
	Success Result = iota
	InvalidOTP
	Expired
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case InvalidOTP:
		return "Invalid OTP"
	case Expired:
		return "OTP Expired"
	default:
		return "Unknown"
	}
}

const (
	DefaultDigits = 4
	DefaultTTL    = 3 * time.Minute
)

// Challenge is what CreateChallenge hands back. Code is delivered to the
// subscriber out-of-band; Capsule goes to the API caller and is the only
// thing the server needs to see again.
type Challenge struct {
	Code      string
	Capsule   string
	ExpiresAt time.Time
}

// Engine generates and verifies challenges. The zero Digits/TTL fall back to
// DefaultDigits/DefaultTTL. Now is overridable for tests.
type Engine struct {
	Secret []byte
	Digits int
	TTL    time.Duration
	Now    func() time.Time
}

func (e *Engine) digits() int {
	if e.Digits <= 0 {
		return DefaultDigits
	}
	return e.Digits
}

func (e *Engine) ttl() time.Duration {
	if e.TTL <= 0 {
		return DefaultTTL
	}
	return e.TTL
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// CreateChallenge generates a numeric code for the telephone and returns it
// together with the signed capsule "hexMAC.expiryMillis".
func (e *Engine) CreateChallenge(telephone string) (Challenge, error) {
	code, err := generateCode(e.digits())
	if err != nil {
		return Challenge{}, fmt.Errorf("otpx: generate code: %w", err)
	}

	expires := e.now().Add(e.ttl())
	expiryMillis := expires.UnixMilli()

	mac := e.sign(telephone, code, expiryMillis)
	capsule := mac + "." + strconv.FormatInt(expiryMillis, 10)

	return Challenge{Code: code, Capsule: capsule, ExpiresAt: expires}, nil
}

// VerifyChallenge checks a caller-supplied code against a capsule. Expiry is
// checked first so the signature of a stale capsule is never even compared;
// a malformed capsule counts as an invalid code.
func (e *Engine) VerifyChallenge(telephone, otp, capsule string) Result {
	macHex, expiryStr, ok := strings.Cut(capsule, ".")
	if !ok {
		return InvalidOTP
	}
	expiryMillis, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return InvalidOTP
	}

	if e.now().UnixMilli() > expiryMillis {
		return Expired
	}

	expected := e.sign(telephone, otp, expiryMillis)
	if hmac.Equal([]byte(expected), []byte(macHex)) {
		return Success
	}
	return InvalidOTP
}

// sign computes the hex HMAC-SHA256 over "telephone.otp.expiryMillis".
func (e *Engine) sign(telephone, otp string, expiryMillis int64) string {
	mac := hmac.New(sha256.New, e.Secret)
	fmt.Fprintf(mac, "%s.%s.%d", telephone, otp, expiryMillis)
	return hex.EncodeToString(mac.Sum(nil))
}

// generateCode produces a digits-only code, leading zeros included.
func generateCode(digits int) (string, error) {
	out := make([]byte, digits)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		out[i] = byte('0' + n.Int64())
	}
	return string(out), nil
}
