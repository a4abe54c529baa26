package otpx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testPhone = "+2348000000000"

func newTestEngine(now *time.Time) *Engine {
	return &Engine{
		Secret: []byte("otp-test-secret"),
		Now:    func() time.Time { return *now },
	}
}

func TestCreateChallengeShape(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(&now)

	ch, err := e.CreateChallenge(testPhone)
	require.NoError(t, err)

	require.Len(t, ch.Code, DefaultDigits)
	for _, r := range ch.Code {
		require.True(t, r >= '0' && r <= '9', "code %q must be digits only", ch.Code)
	}

	// Capsule is "hexMAC.expiryMillis" and never contains the raw code.
	mac, expiry, ok := strings.Cut(ch.Capsule, ".")
	require.True(t, ok)
	require.Len(t, mac, 64)
	require.Equal(t, now.Add(DefaultTTL), ch.ExpiresAt)
	require.Equal(t, expiry, strings.TrimPrefix(expiry, "-"))
	require.NotContains(t, mac, ch.Code)
}

func TestVerifyChallengeWithinTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(&now)

	ch, err := e.CreateChallenge(testPhone)
	require.NoError(t, err)

	require.Equal(t, Success, e.VerifyChallenge(testPhone, ch.Code, ch.Capsule))
	require.Equal(t, InvalidOTP, e.VerifyChallenge(testPhone, "0000000", ch.Capsule))
	require.Equal(t, InvalidOTP, e.VerifyChallenge("+2348111111111", ch.Code, ch.Capsule))
}

func TestVerifyChallengeExpiredBeatsSignature(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(&now)

	ch, err := e.CreateChallenge(testPhone)
	require.NoError(t, err)

	// 4 minutes later both the correct and the wrong code report Expired.
	now = now.Add(4 * time.Minute)
	require.Equal(t, Expired, e.VerifyChallenge(testPhone, ch.Code, ch.Capsule))
	require.Equal(t, Expired, e.VerifyChallenge(testPhone, "9999", ch.Capsule))
}

func TestVerifyChallengeMalformedCapsule(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := newTestEngine(&now)

	for _, capsule := range []string{"", "nodot", "mac.notanumber"} {
		require.Equal(t, InvalidOTP, e.VerifyChallenge(testPhone, "1234", capsule), "capsule %q", capsule)
	}
}

func TestVerifyChallengeWrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTestEngine(&now)
	verifier := &Engine{Secret: []byte("different-secret"), Now: func() time.Time { return now }}

	ch, err := issuer.CreateChallenge(testPhone)
	require.NoError(t, err)

	require.Equal(t, InvalidOTP, verifier.VerifyChallenge(testPhone, ch.Code, ch.Capsule))
}
