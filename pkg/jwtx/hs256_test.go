package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("unit-test-secret"), "castline")
	now := time.Now()

	raw, err := h.Sign(NewClaims("user-1", KindAccess, "castline", time.Minute, now))
	require.NoError(t, err)

	claims, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, KindAccess, claims.Kind)
	require.WithinDuration(t, now.Add(time.Minute), claims.ExpiresAtTime(), time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("secret-a"), "castline")
	verifier := NewHS256([]byte("secret-b"), "castline")

	raw, err := signer.Sign(NewClaims("user-1", KindAccess, "castline", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("unit-test-secret"), "castline")

	raw, err := h.Sign(NewClaims("user-1", KindAccess, "castline", time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("unit-test-secret"), "someone-else")
	verifier := NewHS256([]byte("unit-test-secret"), "castline")

	raw, err := signer.Sign(NewClaims("user-1", KindAccess, "someone-else", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyKindMismatch(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("unit-test-secret"), "castline")

	raw, err := h.Sign(NewClaims("user-1", KindRefresh, "castline", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = h.VerifyKind(raw, KindAccess)
	require.ErrorIs(t, err, ErrKind)

	claims, err := h.VerifyKind(raw, KindRefresh)
	require.NoError(t, err)
	require.Equal(t, KindRefresh, claims.Kind)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("unit-test-secret"), "castline")

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := h.Verify(raw)
		require.Error(t, err, "token %q", raw)
	}
}
