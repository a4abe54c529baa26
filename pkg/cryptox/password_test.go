package cryptox

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyPassword("Passw0rd", hash))
	require.ErrorIs(t, VerifyPassword("wrong", hash), ErrPasswordMismatch)
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	a, err := HashPassword("same-input")
	require.NoError(t, err)
	b, err := HashPassword("same-input")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword("same-input", a))
	require.NoError(t, VerifyPassword("same-input", b))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	for _, h := range []string{
		"",
		"plainly-not-a-hash",
		"$argon2i$v=19$m=19456,t=2,p=1$abc$def",
		"$argon2id$v=18$m=19456,t=2,p=1$abc$def",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$def",
	} {
		err := VerifyPassword("anything", h)
		require.Error(t, err, "hash %q", h)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}

func TestFingerprintTokenDeterministic(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("some-token")
	b := FingerprintToken("some-token")
	c := FingerprintToken("other-token")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 43)
}
