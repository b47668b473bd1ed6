package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", 1)

	signed, claims, err := issuer.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.Equal(t, "alice", claims.Subject())
	assert.NotEmpty(t, claims.TokenID())

	verified, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", verified.Subject())
	assert.Equal(t, claims.TokenID(), verified.TokenID())
}

func TestIssueUniqueTokenIDs(t *testing.T) {
	issuer := NewIssuer("test-secret", 1)

	_, first, err := issuer.Issue("alice")
	require.NoError(t, err)
	_, second, err := issuer.Issue("alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.TokenID(), second.TokenID())
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -1)

	signed, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", 1)
	other := NewIssuer("other-secret", 1)

	signed, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyTampered(t *testing.T) {
	issuer := NewIssuer("test-secret", 1)

	signed, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	// Flip a character in the signature segment
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	issuer := NewIssuer("test-secret", 1)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(raw)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}
