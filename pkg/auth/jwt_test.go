package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierRoundTrip(t *testing.T) {
	tok, err := Sign("secret", "u1", "USER", "a@b.c", time.Minute)
	require.NoError(t, err)

	claims, err := NewVerifier("secret").ParseValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "a@b.c", claims.Email)
}

func TestVerifierRejectsWrongSecret(t *testing.T) {
	tok, err := Sign("secret", "u1", "USER", "a@b.c", time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier("other").ParseValidate(tok)
	assert.Error(t, err)
}

func TestVerifierRejectsExpired(t *testing.T) {
	tok, err := Sign("secret", "u1", "USER", "a@b.c", -time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier("secret").ParseValidate(tok)
	assert.Error(t, err)
}
