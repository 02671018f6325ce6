package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CarriesEmailAndExpiry(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 30*time.Minute)

	tokenString, err := issuer.Generate("marta@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := issuer.Auth().Decode(tokenString)
	require.NoError(t, err)

	email, ok := token.Get("email")
	require.True(t, ok)
	assert.Equal(t, "marta@example.com", email)

	jti, ok := token.Get("jti")
	require.True(t, ok)
	assert.NotEmpty(t, jti)

	exp := token.Expiration()
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, time.Minute)
}

func TestDecode_RejectsWrongKey(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 30*time.Minute)
	other := NewTokenIssuer([]byte("other-secret"), 30*time.Minute)

	tokenString, err := issuer.Generate("marta@example.com")
	require.NoError(t, err)

	_, err = other.Auth().Decode(tokenString)
	assert.Error(t, err)
}

func TestGetEmailFromClaims(t *testing.T) {
	email, err := GetEmailFromClaims(map[string]interface{}{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", email)

	_, err = GetEmailFromClaims(map[string]interface{}{})
	assert.Error(t, err)

	_, err = GetEmailFromClaims(map[string]interface{}{"email": 42})
	assert.Error(t, err)
}
