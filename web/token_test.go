package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateAccessToken("NC-1234-5678", "Vex", true, secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "NC-1234-5678", claims.Subject)
	assert.Equal(t, "Vex", claims.CharacterName)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("NC-1234-5678", "Vex", false, []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("NC-1234-5678", "Vex", false, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("secret"))
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
