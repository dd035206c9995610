package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginToken(t *testing.T) {
	tok, err := NewLoginToken("test-secret", 12, "admin", 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(12), claims["user_id"])
	assert.Equal(t, "admin", claims["username"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	expected := time.Now().UTC().Add(24 * time.Hour)
	assert.WithinDuration(t, expected, exp.Time, 5*time.Second)
}

func TestNewLoginTokenWrongSecretRejected(t *testing.T) {
	tok, err := NewLoginToken("right-secret", 1, "admin", 1)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
