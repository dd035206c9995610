package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

func runJWT(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ledger", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(secret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, reached
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, reached := runJWT(t, "s3cret", "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required. Token missing.")
}

func TestJWTAuthBlankBearer(t *testing.T) {
	rec, reached := runJWT(t, "s3cret", "Bearer   ")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, reached := runJWT(t, "s3cret", "Bearer not.a.token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalid or expired.")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewLoginToken("other-secret", 1, "admin", 1)
	require.NoError(t, err)

	rec, reached := runJWT(t, "s3cret", "Bearer "+tok.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewLoginToken("s3cret", 7, "admin", 1)
	require.NoError(t, err)

	rec, reached := runJWT(t, "s3cret", "Bearer "+tok.Token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
