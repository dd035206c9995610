package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware
)

// JWTAuth returns an Echo middleware that validates a Bearer login token
// and injects the decoded user_id and username claims into the request
// context.  The provided secret must match the one used when issuing
// tokens.  A missing token is rejected with 401; a token that fails
// signature verification or has expired is rejected with 403.  No session
// table or revocation list is consulted: a leaked, unexpired token stays
// valid for its full lifetime regardless of logout.  That is a documented
// property of the stateless token model, not an accident.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer <token>".  Absent or malformed
			// means the caller never authenticated at all -> 401.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required. Token missing."})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			if strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required. Token missing."})
			}

			// Parse with HS256 and our secret.  The callback pins the
			// signing method so tokens signed with anything else are
			// rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			// A token that parses but fails verification (bad signature,
			// expired) is a credential problem, not a missing credential:
			// the caller presented something and it was refused -> 403.
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token invalid or expired."})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token invalid or expired."})
			}

			// Expose the decoded identity to handlers via c.Get().
			c.Set("user_id", claims["user_id"])
			c.Set("username", claims["username"])
			return next(c)
		}
	}
}
