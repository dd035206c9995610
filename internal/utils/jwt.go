package utils // package utils provides helpers for token creation and verification

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// LoginToken represents a signed HS256 token along with its expiry.  The
// Token field contains the serialized JWT string.  Exp stores the UTC
// expiration time.  Login tokens are presented in the Authorization header
// when calling protected endpoints; their validity is determined purely by
// signature and expiry, never by a session-table lookup.
type LoginToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewLoginToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the username and a TTL in hours.  The JWT
// carries the user_id and username claims the handlers read back, plus the
// standard exp and iat claims.
func NewLoginToken(secret string, userID uint64, username string, ttlHours int) (LoginToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return LoginToken{}, err
	}
	return LoginToken{Token: signed, Exp: exp}, nil
}
