package utils // package utils provides helper functions for session token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 JWT session token along with its
// expiry. The token is set as an HttpOnly cookie on login and also returned
// in the response body so API clients can send it as a bearer header.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a user. It takes the
// signing secret, the user ID and a TTL in hours. The JWT carries only the
// subject (sub), expiration (exp) and issued at (iat) claims: the caller's
// role and user type are resolved from the users table on every request, so
// they never go stale inside an outstanding token.
func NewSessionToken(secret string, userID uint64, ttlHours int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
