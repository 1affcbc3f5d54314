package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

	"github.com/vitaltrack/wellness-platform/internal/model"
)

// SessionCookieName is the cookie carrying the signed session token. The
// token can alternatively be sent as a Bearer Authorization header; the
// cookie wins when both are present.
const SessionCookieName = "wellness_session"

// UserLookup resolves a user id extracted from a session token into the
// stored User row. It is injected so tests can run the middleware without a
// database.
type UserLookup func(ctx context.Context, id uint64) (model.User, error)

// SessionAuth returns an Echo middleware that validates the session token
// and resolves the caller's User row into the request context under the
// "user" key (with the raw id under "user_id"). Role and user-type gates
// evaluate the stored row, not token claims, so a stale token can never
// grant a role the database no longer records. Requests without a valid
// session fail with 401.
func SessionAuth(secret string, lookup UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			// Parse the token using the HS256 signing method and our secret.
			// The callback supplies the signing key and ensures that the
			// algorithm matches what we expect; tokens signed differently
			// are rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			uid, ok := subjectID(claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
			}

			u, err := lookup(c.Request().Context(), uid)
			if err != nil {
				// A token referencing a deleted user is indistinguishable
				// from a forged one as far as the caller is concerned.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
			}

			c.Set("user", u)
			c.Set("user_id", u.ID)
			return next(c)
		}
	}
}

// tokenFromRequest extracts the raw session token from the session cookie or
// from a "Bearer" Authorization header.
func tokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// subjectID pulls the numeric user id out of the sub claim. JWT numbers are
// decoded as float64; some issuers encode numeric strings instead.
func subjectID(claims jwt.MapClaims) (uint64, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		return uint64(v), true
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// CurrentUser returns the User row the auth middleware resolved for this
// request. The boolean is false on routes that did not pass through
// SessionAuth.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get("user").(model.User)
	return u, ok
}
