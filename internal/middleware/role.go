package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAdmin returns a middleware that enforces that the authenticated
// caller holds the admin role. It assumes SessionAuth already resolved the
// User row into the context; callers without it are rejected with 403. The
// role and user-type gates are mutually exclusive predicates over the
// caller: a route declares exactly one of them, never a stack.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok || !u.IsAdmin() {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
			}
			return next(c)
		}
	}
}

// RequireUserType returns a middleware that enforces that the authenticated
// caller's profile type matches t (e.g. "company" or "employee"). The
// user_type value is read from the User row loaded this request, so a
// profile created moments ago is honored without re-issuing the session.
func RequireUserType(t string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok || !u.HasUserType(t) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": t + " access required"})
			}
			return next(c)
		}
	}
}
