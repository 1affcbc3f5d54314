package handler // handler defines http handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/middleware"
	"github.com/vitaltrack/wellness-platform/internal/model"
)

// dbTimeout bounds every database call issued from a handler.
const dbTimeout = 5 * time.Second

// reqContext derives a deadline-bounded context from the request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUser returns the caller resolved by the session middleware. Routes
// registered behind SessionAuth always have one; the false path covers
// misregistered routes.
func currentUser(c echo.Context) (model.User, bool) {
	return middleware.CurrentUser(c)
}

// idParam parses the :id path parameter as an unsigned integer.
func idParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
