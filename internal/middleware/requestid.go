package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/logger"
)

// RequestID attaches a unique request id to every request, reusing the one
// the client sent when present. The id is echoed back in the response header
// and picked up by the request logger.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(logger.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Request().Header.Set(logger.RequestIDHeader, requestID)
		c.Response().Header().Set(logger.RequestIDHeader, requestID)
		c.Set("request_id", requestID)
		return next(c)
	}
}
