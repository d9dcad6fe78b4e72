package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	pkgcontext "github.com/nrattyp233/moneybuddy/internal/pkg/context"
)

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get request ID from header or generate a new one
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			// Set request ID in response header
			c.Response().Header().Set("X-Request-ID", requestID)
			c.Set("request_id", requestID)

			// Propagate to the request context so logging further
			// down the call chain can pick it up
			ctx := pkgcontext.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
