package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// RequestIDMiddleware keeps an incoming X-Request-ID or assigns a new UUID,
// echoes it on the response and tags the New Relic transaction with it
func RequestIDMiddleware() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				txn.AddAttribute("request_id", requestID)
			}
		},
	})
}
