package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware creates request logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the error response so the status is final
				c.Error(err)
			}

			latency := time.Since(start)
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			// created by the nrecho middleware when New Relic is enabled
			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
			}

			logger.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
