package middleware

import (
	"time"

	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLogging logs HTTP requests, tagging each with a request ID. An
// incoming X-Request-ID is honored; otherwise one is generated.
func RequestLogging(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			res.Header().Set(requestIDHeader, reqID)

			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			l.Info("http request",
				applogger.String("request_id", reqID),
				applogger.String("method", req.Method),
				applogger.String("uri", req.RequestURI),
				applogger.String("remote", req.RemoteAddr),
				applogger.Int("status", res.Status),
				applogger.Duration("latency_ms", latency),
			)

			return err
		}
	}
}
