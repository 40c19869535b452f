package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders stamps hardening headers on every response. The exam UI is
// the only intended consumer, so framing and device APIs are shut off.
func securityHeaders() echo.MiddlewareFunc {
	headers := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			for name, value := range headers {
				h.Set(name, value)
			}
			return next(c)
		}
	}
}

// requestLogger returns middleware that logs each request with latency.
// The websocket route is skipped: its connection outlives the handler.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if c.Request().URL.Path == "/api/v1/chat/ws" {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			logger.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err != nil)
			return err
		}
	}
}
