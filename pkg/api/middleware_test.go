package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/ping", func(c *echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	for name, value := range want {
		assert.Equal(t, value, rec.Header().Get(name), name)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	e.Use(requestLogger(logger))
	e.GET("/api/v1/sessions", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/v1/chat/ws", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ws")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "HTTP request")
	assert.Contains(t, buf.String(), "path=/api/v1/sessions")
	assert.Contains(t, buf.String(), "error=false")

	// The websocket endpoint is exempt: logging after the handler would wait
	// for the connection to close.
	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/ws", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
