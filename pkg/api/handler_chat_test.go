package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidationTestServer builds a Server with routes but no backing
// services; only requests rejected before any service call may be sent.
func newValidationTestServer() *Server {
	s := &Server{
		echo:   echo.New(),
		logger: slog.Default(),
	}
	s.routes()
	return s
}

func postJSON(s *Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestChatHandlersRejectMalformedRequests(t *testing.T) {
	s := newValidationTestServer()

	tests := []struct {
		name string
		path string
		body string
	}{
		{
			name: "message without session",
			path: "/api/v1/chat/message",
			body: `{"message": "How do I start?"}`,
		},
		{
			name: "message without content",
			path: "/api/v1/chat/message",
			body: `{"session_id": 7}`,
		},
		{
			name: "message with invalid JSON",
			path: "/api/v1/chat/message",
			body: `{"session_id":`,
		},
		{
			name: "submit without session",
			path: "/api/v1/chat/submit",
			body: `{"code": "print(1)"}`,
		},
		{
			name: "submit without code",
			path: "/api/v1/chat/submit",
			body: `{"session_id": 7}`,
		},
		{
			name: "start without identifiers",
			path: "/api/v1/sessions/start",
			body: `{"exam_id": 1}`,
		},
		{
			name: "session message without content",
			path: "/api/v1/sessions/7/messages",
			body: `{}`,
		},
		{
			name: "session submit without code",
			path: "/api/v1/sessions/7/submit",
			body: `{"language": "python"}`,
		},
		{
			name: "session message with bad id",
			path: "/api/v1/sessions/abc/messages",
			body: `{"message": "hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(s, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, codeInvalidRequest, body.ErrorCode)
		})
	}
}

func TestChatMessageRejectsOversizedBody(t *testing.T) {
	s := newValidationTestServer()

	huge := strings.Repeat("a", maxMessageLen+1)
	rec := postJSON(s, "/api/v1/chat/message", `{"session_id": 7, "message": "`+huge+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionReadHandlersRejectBadIDs(t *testing.T) {
	s := newValidationTestServer()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/sessions/abc/state"},
		{http.MethodGet, "/api/v1/sessions/abc/scores"},
		{http.MethodGet, "/api/v1/sessions/abc/history"},
		{http.MethodGet, "/api/v1/sessions/abc/turns"},
		{http.MethodGet, "/api/v1/sessions/abc/tokens"},
		{http.MethodGet, "/api/v1/sessions/0/state"},
		{http.MethodDelete, "/api/v1/sessions/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
