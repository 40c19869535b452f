package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("message", "message is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidRequest,
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("bad language: %w", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidRequest,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("session 9: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   codeNotFound,
		},
		{
			name:       "session closed",
			err:        fmt.Errorf("session 9: %w", services.ErrSessionClosed),
			wantStatus: http.StatusConflict,
			wantCode:   codeSessionClosed,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   codeAlreadyExists,
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   codeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/err", func(c *echo.Context) error {
				return mapServiceError(c, tt.err)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/err", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, tt.wantCode, body.ErrorCode)
			assert.NotEmpty(t, body.ErrorMessage)
		})
	}
}

func TestMapServiceErrorValidationDetails(t *testing.T) {
	e := echo.New()
	e.GET("/err", func(c *echo.Context) error {
		return mapServiceError(c, services.NewValidationError("code", "code is required"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/err", nil))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "code", body.Details["field"])
	assert.Equal(t, "code is required", body.ErrorMessage)
}
