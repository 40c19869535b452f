package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/pkg/services"
)

// Machine-readable error codes carried in the canonical error envelope.
const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeNotFound       = "NOT_FOUND"
	codeSessionClosed  = "SESSION_CLOSED"
	codeAlreadyExists  = "ALREADY_EXISTS"
	codeInternal       = "INTERNAL_ERROR"
)

// ErrorBody is the canonical error envelope. Turn-level failures inside a
// successfully processed request are reported as 200 responses whose payload
// carries error=true; this envelope is only for requests the server could
// not process at all.
type ErrorBody struct {
	Error        bool              `json:"error"`
	ErrorCode    string            `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Details      map[string]string `json:"details,omitempty"`
}

// writeError renders the canonical envelope with the given status.
func writeError(c *echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorBody{
		Error:        true,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}

// mapServiceError maps service-layer errors to the canonical envelope.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{
			Error:        true,
			ErrorCode:    codeInvalidRequest,
			ErrorMessage: validErr.Message,
			Details:      map[string]string{"field": validErr.Field},
		})
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return writeError(c, http.StatusNotFound, codeNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrSessionClosed) {
		return writeError(c, http.StatusConflict, codeSessionClosed, "session is closed")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return writeError(c, http.StatusConflict, codeAlreadyExists, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return writeError(c, http.StatusInternalServerError, codeInternal, "internal server error")
}
