package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/pkg/services"
)

// maxMessageLen caps a single chat message body.
const maxMessageLen = 100_000

// chatMessageHandler handles POST /api/v1/chat/message. It runs one full
// conversational turn and returns the writer's answer. Turn-level failures
// (guardrail refusals, graph errors) come back as 200 with error fields in
// the payload; only malformed requests get a non-2xx envelope.
func (s *Server) chatMessageHandler(c *echo.Context) error {
	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if req.SessionID <= 0 {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "session_id is required")
	}
	if req.Message == "" {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "message is required")
	}
	if len(req.Message) > maxMessageLen {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "message exceeds maximum length")
	}

	result, err := s.orch.ProcessMessage(c.Request().Context(), services.ProcessMessageRequest{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// chatSubmitHandler handles POST /api/v1/chat/submit: the participant's final
// code submission. The response carries the final scores once grading
// finishes, or status/error fields when it cannot.
func (s *Server) chatSubmitHandler(c *echo.Context) error {
	var req ChatSubmitRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if req.SessionID <= 0 {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "session_id is required")
	}
	if req.Code == "" {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "code is required")
	}

	result, err := s.orch.SubmitCode(c.Request().Context(), services.SubmitCodeRequest{
		SessionID: req.SessionID,
		Code:      req.Code,
		Language:  req.Language,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
