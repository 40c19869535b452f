package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/services"
)

// sessionID parses the :id route parameter.
func sessionID(c *echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// startSessionHandler handles POST /api/v1/sessions/start. Starting is
// idempotent: an open session for the same (exam, participant) is returned
// as-is.
func (s *Server) startSessionHandler(c *echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if req.ExamID <= 0 || req.ParticipantID <= 0 || req.SpecID <= 0 {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest,
			"exam_id, participant_id and spec_id are required")
	}

	sess, err := s.orch.StartSession(c.Request().Context(), models.StartSessionRequest{
		ExamID:        req.ExamID,
		ParticipantID: req.ParticipantID,
		SpecID:        req.SpecID,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, newSessionResponse(sess))
}

// sessionMessageHandler handles POST /api/v1/sessions/:id/messages, the
// session-scoped mirror of the chat message endpoint used by the exam core.
func (s *Server) sessionMessageHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	var req SessionMessageRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if req.Message == "" {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "message is required")
	}
	if len(req.Message) > maxMessageLen {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "message exceeds maximum length")
	}

	result, err := s.orch.ProcessMessage(c.Request().Context(), services.ProcessMessageRequest{
		SessionID: id,
		Message:   req.Message,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// sessionSubmitHandler handles POST /api/v1/sessions/:id/submit.
func (s *Server) sessionSubmitHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	var req SessionSubmitRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}
	if req.Code == "" {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "code is required")
	}

	result, err := s.orch.SubmitCode(c.Request().Context(), services.SubmitCodeRequest{
		SessionID: id,
		Code:      req.Code,
		Language:  req.Language,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// sessionStateHandler handles GET /api/v1/sessions/:id/state.
func (s *Server) sessionStateHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	state, err := s.orch.GetSessionState(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// sessionScoresHandler handles GET /api/v1/sessions/:id/scores.
func (s *Server) sessionScoresHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	scores, err := s.orch.GetSessionScores(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, scores)
}

// sessionHistoryHandler handles GET /api/v1/sessions/:id/history.
func (s *Server) sessionHistoryHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	history, err := s.orch.GetConversationHistory(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, HistoryResponse{SessionID: id, Messages: history})
}

// sessionTurnsHandler handles GET /api/v1/sessions/:id/turns.
func (s *Server) sessionTurnsHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	turns, err := s.orch.GetTurnLogs(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, TurnLogsResponse{SessionID: id, Turns: turns})
}

// sessionTokensHandler handles GET /api/v1/sessions/:id/tokens.
func (s *Server) sessionTokensHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	stats, err := s.sess.GetTokenStats(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// clearSessionHandler handles DELETE /api/v1/sessions/:id. It closes the
// session and drops every cached record; durable rows stay for reporting.
func (s *Server) clearSessionHandler(c *echo.Context) error {
	id, ok := sessionID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid session id")
	}
	if err := s.orch.ClearSession(c.Request().Context(), id); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ClearResponse{SessionID: id, Cleared: true})
}
