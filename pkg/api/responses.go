package api

import (
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
)

// SessionResponse is the HTTP view of a chat session.
type SessionResponse struct {
	SessionID     int        `json:"session_id"`
	ExamID        int        `json:"exam_id"`
	ParticipantID int        `json:"participant_id"`
	SpecID        int        `json:"spec_id"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	TotalTokens   int        `json:"total_tokens"`
}

func newSessionResponse(sess *ent.PromptSession) SessionResponse {
	return SessionResponse{
		SessionID:     sess.ID,
		ExamID:        sess.ExamID,
		ParticipantID: sess.ParticipantID,
		SpecID:        sess.SpecID,
		StartedAt:     sess.StartedAt,
		EndedAt:       sess.EndedAt,
		TotalTokens:   sess.TotalTokens,
	}
}

// HistoryResponse is the HTTP view of a session's conversation history.
type HistoryResponse struct {
	SessionID int               `json:"session_id"`
	Messages  []models.Envelope `json:"messages"`
}

// TurnLogsResponse lists the per-turn evaluation logs of a session.
type TurnLogsResponse struct {
	SessionID int              `json:"session_id"`
	Turns     []models.TurnLog `json:"turns"`
}

// ClearResponse acknowledges DELETE /api/v1/sessions/:id.
type ClearResponse struct {
	SessionID int  `json:"session_id"`
	Cleared   bool `json:"cleared"`
}

// ProblemResponse is the participant-facing view of a problem. Solution code,
// hidden test cases, keyword lists, and the tutoring guide never leave the
// server; only the statement, limits, and sample tests are served.
type ProblemResponse struct {
	SpecID      int                  `json:"spec_id"`
	BasicInfo   problems.BasicInfo   `json:"basic_info"`
	Constraints problems.Constraints `json:"constraints"`
	SampleTests []problems.TestCase  `json:"sample_tests,omitempty"`
}

func newProblemResponse(pc *problems.Context) ProblemResponse {
	return ProblemResponse{
		SpecID:      pc.SpecID,
		BasicInfo:   pc.BasicInfo,
		Constraints: pc.Constraints,
		SampleTests: pc.SampleTests(),
	}
}

// HealthCheck is one named dependency probe inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]HealthCheck `json:"checks"`
}
