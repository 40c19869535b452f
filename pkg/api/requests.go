package api

// ChatMessageRequest is the body for POST /api/v1/chat/message.
type ChatMessageRequest struct {
	SessionID int    `json:"session_id"`
	Message   string `json:"message"`
}

// ChatSubmitRequest is the body for POST /api/v1/chat/submit.
type ChatSubmitRequest struct {
	SessionID int    `json:"session_id"`
	Code      string `json:"code"`
	Language  string `json:"language"`
}

// StartSessionRequest is the body for POST /api/v1/sessions/start.
type StartSessionRequest struct {
	ExamID        int `json:"exam_id"`
	ParticipantID int `json:"participant_id"`
	SpecID        int `json:"spec_id"`
}

// SessionMessageRequest is the body for POST /api/v1/sessions/:id/messages,
// the session-scoped mirror of the chat message endpoint.
type SessionMessageRequest struct {
	Message string `json:"message"`
}

// SessionSubmitRequest is the body for POST /api/v1/sessions/:id/submit.
type SessionSubmitRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
