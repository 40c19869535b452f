package models

// StartSessionRequest opens (or resumes) the chat session of one participant
// working on one problem during an exam.
type StartSessionRequest struct {
	ExamID        int `json:"exam_id"`
	ParticipantID int `json:"participant_id"`
	SpecID        int `json:"spec_id"`
}

// SaveMessageRequest persists one chat message. Turn 0 lets the store assign
// the next turn number atomically server-side; a positive turn makes the save
// idempotent per (session, turn, role).
type SaveMessageRequest struct {
	SessionID  int                    `json:"session_id"`
	Turn       int                    `json:"turn,omitempty"`
	Role       Role                   `json:"role"`
	Content    string                 `json:"content"`
	TokenCount int                    `json:"token_count,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// SaveEvaluationRequest persists one judged score row. Turn is nil for
// holistic (whole-session) evaluations.
type SaveEvaluationRequest struct {
	SessionID int                    `json:"session_id"`
	Turn      *int                   `json:"turn,omitempty"`
	Type      EvaluationType         `json:"evaluation_type"`
	NodeName  string                 `json:"node_name,omitempty"`
	Score     float64                `json:"score"`
	Analysis  string                 `json:"analysis,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// CreateSubmissionRequest snapshots a participant's final code for grading.
type CreateSubmissionRequest struct {
	SessionID     int    `json:"session_id"`
	ExamID        int    `json:"exam_id"`
	ParticipantID int    `json:"participant_id"`
	SpecID        int    `json:"spec_id"`
	Code          string `json:"code"`
	Language      string `json:"language"`
}

// RunRecord is one per-test-case sandbox outcome attached to a submission.
type RunRecord struct {
	CaseIndex     int     `json:"case_index"`
	Verdict       string  `json:"verdict"`
	Passed        bool    `json:"passed"`
	Output        string  `json:"output,omitempty"`
	Stderr        string  `json:"stderr,omitempty"`
	ExecutionTime float64 `json:"execution_time"`
	MemoryKB      int     `json:"memory_kb"`
	ExitCode      int     `json:"exit_code"`
}

// SaveScoreRequest persists the final grading record of a submission.
// PromptScore is nil when no prompt evaluation succeeded.
type SaveScoreRequest struct {
	SubmissionID     int                    `json:"submission_id"`
	SessionID        int                    `json:"session_id"`
	PromptScore      *float64               `json:"prompt_score,omitempty"`
	PerformanceScore float64                `json:"performance_score"`
	CorrectnessScore float64                `json:"correctness_score"`
	TotalScore       float64                `json:"total_score"`
	Grade            string                 `json:"grade"`
	Rubric           map[string]interface{} `json:"rubric,omitempty"`
}
