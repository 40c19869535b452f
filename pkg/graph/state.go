// Package graph implements the typed state graph the evaluation engine runs
// on: a shared session state record, nodes that return partial updates, merge
// semantics per field, conditional routing, and checkpointing with resume.
package graph

import (
	"github.com/examkit/proctor/pkg/models"
)

// StateVersion tags serialized state envelopes so cached snapshots from older
// builds can be detected on load.
const StateVersion = 1

// State is the shared record every node reads and updates. It lives in the
// cache between requests and is checkpointed at node boundaries.
type State struct {
	Version int `json:"version"`

	SessionID     string `json:"session_id"`
	ExamID        int    `json:"exam_id"`
	ParticipantID int    `json:"participant_id"`
	SpecID        int    `json:"spec_id"`

	Messages    []models.Envelope `json:"messages"`
	CurrentTurn int               `json:"current_turn"`

	HumanMessage string `json:"human_message"`
	AIMessage    string `json:"ai_message"`

	IntentStatus      models.IntentStatus  `json:"intent_status"`
	IsGuardrailFailed bool                 `json:"is_guardrail_failed"`
	GuardrailMessage  string               `json:"guardrail_message"`
	GuideStrategy     models.GuideStrategy `json:"guide_strategy"`
	Keywords          []string             `json:"keywords"`

	WriterStatus models.WriterStatus `json:"writer_status"`
	WriterError  string              `json:"writer_error"`

	IsSubmitted  bool   `json:"is_submitted"`
	CodeContent  string `json:"code_content"`
	CodeLanguage string `json:"code_language"`
	JudgeTaskID  string `json:"judge_task_id"`

	TurnScores      map[string]models.TurnScore      `json:"turn_scores"`
	TurnEvaluations map[string]models.TurnEvaluation `json:"turn_evaluations"`

	HolisticFlowScore    *float64            `json:"holistic_flow_score"`
	HolisticFlowAnalysis string              `json:"holistic_flow_analysis"`
	AggregateTurnScore   *float64            `json:"aggregate_turn_score"`
	CodePerformanceScore *float64            `json:"code_performance_score"`
	CodeCorrectnessScore *float64            `json:"code_correctness_score"`
	FinalScores          *models.FinalScores `json:"final_scores"`

	MemorySummary string `json:"memory_summary"`

	ErrorMessage string `json:"error_message"`
	RetryCount   int    `json:"retry_count"`

	ChatTokens models.TokenUsage `json:"chat_tokens"`
	EvalTokens models.TokenUsage `json:"eval_tokens"`
}

// NewState returns an empty state with initialized maps.
func NewState() *State {
	return &State{
		Version:         StateVersion,
		Messages:        []models.Envelope{},
		TurnScores:      map[string]models.TurnScore{},
		TurnEvaluations: map[string]models.TurnEvaluation{},
		IntentStatus:    models.IntentPending,
	}
}

// Clone deep-copies the state so a checkpoint is immune to later mutation.
func (s *State) Clone() *State {
	c := *s

	c.Messages = make([]models.Envelope, len(s.Messages))
	copy(c.Messages, s.Messages)

	c.Keywords = append([]string(nil), s.Keywords...)

	c.TurnScores = make(map[string]models.TurnScore, len(s.TurnScores))
	for k, v := range s.TurnScores {
		c.TurnScores[k] = v
	}
	c.TurnEvaluations = make(map[string]models.TurnEvaluation, len(s.TurnEvaluations))
	for k, v := range s.TurnEvaluations {
		ev := v
		ev.Rubrics = append([]models.Rubric(nil), v.Rubrics...)
		c.TurnEvaluations[k] = ev
	}

	c.HolisticFlowScore = clonePtr(s.HolisticFlowScore)
	c.AggregateTurnScore = clonePtr(s.AggregateTurnScore)
	c.CodePerformanceScore = clonePtr(s.CodePerformanceScore)
	c.CodeCorrectnessScore = clonePtr(s.CodeCorrectnessScore)
	if s.FinalScores != nil {
		fs := *s.FinalScores
		c.FinalScores = &fs
	}
	return &c
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// LastAIReply returns the content of the most recent assistant envelope,
// or "" if none exists.
func (s *State) LastAIReply() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == models.RoleAssistant {
			return s.Messages[i].Content
		}
	}
	return ""
}

// RecentMessages returns up to n of the newest envelopes in order.
func (s *State) RecentMessages(n int) []models.Envelope {
	if n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
