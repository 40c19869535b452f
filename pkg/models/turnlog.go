package models

import (
	"fmt"
	"time"
)

// Rubric is one scored dimension of a per-turn evaluation.
type Rubric struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// TurnLog is the per-turn evaluation artifact produced by the turn evaluator:
// classified intent, rubric scores, reasoning, and the weighted turn score.
type TurnLog struct {
	SessionID         string     `json:"session_id"`
	Turn              int        `json:"turn"`
	Intent            CodeIntent `json:"intent"`
	Confidence        float64    `json:"confidence"`
	IsGuardrailFailed bool       `json:"is_guardrail_failed"`
	Rubrics           []Rubric   `json:"rubrics"`
	FinalReasoning    string     `json:"final_reasoning"`
	TurnScore         float64    `json:"turn_score"`
	AnswerSummary     string     `json:"answer_summary"`
	EvaluatedAt       time.Time  `json:"evaluated_at"`
}

// TurnScore is the compact per-turn entry merged into session state.
type TurnScore struct {
	TurnScore float64 `json:"turn_score"`
}

// TurnEvaluation is the detailed per-turn entry merged into session state.
type TurnEvaluation struct {
	FinalReasoning string   `json:"final_reasoning"`
	Rubrics        []Rubric `json:"rubrics"`
}

// TurnKey formats the state-map key for a turn ("turn_3").
func TurnKey(turn int) string {
	return fmt.Sprintf("turn_%d", turn)
}

// ParseTurnKey recovers the turn number from a state-map key produced by
// TurnKey. Returns false when the key does not match the expected shape.
func ParseTurnKey(key string) (int, bool) {
	var turn int
	if _, err := fmt.Sscanf(key, "turn_%d", &turn); err != nil {
		return 0, false
	}
	return turn, true
}
