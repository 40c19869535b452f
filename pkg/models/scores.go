package models

import "math"

// Final score weights: prompt quality, code performance, code correctness.
const (
	WeightPrompt      = 0.25
	WeightPerformance = 0.25
	WeightCorrectness = 0.50
)

// FinalScores is the submission-time score record returned to the caller and
// persisted alongside the submission.
type FinalScores struct {
	PromptScore      float64 `json:"prompt_score"`
	PerformanceScore float64 `json:"performance_score"`
	CorrectnessScore float64 `json:"correctness_score"`
	TotalScore       float64 `json:"total_score"`
	Grade            string  `json:"grade"`
}

// HolisticFlowEvaluation is the structured output of the cross-turn chaining
// evaluator. All sub-scores are in [0,100].
type HolisticFlowEvaluation struct {
	OverallFlowScore     float64 `json:"overall_flow_score"`
	ProblemDecomposition float64 `json:"problem_decomposition"`
	FeedbackIntegration  float64 `json:"feedback_integration"`
	StrategicExploration float64 `json:"strategic_exploration"`
	Analysis             string  `json:"analysis"`
}

// Grade maps a total score onto the A–F band table.
func Grade(total float64) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "F"
	}
}

// ClampScore clips v into [0,100].
func ClampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// Round2 rounds to two decimal places, matching the NUMERIC(5,2) score columns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
