package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

// flowEvaluation is the structured output of the cross-turn strategy judge.
type flowEvaluation struct {
	OverallFlowScore     float64 `json:"overall_flow_score" jsonschema:"required,description=Overall prompt-chaining quality between 0 and 100"`
	ProblemDecomposition float64 `json:"problem_decomposition" jsonschema:"description=How well the participant broke the problem into steps (0-100)"`
	FeedbackIntegration  float64 `json:"feedback_integration" jsonschema:"description=How well tutor feedback was folded into later prompts (0-100)"`
	StrategicExploration float64 `json:"strategic_exploration" jsonschema:"description=Breadth and deliberateness of explored approaches (0-100)"`
	Analysis             string  `json:"analysis" jsonschema:"required,description=A short analysis of the session strategy"`
}

// flowLogEntry is one per-turn record fed to the strategy judge.
type flowLogEntry struct {
	Turn          int             `json:"turn"`
	Intent        string          `json:"intent,omitempty"`
	PromptSummary string          `json:"prompt_summary,omitempty"`
	LLMReasoning  string          `json:"llm_reasoning,omitempty"`
	AISummary     string          `json:"ai_summary,omitempty"`
	Score         float64         `json:"score"`
	Rubrics       []models.Rubric `json:"rubrics,omitempty"`
}

// evalHolisticFlow grades how the participant chained prompts across the
// session, from the structured turn logs the guard produced. Failures never
// abort the submission: the score stays unset and the error is recorded.
func (e *Engine) evalHolisticFlow(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeEvalHolisticFlow, "session_id", s.SessionID)

	entries := e.collectFlowLogs(ctx, s)
	if len(entries) == 0 {
		log.Warn("No turn logs to analyze")
		return &graph.Delta{
			HolisticFlowScore:    graph.Float64Ptr(0),
			HolisticFlowAnalysis: graph.StringPtr("턴 로그가 없어 평가할 수 없습니다."),
		}, nil
	}

	logsJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("Holistic flow 평가 실패: " + err.Error()),
		}, nil
	}

	problem := e.resolveProblem(ctx, s.SpecID)
	prompt, err := e.prompts.Render("holistic_flow", map[string]string{
		"problem_title": problem.BasicInfo.Title,
		"turn_logs":     string(logsJSON),
	})
	if err != nil {
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("Holistic flow 평가 실패: " + err.Error()),
		}, nil
	}

	result, usage, err := llm.GenerateStructured[flowEvaluation](ctx, e.eval, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: "Evaluate the session flow."}},
	})
	if err != nil {
		log.Error("Flow evaluation failed", "error", err)
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("Holistic flow 평가 실패: " + err.Error()),
			EvalTokens:   &usage,
		}, nil
	}

	score := models.Round2(models.ClampScore(result.OverallFlowScore))
	log.Info("Flow evaluated",
		"flow_score", score,
		"decomposition", result.ProblemDecomposition,
		"feedback_integration", result.FeedbackIntegration,
		"exploration", result.StrategicExploration,
		"turns", len(entries))

	return &graph.Delta{
		HolisticFlowScore:    graph.Float64Ptr(score),
		HolisticFlowAnalysis: graph.StringPtr(result.Analysis),
		EvalTokens:           &usage,
	}, nil
}

// collectFlowLogs assembles the structured per-turn records. Cached turn
// logs are preferred since they carry the answer summary; turns without one
// fall back to the in-state evaluation maps the guard merged.
func (e *Engine) collectFlowLogs(ctx context.Context, s *graph.State) []flowLogEntry {
	prompts := userPromptsByTurn(s)

	var entries []flowLogEntry
	for t := 1; t < s.CurrentTurn; t++ {
		if entry, ok := e.cachedFlowEntry(ctx, s.SessionID, t); ok {
			entry.PromptSummary = prompts[t]
			entries = append(entries, entry)
			continue
		}

		key := models.TurnKey(t)
		score, hasScore := s.TurnScores[key]
		eval, hasEval := s.TurnEvaluations[key]
		if !hasScore && !hasEval {
			continue
		}
		entries = append(entries, flowLogEntry{
			Turn:          t,
			PromptSummary: prompts[t],
			LLMReasoning:  eval.FinalReasoning,
			Score:         score.TurnScore,
			Rubrics:       eval.Rubrics,
		})
	}
	return entries
}

func (e *Engine) cachedFlowEntry(ctx context.Context, sessionID string, turn int) (flowLogEntry, bool) {
	if e.cache == nil {
		return flowLogEntry{}, false
	}
	var tl models.TurnLog
	if err := e.cache.GetJSON(ctx, cache.TurnLogKey(sessionID, turn), &tl); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			e.logger.Warn("Turn log read failed", "session_id", sessionID, "turn", turn, "error", err)
		}
		return flowLogEntry{}, false
	}
	return flowLogEntry{
		Turn:         turn,
		Intent:       string(tl.Intent),
		LLMReasoning: tl.FinalReasoning,
		AISummary:    tl.AnswerSummary,
		Score:        tl.TurnScore,
		Rubrics:      tl.Rubrics,
	}, true
}

// userPromptsByTurn maps turn → truncated participant prompt.
func userPromptsByTurn(s *graph.State) map[int]string {
	const maxChars = 200
	prompts := map[int]string{}
	for _, env := range s.Messages {
		if env.Role != models.RoleUser || env.Turn == 0 || env.IsEmpty() {
			continue
		}
		text := strings.TrimSpace(env.Content)
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars]) + "..."
		}
		prompts[env.Turn] = text
	}
	return prompts
}
