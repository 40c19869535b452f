// Package turneval scores a single conversation turn of an exam session.
// The participant prompt is classified by intent, measured against
// quantitative quality heuristics, and judged by a model against the rubric
// set for that intent. The output is a TurnLog carrying five rubric scores
// and a weighted turn score.
package turneval

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
)

// Canonical rubric criteria. Every turn is scored on all five; the weights
// shift with the prompt's intent.
const (
	CriterionClarity   = "clarity"
	CriterionRelevance = "problem_relevance"
	CriterionExamples  = "examples"
	CriterionRules     = "rules"
	CriterionContext   = "context"
)

// canonicalCriteria fixes the rubric order in logs and scores.
var canonicalCriteria = []string{
	CriterionClarity,
	CriterionRelevance,
	CriterionExamples,
	CriterionRules,
	CriterionContext,
}

// Input is one turn to evaluate.
type Input struct {
	SessionID string
	Turn      int
	// HumanMessage is the participant prompt, AIMessage the tutor reply.
	HumanMessage string
	AIMessage    string
	// PreviousContext is the tutor reply of the turn before, empty on turn 1.
	PreviousContext string
	Problem         *problems.Context
	// GuardrailFailed marks a blocked prompt; such turns score zero without
	// any model calls.
	GuardrailFailed  bool
	GuardrailMessage string
}

// Outcome is the full evaluation of one turn.
type Outcome struct {
	Log        models.TurnLog
	Evaluation models.TurnEvaluation
	Usage      models.TokenUsage
}

// Evaluator scores turns using an LLM judge anchored by quantitative
// heuristics.
type Evaluator struct {
	llm      llm.Client
	registry *prompts.Registry
	logger   *slog.Logger
}

// NewEvaluator wires an evaluator to its model client and prompt registry.
func NewEvaluator(client llm.Client, registry *prompts.Registry) *Evaluator {
	return &Evaluator{
		llm:      client,
		registry: registry,
		logger:   slog.With("component", "turn_evaluator"),
	}
}

// Evaluate scores one turn. Model failures degrade to heuristic scores; the
// only error returned is a dead context, so callers can treat any error as
// cancellation.
func (e *Evaluator) Evaluate(ctx context.Context, in Input) (*Outcome, error) {
	if in.GuardrailFailed {
		return e.zeroOutcome(in), nil
	}

	var usage models.TokenUsage
	metrics := ComputeMetrics(in.HumanMessage, problemAlgorithms(in.Problem))

	intent, confidence, classifyUsage := e.classifyIntent(ctx, in)
	usage.Add(classifyUsage)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	judged, judgeUsage, err := e.judgeRubrics(ctx, in, intent, metrics)
	usage.Add(judgeUsage)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.logger.Warn("Rubric judgement failed, falling back to heuristics",
			"session_id", in.SessionID, "turn", in.Turn, "error", err)
		judged = heuristicJudgement(metrics)
	}

	rubrics := canonicalRubrics(judged.Rubrics, metrics)
	score := weightedScore(intent, rubrics)

	summary, summaryUsage := e.summarize(ctx, in)
	usage.Add(summaryUsage)

	log := models.TurnLog{
		SessionID:      in.SessionID,
		Turn:           in.Turn,
		Intent:         intent,
		Confidence:     confidence,
		Rubrics:        rubrics,
		FinalReasoning: judged.FinalReasoning,
		TurnScore:      score,
		AnswerSummary:  summary,
		EvaluatedAt:    time.Now().UTC(),
	}

	e.logger.Info("Turn evaluated",
		"session_id", in.SessionID,
		"turn", in.Turn,
		"intent", intent,
		"turn_score", score)

	return &Outcome{
		Log: log,
		Evaluation: models.TurnEvaluation{
			FinalReasoning: judged.FinalReasoning,
			Rubrics:        rubrics,
		},
		Usage: usage,
	}, nil
}

// zeroOutcome builds the score-0 record for a guardrail-blocked turn. Intent
// is still resolved from the prompt shape so the log stays informative.
func (e *Evaluator) zeroOutcome(in Input) *Outcome {
	reason := in.GuardrailMessage
	if reason == "" {
		reason = "Prompt was blocked by the exam guardrails."
	}

	rubrics := make([]models.Rubric, len(canonicalCriteria))
	for i, name := range canonicalCriteria {
		rubrics[i] = models.Rubric{Name: name, Score: 0, Reasoning: reason}
	}

	log := models.TurnLog{
		SessionID:         in.SessionID,
		Turn:              in.Turn,
		Intent:            ResolveIntent(in.Turn, in.HumanMessage, nil),
		Confidence:        0,
		IsGuardrailFailed: true,
		Rubrics:           rubrics,
		FinalReasoning:    reason,
		TurnScore:         0,
		EvaluatedAt:       time.Now().UTC(),
	}

	e.logger.Info("Turn scored zero for guardrail failure",
		"session_id", in.SessionID, "turn", in.Turn)

	return &Outcome{
		Log:        log,
		Evaluation: models.TurnEvaluation{FinalReasoning: reason, Rubrics: rubrics},
	}
}

func problemAlgorithms(p *problems.Context) []string {
	if p == nil {
		return nil
	}
	return p.Guide.Algorithms
}

func problemTitle(p *problems.Context) string {
	if p == nil || p.BasicInfo.Title == "" {
		return "unknown problem"
	}
	return p.BasicInfo.Title
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
