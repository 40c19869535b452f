package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
)

// codeQualityEvaluation is the structured output of the model-based code
// review used when the sandbox cannot produce a verdict.
type codeQualityEvaluation struct {
	Correctness   float64 `json:"correctness" jsonschema:"required,description=Logic correctness between 0 and 100"`
	Efficiency    float64 `json:"efficiency" jsonschema:"required,description=Algorithmic efficiency between 0 and 100"`
	Readability   float64 `json:"readability" jsonschema:"description=Code clarity between 0 and 100"`
	BestPractices float64 `json:"best_practices" jsonschema:"description=Adherence to language best practices between 0 and 100"`
	Feedback      string  `json:"feedback" jsonschema:"description=Short review notes"`
}

// Fallback sandbox limits when the problem context carries none.
const (
	defaultCPUTimeLimitSec = 1.0
	defaultMemoryLimitKB   = 131072
)

// evalCodePerformance scores how efficiently the submitted code runs: the
// sandbox measurements against the problem limits when execution succeeds,
// a model review of the code otherwise. Code that passes nothing scores zero.
func (e *Engine) evalCodePerformance(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeEvalCodePerformance, "session_id", s.SessionID)

	if strings.TrimSpace(s.CodeContent) == "" {
		log.Debug("No code submitted, skipping performance evaluation")
		return nil, nil
	}
	problem := e.resolveProblem(ctx, s.SpecID)

	result, taskID, err := e.runSandbox(ctx, s, problem)
	if err == nil && result.Executed() {
		score := performanceScore(result, problem)
		log.Info("Performance measured",
			"score", score,
			"time_sec", result.ExecutionTime,
			"memory_bytes", result.MemoryUsed,
			"passed", result.Passed,
			"total", result.Total)
		return &graph.Delta{
			CodePerformanceScore: graph.Float64Ptr(score),
			JudgeTaskID:          graph.StringPtr(taskID),
		}, nil
	}

	log.Warn("Sandbox unavailable for performance, reviewing with model",
		"skip_reason", skipReason(result, err))

	quality, usage, err := e.reviewCodeQuality(ctx, s, problem)
	if err != nil {
		log.Error("Performance review failed", "error", err)
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("성능 평가 실패: " + err.Error()),
			EvalTokens:   &usage,
		}, nil
	}

	score := models.Round2(models.ClampScore(
		quality.Efficiency*0.6 + quality.Correctness*0.2 + quality.BestPractices*0.2))
	log.Info("Performance estimated from review", "score", score)
	return &graph.Delta{
		CodePerformanceScore: graph.Float64Ptr(score),
		EvalTokens:           &usage,
	}, nil
}

// evalCodeCorrectness scores the submission against the problem test cases:
// the per-case pass ratio when the sandbox ran, a model review otherwise.
// A clean run against a problem with no test cases earns partial credit.
func (e *Engine) evalCodeCorrectness(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeEvalCodeCorrectness, "session_id", s.SessionID)

	if strings.TrimSpace(s.CodeContent) == "" {
		log.Debug("No code submitted, skipping correctness evaluation")
		return nil, nil
	}
	problem := e.resolveProblem(ctx, s.SpecID)

	result, taskID, err := e.sandboxResult(ctx, s, problem)
	if err == nil && result.Executed() {
		score := correctnessScore(result)
		log.Info("Correctness measured",
			"score", score,
			"passed", result.Passed,
			"total", result.Total,
			"verdict", result.Status)
		return &graph.Delta{
			CodeCorrectnessScore: graph.Float64Ptr(score),
			JudgeTaskID:          graph.StringPtr(taskID),
		}, nil
	}

	log.Warn("Sandbox unavailable for correctness, reviewing with model",
		"skip_reason", skipReason(result, err))

	quality, usage, err := e.reviewCodeQuality(ctx, s, problem)
	if err != nil {
		log.Error("Correctness review failed", "error", err)
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("정확성 평가 실패: " + err.Error()),
			EvalTokens:   &usage,
		}, nil
	}

	score := models.Round2(models.ClampScore(
		quality.Correctness*0.7 + quality.Efficiency*0.2 + quality.BestPractices*0.1))
	log.Info("Correctness estimated from review", "score", score)
	return &graph.Delta{
		CodeCorrectnessScore: graph.Float64Ptr(score),
		EvalTokens:           &usage,
	}, nil
}

// sandboxResult returns the sandbox verdict for the current submission. The
// performance node executes the code; later nodes reuse its saved result
// through the task id so one submission runs in the sandbox once.
func (e *Engine) sandboxResult(ctx context.Context, s *graph.State, problem *problems.Context) (*judge.Result, string, error) {
	if s.JudgeTaskID != "" && e.queue != nil {
		result, err := e.queue.Result(ctx, s.JudgeTaskID)
		if err == nil && result != nil {
			return result, s.JudgeTaskID, nil
		}
	}
	return e.runSandbox(ctx, s, problem)
}

// runSandbox enqueues the submission and waits for its verdict. The task id
// is returned even on failure so the caller can record what was enqueued.
func (e *Engine) runSandbox(ctx context.Context, s *graph.State, problem *problems.Context) (*judge.Result, string, error) {
	if e.queue == nil {
		return nil, "", errors.New("no execution queue configured")
	}

	limitSec, limitKB := sandboxLimits(problem)
	lang := s.CodeLanguage
	if lang == "" {
		lang = models.LangPython
	}

	task := &judge.Task{
		TaskID:        uuid.New().String(),
		Code:          s.CodeContent,
		Language:      lang,
		TestCases:     problem.TestCases,
		CPUTimeLimit:  limitSec,
		MemoryLimitKB: limitKB,
		Meta:          map[string]string{"session_id": s.SessionID},
	}
	taskID, err := e.queue.Enqueue(ctx, task)
	if err != nil {
		return nil, "", fmt.Errorf("enqueueing execution task: %w", err)
	}
	result, err := judge.Await(ctx, e.queue, taskID, e.opts.ResultPollInterval, e.opts.ResultMaxWait)
	return result, taskID, err
}

// reviewCodeQuality asks the eval model to estimate how the code would fare.
func (e *Engine) reviewCodeQuality(ctx context.Context, s *graph.State, problem *problems.Context) (*codeQualityEvaluation, models.TokenUsage, error) {
	lang := s.CodeLanguage
	if lang == "" {
		lang = models.LangPython
	}
	prompt, err := e.prompts.Render("code_eval_fallback", map[string]string{
		"problem_title":       problem.BasicInfo.Title,
		"problem_description": problemBrief(problem),
		"language":            lang,
		"code":                s.CodeContent,
	})
	if err != nil {
		return nil, models.TokenUsage{}, err
	}

	return llm.GenerateStructured[codeQualityEvaluation](ctx, e.eval, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: "Review the code."}},
	})
}

// performanceScore combines time and memory headroom against the problem
// limits, weighted 60/40. Code that passed no test case scores zero.
func performanceScore(result *judge.Result, problem *problems.Context) float64 {
	if result.PassRatio() == 0 {
		return 0
	}
	limitSec, limitKB := sandboxLimits(problem)
	timeScore := models.ClampScore(100 * (1 - result.ExecutionTime/limitSec))
	memKB := float64(result.MemoryUsed) / 1024
	memScore := models.ClampScore(100 * (1 - memKB/float64(limitKB)))
	return models.Round2(0.6*timeScore + 0.4*memScore)
}

// correctnessScore is the per-case pass ratio on a 0-100 scale. A successful
// run with no recorded cases means the problem has no test data; the code
// ran clean but correctness is unverifiable, so it earns half marks.
func correctnessScore(result *judge.Result) float64 {
	if result.Total > 0 {
		return models.Round2(100 * result.PassRatio())
	}
	if result.Status == judge.VerdictSuccess {
		return 50
	}
	return 0
}

// sandboxLimits extracts the problem resource limits in judge units.
func sandboxLimits(problem *problems.Context) (float64, int) {
	limitSec := defaultCPUTimeLimitSec
	if problem.Constraints.TimeLimitMS > 0 {
		limitSec = float64(problem.Constraints.TimeLimitMS) / 1000
	}
	limitKB := defaultMemoryLimitKB
	if problem.Constraints.MemoryLimitKB > 0 {
		limitKB = problem.Constraints.MemoryLimitKB
	}
	return limitSec, limitKB
}

// skipReason describes why the sandbox verdict was unusable.
func skipReason(result *judge.Result, err error) string {
	if err != nil {
		return err.Error()
	}
	if result == nil {
		return "no result"
	}
	if result.Error != "" {
		return result.Error
	}
	return string(result.Status)
}
