package engine

import (
	"context"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/models"
)

// aggregateTurnScores averages every per-turn score the submission guard
// produced into a single prompting-quality number. Guardrail-failed turns
// already carry a zero, so they pull the average down instead of vanishing.
func (e *Engine) aggregateTurnScores(_ context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeAggregateTurnScores, "session_id", s.SessionID)

	if len(s.TurnScores) == 0 {
		log.Warn("No turn scores to aggregate")
		return &graph.Delta{AggregateTurnScore: graph.Float64Ptr(0)}, nil
	}

	var sum float64
	for _, ts := range s.TurnScores {
		sum += ts.TurnScore
	}
	avg := models.Round2(sum / float64(len(s.TurnScores)))

	log.Info("Turn scores aggregated", "turns", len(s.TurnScores), "average", avg)
	return &graph.Delta{AggregateTurnScore: graph.Float64Ptr(avg)}, nil
}

// aggregateFinalScores combines the three evaluation axes into the final
// record: prompt quality (flow + aggregated turns), sandbox performance and
// correctness. An axis whose evaluator never produced a value counts as
// zero rather than blocking the submission.
func (e *Engine) aggregateFinalScores(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeAggregateFinal, "session_id", s.SessionID)

	promptScore := meanOfPresent(s.HolisticFlowScore, s.AggregateTurnScore)
	perfScore := scoreOrZero(s.CodePerformanceScore)
	correctScore := scoreOrZero(s.CodeCorrectnessScore)

	total := models.Round2(models.ClampScore(
		promptScore*e.opts.PromptWeight +
			perfScore*e.opts.PerformanceWeight +
			correctScore*e.opts.CorrectnessWeight))

	final := &models.FinalScores{
		PromptScore:      models.Round2(promptScore),
		PerformanceScore: models.Round2(perfScore),
		CorrectnessScore: models.Round2(correctScore),
		TotalScore:       total,
		Grade:            models.Grade(total),
	}

	if e.cache != nil {
		if err := e.cache.SetJSONTTL(ctx, cache.ScoresKey(s.SessionID), final, e.cache.FinalScoreTTL()); err != nil {
			log.Warn("Final score cache write failed", "error", err)
		}
	}

	log.Info("Final scores aggregated",
		"prompt_score", final.PromptScore,
		"performance_score", final.PerformanceScore,
		"correctness_score", final.CorrectnessScore,
		"total_score", final.TotalScore,
		"grade", final.Grade)

	return &graph.Delta{FinalScores: final}, nil
}

// meanOfPresent averages the non-nil scores; all nil means zero.
func meanOfPresent(scores ...*float64) float64 {
	var sum float64
	var n int
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += *s
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func scoreOrZero(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}
