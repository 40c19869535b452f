package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/turneval"
)

// turnPair is one reconstructed exchange: the participant prompt, the tutor
// reply, and the tutor reply of the turn before it.
type turnPair struct {
	turn     int
	human    string
	ai       string
	previous string
}

// evalTurnGuard runs on the submission path and makes sure every completed
// turn has an evaluation before the holistic stages read them. Turns are
// reconstructed from the state's message list, evaluated in parallel under
// the concurrency cap, and merged into the per-turn score maps. A turn whose
// evaluation fails scores zero rather than failing the submission.
func (e *Engine) evalTurnGuard(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeEvalTurnGuard, "session_id", s.SessionID)

	pairs := e.reconstructTurns(ctx, s)
	if len(pairs) == 0 {
		log.Warn("No complete turns to evaluate", "current_turn", s.CurrentTurn)
		return nil, nil
	}
	log.Info("Evaluating turns", "count", len(pairs), "parallelism", e.opts.TurnEvalParallelism)

	problem := e.resolveProblem(ctx, s.SpecID)

	outcomes := make([]*turneval.Outcome, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.TurnEvalParallelism)
	for i, pair := range pairs {
		g.Go(func() error {
			out, err := e.turns.Evaluate(gctx, turneval.Input{
				SessionID:       s.SessionID,
				Turn:            pair.turn,
				HumanMessage:    pair.human,
				AIMessage:       pair.ai,
				PreviousContext: pair.previous,
				Problem:         problem,
			})
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				log.Error("Turn evaluation failed", "turn", pair.turn, "error", err)
				out = failedTurnOutcome(s.SessionID, pair.turn, err)
			}
			outcomes[i] = out
			e.cacheTurnLog(gctx, out.Log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Turn guard aborted", "error", err)
		return &graph.Delta{
			ErrorMessage: graph.StringPtr("턴 평가 가드 오류: " + err.Error()),
		}, nil
	}

	scores := make(map[string]models.TurnScore, len(outcomes))
	evals := make(map[string]models.TurnEvaluation, len(outcomes))
	var usage models.TokenUsage
	for _, out := range outcomes {
		key := models.TurnKey(out.Log.Turn)
		scores[key] = models.TurnScore{TurnScore: out.Log.TurnScore}
		evals[key] = out.Evaluation
		usage.Add(out.Usage)
	}

	log.Info("Turn guard complete", "evaluated", len(scores))

	return &graph.Delta{
		TurnScores:      scores,
		TurnEvaluations: evals,
		EvalTokens:      &usage,
	}, nil
}

// reconstructTurns rebuilds the evaluable exchanges for turns
// 1..current_turn-1 (the submission turn itself carries no tutor reply).
// The per-envelope turn tag is the primary source; the cached turn mapping
// covers envelopes that lost their tag, e.g. entries restored from an older
// checkpoint. Turns missing either side of the exchange are dropped.
func (e *Engine) reconstructTurns(ctx context.Context, s *graph.State) []turnPair {
	byIndex := e.loadTurnMapping(ctx, s.SessionID)

	type exchange struct{ human, ai string }
	turns := map[int]*exchange{}
	for idx, env := range s.Messages {
		turn := env.Turn
		if turn == 0 {
			turn = byIndex[idx]
		}
		if turn == 0 || env.IsEmpty() {
			continue
		}
		ex := turns[turn]
		if ex == nil {
			ex = &exchange{}
			turns[turn] = ex
		}
		switch env.Role {
		case models.RoleUser:
			ex.human = env.Content
		case models.RoleAssistant:
			ex.ai = env.Content
		}
	}

	var pairs []turnPair
	for t := 1; t < s.CurrentTurn; t++ {
		ex := turns[t]
		if ex == nil || ex.human == "" || ex.ai == "" {
			e.logger.Warn("Turn incomplete, skipping evaluation",
				"session_id", s.SessionID, "turn", t)
			continue
		}
		var previous string
		if prev := turns[t-1]; prev != nil {
			previous = prev.ai
		}
		pairs = append(pairs, turnPair{turn: t, human: ex.human, ai: ex.ai, previous: previous})
	}
	return pairs
}

// loadTurnMapping flattens the cached turn mapping into index → turn.
func (e *Engine) loadTurnMapping(ctx context.Context, sessionID string) map[int]int {
	byIndex := map[int]int{}
	if e.cache == nil {
		return byIndex
	}

	mapping := models.TurnMapping{}
	if err := e.cache.GetJSON(ctx, cache.TurnMappingKey(sessionID), &mapping); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			e.logger.Warn("Turn mapping read failed", "session_id", sessionID, "error", err)
		}
		return byIndex
	}

	for key, span := range mapping {
		var turn int
		if _, err := fmt.Sscanf(key, "turn_%d", &turn); err != nil || turn <= 0 {
			continue
		}
		for idx := span[0]; idx <= span[1]; idx++ {
			byIndex[idx] = turn
		}
	}
	return byIndex
}

// failedTurnOutcome is the score-0 record for a turn whose evaluation threw.
func failedTurnOutcome(sessionID string, turn int, err error) *turneval.Outcome {
	reason := "평가 실패: " + err.Error()
	return &turneval.Outcome{
		Log: models.TurnLog{
			SessionID:      sessionID,
			Turn:           turn,
			FinalReasoning: reason,
			TurnScore:      0,
			EvaluatedAt:    time.Now().UTC(),
		},
		Evaluation: models.TurnEvaluation{FinalReasoning: reason},
	}
}

// cacheTurnLog writes one evaluated turn to the cache for the holistic flow
// reader and the session-state API. Best effort.
func (e *Engine) cacheTurnLog(ctx context.Context, log models.TurnLog) {
	if e.cache == nil {
		return
	}
	key := cache.TurnLogKey(log.SessionID, log.Turn)
	if err := e.cache.SetJSON(ctx, key, log); err != nil {
		e.logger.Warn("Turn log write failed",
			"session_id", log.SessionID, "turn", log.Turn, "error", err)
	}
}
