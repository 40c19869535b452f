package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/pkg/models"
	testdb "github.com/examkit/proctor/test/database"
)

func TestEvaluationService_SaveEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEvaluationService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	t.Run("persists a per-turn row", func(t *testing.T) {
		turn := 1
		eval, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID,
			Turn:      &turn,
			Type:      models.EvalTypeTurn,
			NodeName:  "eval_turn_guard",
			Score:     76.5,
			Analysis:  "제약 조건과 목표를 명확히 제시한 프롬프트",
			Details:   map[string]interface{}{"intent": "HINT_OR_QUERY"},
		})
		require.NoError(t, err)
		require.NotNil(t, eval.Turn)
		assert.Equal(t, 1, *eval.Turn)
		assert.Equal(t, promptevaluation.EvaluationType(models.EvalTypeTurn), eval.EvaluationType)
		assert.Equal(t, "eval_turn_guard", eval.NodeName)
		assert.InDelta(t, 76.5, eval.Score, 0.01)
		assert.Equal(t, "HINT_OR_QUERY", eval.Details["intent"])
		assert.False(t, eval.CreatedAt.IsZero())
	})

	t.Run("replay keeps the original row", func(t *testing.T) {
		turn := 1
		again, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID, Turn: &turn, Type: models.EvalTypeTurn, Score: 99,
		})
		require.NoError(t, err)
		assert.InDelta(t, 76.5, again.Score, 0.01)

		rows, err := service.GetSessionEvaluations(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("holistic rows leave turn unset", func(t *testing.T) {
		flow, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID,
			Type:      models.EvalTypeHolistic,
			NodeName:  "eval_holistic_flow",
			Score:     82.5,
			Analysis:  "점진적으로 구체화된 질문 흐름",
		})
		require.NoError(t, err)
		assert.Nil(t, flow.Turn)

		// Re-submitting the holistic evaluation is idempotent too.
		again, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID, Type: models.EvalTypeHolistic, Score: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, flow.ID, again.ID)
	})

	t.Run("one session carries every evaluation type", func(t *testing.T) {
		perf, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID,
			Type:      models.EvalTypeHolisticPerformance,
			NodeName:  "eval_code_performance",
			Score:     65,
			Details:   map[string]interface{}{"source": "model_review"},
		})
		require.NoError(t, err)
		assert.Nil(t, perf.Turn)

		rows, err := service.GetSessionEvaluations(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			Type: models.EvalTypeTurn, Score: 1,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "session_id")

		_, err = service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID, Score: 1,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "evaluation_type")
	})
}

func TestEvaluationService_GetEvaluations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEvaluationService(client.Client)
	ctx := context.Background()
	sess := startSession(t, client.Client)

	saveTurn := func(turn int, score float64) {
		t.Helper()
		_, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sess.ID, Turn: &turn, Type: models.EvalTypeTurn, Score: score,
		})
		require.NoError(t, err)
	}
	// Turns arrive out of order when a grading pass is retried.
	saveTurn(3, 60)
	saveTurn(1, 80)
	saveTurn(2, 70)
	_, err := service.SaveEvaluation(ctx, models.SaveEvaluationRequest{
		SessionID: sess.ID, Type: models.EvalTypeHolistic, Score: 82.5,
	})
	require.NoError(t, err)

	t.Run("session evaluations put holistic rows last", func(t *testing.T) {
		rows, err := service.GetSessionEvaluations(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, 1, *rows[0].Turn)
		assert.Equal(t, 2, *rows[1].Turn)
		assert.Equal(t, 3, *rows[2].Turn)
		assert.Nil(t, rows[3].Turn)
	})

	t.Run("turn evaluations exclude holistic rows", func(t *testing.T) {
		rows, err := service.GetTurnEvaluations(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, want := range []float64{80, 70, 60} {
			assert.Equal(t, i+1, *rows[i].Turn)
			assert.InDelta(t, want, rows[i].Score, 0.01)
		}
	})

	t.Run("unknown session returns no rows", func(t *testing.T) {
		rows, err := service.GetSessionEvaluations(ctx, 99999)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestEvaluationService_PurgeBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEvaluationService(client.Client)
	ctx := context.Background()
	now := time.Now()

	closed, err := client.PromptSession.Create().
		SetExamID(1).SetParticipantID(1).SetSpecID(1).
		SetStartedAt(now.Add(-48 * time.Hour)).
		SetEndedAt(now.Add(-47 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	open, err := client.PromptSession.Create().
		SetExamID(1).SetParticipantID(2).SetSpecID(1).
		SetStartedAt(now.Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	oldRow := func(sessionID int) {
		t.Helper()
		_, err := client.PromptEvaluation.Create().
			SetSessionID(sessionID).
			SetTurn(1).
			SetEvaluationType(promptevaluation.EvaluationType(models.EvalTypeTurn)).
			SetScore(70).
			SetCreatedAt(now.Add(-36 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
	}
	oldRow(closed.ID)
	oldRow(open.ID)

	// Recent row in the closed session, after the cutoff.
	_, err = client.PromptEvaluation.Create().
		SetSessionID(closed.ID).
		SetEvaluationType(promptevaluation.EvaluationType(models.EvalTypeHolistic)).
		SetScore(80).
		SetCreatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	purged, err := service.PurgeBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	// Only the old row of the closed session is gone.
	kept, err := service.GetSessionEvaluations(ctx, closed.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Nil(t, kept[0].Turn)

	untouched, err := service.GetSessionEvaluations(ctx, open.ID)
	require.NoError(t, err)
	assert.Len(t, untouched, 1)
}
