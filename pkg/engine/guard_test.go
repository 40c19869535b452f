package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func exchangeEnvelopes(turn int, human, ai string) []models.Envelope {
	now := time.Now().UTC()
	return []models.Envelope{
		{Role: models.RoleUser, Content: human, Turn: turn, Timestamp: now},
		{Role: models.RoleAssistant, Content: ai, Turn: turn, Timestamp: now},
	}
}

func TestEvalTurnGuardScoresEveryCompletedTurn(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{TurnEvalParallelism: 2})

	messages := append(
		exchangeEnvelopes(1, "상태 정의 힌트 주세요.", "방문 집합을 상태로 두는 방법을 생각해보세요."),
		exchangeEnvelopes(2, "기저 사례는 어떻게 잡나요?", "모든 도시를 방문한 상태가 기저입니다.")...,
	)

	delta, err := e.evalTurnGuard(context.Background(), &graph.State{
		SessionID:   "sess-guard",
		SpecID:      10,
		CurrentTurn: 3,
		Messages:    messages,
	})
	require.NoError(t, err)

	require.Len(t, delta.TurnScores, 2)
	assert.InDelta(t, 76.0, delta.TurnScores["turn_1"].TurnScore, 0.001)
	assert.InDelta(t, 76.0, delta.TurnScores["turn_2"].TurnScore, 0.001)

	require.Len(t, delta.TurnEvaluations, 2)
	assert.Equal(t, "solid prompting", delta.TurnEvaluations["turn_1"].FinalReasoning)
	assert.Len(t, delta.TurnEvaluations["turn_1"].Rubrics, 5)

	require.NotNil(t, delta.EvalTokens)
	assert.NotZero(t, delta.EvalTokens.TotalTokens)
}

func TestEvalTurnGuardSkipsIncompleteTurns(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{TurnEvalParallelism: 1})

	now := time.Now().UTC()
	messages := append(
		exchangeEnvelopes(1, "첫 질문", "첫 답변"),
		// Turn 2 never got a tutor reply.
		models.Envelope{Role: models.RoleUser, Content: "둘째 질문", Turn: 2, Timestamp: now},
	)

	delta, err := e.evalTurnGuard(context.Background(), &graph.State{
		SessionID:   "sess-partial",
		SpecID:      10,
		CurrentTurn: 3,
		Messages:    messages,
	})
	require.NoError(t, err)

	require.Len(t, delta.TurnScores, 1)
	assert.Contains(t, delta.TurnScores, "turn_1")
	assert.NotContains(t, delta.TurnScores, "turn_2")
}

func TestEvalTurnGuardNothingToEvaluate(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), newRoutedLLM(evalRoutes()...), nil, Options{})

	delta, err := e.evalTurnGuard(context.Background(), &graph.State{
		SessionID:   "sess-empty",
		SpecID:      10,
		CurrentTurn: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, delta, "the submission turn itself has no reply to judge")
}

func TestReconstructTurnsWiresPreviousContext(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	messages := append(
		exchangeEnvelopes(1, "첫 질문", "첫 답변"),
		exchangeEnvelopes(2, "둘째 질문", "둘째 답변")...,
	)
	pairs := e.reconstructTurns(context.Background(), &graph.State{
		SessionID:   "sess-ctx",
		CurrentTurn: 3,
		Messages:    messages,
	})

	require.Len(t, pairs, 2)
	assert.Equal(t, 1, pairs[0].turn)
	assert.Empty(t, pairs[0].previous)
	assert.Equal(t, 2, pairs[1].turn)
	assert.Equal(t, "첫 답변", pairs[1].previous,
		"each turn carries the tutor reply it was reacting to")
}

func TestReconstructTurnsIgnoresUntaggedEnvelopes(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	now := time.Now().UTC()
	pairs := e.reconstructTurns(context.Background(), &graph.State{
		SessionID:   "sess-untagged",
		CurrentTurn: 2,
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: "태그 없는 질문", Timestamp: now},
			{Role: models.RoleAssistant, Content: "태그 없는 답변", Timestamp: now},
		},
	})
	assert.Empty(t, pairs, "without a turn tag or cached mapping the exchange is unattributable")
}

func TestFailedTurnOutcomeScoresZero(t *testing.T) {
	out := failedTurnOutcome("sess-f", 4, errors.New("judge unavailable"))

	assert.Equal(t, 4, out.Log.Turn)
	assert.Zero(t, out.Log.TurnScore)
	assert.Contains(t, out.Log.FinalReasoning, "평가 실패")
	assert.Contains(t, out.Evaluation.FinalReasoning, "judge unavailable")
}
