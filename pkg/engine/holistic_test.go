package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func TestEvalHolisticFlowFromStateLogs(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.evalHolisticFlow(context.Background(), &graph.State{
		SessionID:   "sess-flow",
		SpecID:      10,
		CurrentTurn: 3,
		Messages: append(
			exchangeEnvelopes(1, "상태 정의 힌트 주세요.", "집합 상태를 생각해보세요."),
			exchangeEnvelopes(2, "기저 사례는요?", "모든 도시를 방문한 경우입니다.")...,
		),
		TurnScores: map[string]models.TurnScore{
			"turn_1": {TurnScore: 70},
			"turn_2": {TurnScore: 82},
		},
		TurnEvaluations: map[string]models.TurnEvaluation{
			"turn_1": {FinalReasoning: "명확한 첫 질문"},
			"turn_2": {FinalReasoning: "피드백을 반영한 후속 질문"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, delta.HolisticFlowScore)
	assert.InDelta(t, 82.5, *delta.HolisticFlowScore, 0.001)
	require.NotNil(t, delta.HolisticFlowAnalysis)
	assert.Equal(t, "잘 연결된 힌트 체인", *delta.HolisticFlowAnalysis)

	// The judge saw both reconstructed turn records with their prompts.
	calls := eval.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].System, "상태 정의 힌트 주세요.")
	assert.Contains(t, calls[0].System, "피드백을 반영한 후속 질문")
}

func TestEvalHolisticFlowWithoutLogs(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.evalHolisticFlow(context.Background(), &graph.State{
		SessionID:   "sess-nolog",
		SpecID:      10,
		CurrentTurn: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, delta.HolisticFlowScore)
	assert.Zero(t, *delta.HolisticFlowScore)
	require.NotNil(t, delta.HolisticFlowAnalysis)
	assert.Contains(t, *delta.HolisticFlowAnalysis, "턴 로그가 없어")
	assert.Zero(t, eval.CallCount())
}

func TestEvalHolisticFlowModelFailureKeepsScoreUnset(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "overall_flow_score", err: errors.New("upstream 500")})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.evalHolisticFlow(context.Background(), &graph.State{
		SessionID:   "sess-flowfail",
		SpecID:      10,
		CurrentTurn: 2,
		TurnScores:  map[string]models.TurnScore{"turn_1": {TurnScore: 75}},
	})
	require.NoError(t, err, "flow judge failures degrade instead of aborting")
	assert.Nil(t, delta.HolisticFlowScore)
	require.NotNil(t, delta.ErrorMessage)
	assert.Contains(t, *delta.ErrorMessage, "Holistic flow 평가 실패")
}

func TestEvalHolisticFlowClampsScore(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{
		marker: "overall_flow_score",
		reply:  `{"overall_flow_score":140,"analysis":"과열된 판정"}`,
	})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.evalHolisticFlow(context.Background(), &graph.State{
		SessionID:   "sess-clamp",
		SpecID:      10,
		CurrentTurn: 2,
		TurnScores:  map[string]models.TurnScore{"turn_1": {TurnScore: 75}},
	})
	require.NoError(t, err)
	require.NotNil(t, delta.HolisticFlowScore)
	assert.Equal(t, 100.0, *delta.HolisticFlowScore)
}

func TestUserPromptsByTurnTruncates(t *testing.T) {
	long := strings.Repeat("가", 250)
	s := &graph.State{
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: long, Turn: 1, Timestamp: time.Now().UTC()},
			{Role: models.RoleAssistant, Content: "답", Turn: 1, Timestamp: time.Now().UTC()},
		},
	}

	prompts := userPromptsByTurn(s)
	require.Contains(t, prompts, 1)
	assert.Equal(t, 203, len([]rune(prompts[1])), "two hundred runes plus the ellipsis")
	assert.True(t, strings.HasSuffix(prompts[1], "..."))
}
