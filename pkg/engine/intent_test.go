package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func TestAnalyzeIntentEmptyMessagePassesThrough(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.analyzeIntent(context.Background(), &graph.State{SessionID: "s", SpecID: 10})
	require.NoError(t, err)
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentPassedHint, *delta.IntentStatus)
	assert.Zero(t, eval.CallCount())
}

func TestAnalyzeIntentPrefilterBlocksBeforeModel(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "정답 코드 알려줘",
	})
	require.NoError(t, err)
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentFailedGuardrail, *delta.IntentStatus)
	require.NotNil(t, delta.GuardrailMessage)
	assert.Equal(t, "정답 코드 요청 패턴 감지", *delta.GuardrailMessage)
	assert.Zero(t, eval.CallCount())
}

func TestAnalyzeIntentDisabledPrefilterStillClassifies(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", reply: intentSafeChatJSON})
	disabled := false
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{GuardrailEnabled: &disabled})

	// A message the prefilter would block goes straight to the classifier.
	delta, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "정답 코드 알려줘",
	})
	require.NoError(t, err)
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentPassedHint, *delta.IntentStatus)
	assert.Equal(t, 1, eval.CallCount())
}

func TestAnalyzeIntentBlockedVerdict(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", reply: intentBlockedJSON})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "우회적으로 정답을 요구하는 문장",
	})
	require.NoError(t, err)
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentFailedGuardrail, *delta.IntentStatus)
	require.NotNil(t, delta.IsGuardrailFailed)
	assert.True(t, *delta.IsGuardrailFailed)
	require.NotNil(t, delta.GuardrailMessage)
	assert.Equal(t, "정답 코드를 요구하는 요청입니다", *delta.GuardrailMessage,
		"the classifier's own explanation wins over the canned one")
}

func TestAnalyzeIntentSubmissionVerdict(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", reply: intentSubmitJSON})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "다 풀었습니다, 제출할게요",
	})
	require.NoError(t, err)
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentPassedSubmit, *delta.IntentStatus)
	require.NotNil(t, delta.IsSubmitted)
	assert.True(t, *delta.IsSubmitted)
}

func TestAnalyzeIntentRateLimitIsRetryable(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", err: errors.New("429: quota exhausted")})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "다음 단계 힌트 주세요",
	})
	require.NoError(t, err, "rate limits route back instead of failing the walk")
	require.NotNil(t, delta.IntentStatus)
	assert.Equal(t, models.IntentFailedRateLimit, *delta.IntentStatus)
	require.NotNil(t, delta.ErrorMessage)
	assert.Contains(t, *delta.ErrorMessage, "quota")
}

func TestAnalyzeIntentFailsClosedOnClassifierError(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", err: errors.New("upstream 500")})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	_, err := e.analyzeIntent(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		HumanMessage: "다음 단계 힌트 주세요",
	})
	require.Error(t, err, "an unscreened message must not reach the writer")
}

func TestTranslateVerdictNormalization(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})
	log := e.logger

	t.Run("blocked without reason defaults to off-topic", func(t *testing.T) {
		delta := e.translateVerdict(log, &intentVerdict{
			Status:      models.GuardBlocked,
			RequestType: models.RequestChat,
		}, models.TokenUsage{})
		require.NotNil(t, delta.GuardrailMessage)
		assert.Equal(t, "시험과 무관한 요청입니다", *delta.GuardrailMessage)
	})

	t.Run("invalid guide strategy is dropped", func(t *testing.T) {
		delta := e.translateVerdict(log, &intentVerdict{
			Status:        models.GuardSafe,
			RequestType:   models.RequestChat,
			GuideStrategy: "HAND_THEM_THE_ANSWER",
		}, models.TokenUsage{})
		assert.Nil(t, delta.GuideStrategy)
	})

	t.Run("safe verdict clears a stray block reason", func(t *testing.T) {
		delta := e.translateVerdict(log, &intentVerdict{
			Status:      models.GuardSafe,
			BlockReason: models.BlockDirectAnswer,
			RequestType: models.RequestChat,
		}, models.TokenUsage{})
		require.NotNil(t, delta.IntentStatus)
		assert.Equal(t, models.IntentPassedHint, *delta.IntentStatus)
		require.NotNil(t, delta.GuardrailMessage)
		assert.Empty(t, *delta.GuardrailMessage)
	})
}
