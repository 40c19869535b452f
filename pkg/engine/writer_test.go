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

func TestWriteAppendsTurnTaggedExchange(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{
		Text:  "기저 사례부터 생각해보세요.",
		Usage: models.TokenUsage{PromptTokens: 12, CompletionTokens: 6, TotalTokens: 18},
	})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	delta, err := e.write(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		CurrentTurn:  3,
		HumanMessage: "기저 사례 힌트 주세요.",
		IntentStatus: models.IntentPassedHint,
	})
	require.NoError(t, err)

	require.NotNil(t, delta.WriterStatus)
	assert.Equal(t, models.WriterSuccess, *delta.WriterStatus)
	require.NotNil(t, delta.AIMessage)
	assert.Equal(t, "기저 사례부터 생각해보세요.", *delta.AIMessage)
	require.Len(t, delta.Messages, 2)
	assert.Equal(t, models.RoleUser, delta.Messages[0].Role)
	assert.Equal(t, 3, delta.Messages[0].Turn)
	assert.Equal(t, models.RoleAssistant, delta.Messages[1].Role)
	assert.Equal(t, 3, delta.Messages[1].Turn)
	require.NotNil(t, delta.ChatTokens)
	assert.Equal(t, 18, delta.ChatTokens.TotalTokens)
}

func TestWriteSubstitutesEmptyReply(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Text: "   "})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	delta, err := e.write(context.Background(), &graph.State{
		SessionID:    "s",
		SpecID:       10,
		CurrentTurn:  1,
		HumanMessage: "힌트 주세요.",
	})
	require.NoError(t, err)
	require.NotNil(t, delta.WriterStatus)
	assert.Equal(t, models.WriterSuccess, *delta.WriterStatus)
	require.NotNil(t, delta.AIMessage)
	assert.Equal(t, emptyReplyFallback, *delta.AIMessage)
}

func TestWriteFailureTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus models.WriterStatus
		wantRetry  *int
	}{
		{"rate limit burns a retry", errors.New("429: rate limit exceeded"), models.WriterFailedRateLimit, graph.IntPtr(2)},
		{"quota counts as rate limit", errors.New("quota exhausted for model"), models.WriterFailedRateLimit, graph.IntPtr(2)},
		{"context overflow", errors.New("context length exceeded"), models.WriterFailedThreshold, nil},
		{"provider outage", errors.New("connection refused"), models.WriterFailedTechnical, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := llm.NewStubClient(llm.StubResponse{Err: tt.err})
			e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

			delta, err := e.write(context.Background(), &graph.State{
				SessionID:    "s",
				SpecID:       10,
				CurrentTurn:  1,
				RetryCount:   1,
				HumanMessage: "힌트 주세요.",
			})
			require.NoError(t, err, "writer failures are states, not node errors")

			require.NotNil(t, delta.WriterStatus)
			assert.Equal(t, tt.wantStatus, *delta.WriterStatus)
			require.NotNil(t, delta.WriterError)
			assert.Equal(t, tt.err.Error(), *delta.WriterError)
			if tt.wantRetry == nil {
				assert.Nil(t, delta.RetryCount)
			} else {
				require.NotNil(t, delta.RetryCount)
				assert.Equal(t, *tt.wantRetry, *delta.RetryCount)
			}
			assert.Empty(t, delta.Messages)
		})
	}
}

func TestWriterSystemPromptSelection(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})
	problem := e.resolveProblem(context.Background(), 10)

	t.Run("guardrail failure renders the refusal", func(t *testing.T) {
		system, _, err := e.writerSystemPrompt(&graph.State{
			IsGuardrailFailed: true,
			GuardrailMessage:  "정답 코드 요청 패턴 감지",
		}, problem)
		require.NoError(t, err)
		assert.Contains(t, system, "reason: 정답 코드 요청 패턴 감지")
	})

	t.Run("submission renders the acknowledgement", func(t *testing.T) {
		system, _, err := e.writerSystemPrompt(&graph.State{
			IntentStatus: models.IntentPassedSubmit,
		}, problem)
		require.NoError(t, err)
		assert.Contains(t, system, "has just submitted their code")
	})

	t.Run("earned upgrade renders the full-code prompt", func(t *testing.T) {
		system, strategy, err := e.writerSystemPrompt(&graph.State{
			IntentStatus: models.IntentPassedHint,
			HumanMessage: "앞서 주신 힌트 바탕으로 코드 작성 부탁드려요",
			Messages: []models.Envelope{
				{Role: models.RoleAssistant, Content: "점화식 힌트: 부분 집합으로 나눠보세요", Turn: 1, Timestamp: time.Now().UTC()},
			},
		}, problem)
		require.NoError(t, err)
		assert.Equal(t, models.StrategyFullCodeAllowed, strategy)
		assert.Contains(t, system, "the exam rules allow you to produce complete code")
	})

	t.Run("plain turn renders the socratic default", func(t *testing.T) {
		system, strategy, err := e.writerSystemPrompt(&graph.State{
			IntentStatus:  models.IntentPassedHint,
			GuideStrategy: models.StrategyRoadmap,
			Keywords:      []string{"동적계획법", "비트마스크"},
			HumanMessage:  "어떤 순서로 접근하면 좋을까요?",
		}, problem)
		require.NoError(t, err)
		assert.Equal(t, models.StrategyRoadmap, strategy)
		assert.Contains(t, system, "Help level for this reply: ROADMAP")
		assert.Contains(t, system, "동적계획법, 비트마스크")
	})

	t.Run("missing keywords render the empty marker", func(t *testing.T) {
		system, _, err := e.writerSystemPrompt(&graph.State{
			IntentStatus: models.IntentPassedHint,
			HumanMessage: "어디서부터 보면 될까요?",
		}, problem)
		require.NoError(t, err)
		assert.Contains(t, system, "Key topics of the participant's question: 없음")
	})

	t.Run("invalid strategy falls back to logic hint", func(t *testing.T) {
		system, strategy, err := e.writerSystemPrompt(&graph.State{
			IntentStatus:  models.IntentPassedHint,
			GuideStrategy: "NONSENSE",
			HumanMessage:  "어디서부터 보면 될까요?",
		}, problem)
		require.NoError(t, err)
		assert.Equal(t, models.StrategyLogicHint, strategy)
		assert.Contains(t, system, "Help level for this reply: LOGIC_HINT")
	})
}

func TestFullCodeEarned(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	hintReply := models.Envelope{Role: models.RoleAssistant, Content: "접근 힌트를 드리면...", Turn: 1, Timestamp: time.Now().UTC()}
	smallTalk := models.Envelope{Role: models.RoleAssistant, Content: "네, 안녕하세요.", Turn: 1, Timestamp: time.Now().UTC()}

	tests := []struct {
		name    string
		message string
		history []models.Envelope
		want    bool
	}{
		{"no generation ask", "힌트 주세요", []models.Envelope{hintReply}, false},
		{"generation ask after hint work", "코드 작성 부탁해요", []models.Envelope{hintReply}, true},
		{"generation ask referencing prior output", "제안해주신 방식대로 코드 작성해줘", []models.Envelope{smallTalk}, true},
		{"generation ask with no earned context", "코드 작성해줘", []models.Envelope{smallTalk}, false},
		{"generation ask with empty history", "코드 생성해줘", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &graph.State{HumanMessage: tt.message, Messages: tt.history}
			assert.Equal(t, tt.want, e.fullCodeEarned(s))
		})
	}
}

func TestWriterEnvelopeWindowAndFiltering(t *testing.T) {
	now := time.Now().UTC()
	s := &graph.State{
		HumanMessage: "다음 질문입니다.",
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: "첫 질문", Turn: 1, Timestamp: now},
			{Role: models.RoleAssistant, Content: "", Turn: 1, Timestamp: now}, // dropped
			{Role: models.RoleUser, Content: "둘째 질문", Turn: 2, Timestamp: now},
			{Role: models.RoleAssistant, Content: "둘째 답변", Turn: 2, Timestamp: now},
		},
	}

	msgs := writerEnvelope(s, 3)
	require.Len(t, msgs, 3, "window of three keeps the last three envelopes, minus empties")
	assert.Equal(t, "둘째 질문", msgs[0].Content)
	assert.Equal(t, "둘째 답변", msgs[1].Content)
	assert.Equal(t, "다음 질문입니다.", msgs[2].Content)

	empty := writerEnvelope(&graph.State{}, 5)
	require.Len(t, empty, 1, "a degenerate turn still sends one valid message")
	assert.Equal(t, degenerateEnvelopeContent, empty[0].Content)
}

func TestWriteStreamsThroughSink(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{
		Text:  "스트리밍으로 전달되는 답변입니다.",
		Usage: models.TokenUsage{TotalTokens: 9},
	})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	sink := make(chan string, 8)
	ctx := WithStreamSink(context.Background(), sink)

	delta, err := e.write(ctx, &graph.State{
		SessionID:    "s",
		SpecID:       10,
		CurrentTurn:  1,
		HumanMessage: "힌트 주세요.",
	})
	require.NoError(t, err)
	close(sink)

	var streamed strings.Builder
	for piece := range sink {
		streamed.WriteString(piece)
	}
	require.NotNil(t, delta.AIMessage)
	assert.Equal(t, *delta.AIMessage, streamed.String())
	assert.Equal(t, "스트리밍으로 전달되는 답변입니다.", streamed.String())
	require.NotNil(t, delta.ChatTokens)
	assert.Equal(t, 9, delta.ChatTokens.TotalTokens)
}
