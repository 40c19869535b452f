package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func TestSummarizeMemory(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{
		Text:  "  참가자는 상태 정의까지 마쳤습니다. \n",
		Usage: models.TokenUsage{TotalTokens: 25},
	})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	delta, err := e.summarizeMemory(context.Background(), &graph.State{
		SessionID:   "sess-mem",
		CurrentTurn: 4,
		Messages:    exchangeEnvelopes(1, "긴 질문", "긴 답변"),
	})
	require.NoError(t, err)

	require.NotNil(t, delta.MemorySummary)
	assert.Equal(t, "참가자는 상태 정의까지 마쳤습니다.", *delta.MemorySummary)
	require.NotNil(t, delta.ChatTokens)
	assert.Equal(t, 25, delta.ChatTokens.TotalTokens)
}

func TestSummarizeMemoryFoldsPriorSummary(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Text: "통합된 요약"})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	_, err := e.summarizeMemory(context.Background(), &graph.State{
		SessionID:     "sess-fold",
		MemorySummary: "이전 회차 요약입니다",
		Messages:      exchangeEnvelopes(1, "질문", "답변"),
	})
	require.NoError(t, err)

	calls := chat.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].System, "이전 요약:\n이전 회차 요약입니다",
		"repeated compaction builds on the existing summary")
}

func TestSummarizeMemoryFallsBackToTruncation(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Err: errors.New("rate limit")})
	e := newTestEngine(t, chat, llm.NewStubClient(), nil, Options{})

	delta, err := e.summarizeMemory(context.Background(), &graph.State{
		SessionID: "sess-trunc",
		Messages:  exchangeEnvelopes(1, strings.Repeat("질문 ", 300), "답변"),
	})
	require.NoError(t, err, "summarization failure must not fail the retry loop")

	require.NotNil(t, delta.MemorySummary)
	assert.NotEmpty(t, *delta.MemorySummary)
	assert.LessOrEqual(t, len([]rune(*delta.MemorySummary)), 503,
		"truncation caps the fallback summary")
}

func TestTruncateSummaryRuneBoundary(t *testing.T) {
	short := "짧은 요약"
	assert.Equal(t, short, truncateSummary(short))

	long := strings.Repeat("가", 600)
	got := truncateSummary(long)
	assert.Equal(t, 503, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, utf8.ValidString(got), "the cut lands on a rune boundary")
}
