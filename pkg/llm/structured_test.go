package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/models"
)

type verdict struct {
	Status string  `json:"status" jsonschema:"required,enum=SAFE,enum=BLOCKED"`
	Score  float64 `json:"score" jsonschema:"required,minimum=0,maximum=100"`
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSON(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, ExtractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractJSON("Here is the result:\n{\"a\":1}\nHope that helps."))
}

func TestGenerateStructuredHappyPath(t *testing.T) {
	stub := NewStubClient(StubResponse{
		Text:  `{"status":"SAFE","score":85}`,
		Usage: models.TokenUsage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
	})

	out, usage, err := GenerateStructured[verdict](context.Background(), stub, Request{System: "classify"})
	require.NoError(t, err)
	assert.Equal(t, "SAFE", out.Status)
	assert.InDelta(t, 85, out.Score, 0.001)
	assert.Equal(t, 120, usage.TotalTokens)
	assert.Equal(t, 1, stub.CallCount())

	// Schema instruction is appended to the system prompt.
	calls := stub.Calls()
	assert.Contains(t, calls[0].System, "classify")
	assert.Contains(t, calls[0].System, "JSON object")
	assert.True(t, calls[0].JSONMode)
}

func TestGenerateStructuredStripsFences(t *testing.T) {
	stub := NewStubClient(StubResponse{
		Text: "```json\n{\"status\":\"BLOCKED\",\"score\":0}\n```",
	})

	out, _, err := GenerateStructured[verdict](context.Background(), stub, Request{})
	require.NoError(t, err)
	assert.Equal(t, "BLOCKED", out.Status)
}

func TestGenerateStructuredReasksOnce(t *testing.T) {
	stub := NewStubClient(
		StubResponse{
			Text:  `{"status":"MAYBE","score":85}`,
			Usage: models.TokenUsage{TotalTokens: 50},
		},
		StubResponse{
			Text:  `{"status":"SAFE","score":85}`,
			Usage: models.TokenUsage{TotalTokens: 30},
		},
	)

	out, usage, err := GenerateStructured[verdict](context.Background(), stub, Request{})
	require.NoError(t, err)
	assert.Equal(t, "SAFE", out.Status)
	assert.Equal(t, 2, stub.CallCount())
	// Both attempts are billed.
	assert.Equal(t, 80, usage.TotalTokens)

	// The re-ask carries the earlier reply and the validation error.
	second := stub.Calls()[1]
	require.Len(t, second.Messages, 2)
	assert.Equal(t, models.RoleAssistant, second.Messages[0].Role)
	assert.Contains(t, second.Messages[1].Content, "not a valid JSON object")
}

func TestGenerateStructuredFailsAfterSecondBadReply(t *testing.T) {
	stub := NewStubClient(StubResponse{Text: "not json at all"})

	_, _, err := GenerateStructured[verdict](context.Background(), stub, Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after re-ask")
	assert.Equal(t, 2, stub.CallCount())
}
