package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func TestIntentRouter(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	tests := []struct {
		name  string
		state graph.State
		want  string
	}{
		{"hint goes to writer", graph.State{IntentStatus: models.IntentPassedHint}, NodeWriter},
		{"guardrail failure still gets a reply", graph.State{IntentStatus: models.IntentFailedGuardrail}, NodeWriter},
		{"submission verdict diverts to scoring", graph.State{IntentStatus: models.IntentPassedSubmit}, NodeEvalTurnGuard},
		{"submitted flag diverts regardless of verdict", graph.State{IsSubmitted: true, IntentStatus: models.IntentPassedHint}, NodeEvalTurnGuard},
		{"rate limited intent retries the turn", graph.State{IntentStatus: models.IntentFailedRateLimit}, NodeHandleRequest},
		{"pending defaults to writer", graph.State{IntentStatus: models.IntentPending}, NodeWriter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.intentRouter(&tt.state))
		})
	}
}

func TestWriterRouter(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{MaxRetries: 3})

	tests := []struct {
		name  string
		state graph.State
		want  string
	}{
		{"success ends the turn", graph.State{WriterStatus: models.WriterSuccess}, graph.End},
		{"rate limit within budget retries", graph.State{WriterStatus: models.WriterFailedRateLimit, RetryCount: 2}, NodeHandleRequest},
		{"rate limit at budget fails the turn", graph.State{WriterStatus: models.WriterFailedRateLimit, RetryCount: 3}, NodeHandleFailure},
		{"context overflow compacts memory", graph.State{WriterStatus: models.WriterFailedThreshold}, NodeSummarizeMemory},
		{"technical failure goes to the sink", graph.State{WriterStatus: models.WriterFailedTechnical}, NodeHandleFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.writerRouter(&tt.state))
		})
	}
}

func TestMainRouter(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	assert.Equal(t, NodeEvalHolisticFlow, e.mainRouter(&graph.State{IsSubmitted: true}))
	assert.Equal(t, graph.End, e.mainRouter(&graph.State{}))
}
