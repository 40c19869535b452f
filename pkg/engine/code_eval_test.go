package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/problems"
)

func TestPerformanceScore(t *testing.T) {
	problem := &problems.Context{
		Constraints: problems.Constraints{TimeLimitMS: 1000, MemoryLimitKB: 131072},
	}

	tests := []struct {
		name   string
		result judge.Result
		want   float64
	}{
		{
			name: "headroom on both axes",
			result: judge.Result{
				Status: judge.VerdictSuccess, Passed: 3, Total: 3,
				ExecutionTime: 0.2, MemoryUsed: 32 << 20,
			},
			want: 78, // 0.6*80 + 0.4*75
		},
		{
			name: "at the limits scores zero headroom",
			result: judge.Result{
				Status: judge.VerdictSuccess, Passed: 1, Total: 1,
				ExecutionTime: 1.0, MemoryUsed: 131072 * 1024,
			},
			want: 0,
		},
		{
			name: "nothing passed scores zero regardless of speed",
			result: judge.Result{
				Status: judge.VerdictError, Passed: 0, Total: 3,
				ExecutionTime: 0.01, MemoryUsed: 1 << 20,
			},
			want: 0,
		},
		{
			name: "overshoot clamps instead of going negative",
			result: judge.Result{
				Status: judge.VerdictSuccess, Passed: 1, Total: 1,
				ExecutionTime: 2.0, MemoryUsed: 16 << 20,
			},
			want: 35, // 0.6*0 + 0.4*(100*(1-16384/131072))
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, performanceScore(&tt.result, problem), 0.001)
		})
	}
}

func TestCorrectnessScore(t *testing.T) {
	tests := []struct {
		name   string
		result judge.Result
		want   float64
	}{
		{"all cases pass", judge.Result{Status: judge.VerdictSuccess, Passed: 3, Total: 3}, 100},
		{"partial pass", judge.Result{Status: judge.VerdictError, Passed: 2, Total: 3}, 66.67},
		{"clean run without test data earns half marks", judge.Result{Status: judge.VerdictSuccess}, 50},
		{"failed run without test data", judge.Result{Status: judge.VerdictError}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, correctnessScore(&tt.result), 0.001)
		})
	}
}

func TestSandboxLimitsFallBackToDefaults(t *testing.T) {
	sec, kb := sandboxLimits(&problems.Context{})
	assert.Equal(t, defaultCPUTimeLimitSec, sec)
	assert.Equal(t, defaultMemoryLimitKB, kb)

	sec, kb = sandboxLimits(&problems.Context{
		Constraints: problems.Constraints{TimeLimitMS: 2500, MemoryLimitKB: 65536},
	})
	assert.Equal(t, 2.5, sec)
	assert.Equal(t, 65536, kb)
}

func TestEvalCodeSkipsWithoutSubmission(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	state := &graph.State{SessionID: "sess-skip", SpecID: 10}
	delta, err := e.evalCodePerformance(context.Background(), state)
	require.NoError(t, err)
	assert.Nil(t, delta)

	delta, err = e.evalCodeCorrectness(context.Background(), state)
	require.NoError(t, err)
	assert.Nil(t, delta)
}

func TestEvalCodeCorrectnessReusesSandboxRun(t *testing.T) {
	queue := newStubQueue(&judge.Result{
		Status: judge.VerdictSuccess, Passed: 2, Total: 3,
		ExecutionTime: 0.4, MemoryUsed: 64 << 20,
	})
	e := newTestEngine(t, llm.NewStubClient(), newRoutedLLM(evalRoutes()...), queue, Options{})

	state := &graph.State{
		SessionID:   "sess-reuse",
		SpecID:      10,
		CodeContent: "print(1)",
	}

	delta, err := e.evalCodePerformance(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, delta.JudgeTaskID)
	state.Apply(delta)
	require.NotNil(t, state.CodePerformanceScore)

	delta, err = e.evalCodeCorrectness(context.Background(), state)
	require.NoError(t, err)
	state.Apply(delta)

	require.NotNil(t, state.CodeCorrectnessScore)
	assert.InDelta(t, 66.67, *state.CodeCorrectnessScore, 0.001)
	assert.Equal(t, 1, queue.enqueueCount(), "correctness reads the performance node's verdict")
}

func TestEvalCodeFallsBackToModelReview(t *testing.T) {
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	state := &graph.State{
		SessionID:   "sess-review",
		SpecID:      10,
		CodeContent: "print(1)",
	}

	delta, err := e.evalCodePerformance(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, delta.CodePerformanceScore)
	// 0.6*60 + 0.2*70 + 0.2*75 with the canned review scores.
	assert.InDelta(t, 65.0, *delta.CodePerformanceScore, 0.001)
	assert.Nil(t, delta.JudgeTaskID)

	delta, err = e.evalCodeCorrectness(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, delta.CodeCorrectnessScore)
	// 0.7*70 + 0.2*60 + 0.1*75.
	assert.InDelta(t, 68.5, *delta.CodeCorrectnessScore, 0.001)
}

func TestEvalCodeReviewFailureRecordsError(t *testing.T) {
	eval := newRoutedLLM(scriptedRoute{marker: "best_practices", err: assert.AnError})
	e := newTestEngine(t, llm.NewStubClient(), eval, nil, Options{})

	delta, err := e.evalCodePerformance(context.Background(), &graph.State{
		SessionID:   "sess-err",
		SpecID:      10,
		CodeContent: "print(1)",
	})
	require.NoError(t, err, "scoring failures degrade instead of aborting the walk")
	assert.Nil(t, delta.CodePerformanceScore)
	require.NotNil(t, delta.ErrorMessage)
	assert.Contains(t, *delta.ErrorMessage, "성능 평가 실패")
}
