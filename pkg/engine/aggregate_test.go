package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

func TestAggregateTurnScores(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	tests := []struct {
		name   string
		scores map[string]models.TurnScore
		want   float64
	}{
		{"no scored turns", nil, 0},
		{"single turn", map[string]models.TurnScore{"turn_1": {TurnScore: 83.4}}, 83.4},
		{
			"average rounds to two decimals",
			map[string]models.TurnScore{
				"turn_1": {TurnScore: 80},
				"turn_2": {TurnScore: 85},
				"turn_3": {TurnScore: 91},
			},
			85.33,
		},
		{
			"zeroed guardrail turns pull the average down",
			map[string]models.TurnScore{
				"turn_1": {TurnScore: 90},
				"turn_2": {TurnScore: 0},
			},
			45,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, err := e.aggregateTurnScores(context.Background(), &graph.State{TurnScores: tt.scores})
			require.NoError(t, err)
			require.NotNil(t, delta.AggregateTurnScore)
			assert.InDelta(t, tt.want, *delta.AggregateTurnScore, 0.001)
		})
	}
}

func TestAggregateFinalScores(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	s := &graph.State{
		SessionID:            "sess-agg",
		HolisticFlowScore:    graph.Float64Ptr(82.5),
		AggregateTurnScore:   graph.Float64Ptr(76),
		CodePerformanceScore: graph.Float64Ptr(78),
		CodeCorrectnessScore: graph.Float64Ptr(100),
	}
	delta, err := e.aggregateFinalScores(context.Background(), s)
	require.NoError(t, err)
	require.NotNil(t, delta.FinalScores)

	fs := delta.FinalScores
	assert.InDelta(t, 79.25, fs.PromptScore, 0.001)
	assert.InDelta(t, 78.0, fs.PerformanceScore, 0.001)
	assert.InDelta(t, 100.0, fs.CorrectnessScore, 0.001)
	assert.InDelta(t, 89.31, fs.TotalScore, 0.001)
	assert.Equal(t, "B", fs.Grade)
}

func TestAggregateFinalScoresMissingAxes(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})

	// Only the turn aggregate is present: the prompt axis uses it alone and
	// the code axes count as zero.
	delta, err := e.aggregateFinalScores(context.Background(), &graph.State{
		AggregateTurnScore: graph.Float64Ptr(80),
	})
	require.NoError(t, err)
	require.NotNil(t, delta.FinalScores)
	assert.InDelta(t, 80.0, delta.FinalScores.PromptScore, 0.001)
	assert.InDelta(t, 0.0, delta.FinalScores.PerformanceScore, 0.001)
	assert.InDelta(t, 0.0, delta.FinalScores.CorrectnessScore, 0.001)
	assert.InDelta(t, 20.0, delta.FinalScores.TotalScore, 0.001) // 0.25 * 80
	assert.Equal(t, "F", delta.FinalScores.Grade)
}

func TestAggregateFinalScoresCustomWeights(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{
		PromptWeight:      0.5,
		PerformanceWeight: 0.3,
		CorrectnessWeight: 0.2,
	})

	delta, err := e.aggregateFinalScores(context.Background(), &graph.State{
		HolisticFlowScore:    graph.Float64Ptr(90),
		AggregateTurnScore:   graph.Float64Ptr(70),
		CodePerformanceScore: graph.Float64Ptr(60),
		CodeCorrectnessScore: graph.Float64Ptr(50),
	})
	require.NoError(t, err)
	require.NotNil(t, delta.FinalScores)
	// 0.5*80 + 0.3*60 + 0.2*50 = 68
	assert.InDelta(t, 68.0, delta.FinalScores.TotalScore, 0.001)
	assert.Equal(t, "D", delta.FinalScores.Grade)
}

func TestMeanOfPresent(t *testing.T) {
	assert.Equal(t, 0.0, meanOfPresent(nil, nil))
	assert.Equal(t, 75.0, meanOfPresent(graph.Float64Ptr(75), nil))
	assert.Equal(t, 80.0, meanOfPresent(graph.Float64Ptr(70), graph.Float64Ptr(90)))
}
