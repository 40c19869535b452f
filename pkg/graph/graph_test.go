package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/models"
)

// visitNode appends a marker envelope so tests can observe execution order
// through the state's append-only message list.
func visitNode(name string) NodeFunc {
	return func(ctx context.Context, s *State) (*Delta, error) {
		return &Delta{Messages: []models.Envelope{{Role: models.RoleSystem, Content: name}}}, nil
	}
}

func visited(s *State) []string {
	out := make([]string, 0, len(s.Messages))
	for _, m := range s.Messages {
		out = append(out, m.Content)
	}
	return out
}

func TestCompileRequiresEntryPoint(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddEdge("a", End).
		Compile()

	assert.ErrorIs(t, err, ErrNoEntryPoint)
}

func TestCompileRejectsDuplicateNode(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddNode("a", visitNode("a")).
		AddEdge("a", End).
		SetEntryPoint("a").
		Compile()

	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestCompileRejectsUnknownEdgeTarget(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddEdge("a", "ghost").
		SetEntryPoint("a").
		Compile()

	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestCompileRejectsUnknownRouterDestination(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddConditionalEdges("a", func(s *State) string { return End }, "ghost", End).
		SetEntryPoint("a").
		Compile()

	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestCompileRequiresOutgoingEdge(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddNode("b", visitNode("b")).
		AddEdge("a", "b").
		SetEntryPoint("a").
		Compile()

	assert.ErrorIs(t, err, ErrNoOutgoing)
}

func TestCompileRequiresEndReachable(t *testing.T) {
	// a and b only point at each other.
	_, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddNode("b", visitNode("b")).
		AddEdge("a", "b").
		AddEdge("b", "a").
		SetEntryPoint("a").
		Compile()

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestInvokeLinearPath(t *testing.T) {
	g, err := NewBuilder().
		AddNode("first", visitNode("first")).
		AddNode("second", visitNode("second")).
		AddEdge("first", "second").
		AddEdge("second", End).
		SetEntryPoint("first").
		Compile()
	require.NoError(t, err)

	state, err := g.Invoke(context.Background(), &Delta{SessionID: StringPtr("sess-1")}, InvokeOptions{})
	require.NoError(t, err)

	assert.Equal(t, "sess-1", state.SessionID)
	assert.Equal(t, []string{"first", "second"}, visited(state))
}

func TestInvokeConditionalRouting(t *testing.T) {
	router := func(s *State) string {
		if s.IsSubmitted {
			return "evaluate"
		}
		return End
	}

	g, err := NewBuilder().
		AddNode("ingest", visitNode("ingest")).
		AddNode("evaluate", visitNode("evaluate")).
		AddConditionalEdges("ingest", router, "evaluate", End).
		AddEdge("evaluate", End).
		SetEntryPoint("ingest").
		Compile()
	require.NoError(t, err)

	state, err := g.Invoke(context.Background(), &Delta{IsSubmitted: BoolPtr(false)}, InvokeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ingest"}, visited(state))

	state, err = g.Invoke(context.Background(), &Delta{IsSubmitted: BoolPtr(true)}, InvokeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ingest", "evaluate"}, visited(state))
}

func TestInvokeUndeclaredRouterDestinationFails(t *testing.T) {
	g, err := NewBuilder().
		AddNode("a", visitNode("a")).
		AddNode("b", visitNode("b")).
		AddConditionalEdges("a", func(s *State) string { return "b" }, End).
		AddEdge("b", End).
		SetEntryPoint("a").
		Compile()
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), nil, InvokeOptions{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.Equal(t, "a", invokeErr.Node)
	assert.Contains(t, invokeErr.Error(), "undeclared")
}

func TestInvokeNodeErrorWrapsInvokeError(t *testing.T) {
	boom := errors.New("llm unavailable")
	g, err := NewBuilder().
		AddNode("ok", visitNode("ok")).
		AddNode("fail", func(ctx context.Context, s *State) (*Delta, error) {
			return nil, boom
		}).
		AddEdge("ok", "fail").
		AddEdge("fail", End).
		SetEntryPoint("ok").
		Compile()
	require.NoError(t, err)

	state, err := g.Invoke(context.Background(), &Delta{SessionID: StringPtr("sess-9")}, InvokeOptions{})
	require.Error(t, err)

	var invokeErr *InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.Equal(t, "fail", invokeErr.Node)
	assert.Equal(t, "sess-9", invokeErr.SessionID)
	assert.ErrorIs(t, err, boom)

	// Work done before the failure is preserved.
	assert.Equal(t, []string{"ok"}, visited(state))

	details := invokeErr.ErrorDetails()
	assert.NotEmpty(t, details["error_type"])
	assert.Equal(t, "llm unavailable", details["error_message"])
	assert.Equal(t, "sess-9", details["session_id"])
}

func TestInvokeRecoversNodePanic(t *testing.T) {
	g, err := NewBuilder().
		AddNode("panicky", func(ctx context.Context, s *State) (*Delta, error) {
			panic("nil map write")
		}).
		AddEdge("panicky", End).
		SetEntryPoint("panicky").
		Compile()
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), nil, InvokeOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node panic")
}

func TestInvokeCheckpointsEveryNode(t *testing.T) {
	saver := NewMemorySaver()
	g, err := NewBuilder().
		AddNode("first", visitNode("first")).
		AddNode("second", visitNode("second")).
		AddEdge("first", "second").
		AddEdge("second", End).
		SetEntryPoint("first").
		Compile()
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), &Delta{SessionID: StringPtr("sess-1")}, InvokeOptions{
		ThreadID:     "sess-1",
		Checkpointer: saver,
	})
	require.NoError(t, err)

	// One snapshot per node boundary.
	assert.Len(t, saver.Checkpoints("sess-1"), 2)
}

func TestInvokeResumesFromCheckpoint(t *testing.T) {
	saver := NewMemorySaver()
	calls := 0
	g, err := NewBuilder().
		AddNode("accumulate", func(ctx context.Context, s *State) (*Delta, error) {
			calls++
			return &Delta{CurrentTurn: IntPtr(s.CurrentTurn + 1)}, nil
		}).
		AddEdge("accumulate", End).
		SetEntryPoint("accumulate").
		Compile()
	require.NoError(t, err)

	opts := InvokeOptions{ThreadID: "sess-1", Checkpointer: saver}

	state, err := g.Invoke(context.Background(), &Delta{SessionID: StringPtr("sess-1")}, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentTurn)

	// Second invocation resumes from the persisted snapshot.
	state, err = g.Invoke(context.Background(), nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentTurn)
	assert.Equal(t, "sess-1", state.SessionID)
	assert.Equal(t, 2, calls)

	// Distinct threads stay isolated.
	other, err := g.Invoke(context.Background(), &Delta{SessionID: StringPtr("sess-2")}, InvokeOptions{
		ThreadID:     "sess-2",
		Checkpointer: saver,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.CurrentTurn)
}

func TestInvokeMaxStepsGuard(t *testing.T) {
	g, err := NewBuilder().
		AddNode("loop", visitNode("loop")).
		AddConditionalEdges("loop", func(s *State) string {
			if len(s.Messages) > 100 {
				return End
			}
			return "loop"
		}, "loop", End).
		SetEntryPoint("loop").
		Compile()
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), nil, InvokeOptions{MaxSteps: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max steps")
}

func TestInvokeHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	g, err := NewBuilder().
		AddNode("first", func(c context.Context, s *State) (*Delta, error) {
			cancel()
			return nil, nil
		}).
		AddNode("second", visitNode("second")).
		AddEdge("first", "second").
		AddEdge("second", End).
		SetEntryPoint("first").
		Compile()
	require.NoError(t, err)

	state, err := g.Invoke(ctx, nil, InvokeOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, visited(state), "second")
}

func TestMemorySaverLatestAndDelete(t *testing.T) {
	saver := NewMemorySaver()
	ctx := context.Background()

	latest, err := saver.Latest(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, latest)

	s1 := NewState()
	s1.Apply(&Delta{CurrentTurn: IntPtr(1)})
	require.NoError(t, saver.Put(ctx, "sess-1", "ckpt-1", s1))

	s2 := NewState()
	s2.Apply(&Delta{CurrentTurn: IntPtr(2)})
	require.NoError(t, saver.Put(ctx, "sess-1", "ckpt-2", s2))

	latest, err = saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.CurrentTurn)

	// Stored snapshots are isolated from caller mutation.
	latest.CurrentTurn = 99
	again, err := saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.CurrentTurn)

	require.NoError(t, saver.Delete(ctx, "sess-1"))
	latest, err = saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestInvokeErrorFormatting(t *testing.T) {
	err := &InvokeError{Node: "writer", SessionID: "sess-1", Err: fmt.Errorf("boom")}
	assert.Equal(t, `graph invocation failed at node "writer" (session sess-1): boom`, err.Error())
	assert.EqualError(t, errors.Unwrap(err), "boom")
}
