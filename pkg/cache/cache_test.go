package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), Config{
		Addr:          mr.Addr(),
		DefaultTTL:    time.Hour,
		FinalScoreTTL: 2 * time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewClientFailsWithoutServer(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping")
}

func TestSetGetJSONRoundtrip(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	require.NoError(t, client.SetJSON(ctx, "test:key", record{Name: "turn", Score: 42}))

	var got record
	require.NoError(t, client.GetJSON(ctx, "test:key", &got))
	assert.Equal(t, "turn", got.Name)
	assert.Equal(t, 42, got.Score)

	// Default TTL applied.
	assert.Equal(t, time.Hour, mr.TTL("test:key"))
}

func TestGetJSONMiss(t *testing.T) {
	client, _ := newTestClient(t)

	var v map[string]any
	err := client.GetJSON(context.Background(), "absent", &v)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestKeysExpire(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SetJSONTTL(ctx, "short", 1, time.Minute))
	mr.FastForward(2 * time.Minute)

	var v int
	assert.ErrorIs(t, client.GetJSON(ctx, "short", &v), ErrCacheMiss)
}

func TestDeleteAndExists(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SetString(ctx, "k1", "v1"))

	ok, err := client.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, client.Delete(ctx, "k1", "never-existed"))

	ok, err = client.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "langgraph:state:s1", StateKey("s1"))
	assert.Equal(t, "langgraph:checkpoint:s1:c9", CheckpointKey("s1", "c9"))
	assert.Equal(t, "langgraph:checkpoint:s1:latest", CheckpointLatestKey("s1"))
	assert.Equal(t, "turn_logs:s1:3", TurnLogKey("s1", 3))
	assert.Equal(t, "turn:data:s1:3", TurnDataKey("s1", 3))
	assert.Equal(t, "turn_mapping:s1", TurnMappingKey("s1"))
	assert.Equal(t, "memory:summary:s1", MemorySummaryKey("s1"))
	assert.Equal(t, "eval:scores:s1", ScoresKey("s1"))
	assert.Equal(t, "judge_status:j1", JudgeStatusKey("j1"))
	assert.Equal(t, "judge_result:j1", JudgeResultKey("j1"))
	assert.Equal(t, "session:active:7:21", ActiveSessionKey(7, 21))
	assert.Equal(t, "judge_queue:pending", QueueKey)
}

func TestStateStoreRoundtrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	store := NewStateStore(client)

	state := graph.NewState()
	state.Apply(&graph.Delta{
		SessionID:   graph.StringPtr("sess-1"),
		CurrentTurn: graph.IntPtr(3),
	})
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "sess-1", loaded.SessionID)
	assert.Equal(t, 3, loaded.CurrentTurn)

	// Missing session loads as nil, not an error.
	loaded, err = store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	loaded, err = store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStateStoreRejectsAnonymousState(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewStateStore(client)

	err := store.Save(context.Background(), graph.NewState())
	assert.Error(t, err)
}

func TestStateStorePurgeSession(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	store := NewStateStore(client)

	state := graph.NewState()
	state.Apply(&graph.Delta{SessionID: graph.StringPtr("sess-1")})
	require.NoError(t, store.Save(ctx, state))
	require.NoError(t, client.SetString(ctx, TurnMappingKey("sess-1"), "{}"))
	require.NoError(t, client.SetString(ctx, MemorySummaryKey("sess-1"), "summary"))

	require.NoError(t, store.PurgeSession(ctx, "sess-1"))

	for _, key := range []string{StateKey("sess-1"), TurnMappingKey("sess-1"), MemorySummaryKey("sess-1")} {
		ok, err := client.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestSaverPutLatestDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	saver := NewSaver(client)

	latest, err := saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, latest)

	s1 := graph.NewState()
	s1.Apply(&graph.Delta{SessionID: graph.StringPtr("sess-1"), CurrentTurn: graph.IntPtr(1)})
	require.NoError(t, saver.Put(ctx, "sess-1", "ckpt-1", s1))

	s2 := s1.Clone()
	s2.Apply(&graph.Delta{CurrentTurn: graph.IntPtr(2)})
	require.NoError(t, saver.Put(ctx, "sess-1", "ckpt-2", s2))

	latest, err = saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.CurrentTurn)

	// The older snapshot is still addressable.
	old := graph.NewState()
	require.NoError(t, client.GetJSON(ctx, CheckpointKey("sess-1", "ckpt-1"), old))
	assert.Equal(t, 1, old.CurrentTurn)

	require.NoError(t, saver.Delete(ctx, "sess-1"))
	latest, err = saver.Latest(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestSaverWorksAsGraphCheckpointer(t *testing.T) {
	client, _ := newTestClient(t)
	saver := NewSaver(client)

	g, err := graph.NewBuilder().
		AddNode("bump", func(ctx context.Context, s *graph.State) (*graph.Delta, error) {
			return &graph.Delta{CurrentTurn: graph.IntPtr(s.CurrentTurn + 1)}, nil
		}).
		AddEdge("bump", graph.End).
		SetEntryPoint("bump").
		Compile()
	require.NoError(t, err)

	opts := graph.InvokeOptions{ThreadID: "sess-1", Checkpointer: saver}
	input := &graph.Delta{SessionID: graph.StringPtr("sess-1")}

	state, err := g.Invoke(context.Background(), input, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentTurn)

	// Second invocation resumes from the Redis snapshot.
	state, err = g.Invoke(context.Background(), nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentTurn)
}
