package judge

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/cache"
)

func newTestRedisQueue(t *testing.T) (*RedisQueue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewClient(context.Background(), cache.DefaultConfig(mr.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisQueue(client), mr
}

func TestRedisQueueRoundTrip(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestRedisQueue(t)

	id, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	assert.Equal(t, "t1", id)

	state, err := q.Status(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, StatePending, state)

	task, err := q.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "t1", task.TaskID)
	assert.Equal(t, "print(35)", task.Code)
	require.Len(t, task.TestCases, 1)
	assert.Equal(t, "35", task.TestCases[0].Expected)

	state, err = q.Status(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, StateProcessing, state)
}

func TestRedisQueueFIFOAcrossTasks(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestRedisQueue(t)

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, sampleTask("t2"))
	require.NoError(t, err)

	first, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", first.TaskID)

	second, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", second.TaskID)
}

func TestRedisQueueResultLifecycle(t *testing.T) {
	ctx := context.Background()
	q, mr := newTestRedisQueue(t)

	missing, err := q.Result(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	require.NoError(t, q.SaveResult(ctx, "t1", &Result{
		TaskID:        "t1",
		Status:        VerdictSuccess,
		Passed:        1,
		Total:         1,
		ExecutionTime: 0.42,
	}))

	state, err := q.Status(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)

	result, err := q.Result(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, VerdictSuccess, result.Status)
	assert.InDelta(t, 0.42, result.ExecutionTime, 1e-9)

	// Queue records expire on their own.
	assert.Greater(t, mr.TTL(cache.JudgeResultKey("t1")).Seconds(), 0.0)
	assert.Greater(t, mr.TTL(cache.JudgeStatusKey("t1")).Seconds(), 0.0)
}

func TestRedisQueueUnknownStatus(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestRedisQueue(t)

	state, err := q.Status(ctx, "never-enqueued")
	require.NoError(t, err)
	assert.Equal(t, StateUnknown, state)
}
