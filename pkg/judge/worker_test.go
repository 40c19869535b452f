package judge

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor returns canned results keyed by task id.
type scriptedExecutor struct {
	results map[string]*Result
	panicOn string
}

func (e *scriptedExecutor) Execute(_ context.Context, task *Task) *Result {
	if task.TaskID == e.panicOn {
		panic("executor blew up")
	}
	return e.results[task.TaskID]
}

func TestWorkerProcessesTask(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	exec := &scriptedExecutor{results: map[string]*Result{
		"t1": {TaskID: "t1", Status: VerdictSuccess, Passed: 1, Total: 1},
	}}

	w := NewWorker(q, exec, 5*time.Millisecond)
	w.Start(ctx)
	defer w.Stop()

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	result, err := Await(ctx, q, "t1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, VerdictSuccess, result.Status)

	health := w.Health()
	assert.GreaterOrEqual(t, health.TasksProcessed, 1)
}

func TestWorkerWritesErrorResultOnPanic(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	exec := &scriptedExecutor{panicOn: "t1"}

	w := NewWorker(q, exec, 5*time.Millisecond)
	w.Start(ctx)
	defer w.Stop()

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	result, err := Await(ctx, q, "t1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, VerdictError, result.Status)
	assert.Contains(t, result.Error, "executor panic")
}

// A nil result from the executor still unblocks the waiter.
func TestWorkerGuardsNilResult(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	exec := &scriptedExecutor{results: map[string]*Result{}}

	w := NewWorker(q, exec, 5*time.Millisecond)
	w.Start(ctx)
	defer w.Stop()

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	result, err := Await(ctx, q, "t1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, VerdictError, result.Status)
	assert.Contains(t, result.Error, "no result")
}

func TestWorkerProcessesManyTasksInOrder(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	results := make(map[string]*Result)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("t%d", i)
		results[id] = &Result{TaskID: id, Status: VerdictSuccess}
	}
	w := NewWorker(q, &scriptedExecutor{results: results}, time.Millisecond)
	w.Start(ctx)
	defer w.Stop()

	for i := 0; i < 5; i++ {
		_, err := q.Enqueue(ctx, sampleTask(fmt.Sprintf("t%d", i)))
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		result, err := Await(ctx, q, fmt.Sprintf("t%d", i), time.Millisecond, time.Second)
		require.NoError(t, err)
		assert.Equal(t, VerdictSuccess, result.Status)
	}
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	w := NewWorker(NewMemoryQueue(), &scriptedExecutor{}, time.Millisecond)
	w.Start(context.Background())
	w.Stop()
	w.Stop()

	health := w.Health()
	assert.Equal(t, "idle", health.Status)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(NewMemoryQueue(), &scriptedExecutor{}, time.Millisecond)
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
