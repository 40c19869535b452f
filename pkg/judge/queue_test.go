package judge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/problems"
)

func sampleTask(id string) *Task {
	return &Task{
		TaskID:   id,
		Code:     "print(35)",
		Language: "python",
		TestCases: []problems.TestCase{
			{Input: "4\n", Expected: "35"},
		},
		CPUTimeLimit:  1.0,
		MemoryLimitKB: 131072,
	}
}

func TestTaskValidate(t *testing.T) {
	assert.Error(t, (&Task{}).Validate())
	assert.Error(t, (&Task{TaskID: "t1"}).Validate())
	assert.NoError(t, sampleTask("t1").Validate())
}

func TestMemoryQueueFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, sampleTask("t2"))
	require.NoError(t, err)
	assert.Equal(t, 2, q.Len())

	first, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", first.TaskID)

	second, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", second.TaskID)

	empty, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestMemoryQueueStateTransitions(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	state, err := q.Status(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, StateUnknown, state)

	_, err = q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	state, _ = q.Status(ctx, "t1")
	assert.Equal(t, StatePending, state)

	_, err = q.Dequeue(ctx)
	require.NoError(t, err)
	state, _ = q.Status(ctx, "t1")
	assert.Equal(t, StateProcessing, state)

	require.NoError(t, q.SaveResult(ctx, "t1", &Result{TaskID: "t1", Status: VerdictSuccess}))
	state, _ = q.Status(ctx, "t1")
	assert.Equal(t, StateCompleted, state)
}

func TestMemoryQueueFailedVerdictMapsToFailedState(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()

	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	require.NoError(t, q.SaveResult(ctx, "t1", &Result{TaskID: "t1", Status: VerdictError, Passed: 1, Total: 3}))

	state, _ := q.Status(ctx, "t1")
	assert.Equal(t, StateFailed, state)

	result, err := q.Result(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)
}

func TestAwaitReturnsCompletedResult(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		task, _ := q.Dequeue(ctx)
		_ = q.SaveResult(ctx, task.TaskID, &Result{TaskID: task.TaskID, Status: VerdictSuccess, Passed: 1, Total: 1})
	}()

	result, err := Await(ctx, q, "t1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, VerdictSuccess, result.Status)
}

// A partially failing run lands in the failed state; Await must still hand
// the result back so correctness can be scored from the pass ratio.
func TestAwaitReturnsFailedResult(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)
	require.NoError(t, q.SaveResult(ctx, "t1", &Result{TaskID: "t1", Status: VerdictError, Passed: 2, Total: 4}))

	result, err := Await(ctx, q, "t1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, VerdictError, result.Status)
	assert.InDelta(t, 0.5, result.PassRatio(), 1e-9)
}

func TestAwaitTimesOut(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue()
	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	_, err = Await(ctx, q, "t1", 5*time.Millisecond, 30*time.Millisecond)
	assert.ErrorIs(t, err, ErrAwaitTimeout)
}

func TestAwaitHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewMemoryQueue()
	_, err := q.Enqueue(ctx, sampleTask("t1"))
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = Await(ctx, q, "t1", 5*time.Millisecond, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPassRatio(t *testing.T) {
	assert.InDelta(t, 0.75, (&Result{Passed: 3, Total: 4}).PassRatio(), 1e-9)
	assert.InDelta(t, 1.0, (&Result{Status: VerdictSuccess}).PassRatio(), 1e-9)
	assert.InDelta(t, 0.0, (&Result{Status: VerdictError}).PassRatio(), 1e-9)
}

func TestExecuted(t *testing.T) {
	// Cases ran: a real grading signal even when some failed.
	assert.True(t, (&Result{Status: VerdictError, Passed: 1, Total: 2}).Executed())
	assert.True(t, (&Result{Status: VerdictSuccess}).Executed())
	// Nothing ran: infra failure, the caller should fall back.
	assert.False(t, (&Result{Status: VerdictError}).Executed())
}

func TestErrorResult(t *testing.T) {
	r := ErrorResult("t9", errors.New("sandbox unreachable"))
	assert.Equal(t, "t9", r.TaskID)
	assert.Equal(t, VerdictError, r.Status)
	assert.Equal(t, "sandbox unreachable", r.Error)
	assert.Equal(t, 1, r.ExitCode)
	assert.False(t, r.Executed())
}
