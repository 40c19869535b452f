package judge

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAwaitTimeout is returned by Await when the task does not complete within
// the waiting cap.
var ErrAwaitTimeout = errors.New("timed out waiting for judge result")

// Queue is shared by the enqueueing evaluator node and the worker.
// Dequeue returns (nil, nil) when no task is available; the Redis adapter
// blocks up to one second first.
type Queue interface {
	Enqueue(ctx context.Context, task *Task) (string, error)
	Dequeue(ctx context.Context) (*Task, error)
	SetStatus(ctx context.Context, taskID string, state TaskState) error
	SaveResult(ctx context.Context, taskID string, result *Result) error
	Status(ctx context.Context, taskID string) (TaskState, error)
	Result(ctx context.Context, taskID string) (*Result, error)
}

// Await polls the queue until the task reaches a terminal state, then returns
// its result. poll and maxWait fall back to 500ms and 60s when zero.
func Await(ctx context.Context, q Queue, taskID string, poll, maxWait time.Duration) (*Result, error) {
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}
	if maxWait <= 0 {
		maxWait = 60 * time.Second
	}
	deadline := time.Now().Add(maxWait)

	for {
		state, err := q.Status(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if state == StateCompleted || state == StateFailed {
			result, err := q.Result(ctx, taskID)
			if err != nil {
				return nil, err
			}
			if result == nil {
				return nil, errors.New("task finished but no result was saved")
			}
			return result, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrAwaitTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(poll):
		}
	}
}

// MemoryQueue is the in-process adapter used in tests and single-binary runs.
type MemoryQueue struct {
	mu      sync.Mutex
	pending []*Task
	results map[string]*Result
	states  map[string]TaskState
}

// NewMemoryQueue creates an empty in-process queue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{
		results: make(map[string]*Result),
		states:  make(map[string]TaskState),
	}
}

func (q *MemoryQueue) Enqueue(_ context.Context, task *Task) (string, error) {
	if err := task.Validate(); err != nil {
		return "", err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, task)
	q.states[task.TaskID] = StatePending
	return task.TaskID, nil
}

func (q *MemoryQueue) Dequeue(_ context.Context) (*Task, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, nil
	}
	task := q.pending[0]
	q.pending = q.pending[1:]
	q.states[task.TaskID] = StateProcessing
	return task, nil
}

func (q *MemoryQueue) SetStatus(_ context.Context, taskID string, state TaskState) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.states[taskID] = state
	return nil
}

func (q *MemoryQueue) SaveResult(_ context.Context, taskID string, result *Result) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.results[taskID] = result
	if result.Status == VerdictSuccess {
		q.states[taskID] = StateCompleted
	} else {
		q.states[taskID] = StateFailed
	}
	return nil
}

func (q *MemoryQueue) Status(_ context.Context, taskID string) (TaskState, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if state, ok := q.states[taskID]; ok {
		return state, nil
	}
	return StateUnknown, nil
}

func (q *MemoryQueue) Result(_ context.Context, taskID string) (*Result, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.results[taskID], nil
}

// Len reports the number of pending tasks.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
