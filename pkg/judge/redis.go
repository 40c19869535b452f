package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/examkit/proctor/pkg/cache"
)

// dequeueBlock is how long a Redis dequeue waits before reporting an empty
// queue, so workers shut down promptly.
const dequeueBlock = time.Second

// RedisQueue is the production adapter. Tasks wait in a list; status and
// result records live in keys with the cache's default TTL so abandoned tasks
// expire on their own.
type RedisQueue struct {
	client *cache.Client
}

// NewRedisQueue wraps an existing cache client.
func NewRedisQueue(client *cache.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) Enqueue(ctx context.Context, task *Task) (string, error) {
	if err := task.Validate(); err != nil {
		return "", err
	}
	data, err := json.Marshal(task)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task %s: %w", task.TaskID, err)
	}
	if err := q.client.Redis().LPush(ctx, cache.QueueKey, data).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue task %s: %w", task.TaskID, err)
	}
	if err := q.SetStatus(ctx, task.TaskID, StatePending); err != nil {
		return "", err
	}
	return task.TaskID, nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*Task, error) {
	vals, err := q.client.Redis().BRPop(ctx, dequeueBlock, cache.QueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue: %w", err)
	}
	// BRPOP returns [key, value].
	if len(vals) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply of %d values", len(vals))
	}

	var task Task
	if err := json.Unmarshal([]byte(vals[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	if err := q.SetStatus(ctx, task.TaskID, StateProcessing); err != nil {
		return nil, err
	}
	return &task, nil
}

func (q *RedisQueue) SetStatus(ctx context.Context, taskID string, state TaskState) error {
	if err := q.client.SetString(ctx, cache.JudgeStatusKey(taskID), string(state)); err != nil {
		return fmt.Errorf("failed to set status for task %s: %w", taskID, err)
	}
	return nil
}

func (q *RedisQueue) SaveResult(ctx context.Context, taskID string, result *Result) error {
	if err := q.client.SetJSON(ctx, cache.JudgeResultKey(taskID), result); err != nil {
		return fmt.Errorf("failed to save result for task %s: %w", taskID, err)
	}
	state := StateFailed
	if result.Status == VerdictSuccess {
		state = StateCompleted
	}
	return q.SetStatus(ctx, taskID, state)
}

func (q *RedisQueue) Status(ctx context.Context, taskID string) (TaskState, error) {
	val, err := q.client.GetString(ctx, cache.JudgeStatusKey(taskID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return StateUnknown, nil
	}
	if err != nil {
		return StateUnknown, err
	}
	return TaskState(val), nil
}

func (q *RedisQueue) Result(ctx context.Context, taskID string) (*Result, error) {
	var result Result
	err := q.client.GetJSON(ctx, cache.JudgeResultKey(taskID), &result)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
