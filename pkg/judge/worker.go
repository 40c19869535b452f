package judge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/examkit/proctor/pkg/metrics"
)

// Executor runs one task to completion. Implementations never return nil;
// failures are folded into the Result.
type Executor interface {
	Execute(ctx context.Context, task *Task) *Result
}

// WorkerHealth is a point-in-time snapshot for the health endpoint.
type WorkerHealth struct {
	Status         string    `json:"status"`
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

// Worker pulls tasks from the queue and executes them. With the in-memory
// queue it runs as a goroutine inside the API server; with the Redis queue it
// can also run as a separate process.
type Worker struct {
	queue    Queue
	executor Executor
	poll     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu             sync.RWMutex
	working        bool
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a worker. poll is the idle sleep between empty dequeues;
// zero means 100ms.
func NewWorker(queue Queue, executor Executor, poll time.Duration) *Worker {
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	return &Worker{
		queue:        queue,
		executor:     executor,
		poll:         poll,
		stopCh:       make(chan struct{}),
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight task to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker state.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	status := "idle"
	if w.working {
		status = "working"
	}
	return WorkerHealth{
		Status:         status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.Default().With("component", "judge_worker")
	log.Info("Judge worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Judge worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, judge worker shutting down")
			return
		default:
			task, err := w.queue.Dequeue(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Error("Dequeue failed", "error", err)
				w.sleep(time.Second)
				continue
			}
			if task == nil {
				w.sleep(w.poll)
				continue
			}
			w.process(ctx, task, log)
		}
	}
}

// sleep waits for d or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// process executes one task and saves its result. A panic or a nil result
// from the executor still produces an error result so waiters are never
// stuck until the await cap.
func (w *Worker) process(ctx context.Context, task *Task, log *slog.Logger) {
	log.Info("Task claimed", "task_id", task.TaskID, "language", task.Language, "test_cases", len(task.TestCases))
	w.setWorking(task.TaskID)
	defer w.setIdle()

	start := time.Now()
	result := w.execute(ctx, task)
	if result == nil {
		result = ErrorResult(task.TaskID, fmt.Errorf("executor returned no result"))
	}
	metrics.JudgeTasks.WithLabelValues(string(result.Status)).Inc()
	metrics.JudgeDuration.Observe(time.Since(start).Seconds())

	if err := w.queue.SaveResult(ctx, task.TaskID, result); err != nil {
		log.Error("Failed to save result", "task_id", task.TaskID, "error", err)
		return
	}
	log.Info("Task finished",
		"task_id", task.TaskID,
		"status", result.Status,
		"passed", result.Passed,
		"total", result.Total,
		"execution_time", result.ExecutionTime)
}

func (w *Worker) execute(ctx context.Context, task *Task) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			result = ErrorResult(task.TaskID, fmt.Errorf("executor panic: %v", r))
		}
	}()
	return w.executor.Execute(ctx, task)
}

func (w *Worker) setWorking(taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.working = true
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}

func (w *Worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.working = false
	w.currentTaskID = ""
	w.tasksProcessed++
	w.lastActivity = time.Now()
}
