// Package judge runs submitted code against problem test cases. Submissions
// travel through a queue: the orchestrating node enqueues a Task, a worker
// pulls it, executes it in the Judge0 sandbox, and saves a Result the node
// polls for. Two queue adapters share one interface so tests run in-process
// while production uses Redis.
package judge

import (
	"fmt"

	"github.com/examkit/proctor/pkg/problems"
)

// Verdict classifies the sandbox outcome of a task.
type Verdict string

const (
	VerdictSuccess     Verdict = "success"
	VerdictTimeout     Verdict = "timeout"
	VerdictError       Verdict = "error"
	VerdictMemoryLimit Verdict = "memory_limit"
)

// TaskState is the queue lifecycle of a task.
type TaskState string

const (
	StatePending    TaskState = "pending"
	StateProcessing TaskState = "processing"
	StateCompleted  TaskState = "completed"
	StateFailed     TaskState = "failed"
	StateUnknown    TaskState = "unknown"
)

// Task is one code execution request.
type Task struct {
	TaskID        string              `json:"task_id"`
	Code          string              `json:"code"`
	Language      string              `json:"language"`
	TestCases     []problems.TestCase `json:"test_cases,omitempty"`
	CPUTimeLimit  float64             `json:"cpu_time_limit"`  // seconds
	MemoryLimitKB int                 `json:"memory_limit_kb"` // kilobytes
	Meta          map[string]string   `json:"meta,omitempty"`
}

// Validate checks the fields a worker cannot default.
func (t *Task) Validate() error {
	if t.TaskID == "" {
		return fmt.Errorf("task has no id")
	}
	if t.Code == "" {
		return fmt.Errorf("task %s has no code", t.TaskID)
	}
	return nil
}

// CaseResult is the outcome of one test case.
type CaseResult struct {
	Index    int     `json:"index"`
	Input    string  `json:"input,omitempty"`
	Expected string  `json:"expected,omitempty"`
	Actual   string  `json:"actual,omitempty"`
	Passed   bool    `json:"passed"`
	StatusID int     `json:"status_id"`
	Status   string  `json:"status_description,omitempty"`
	TimeSec  float64 `json:"time_sec"`
	MemoryKB int     `json:"memory_kb"`
	Stderr   string  `json:"stderr,omitempty"`
}

// Verdict maps the case outcome onto the verdict taxonomy.
func (c CaseResult) Verdict() Verdict {
	if c.Passed {
		return VerdictSuccess
	}
	if c.StatusID == statusTimeLimit {
		return VerdictTimeout
	}
	return VerdictError
}

// Result is the aggregate outcome of a task. Passed/Total carry the per-case
// tally; ExecutionTime and MemoryUsed are the maxima over all cases so the
// performance score reflects the worst case.
type Result struct {
	TaskID        string       `json:"task_id"`
	Status        Verdict      `json:"status"`
	Output        string       `json:"output"`
	Error         string       `json:"error,omitempty"`
	ExecutionTime float64      `json:"execution_time"` // seconds
	MemoryUsed    int64        `json:"memory_used"`    // bytes
	ExitCode      int          `json:"exit_code"`
	Passed        int          `json:"passed"`
	Total         int          `json:"total"`
	Cases         []CaseResult `json:"cases,omitempty"`
}

// PassRatio returns passed/total in [0,1]. A result with no recorded cases
// falls back to the verdict: success counts as full marks.
func (r *Result) PassRatio() float64 {
	if r.Total > 0 {
		return float64(r.Passed) / float64(r.Total)
	}
	if r.Status == VerdictSuccess {
		return 1
	}
	return 0
}

// Executed reports whether the sandbox actually ran the code. Infra failures
// (queue errors, sandbox unreachable) produce results with no cases and a
// non-success verdict; those trigger the LLM fallback instead of a zero score.
func (r *Result) Executed() bool {
	return r.Total > 0 || r.Status == VerdictSuccess
}

// ErrorResult builds the failure record a worker writes when execution never
// produced a real outcome, so waiters are unblocked.
func ErrorResult(taskID string, err error) *Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &Result{
		TaskID:   taskID,
		Status:   VerdictError,
		Error:    msg,
		ExitCode: 1,
	}
}
