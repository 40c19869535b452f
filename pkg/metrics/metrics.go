// Package metrics exposes the process-wide Prometheus collectors: LLM call
// volume and latency, sandbox task throughput, and session graph invocations.
// Collectors register on the default registry at init; Handler serves them
// for GET /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Token kind label values.
const (
	TokenKindPrompt     = "prompt"
	TokenKindCompletion = "completion"
)

var (
	// LLMRequests counts logical LLM calls (one per call site invocation,
	// retries included in the same observation).
	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proctor",
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "LLM calls by caller, model and outcome.",
	}, []string{"caller", "model", "outcome"})

	// LLMDuration observes end-to-end LLM call latency, limiter wait and
	// retries included.
	LLMDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "proctor",
		Subsystem: "llm",
		Name:      "request_duration_seconds",
		Help:      "End-to-end LLM call latency in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"caller", "model"})

	// LLMTokens accumulates reported token usage.
	LLMTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proctor",
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "Token usage by caller, model and kind.",
	}, []string{"caller", "model", "kind"})

	// JudgeTasks counts sandbox tasks by terminal status.
	JudgeTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proctor",
		Subsystem: "judge",
		Name:      "tasks_total",
		Help:      "Sandbox execution tasks by terminal status.",
	}, []string{"status"})

	// JudgeDuration observes sandbox task wall time from claim to saved
	// result.
	JudgeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "proctor",
		Subsystem: "judge",
		Name:      "task_duration_seconds",
		Help:      "Sandbox task wall time in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	// GraphInvocations counts session graph passes by outcome.
	GraphInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proctor",
		Subsystem: "graph",
		Name:      "invocations_total",
		Help:      "Session graph invocations by outcome.",
	}, []string{"outcome"})

	// GraphDuration observes one full graph invocation.
	GraphDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "proctor",
		Subsystem: "graph",
		Name:      "invocation_duration_seconds",
		Help:      "End-to-end graph invocation latency in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)

// Outcome maps an error to its label value.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
