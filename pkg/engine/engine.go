// Package engine assembles and runs the session graph that drives an exam
// conversation: the request handler, the two-layer intent guardrail, the
// Socratic writer, memory summarization, and the submission-time evaluation
// pipeline (per-turn guard, holistic flow, code execution, final
// aggregation). Each node is a method on Engine returning a state delta;
// the edges and routers mirror the declared flow in routers.go.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/metrics"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
	"github.com/examkit/proctor/pkg/turneval"
)

// Node names. Wire-visible: they appear in checkpoint logs and invoke errors.
const (
	NodeHandleRequest       = "handle_request"
	NodeIntentAnalyzer      = "intent_analyzer"
	NodeWriter              = "writer"
	NodeHandleFailure       = "handle_failure"
	NodeSummarizeMemory     = "summarize_memory"
	NodeEvalTurnGuard       = "eval_turn_guard"
	NodeEvalHolisticFlow    = "eval_holistic_flow"
	NodeAggregateTurnScores = "aggregate_turn_scores"
	NodeEvalCodePerformance = "eval_code_performance"
	NodeEvalCodeCorrectness = "eval_code_correctness"
	NodeAggregateFinal      = "aggregate_final_scores"
)

// Dependencies carries the collaborators an Engine wires into its nodes.
// Chat, Eval, Prompts and Problems are required. Cache and Queue are
// optional: without a cache the engine skips turn mappings and cached turn
// logs, and without a queue code scoring falls back to model review.
type Dependencies struct {
	// Chat generates tutor replies and memory summaries; Eval runs the
	// guardrail classifier and every scoring call.
	Chat llm.Client
	Eval llm.Client

	Prompts  *prompts.Registry
	Problems *problems.Registry

	Cache *cache.Client
	Queue judge.Queue

	// Turns evaluates single turns at submission time. Nil builds a default
	// evaluator over Eval and Prompts.
	Turns *turneval.Evaluator

	Logger *slog.Logger
}

// Options tune engine behaviour. Zero values fall back to the documented
// defaults.
type Options struct {
	// HistoryWindow caps how many past envelopes feed the writer prompt.
	// Default 10.
	HistoryWindow int
	// TurnEvalParallelism caps concurrent per-turn evaluations inside the
	// submission guard. Default 5.
	TurnEvalParallelism int

	// GuardrailEnabled toggles the Layer 1 keyword prefilter. Nil means
	// enabled. Layer 2 always runs: the writer needs its strategy verdict
	// even when blocking is off.
	GuardrailEnabled *bool
	// ExtraBlockKeywords and ExtraHintKeywords extend the prefilter tables
	// per deployment.
	ExtraBlockKeywords []string
	ExtraHintKeywords  []string

	// ResultPollInterval and ResultMaxWait bound the wait for sandbox
	// verdicts. Defaults 500ms and 60s.
	ResultPollInterval time.Duration
	ResultMaxWait      time.Duration

	// MaxRetries bounds writer rate-limit retries before the failure handler
	// takes over. Default 3.
	MaxRetries int
	// MaxSteps bounds one graph invocation. Default graph.DefaultMaxSteps.
	MaxSteps int

	// Final score weights. All three zero means the canonical
	// 0.25 / 0.25 / 0.50 split.
	PromptWeight      float64
	PerformanceWeight float64
	CorrectnessWeight float64
}

func (o Options) withDefaults() Options {
	if o.HistoryWindow <= 0 {
		o.HistoryWindow = 10
	}
	if o.TurnEvalParallelism <= 0 {
		o.TurnEvalParallelism = 5
	}
	if o.ResultPollInterval <= 0 {
		o.ResultPollInterval = 500 * time.Millisecond
	}
	if o.ResultMaxWait <= 0 {
		o.ResultMaxWait = 60 * time.Second
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = graph.DefaultMaxSteps
	}
	if o.PromptWeight == 0 && o.PerformanceWeight == 0 && o.CorrectnessWeight == 0 {
		o.PromptWeight = models.WeightPrompt
		o.PerformanceWeight = models.WeightPerformance
		o.CorrectnessWeight = models.WeightCorrectness
	}
	return o
}

func (o Options) prefilterEnabled() bool {
	return o.GuardrailEnabled == nil || *o.GuardrailEnabled
}

// Engine owns the compiled session graph and the node implementations.
// Safe for concurrent use; all per-session data lives in graph state.
type Engine struct {
	chat     llm.Client
	eval     llm.Client
	prompts  *prompts.Registry
	problems *problems.Registry
	cache    *cache.Client
	queue    judge.Queue
	turns    *turneval.Evaluator

	opts   Options
	graph  *graph.Graph
	logger *slog.Logger
}

// New validates the dependencies, assembles the session graph and returns a
// ready engine.
func New(deps Dependencies, opts Options) (*Engine, error) {
	switch {
	case deps.Chat == nil:
		return nil, fmt.Errorf("engine: chat client is required")
	case deps.Eval == nil:
		return nil, fmt.Errorf("engine: eval client is required")
	case deps.Prompts == nil:
		return nil, fmt.Errorf("engine: prompt registry is required")
	case deps.Problems == nil:
		return nil, fmt.Errorf("engine: problem registry is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	turns := deps.Turns
	if turns == nil {
		turns = turneval.NewEvaluator(deps.Eval, deps.Prompts)
	}

	e := &Engine{
		chat:     deps.Chat,
		eval:     deps.Eval,
		prompts:  deps.Prompts,
		problems: deps.Problems,
		cache:    deps.Cache,
		queue:    deps.Queue,
		turns:    turns,
		opts:     opts.withDefaults(),
		logger:   logger.With("component", "engine"),
	}

	g, err := e.buildGraph()
	if err != nil {
		return nil, fmt.Errorf("assembling session graph: %w", err)
	}
	e.graph = g
	return e, nil
}

func (e *Engine) buildGraph() (*graph.Graph, error) {
	b := graph.NewBuilder()

	b.AddNode(NodeHandleRequest, e.handleRequest)
	b.AddNode(NodeIntentAnalyzer, e.analyzeIntent)
	b.AddNode(NodeWriter, e.write)
	b.AddNode(NodeHandleFailure, e.handleFailure)
	b.AddNode(NodeSummarizeMemory, e.summarizeMemory)
	b.AddNode(NodeEvalTurnGuard, e.evalTurnGuard)
	b.AddNode(NodeEvalHolisticFlow, e.evalHolisticFlow)
	b.AddNode(NodeAggregateTurnScores, e.aggregateTurnScores)
	b.AddNode(NodeEvalCodePerformance, e.evalCodePerformance)
	b.AddNode(NodeEvalCodeCorrectness, e.evalCodeCorrectness)
	b.AddNode(NodeAggregateFinal, e.aggregateFinalScores)

	b.SetEntryPoint(NodeHandleRequest)
	b.AddEdge(NodeHandleRequest, NodeIntentAnalyzer)

	b.AddConditionalEdges(NodeIntentAnalyzer, e.intentRouter,
		NodeWriter, NodeHandleFailure, NodeSummarizeMemory, NodeHandleRequest, NodeEvalTurnGuard)
	b.AddConditionalEdges(NodeWriter, e.writerRouter,
		graph.End, NodeHandleFailure, NodeSummarizeMemory, NodeHandleRequest)
	b.AddConditionalEdges(NodeEvalTurnGuard, e.mainRouter,
		NodeEvalHolisticFlow, NodeHandleRequest, graph.End)
	b.AddConditionalEdges(NodeHandleFailure, e.mainRouter,
		NodeEvalHolisticFlow, NodeHandleRequest, graph.End)
	b.AddEdge(NodeSummarizeMemory, NodeHandleRequest)

	b.AddEdge(NodeEvalHolisticFlow, NodeAggregateTurnScores)
	b.AddEdge(NodeAggregateTurnScores, NodeEvalCodePerformance)
	b.AddEdge(NodeEvalCodePerformance, NodeEvalCodeCorrectness)
	b.AddEdge(NodeEvalCodeCorrectness, NodeAggregateFinal)
	b.AddEdge(NodeAggregateFinal, graph.End)

	return b.Compile()
}

// Invoke runs one graph pass. The input delta is applied on top of the
// resumed checkpoint state (if opts.Checkpointer is set), exactly as
// graph.Invoke documents. MaxSteps defaults to the engine option.
func (e *Engine) Invoke(ctx context.Context, input *graph.Delta, opts graph.InvokeOptions) (*graph.State, error) {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = e.opts.MaxSteps
	}
	start := time.Now()
	state, err := e.graph.Invoke(ctx, input, opts)
	metrics.GraphInvocations.WithLabelValues(metrics.Outcome(err)).Inc()
	metrics.GraphDuration.Observe(time.Since(start).Seconds())
	return state, err
}

// Graph exposes the compiled graph, mainly for shape assertions in tests.
func (e *Engine) Graph() *graph.Graph { return e.graph }

// resolveProblem loads the problem context for the session's spec. The
// registry never fails: a missing spec yields an empty context.
func (e *Engine) resolveProblem(ctx context.Context, specID int) *problems.Context {
	return e.problems.Resolve(ctx, specID)
}
