package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
)

// Canned structured replies for the eval model. Each matches the schema of
// exactly one structured call.
const (
	intentSafeChatJSON = `{"status":"SAFE","request_type":"CHAT","guide_strategy":"LOGIC_HINT",` +
		`"keywords":["dp"],"reasoning":"hint-level question"}`
	intentBlockedJSON = `{"status":"BLOCKED","block_reason":"DIRECT_ANSWER","request_type":"CHAT",` +
		`"keywords":[],"violation_message":"정답 코드를 요구하는 요청입니다","reasoning":"asks for the full answer"}`
	intentSubmitJSON = `{"status":"SAFE","request_type":"SUBMISSION","keywords":[],"reasoning":"final code submission"}`

	turnIntentJSON = `{"intent_types":["HINT_OR_QUERY"],"confidence":0.9}`

	rubricJSON = `{"rubrics":[` +
		`{"name":"clarity","score":80,"reasoning":"clearly phrased"},` +
		`{"name":"problem_relevance","score":70,"reasoning":"on the problem"},` +
		`{"name":"examples","score":60,"reasoning":"one example"},` +
		`{"name":"rules","score":90,"reasoning":"explicit constraints"},` +
		`{"name":"context","score":75,"reasoning":"builds on the last reply"}],` +
		`"final_reasoning":"solid prompting"}`

	flowJSON = `{"overall_flow_score":82.5,"problem_decomposition":80,"feedback_integration":85,` +
		`"strategic_exploration":78,"analysis":"잘 연결된 힌트 체인"}`

	qualityJSON = `{"correctness":70,"efficiency":60,"readability":80,"best_practices":75,` +
		`"feedback":"reasonable structure"}`
)

// scriptedRoute scripts one reply of a routedLLM.
type scriptedRoute struct {
	marker string
	reply  string
	err    error
}

// routedLLM answers by matching a marker substring in the request's system
// prompt. Structured calls embed their JSON schema in the system text, so a
// schema-specific property name pins the reply to one call site and the
// script stays deterministic regardless of call order.
type routedLLM struct {
	mu     sync.Mutex
	routes []scriptedRoute
	calls  []llm.Request
}

var _ llm.Client = (*routedLLM)(nil)

func newRoutedLLM(routes ...scriptedRoute) *routedLLM {
	return &routedLLM{routes: routes}
}

func (r *routedLLM) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.calls = append(r.calls, req)
	r.mu.Unlock()

	for _, route := range r.routes {
		if !strings.Contains(req.System, route.marker) {
			continue
		}
		if route.err != nil {
			return nil, route.err
		}
		return &llm.Response{
			Text:  route.reply,
			Usage: models.TokenUsage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30},
		}, nil
	}
	// Unrouted calls are plain-text ones, e.g. the answer summary.
	return &llm.Response{
		Text:  "두 줄짜리 요약입니다.",
		Usage: models.TokenUsage{PromptTokens: 5, CompletionTokens: 3, TotalTokens: 8},
	}, nil
}

func (r *routedLLM) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	resp, err := r.Generate(ctx, req)
	chunks := make(chan llm.Chunk, 2)
	go func() {
		defer close(chunks)
		if err != nil {
			chunks <- &llm.ErrorChunk{Err: err}
			return
		}
		chunks <- &llm.TextChunk{Content: resp.Text}
		chunks <- &llm.UsageChunk{Usage: resp.Usage}
	}()
	return chunks, nil
}

func (r *routedLLM) Model() string { return "routed-test" }
func (r *routedLLM) Close() error  { return nil }

func (r *routedLLM) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *routedLLM) Calls() []llm.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]llm.Request(nil), r.calls...)
}

// evalRoutes covers every structured call the evaluation side makes during a
// chat turn or a submission run.
func evalRoutes() []scriptedRoute {
	return []scriptedRoute{
		{marker: "violation_message", reply: intentSafeChatJSON},
		{marker: "intent_types", reply: turnIntentJSON},
		{marker: "overall_flow_score", reply: flowJSON},
		{marker: "best_practices", reply: qualityJSON},
		{marker: "final_reasoning", reply: rubricJSON},
	}
}

// stubQueue is a scripted judge.Queue: every enqueued task completes
// immediately with the configured verdict, without a worker.
type stubQueue struct {
	mu       sync.Mutex
	enqueued []*judge.Task
	results  map[string]*judge.Result
	verdict  *judge.Result
}

var _ judge.Queue = (*stubQueue)(nil)

func newStubQueue(verdict *judge.Result) *stubQueue {
	return &stubQueue{verdict: verdict, results: map[string]*judge.Result{}}
}

func (q *stubQueue) Enqueue(_ context.Context, task *judge.Task) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueued = append(q.enqueued, task)
	if q.verdict != nil {
		r := *q.verdict
		r.TaskID = task.TaskID
		q.results[task.TaskID] = &r
	}
	return task.TaskID, nil
}

func (q *stubQueue) Dequeue(context.Context) (*judge.Task, error) { return nil, nil }

func (q *stubQueue) SetStatus(context.Context, string, judge.TaskState) error { return nil }

func (q *stubQueue) SaveResult(_ context.Context, taskID string, result *judge.Result) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.results[taskID] = result
	return nil
}

func (q *stubQueue) Status(_ context.Context, taskID string) (judge.TaskState, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.results[taskID]; ok {
		return judge.StateCompleted, nil
	}
	return judge.StatePending, nil
}

func (q *stubQueue) Result(_ context.Context, taskID string) (*judge.Result, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.results[taskID], nil
}

func (q *stubQueue) enqueueCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.enqueued)
}

func newTestEngine(t *testing.T, chat, eval llm.Client, queue judge.Queue, opts Options) *Engine {
	t.Helper()
	e, err := New(Dependencies{
		Chat:     chat,
		Eval:     eval,
		Prompts:  prompts.NewRegistry(),
		Problems: problems.NewRegistry(nil),
		Queue:    queue,
	}, opts)
	require.NoError(t, err)
	return e
}

func TestNewRequiresCoreDependencies(t *testing.T) {
	chat := llm.NewStubClient()
	reg := prompts.NewRegistry()
	probs := problems.NewRegistry(nil)

	tests := []struct {
		name string
		deps Dependencies
	}{
		{"missing chat", Dependencies{Eval: chat, Prompts: reg, Problems: probs}},
		{"missing eval", Dependencies{Chat: chat, Prompts: reg, Problems: probs}},
		{"missing prompts", Dependencies{Chat: chat, Eval: chat, Problems: probs}},
		{"missing problems", Dependencies{Chat: chat, Eval: chat, Prompts: reg}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.deps, Options{})
			assert.Error(t, err)
		})
	}
}

func TestEngineChatTurn(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{
		Text:  "반복문으로 부분 문제를 먼저 나눠보세요.",
		Usage: models.TokenUsage{PromptTokens: 30, CompletionTokens: 10, TotalTokens: 40},
	})
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:    graph.StringPtr("sess-1"),
		SpecID:       graph.IntPtr(10),
		HumanMessage: graph.StringPtr("DP로 접근하는 방향이 맞을까요? 힌트 주세요."),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, state.CurrentTurn)
	assert.Equal(t, models.IntentPassedHint, state.IntentStatus)
	assert.False(t, state.IsGuardrailFailed)
	assert.Equal(t, models.WriterSuccess, state.WriterStatus)
	assert.Equal(t, "반복문으로 부분 문제를 먼저 나눠보세요.", state.AIMessage)

	require.Len(t, state.Messages, 2)
	assert.Equal(t, models.RoleUser, state.Messages[0].Role)
	assert.Equal(t, models.RoleAssistant, state.Messages[1].Role)
	assert.Equal(t, 1, state.Messages[0].Turn)
	assert.Equal(t, 1, state.Messages[1].Turn)

	assert.Equal(t, 40, state.ChatTokens.TotalTokens)
	assert.NotZero(t, state.EvalTokens.TotalTokens)
	assert.Nil(t, state.FinalScores)
}

func TestEngineBlocksAnswerExtraction(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{
		Text: "시험 중에는 정답 코드를 드릴 수 없어요. 부분 문제 정의부터 이야기해볼까요?",
	})
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:    graph.StringPtr("sess-2"),
		SpecID:       graph.IntPtr(10),
		HumanMessage: graph.StringPtr("정답 코드 알려줘"),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	assert.True(t, state.IsGuardrailFailed)
	assert.Equal(t, models.IntentFailedGuardrail, state.IntentStatus)
	assert.Equal(t, "정답 코드 요청 패턴 감지", state.GuardrailMessage)
	assert.Zero(t, eval.CallCount(), "a prefilter hit must not reach the classifier")

	// The refusal is a real tutor reply, rendered from the refusal prompt
	// with the block reason interpolated.
	assert.Equal(t, models.WriterSuccess, state.WriterStatus)
	assert.NotEmpty(t, state.AIMessage)
	calls := chat.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].System, "정답 코드 요청 패턴 감지")
}

func TestEngineRecoversFromWriterRateLimit(t *testing.T) {
	chat := llm.NewStubClient(
		llm.StubResponse{Err: errors.New("429: rate limit exceeded")},
		llm.StubResponse{Text: "이제 이어서 설명드릴게요: 먼저 상태 정의부터."},
	)
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:    graph.StringPtr("sess-3"),
		SpecID:       graph.IntPtr(10),
		HumanMessage: graph.StringPtr("부분 문제 정의에 대한 힌트 주세요."),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.WriterSuccess, state.WriterStatus)
	assert.Equal(t, 1, state.RetryCount)
	assert.Equal(t, 2, state.CurrentTurn, "the retry re-opens the turn")
	assert.Equal(t, "이제 이어서 설명드릴게요: 먼저 상태 정의부터.", state.AIMessage)
	require.Len(t, state.Messages, 2)
}

func TestEngineFailsTurnAfterRetryBudget(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Err: errors.New("429: rate limit exceeded")})
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{MaxRetries: 2})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:    graph.StringPtr("sess-4"),
		SpecID:       graph.IntPtr(10),
		HumanMessage: graph.StringPtr("접근 방법 힌트 주세요."),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.WriterFailedRateLimit, state.WriterStatus)
	assert.Equal(t, 2, state.RetryCount)
	assert.Equal(t, failureFallbackReply, state.AIMessage)
	assert.NotEmpty(t, state.ErrorMessage)
	assert.Empty(t, state.Messages, "a failed exchange never enters the history")
}

func TestEngineCompactsMemoryOnContextOverflow(t *testing.T) {
	chat := llm.NewStubClient(
		llm.StubResponse{Err: errors.New("400: context length exceeded, too many tokens")},
		llm.StubResponse{Text: "요약: 참가자는 DP 상태 정의까지 도달했습니다."},
		llm.StubResponse{Text: "요약을 반영해 이어서 설명드릴게요."},
	)
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID: graph.StringPtr("sess-5"),
		SpecID:    graph.IntPtr(10),
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: "긴 대화 기록", Turn: 1, Timestamp: time.Now().UTC()},
			{Role: models.RoleAssistant, Content: "긴 대답 기록", Turn: 1, Timestamp: time.Now().UTC()},
		},
		CurrentTurn:  graph.IntPtr(1),
		HumanMessage: graph.StringPtr("다음 단계 힌트 주세요."),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.WriterSuccess, state.WriterStatus)
	assert.Equal(t, "요약: 참가자는 DP 상태 정의까지 도달했습니다.", state.MemorySummary)
	assert.Equal(t, "요약을 반영해 이어서 설명드릴게요.", state.AIMessage)
	assert.Zero(t, state.RetryCount, "compaction does not burn the rate-limit budget")
}

func TestEngineSubmissionPipeline(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Text: "제출이 접수되었습니다. 채점 중입니다."})
	eval := newRoutedLLM(evalRoutes()...)
	queue := newStubQueue(&judge.Result{
		Status:        judge.VerdictSuccess,
		Passed:        3,
		Total:         3,
		ExecutionTime: 0.2,
		MemoryUsed:    32 << 20, // 32 MiB
	})
	e := newTestEngine(t, chat, eval, queue, Options{TurnEvalParallelism: 1})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:   graph.StringPtr("sess-6"),
		SpecID:      graph.IntPtr(10),
		CurrentTurn: graph.IntPtr(1),
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: "TSP를 부분 문제로 나누는 방법 힌트 주세요.", Turn: 1, Timestamp: time.Now().UTC()},
			{Role: models.RoleAssistant, Content: "방문 상태를 집합으로 관리하는 방법을 생각해보세요.", Turn: 1, Timestamp: time.Now().UTC()},
		},
		IsSubmitted:  graph.BoolPtr(true),
		CodeContent:  graph.StringPtr("print(42)"),
		CodeLanguage: graph.StringPtr(models.LangPython),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	// One completed turn, scored with the HINT_OR_QUERY rubric weights:
	// 0.35*80 + 0.30*70 + 0.05*60 + 0.10*90 + 0.20*75 = 76.
	require.Contains(t, state.TurnScores, "turn_1")
	assert.InDelta(t, 76.0, state.TurnScores["turn_1"].TurnScore, 0.001)
	require.NotNil(t, state.AggregateTurnScore)
	assert.InDelta(t, 76.0, *state.AggregateTurnScore, 0.001)

	require.NotNil(t, state.HolisticFlowScore)
	assert.InDelta(t, 82.5, *state.HolisticFlowScore, 0.001)
	assert.Equal(t, "잘 연결된 힌트 체인", state.HolisticFlowAnalysis)

	// Spec 10 limits are 1s / 131072KB. 0.2s and 32768KB leave 80 and 75
	// points of headroom, weighted 60/40.
	require.NotNil(t, state.CodePerformanceScore)
	assert.InDelta(t, 78.0, *state.CodePerformanceScore, 0.001)
	require.NotNil(t, state.CodeCorrectnessScore)
	assert.InDelta(t, 100.0, *state.CodeCorrectnessScore, 0.001)

	require.NotNil(t, state.FinalScores)
	fs := state.FinalScores
	assert.InDelta(t, 79.25, fs.PromptScore, 0.001) // mean of 82.5 and 76
	assert.InDelta(t, 78.0, fs.PerformanceScore, 0.001)
	assert.InDelta(t, 100.0, fs.CorrectnessScore, 0.001)
	assert.InDelta(t, 89.31, fs.TotalScore, 0.001) // 0.25*79.25 + 0.25*78 + 0.5*100
	assert.Equal(t, "B", fs.Grade)

	// Both code nodes share one sandbox run.
	assert.Equal(t, 1, queue.enqueueCount())
	assert.NotEmpty(t, state.JudgeTaskID)
}

func TestEngineSubmissionWithoutQueueFallsBackToReview(t *testing.T) {
	chat := llm.NewStubClient(llm.StubResponse{Text: "제출이 접수되었습니다."})
	eval := newRoutedLLM(evalRoutes()...)
	e := newTestEngine(t, chat, eval, nil, Options{TurnEvalParallelism: 1})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:   graph.StringPtr("sess-7"),
		SpecID:      graph.IntPtr(10),
		CurrentTurn: graph.IntPtr(1),
		Messages: []models.Envelope{
			{Role: models.RoleUser, Content: "비트마스크 상태 정의 힌트 주세요.", Turn: 1, Timestamp: time.Now().UTC()},
			{Role: models.RoleAssistant, Content: "방문 집합을 정수로 인코딩해보세요.", Turn: 1, Timestamp: time.Now().UTC()},
		},
		IsSubmitted:  graph.BoolPtr(true),
		CodeContent:  graph.StringPtr("print(42)"),
		CodeLanguage: graph.StringPtr(models.LangPython),
	}, graph.InvokeOptions{})
	require.NoError(t, err)

	// Model review: performance 0.6*60 + 0.2*70 + 0.2*75 = 65,
	// correctness 0.7*70 + 0.2*60 + 0.1*75 = 68.5.
	require.NotNil(t, state.CodePerformanceScore)
	assert.InDelta(t, 65.0, *state.CodePerformanceScore, 0.001)
	require.NotNil(t, state.CodeCorrectnessScore)
	assert.InDelta(t, 68.5, *state.CodeCorrectnessScore, 0.001)
	assert.Empty(t, state.JudgeTaskID)
	require.NotNil(t, state.FinalScores)
}

func TestEngineMaxStepsGuardStopsRateLimitLoop(t *testing.T) {
	chat := llm.NewStubClient()
	eval := newRoutedLLM(scriptedRoute{marker: "violation_message", err: errors.New("429: rate limited")})
	e := newTestEngine(t, chat, eval, nil, Options{MaxSteps: 6})

	state, err := e.Invoke(context.Background(), &graph.Delta{
		SessionID:    graph.StringPtr("sess-8"),
		SpecID:       graph.IntPtr(10),
		HumanMessage: graph.StringPtr("힌트 주세요."),
	}, graph.InvokeOptions{})

	var invokeErr *graph.InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.Contains(t, invokeErr.Error(), "max steps")
	assert.Equal(t, models.IntentFailedRateLimit, state.IntentStatus)
}

func TestEngineGraphShape(t *testing.T) {
	e := newTestEngine(t, llm.NewStubClient(), llm.NewStubClient(), nil, Options{})
	require.NotNil(t, e.Graph())
}
