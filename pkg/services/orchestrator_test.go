package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/engine"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
	"github.com/examkit/proctor/pkg/turneval"
	testdb "github.com/examkit/proctor/test/database"
)

// Canned structured replies for the eval model, matching the schema of one
// structured call each. Scores line up with the rubric weights so the derived
// totals below stay exact.
const (
	orchIntentJSON = `{"status":"SAFE","request_type":"CHAT","guide_strategy":"LOGIC_HINT",` +
		`"keywords":["dp"],"reasoning":"hint-level question"}`
	orchTurnIntentJSON = `{"intent_types":["HINT_OR_QUERY"],"confidence":0.9}`
	orchRubricJSON     = `{"rubrics":[` +
		`{"name":"clarity","score":80,"reasoning":"clearly phrased"},` +
		`{"name":"problem_relevance","score":70,"reasoning":"on the problem"},` +
		`{"name":"examples","score":60,"reasoning":"one example"},` +
		`{"name":"rules","score":90,"reasoning":"explicit constraints"},` +
		`{"name":"context","score":75,"reasoning":"builds on the last reply"}],` +
		`"final_reasoning":"solid prompting"}`
	orchFlowJSON = `{"overall_flow_score":82.5,"problem_decomposition":80,"feedback_integration":85,` +
		`"strategic_exploration":78,"analysis":"잘 연결된 힌트 체인"}`
	orchQualityJSON = `{"correctness":70,"efficiency":60,"readability":80,"best_practices":75,` +
		`"feedback":"reasonable structure"}`

	tutorReply = "반복문으로 부분 문제를 먼저 나눠보세요."
)

// evalRoute pins one scripted reply (or failure) to the structured call whose
// schema mentions the marker, so the script stays deterministic regardless of
// call order.
type evalRoute struct {
	marker string
	reply  string
	err    error
}

// scriptedEval is the llm.Client double for the evaluation side. Extra routes
// take precedence over the defaults.
type scriptedEval struct {
	mu     sync.Mutex
	routes []evalRoute
	calls  int
}

var _ llm.Client = (*scriptedEval)(nil)

func newScriptedEval(overrides ...evalRoute) *scriptedEval {
	routes := append(overrides,
		evalRoute{marker: "violation_message", reply: orchIntentJSON},
		evalRoute{marker: "intent_types", reply: orchTurnIntentJSON},
		evalRoute{marker: "overall_flow_score", reply: orchFlowJSON},
		evalRoute{marker: "best_practices", reply: orchQualityJSON},
		evalRoute{marker: "final_reasoning", reply: orchRubricJSON},
	)
	return &scriptedEval{routes: routes}
}

func (s *scriptedEval) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	for _, route := range s.routes {
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
		Text:  "두 줄 요약입니다.",
		Usage: models.TokenUsage{PromptTokens: 5, CompletionTokens: 3, TotalTokens: 8},
	}, nil
}

func (s *scriptedEval) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	resp, err := s.Generate(ctx, req)
	out := make(chan llm.Chunk, 2)
	go func() {
		defer close(out)
		if err != nil {
			out <- &llm.ErrorChunk{Err: err}
			return
		}
		out <- &llm.TextChunk{Content: resp.Text}
		out <- &llm.UsageChunk{Usage: resp.Usage}
	}()
	return out, nil
}

func (s *scriptedEval) Model() string { return "scripted-eval" }
func (s *scriptedEval) Close() error  { return nil }

// orchestratorHarness is one fully wired orchestrator over the test database,
// a miniredis-backed cache, and scripted model clients.
type orchestratorHarness struct {
	orch  *Orchestrator
	chat  *llm.StubClient
	cache *cache.Client
	redis *miniredis.Miniredis
}

// newTestOrchestrator wires the harness. No judge queue is attached, so code
// scoring always takes the model-review fallback. withTurns enables the
// background per-turn evaluator.
func newTestOrchestrator(t *testing.T, entClient *ent.Client, eval llm.Client, withTurns bool) *orchestratorHarness {
	t.Helper()

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient(context.Background(), cache.Config{
		Addr:          mr.Addr(),
		DefaultTTL:    time.Hour,
		FinalScoreTTL: 2 * time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cacheClient.Close() })

	chat := llm.NewStubClient(llm.StubResponse{
		Text:  tutorReply,
		Usage: models.TokenUsage{PromptTokens: 30, CompletionTokens: 10, TotalTokens: 40},
	})
	registry := prompts.NewRegistry()

	eng, err := engine.New(engine.Dependencies{
		Chat:     chat,
		Eval:     eval,
		Prompts:  registry,
		Problems: problems.NewRegistry(nil),
		Cache:    cacheClient,
	}, engine.Options{TurnEvalParallelism: 1})
	require.NoError(t, err)

	cfg := OrchestratorConfig{
		Engine:      eng,
		Sessions:    NewSessionService(entClient),
		Messages:    NewMessageService(entClient),
		Evaluations: NewEvaluationService(entClient),
		Submissions: NewSubmissionService(entClient),
		Cache:       cacheClient,
	}
	if withTurns {
		cfg.Turns = turneval.NewEvaluator(eval, registry)
	}
	orch, err := NewOrchestrator(cfg)
	require.NoError(t, err)

	return &orchestratorHarness{orch: orch, chat: chat, cache: cacheClient, redis: mr}
}

func TestNewOrchestratorRequiresCoreServices(t *testing.T) {
	eng, err := engine.New(engine.Dependencies{
		Chat:     llm.NewStubClient(),
		Eval:     llm.NewStubClient(),
		Prompts:  prompts.NewRegistry(),
		Problems: problems.NewRegistry(nil),
	}, engine.Options{})
	require.NoError(t, err)

	// The nil checks run before any query, so nil-backed services suffice.
	sessions := NewSessionService(nil)
	messages := NewMessageService(nil)
	evaluations := NewEvaluationService(nil)
	submissions := NewSubmissionService(nil)

	tests := []struct {
		name string
		cfg  OrchestratorConfig
	}{
		{"missing engine", OrchestratorConfig{Sessions: sessions, Messages: messages, Evaluations: evaluations, Submissions: submissions}},
		{"missing sessions", OrchestratorConfig{Engine: eng, Messages: messages, Evaluations: evaluations, Submissions: submissions}},
		{"missing messages", OrchestratorConfig{Engine: eng, Sessions: sessions, Evaluations: evaluations, Submissions: submissions}},
		{"missing evaluations", OrchestratorConfig{Engine: eng, Sessions: sessions, Messages: messages, Submissions: submissions}},
		{"missing submissions", OrchestratorConfig{Engine: eng, Sessions: sessions, Messages: messages, Evaluations: evaluations}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrchestrator(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestOrchestratorProcessMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestOrchestrator(t, client.Client, newScriptedEval(), false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 10, ParticipantID: 20, SpecID: 1,
	})
	require.NoError(t, err)

	t.Run("registers the active session", func(t *testing.T) {
		got, err := h.cache.GetString(ctx, cache.ActiveSessionKey(10, 20))
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(sess.ID), got)
	})

	t.Run("runs one turn end to end", func(t *testing.T) {
		res, err := h.orch.ProcessMessage(ctx, ProcessMessageRequest{
			SessionID: sess.ID,
			Message:   "DP로 접근하는 방향이 맞을까요? 힌트 주세요.",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Turn)
		assert.Equal(t, tutorReply, res.Response)
		assert.Equal(t, models.IntentPassedHint, res.IntentStatus)
		assert.False(t, res.IsGuardrailFailed)
		assert.Equal(t, 40, res.ChatTokens)
		assert.Equal(t, 30, res.EvalTokens)
		assert.Equal(t, 70, res.TokensUsed)

		// Both sides of the exchange are durable.
		msgs, err := NewMessageService(client.Client).GetSessionMessages(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, 1, msgs[0].Turn)
		assert.Equal(t, 1, msgs[1].Turn)
		assert.Equal(t, tutorReply, msgs[1].Content)
		assert.Equal(t, string(models.IntentPassedHint), msgs[1].Meta["intent_status"])

		got, err := NewSessionService(client.Client).GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 70, got.TotalTokens)
	})

	t.Run("state snapshot is readable", func(t *testing.T) {
		state, err := h.orch.GetSessionState(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, state.CurrentTurn)
		assert.Equal(t, tutorReply, state.AIMessage)
	})

	t.Run("rejects blank messages", func(t *testing.T) {
		_, err := h.orch.ProcessMessage(ctx, ProcessMessageRequest{SessionID: sess.ID, Message: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		_, err := h.orch.ProcessMessage(ctx, ProcessMessageRequest{SessionID: 99999, Message: "힌트"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrchestratorProcessMessageErrorEnvelope(t *testing.T) {
	client := testdb.NewTestClient(t)
	eval := newScriptedEval(evalRoute{marker: "violation_message", err: errors.New("malformed classifier output")})
	h := newTestOrchestrator(t, client.Client, eval, false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 10, ParticipantID: 20, SpecID: 1,
	})
	require.NoError(t, err)

	res, err := h.orch.ProcessMessage(ctx, ProcessMessageRequest{
		SessionID: sess.ID,
		Message:   "힌트 주세요.",
	})
	require.NoError(t, err, "an accepted turn reports graph failures in the envelope")
	assert.True(t, res.Error)
	assert.Equal(t, 1, res.Turn)
	assert.Contains(t, res.ErrorMessage, "처리 중 오류가 발생했습니다")
	assert.Contains(t, res.ErrorMessage, "malformed classifier output")
	assert.Empty(t, res.Response)

	// The participant message survived the failed invocation.
	msgs, err := NewMessageService(client.Client).GetSessionMessages(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, promptmessage.RoleUser, msgs[0].Role)
}

func TestOrchestratorSubmitCode(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestOrchestrator(t, client.Client, newScriptedEval(), false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 10, ParticipantID: 20, SpecID: 10,
	})
	require.NoError(t, err)

	_, err = h.orch.ProcessMessage(ctx, ProcessMessageRequest{
		SessionID: sess.ID,
		Message:   "비트마스크 상태 정의 힌트 주세요.",
	})
	require.NoError(t, err)

	res, err := h.orch.SubmitCode(ctx, SubmitCodeRequest{
		SessionID: sess.ID,
		Code:      "print(42)",
		Language:  models.LangPython,
	})
	require.NoError(t, err)

	assert.Equal(t, SubmissionCompleted, res.Status)
	assert.Equal(t, 2, res.Turn)
	require.NotNil(t, res.Scores)
	// One scored turn (76) averaged with the flow score (82.5) gives prompt
	// 79.25. Model review gives performance 65 and correctness 68.5, so the
	// weighted total is 0.25*79.25 + 0.25*65 + 0.5*68.5 = 70.31.
	assert.InDelta(t, 79.25, res.Scores.PromptScore, 0.001)
	assert.InDelta(t, 65.0, res.Scores.PerformanceScore, 0.001)
	assert.InDelta(t, 68.5, res.Scores.CorrectnessScore, 0.001)
	assert.InDelta(t, 70.31, res.Scores.TotalScore, 0.001)
	assert.Equal(t, "C", res.Scores.Grade)

	t.Run("closes the session", func(t *testing.T) {
		got, err := NewSessionService(client.Client).GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.EndedAt)

		_, err = h.cache.GetString(ctx, cache.ActiveSessionKey(10, 20))
		assert.ErrorIs(t, err, cache.ErrCacheMiss)

		_, err = h.orch.ProcessMessage(ctx, ProcessMessageRequest{SessionID: sess.ID, Message: "한 번만 더요"})
		assert.ErrorIs(t, err, ErrSessionClosed)
	})

	t.Run("persists the submission and score rows", func(t *testing.T) {
		subs := NewSubmissionService(client.Client)
		sub, err := subs.GetSubmission(ctx, res.SubmissionID)
		require.NoError(t, err)
		assert.Equal(t, submission.Status(SubmissionCompleted), sub.Status)
		require.NotNil(t, sub.CompletedAt)
		assert.Equal(t, "print(42)", sub.Code)
		assert.Empty(t, sub.TaskID, "model review never enqueues a sandbox task")

		row, err := subs.GetSessionScore(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, row.PromptScore)
		assert.InDelta(t, 79.25, *row.PromptScore, 0.001)
		assert.Equal(t, "C", row.Grade)
		assert.Equal(t, "model_review", row.Rubric["execution"])
	})

	t.Run("persists the evaluation rows", func(t *testing.T) {
		evals, err := NewEvaluationService(client.Client).GetSessionEvaluations(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, evals, 3)
		// The per-turn row sorts first, the two holistic rows follow.
		require.NotNil(t, evals[0].Turn)
		assert.Equal(t, 1, *evals[0].Turn)
		assert.InDelta(t, 76.0, evals[0].Score, 0.001)
		assert.ElementsMatch(t,
			[]string{string(models.EvalTypeHolistic), string(models.EvalTypeHolisticPerformance)},
			[]string{string(evals[1].EvaluationType), string(evals[2].EvaluationType)})
	})

	t.Run("scores read back from cache and database alike", func(t *testing.T) {
		fromCache, err := h.orch.GetSessionScores(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, fromCache.Final)
		assert.InDelta(t, 70.31, fromCache.Final.TotalScore, 0.001)

		h.redis.FlushAll()

		fromDB, err := h.orch.GetSessionScores(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, fromDB.Final)
		assert.InDelta(t, 70.31, fromDB.Final.TotalScore, 0.001)
		assert.InDelta(t, 79.25, fromDB.Final.PromptScore, 0.001)
		assert.Equal(t, "C", fromDB.Final.Grade)
		require.Contains(t, fromDB.TurnScores, models.TurnKey(1))
		assert.InDelta(t, 76.0, fromDB.TurnScores[models.TurnKey(1)].TurnScore, 0.001)
	})

	t.Run("history keeps the submission notice", func(t *testing.T) {
		history, err := h.orch.GetConversationHistory(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, models.RoleUser, history[2].Role)
		assert.Equal(t, "코드를 제출합니다.", history[2].Content)
	})
}

func TestOrchestratorSubmitCodeErrorEnvelope(t *testing.T) {
	client := testdb.NewTestClient(t)
	eval := newScriptedEval(evalRoute{marker: "violation_message", err: errors.New("malformed classifier output")})
	h := newTestOrchestrator(t, client.Client, eval, false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 10, ParticipantID: 20, SpecID: 1,
	})
	require.NoError(t, err)

	res, err := h.orch.SubmitCode(ctx, SubmitCodeRequest{
		SessionID: sess.ID,
		Code:      "print(42)",
	})
	require.NoError(t, err)
	assert.True(t, res.Error)
	assert.Equal(t, SubmissionFailed, res.Status)
	assert.Nil(t, res.Scores)

	// The submission row lands in the failed state.
	sub, err := NewSubmissionService(client.Client).GetSubmission(ctx, res.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, submission.Status(SubmissionFailed), sub.Status)
	require.NotNil(t, sub.CompletedAt)
}

func TestOrchestratorBackgroundTurnEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestOrchestrator(t, client.Client, newScriptedEval(), true)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 11, ParticipantID: 21, SpecID: 1,
	})
	require.NoError(t, err)

	_, err = h.orch.ProcessMessage(ctx, ProcessMessageRequest{
		SessionID: sess.ID,
		Message:   "DP 상태 정의에 대한 힌트 주세요.",
	})
	require.NoError(t, err)

	// Drain the background evaluation before reading its artifacts.
	require.NoError(t, h.orch.Shutdown(ctx))

	logs, err := h.orch.GetTurnLogs(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].Turn)
	assert.Equal(t, models.IntentHintOrQuery, logs[0].Intent)
	assert.InDelta(t, 76.0, logs[0].TurnScore, 0.001)

	// The merged snapshot surfaces the per-turn score before submission.
	state, err := h.orch.GetSessionState(ctx, sess.ID)
	require.NoError(t, err)
	require.Contains(t, state.TurnScores, models.TurnKey(1))
	assert.InDelta(t, 76.0, state.TurnScores[models.TurnKey(1)].TurnScore, 0.001)
}

func TestOrchestratorStreamMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestOrchestrator(t, client.Client, newScriptedEval(), false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 12, ParticipantID: 22, SpecID: 1,
	})
	require.NoError(t, err)

	events := make(chan StreamEvent, 32)
	go h.orch.StreamMessage(ctx, ProcessMessageRequest{
		SessionID: sess.ID,
		Message:   "그리디로 풀 수 있는지 힌트 주세요.",
	}, events)

	var deltas strings.Builder
	var last StreamEvent
	sawDelta := false
	for ev := range events {
		last = ev
		if ev.Type == StreamDelta {
			sawDelta = true
			deltas.WriteString(ev.Content)
		}
	}

	assert.True(t, sawDelta)
	require.Equal(t, StreamDone, last.Type)
	require.NotNil(t, last.Result)
	assert.Equal(t, 1, last.Result.Turn)
	assert.Equal(t, tutorReply, last.Result.Response)
	assert.Equal(t, last.Result.Response, deltas.String())

	assert.False(t, h.orch.CancelStream(sess.ID), "no live stream after completion")
}

func TestOrchestratorClearSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestOrchestrator(t, client.Client, newScriptedEval(), false)
	ctx := context.Background()

	sess, err := h.orch.StartSession(ctx, models.StartSessionRequest{
		ExamID: 13, ParticipantID: 23, SpecID: 1,
	})
	require.NoError(t, err)
	_, err = h.orch.ProcessMessage(ctx, ProcessMessageRequest{SessionID: sess.ID, Message: "힌트 주세요."})
	require.NoError(t, err)

	require.NoError(t, h.orch.ClearSession(ctx, sess.ID))

	got, err := NewSessionService(client.Client).GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.EndedAt)

	_, err = h.orch.GetSessionState(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Durable history is kept for reporting.
	history, err := h.orch.GetConversationHistory(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
