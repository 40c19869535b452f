package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/engine"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/tokens"
	"github.com/examkit/proctor/pkg/turneval"
)

const (
	defaultChatTimeout   = 60 * time.Second
	defaultSubmitTimeout = 120 * time.Second

	// turnEvalTimeout bounds one background per-turn evaluation.
	turnEvalTimeout = 60 * time.Second

	// submissionNotice is the canonical participant message recorded for a
	// code submission turn.
	submissionNotice = "코드를 제출합니다."

	// processErrorPrefix opens the error_message of every failed-invocation
	// envelope.
	processErrorPrefix = "처리 중 오류가 발생했습니다: "
)

// Orchestrator drives a participant session end to end: durable message
// writes, graph invocations, cached state snapshots, background per-turn
// evaluation, and submission grading. The write order per turn is fixed:
// the participant message is persisted before the graph runs, the tutor
// reply right after it, and cache writes are best effort at the end, so a
// crash never loses an exchange that the participant saw.
type Orchestrator struct {
	engine      *engine.Engine
	sessions    *SessionService
	messages    *MessageService
	evaluations *EvaluationService
	submissions *SubmissionService
	queue       judge.Queue
	cache       *cache.Client
	states      *cache.StateStore
	saver       graph.Checkpointer
	turns       *turneval.Evaluator
	problems    *problems.Registry
	counter     *tokens.Counter
	logger      *slog.Logger

	chatTimeout   time.Duration
	submitTimeout time.Duration

	mu      sync.Mutex
	streams map[int]*streamHandle

	bg sync.WaitGroup
}

// OrchestratorConfig carries the orchestrator's collaborators. Engine and the
// four persistence services are required. Cache is optional: without it the
// orchestrator skips snapshots, checkpoints and turn logs. Turns is optional:
// without it chat turns are only evaluated at submission time.
type OrchestratorConfig struct {
	Engine      *engine.Engine
	Sessions    *SessionService
	Messages    *MessageService
	Evaluations *EvaluationService
	Submissions *SubmissionService

	Queue    judge.Queue
	Cache    *cache.Client
	Turns    *turneval.Evaluator
	Problems *problems.Registry
	Counter  *tokens.Counter
	Logger   *slog.Logger

	// ChatTimeout and SubmitTimeout bound one graph invocation per path.
	// Defaults 60s and 120s.
	ChatTimeout   time.Duration
	SubmitTimeout time.Duration
}

// NewOrchestrator validates the configuration and returns a ready
// orchestrator.
func NewOrchestrator(cfg OrchestratorConfig) (*Orchestrator, error) {
	switch {
	case cfg.Engine == nil:
		return nil, fmt.Errorf("orchestrator: engine is required")
	case cfg.Sessions == nil:
		return nil, fmt.Errorf("orchestrator: session service is required")
	case cfg.Messages == nil:
		return nil, fmt.Errorf("orchestrator: message service is required")
	case cfg.Evaluations == nil:
		return nil, fmt.Errorf("orchestrator: evaluation service is required")
	case cfg.Submissions == nil:
		return nil, fmt.Errorf("orchestrator: submission service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	counter := cfg.Counter
	if counter == nil {
		counter = tokens.Default()
	}
	chatTimeout := cfg.ChatTimeout
	if chatTimeout <= 0 {
		chatTimeout = defaultChatTimeout
	}
	submitTimeout := cfg.SubmitTimeout
	if submitTimeout <= 0 {
		submitTimeout = defaultSubmitTimeout
	}

	o := &Orchestrator{
		engine:        cfg.Engine,
		sessions:      cfg.Sessions,
		messages:      cfg.Messages,
		evaluations:   cfg.Evaluations,
		submissions:   cfg.Submissions,
		queue:         cfg.Queue,
		cache:         cfg.Cache,
		turns:         cfg.Turns,
		problems:      cfg.Problems,
		counter:       counter,
		logger:        logger.With("component", "orchestrator"),
		chatTimeout:   chatTimeout,
		submitTimeout: submitTimeout,
		streams:       map[int]*streamHandle{},
	}
	if cfg.Cache != nil {
		o.states = cache.NewStateStore(cfg.Cache)
		o.saver = cache.NewSaver(cfg.Cache)
	}
	return o, nil
}

// stateID is the graph-side session identifier for a database session row.
func stateID(sessionID int) string {
	return fmt.Sprintf("session_%d", sessionID)
}

// ProcessMessageRequest is one participant prompt bound for the graph.
type ProcessMessageRequest struct {
	SessionID int    `json:"session_id"`
	Message   string `json:"message"`
}

// ProcessMessageResult is the reply envelope for one chat turn. A failed
// invocation comes back with Error set and the remaining fields zeroed; the
// participant message is durable either way.
type ProcessMessageResult struct {
	SessionID         int                 `json:"session_id"`
	Turn              int                 `json:"turn"`
	Response          string              `json:"response"`
	IntentStatus      models.IntentStatus `json:"intent_status,omitempty"`
	IsGuardrailFailed bool                `json:"is_guardrail_failed"`
	GuardrailMessage  string              `json:"guardrail_message,omitempty"`
	TokensUsed        int                 `json:"tokens_used"`
	ChatTokens        int                 `json:"chat_tokens"`
	EvalTokens        int                 `json:"eval_tokens"`

	Error        bool              `json:"error,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	ErrorDetails map[string]string `json:"error_details,omitempty"`
}

// SubmitCodeRequest is a final code submission for grading.
type SubmitCodeRequest struct {
	SessionID int    `json:"session_id"`
	Code      string `json:"code"`
	Language  string `json:"language"`
}

// SubmitResult reports the grading outcome of a submission.
type SubmitResult struct {
	SessionID    int                 `json:"session_id"`
	SubmissionID int                 `json:"submission_id"`
	Turn         int                 `json:"turn"`
	Status       string              `json:"status"`
	Scores       *models.FinalScores `json:"scores,omitempty"`

	Error        bool              `json:"error,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	ErrorDetails map[string]string `json:"error_details,omitempty"`
}

// StartSession opens (or returns) the session for an exam participant and
// registers it in the cache's active-session index.
func (o *Orchestrator) StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.PromptSession, error) {
	sess, err := o.sessions.StartSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if o.cache != nil {
		key := cache.ActiveSessionKey(sess.ExamID, sess.ParticipantID)
		if err := o.cache.SetString(ctx, key, strconv.Itoa(sess.ID)); err != nil {
			o.logger.Warn("Active session registration failed",
				"session_id", sess.ID, "error", err)
		}
	}
	return sess, nil
}

// ProcessMessage runs one chat turn: persist the prompt, invoke the graph,
// persist the reply, snapshot state, and kick off the background per-turn
// evaluation. Infrastructure and validation failures return an error; a
// failed graph invocation returns a populated error envelope instead, since
// the turn itself was accepted.
func (o *Orchestrator) ProcessMessage(ctx context.Context, req ProcessMessageRequest) (*ProcessMessageResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, NewValidationError("message", "is required")
	}

	sess, err := o.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.EndedAt != nil {
		return nil, fmt.Errorf("%w: session %d", ErrSessionClosed, sess.ID)
	}

	outcome, err := o.runTurn(ctx, sess, turnInput{message: req.Message}, o.chatTimeout)
	if err != nil {
		return nil, err
	}
	if outcome.invokeErr != nil {
		return chatErrorEnvelope(sess.ID, outcome.turn, outcome.invokeErr), nil
	}

	state := outcome.state
	return &ProcessMessageResult{
		SessionID:         sess.ID,
		Turn:              outcome.turn,
		Response:          state.AIMessage,
		IntentStatus:      state.IntentStatus,
		IsGuardrailFailed: state.IsGuardrailFailed,
		GuardrailMessage:  state.GuardrailMessage,
		TokensUsed:        outcome.tokensUsed,
		ChatTokens:        outcome.chatTokens,
		EvalTokens:        outcome.evalTokens,
	}, nil
}

// SubmitCode grades a final submission: it records the submission row, runs
// the full evaluation pipeline, persists every evaluation and sandbox run,
// writes the score, and closes the session.
func (o *Orchestrator) SubmitCode(ctx context.Context, req SubmitCodeRequest) (*SubmitResult, error) {
	sess, err := o.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.EndedAt != nil {
		return nil, fmt.Errorf("%w: session %d", ErrSessionClosed, sess.ID)
	}

	sub, err := o.submissions.CreateSubmission(ctx, models.CreateSubmissionRequest{
		SessionID:     sess.ID,
		ExamID:        sess.ExamID,
		ParticipantID: sess.ParticipantID,
		SpecID:        sess.SpecID,
		Code:          req.Code,
		Language:      req.Language,
	})
	if err != nil {
		return nil, err
	}
	log := o.logger.With("session_id", sess.ID, "submission_id", sub.ID)

	outcome, err := o.runTurn(ctx, sess, turnInput{
		message:  submissionNotice,
		submit:   true,
		code:     req.Code,
		language: sub.Language,
	}, o.submitTimeout)
	if err != nil {
		o.failSubmission(sub.ID)
		return nil, err
	}
	if outcome.invokeErr != nil {
		o.failSubmission(sub.ID)
		return submitErrorEnvelope(sess.ID, sub.ID, outcome.turn, outcome.invokeErr), nil
	}

	state := outcome.state
	o.persistEvaluations(ctx, sess.ID, state)
	o.persistRuns(ctx, sub.ID, state, log)

	if state.FinalScores != nil {
		if err := o.persistScore(ctx, sub.ID, sess.ID, state); err != nil {
			log.Error("Score persistence failed", "error", err)
			o.failSubmission(sub.ID)
			return nil, fmt.Errorf("saving score: %w", err)
		}
	} else {
		log.Warn("Submission finished without final scores")
	}

	if err := o.submissions.Complete(ctx, sub.ID, SubmissionCompleted); err != nil {
		log.Warn("Submission completion update failed", "error", err)
	}
	if err := o.sessions.EndSession(ctx, sess.ID); err != nil {
		log.Warn("Session close failed", "error", err)
	}
	if o.cache != nil {
		key := cache.ActiveSessionKey(sess.ExamID, sess.ParticipantID)
		if err := o.cache.Delete(ctx, key); err != nil {
			log.Warn("Active session cleanup failed", "error", err)
		}
	}

	log.Info("Submission graded",
		"turn", outcome.turn,
		"has_scores", state.FinalScores != nil,
		"tokens_used", outcome.tokensUsed)

	return &SubmitResult{
		SessionID:    sess.ID,
		SubmissionID: sub.ID,
		Turn:         outcome.turn,
		Status:       SubmissionCompleted,
		Scores:       state.FinalScores,
	}, nil
}

// turnInput is the orchestrator-side input of one graph invocation.
type turnInput struct {
	message  string
	submit   bool
	code     string
	language string
}

// turnOutcome bundles one finished invocation. invokeErr is set when the
// graph aborted; state then holds the partial state for diagnostics.
type turnOutcome struct {
	turn       int
	state      *graph.State
	invokeErr  *graph.InvokeError
	tokensUsed int
	chatTokens int
	evalTokens int
}

// runTurn executes the per-turn write protocol around one graph invocation.
func (o *Orchestrator) runTurn(ctx context.Context, sess *ent.PromptSession, in turnInput, timeout time.Duration) (*turnOutcome, error) {
	sid := stateID(sess.ID)
	log := o.logger.With("session_id", sess.ID, "state_id", sid)

	// 1. Durable participant message. Turn 0 lets the database assign the
	// next turn number atomically under concurrent requests.
	userMeta := map[string]interface{}{}
	if in.submit {
		userMeta["is_submission"] = true
	}
	userMsg, err := o.messages.SaveMessage(ctx, models.SaveMessageRequest{
		SessionID:  sess.ID,
		Role:       models.RoleUser,
		Content:    in.message,
		TokenCount: o.counter.Count(in.message),
		Meta:       userMeta,
	})
	if err != nil {
		return nil, fmt.Errorf("saving user message: %w", err)
	}
	turn := userMsg.Turn

	// Token accounting and the previous tutor reply both come from the
	// checkpoint the graph will resume from.
	var baseChat, baseEval int
	var prevReply string
	if o.saver != nil {
		base, err := o.saver.Latest(ctx, sid)
		if err != nil {
			log.Warn("Checkpoint baseline read failed", "error", err)
		} else if base != nil {
			baseChat = base.ChatTokens.TotalTokens
			baseEval = base.EvalTokens.TotalTokens
			prevReply = base.AIMessage
		}
	}

	// 2. Graph invocation. The entry node advances the turn counter, so the
	// seed is one below the database-assigned turn.
	input := &graph.Delta{
		SessionID:     graph.StringPtr(sid),
		ExamID:        graph.IntPtr(sess.ExamID),
		ParticipantID: graph.IntPtr(sess.ParticipantID),
		SpecID:        graph.IntPtr(sess.SpecID),
		CurrentTurn:   graph.IntPtr(turn - 1),
		HumanMessage:  graph.StringPtr(in.message),
		AIMessage:     graph.StringPtr(""),
		IsSubmitted:   graph.BoolPtr(in.submit),
		ErrorMessage:  graph.StringPtr(""),
		RetryCount:    graph.IntPtr(0),
	}
	if in.submit {
		input.CodeContent = graph.StringPtr(in.code)
		input.CodeLanguage = graph.StringPtr(in.language)
	}

	invokeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	state, err := o.engine.Invoke(invokeCtx, input, graph.InvokeOptions{
		ThreadID:     sid,
		Checkpointer: o.saver,
	})
	if err != nil {
		var invokeErr *graph.InvokeError
		if !errors.As(err, &invokeErr) {
			return nil, fmt.Errorf("invoking graph: %w", err)
		}
		log.Error("Graph invocation failed",
			"node", invokeErr.Node, "turn", turn, "error", invokeErr.Err)
		return &turnOutcome{turn: turn, state: state, invokeErr: invokeErr}, nil
	}

	// 3. Durable tutor reply.
	if strings.TrimSpace(state.AIMessage) != "" {
		if _, err := o.messages.SaveMessage(ctx, models.SaveMessageRequest{
			SessionID:  sess.ID,
			Turn:       turn,
			Role:       models.RoleAssistant,
			Content:    state.AIMessage,
			TokenCount: o.counter.Count(state.AIMessage),
			Meta: map[string]interface{}{
				"intent_status":       string(state.IntentStatus),
				"is_guardrail_failed": state.IsGuardrailFailed,
			},
		}); err != nil {
			return nil, fmt.Errorf("saving assistant message: %w", err)
		}
	}

	// 4. Best-effort cache snapshot and token accounting.
	if o.states != nil {
		if err := o.states.Save(ctx, state); err != nil {
			log.Warn("State snapshot write failed", "turn", turn, "error", err)
		}
	}
	chatUsed := state.ChatTokens.TotalTokens - baseChat
	evalUsed := state.EvalTokens.TotalTokens - baseEval
	used := chatUsed + evalUsed
	if used > 0 {
		if err := o.sessions.AddTokens(ctx, sess.ID, used); err != nil {
			log.Warn("Token accounting failed", "turn", turn, "error", err)
		}
	}

	// 5. Background per-turn evaluation for ordinary chat turns. Submission
	// turns are covered synchronously by the evaluation guard.
	if !state.IsSubmitted && o.turns != nil {
		o.evaluateTurnAsync(turnEvalJob{
			sessionID:        sess.ID,
			specID:           sess.SpecID,
			turn:             turn,
			human:            in.message,
			ai:               state.AIMessage,
			previous:         prevReply,
			guardrailFailed:  state.IsGuardrailFailed,
			guardrailMessage: state.GuardrailMessage,
		})
	}

	log.Info("Turn processed",
		"turn", turn,
		"intent", state.IntentStatus,
		"is_submitted", state.IsSubmitted,
		"tokens_used", used)

	return &turnOutcome{
		turn:       turn,
		state:      state,
		tokensUsed: used,
		chatTokens: chatUsed,
		evalTokens: evalUsed,
	}, nil
}

// failSubmission marks a submission failed, detached from the request
// context so the terminal status lands even on cancellation.
func (o *Orchestrator) failSubmission(id int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.submissions.Complete(ctx, id, SubmissionFailed); err != nil {
		o.logger.Warn("Submission failure update failed", "submission_id", id, "error", err)
	}
}

// persistEvaluations writes the durable evaluation rows from the final
// submission state: one TURN_EVAL per evaluated turn, one HOLISTIC_FLOW for
// the cross-turn analysis, and one HOLISTIC_PERFORMANCE when code scoring
// fell back to model review. Each write is idempotent and non-fatal.
func (o *Orchestrator) persistEvaluations(ctx context.Context, sessionID int, state *graph.State) {
	log := o.logger.With("session_id", sessionID)

	for key, score := range state.TurnScores {
		turn, ok := models.ParseTurnKey(key)
		if !ok {
			log.Warn("Unparseable turn key in state", "key", key)
			continue
		}
		req := models.SaveEvaluationRequest{
			SessionID: sessionID,
			Turn:      &turn,
			Type:      models.EvalTypeTurn,
			NodeName:  engine.NodeEvalTurnGuard,
			Score:     score.TurnScore,
		}
		if ev, ok := state.TurnEvaluations[key]; ok {
			req.Analysis = ev.FinalReasoning
			if len(ev.Rubrics) > 0 {
				req.Details = map[string]interface{}{"rubrics": ev.Rubrics}
			}
		}
		if _, err := o.evaluations.SaveEvaluation(ctx, req); err != nil {
			log.Warn("Turn evaluation persistence failed", "turn", turn, "error", err)
		}
	}

	if state.HolisticFlowScore != nil {
		_, err := o.evaluations.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sessionID,
			Type:      models.EvalTypeHolistic,
			NodeName:  engine.NodeEvalHolisticFlow,
			Score:     *state.HolisticFlowScore,
			Analysis:  state.HolisticFlowAnalysis,
		})
		if err != nil {
			log.Warn("Holistic flow persistence failed", "error", err)
		}
	}

	if state.JudgeTaskID == "" && state.CodePerformanceScore != nil {
		_, err := o.evaluations.SaveEvaluation(ctx, models.SaveEvaluationRequest{
			SessionID: sessionID,
			Type:      models.EvalTypeHolisticPerformance,
			NodeName:  engine.NodeEvalCodePerformance,
			Score:     *state.CodePerformanceScore,
			Details:   map[string]interface{}{"source": "model_review"},
		})
		if err != nil {
			log.Warn("Performance evaluation persistence failed", "error", err)
		}
	}
}

// persistRuns links the submission to its sandbox task and stores the
// per-case verdicts. Non-fatal: the score aggregation has already consumed
// the pass ratio.
func (o *Orchestrator) persistRuns(ctx context.Context, submissionID int, state *graph.State, log *slog.Logger) {
	if state.JudgeTaskID == "" || o.queue == nil {
		return
	}

	if err := o.submissions.SetTaskID(ctx, submissionID, state.JudgeTaskID); err != nil {
		log.Warn("Task id persistence failed", "task_id", state.JudgeTaskID, "error", err)
	}

	result, err := o.queue.Result(ctx, state.JudgeTaskID)
	if err != nil || result == nil {
		log.Warn("Sandbox result fetch failed", "task_id", state.JudgeTaskID, "error", err)
		return
	}
	if len(result.Cases) == 0 {
		return
	}

	runs := make([]models.RunRecord, 0, len(result.Cases))
	for _, c := range result.Cases {
		exitCode := 0
		if !c.Passed {
			exitCode = 1
		}
		runs = append(runs, models.RunRecord{
			CaseIndex:     c.Index,
			Verdict:       string(c.Verdict()),
			Passed:        c.Passed,
			Output:        c.Actual,
			Stderr:        c.Stderr,
			ExecutionTime: c.TimeSec,
			MemoryKB:      c.MemoryKB,
			ExitCode:      exitCode,
		})
	}
	if err := o.submissions.SaveRuns(ctx, submissionID, runs); err != nil {
		log.Warn("Run persistence failed", "cases", len(runs), "error", err)
	}
}

// persistScore writes the final score row for a graded submission.
func (o *Orchestrator) persistScore(ctx context.Context, submissionID, sessionID int, state *graph.State) error {
	fs := state.FinalScores

	// No successful prompt evaluation at all leaves the column NULL rather
	// than recording a misleading zero.
	var promptScore *float64
	if state.HolisticFlowScore != nil || state.AggregateTurnScore != nil {
		promptScore = &fs.PromptScore
	}

	rubric := map[string]interface{}{}
	if len(state.TurnScores) > 0 {
		rubric["turn_scores"] = state.TurnScores
	}
	if state.AggregateTurnScore != nil {
		rubric["aggregate_turn_score"] = *state.AggregateTurnScore
	}
	if state.HolisticFlowAnalysis != "" {
		rubric["flow_analysis"] = state.HolisticFlowAnalysis
	}
	if state.JudgeTaskID == "" {
		rubric["execution"] = "model_review"
	}

	_, err := o.submissions.SaveScore(ctx, models.SaveScoreRequest{
		SubmissionID:     submissionID,
		SessionID:        sessionID,
		PromptScore:      promptScore,
		PerformanceScore: fs.PerformanceScore,
		CorrectnessScore: fs.CorrectnessScore,
		TotalScore:       fs.TotalScore,
		Grade:            fs.Grade,
		Rubric:           rubric,
	})
	return err
}

// chatErrorEnvelope shapes a failed chat invocation for the API. The request
// itself was valid, so the caller still receives a structured body.
func chatErrorEnvelope(sessionID, turn int, invokeErr *graph.InvokeError) *ProcessMessageResult {
	return &ProcessMessageResult{
		SessionID:    sessionID,
		Turn:         turn,
		Error:        true,
		ErrorMessage: processErrorPrefix + invokeErr.Err.Error(),
		ErrorDetails: invokeErr.ErrorDetails(),
	}
}

// submitErrorEnvelope is the submission counterpart of chatErrorEnvelope.
func submitErrorEnvelope(sessionID, submissionID, turn int, invokeErr *graph.InvokeError) *SubmitResult {
	return &SubmitResult{
		SessionID:    sessionID,
		SubmissionID: submissionID,
		Turn:         turn,
		Status:       SubmissionFailed,
		Error:        true,
		ErrorMessage: processErrorPrefix + invokeErr.Err.Error(),
		ErrorDetails: invokeErr.ErrorDetails(),
	}
}

// turnEvalJob is one queued background evaluation.
type turnEvalJob struct {
	sessionID        int
	specID           int
	turn             int
	human            string
	ai               string
	previous         string
	guardrailFailed  bool
	guardrailMessage string
}

// evaluateTurnAsync scores one finished chat turn off the request path. The
// outcome feeds the cached turn log and state snapshot; durable evaluation
// rows are written once, at submission time.
func (o *Orchestrator) evaluateTurnAsync(job turnEvalJob) {
	o.bg.Add(1)
	go func() {
		defer o.bg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), turnEvalTimeout)
		defer cancel()

		sid := stateID(job.sessionID)
		log := o.logger.With("session_id", job.sessionID, "turn", job.turn)

		var problem *problems.Context
		if o.problems != nil {
			problem = o.problems.Resolve(ctx, job.specID)
		}

		out, err := o.turns.Evaluate(ctx, turneval.Input{
			SessionID:        sid,
			Turn:             job.turn,
			HumanMessage:     job.human,
			AIMessage:        job.ai,
			PreviousContext:  job.previous,
			Problem:          problem,
			GuardrailFailed:  job.guardrailFailed,
			GuardrailMessage: job.guardrailMessage,
		})
		if err != nil {
			log.Warn("Background turn evaluation cancelled", "error", err)
			return
		}

		if o.cache != nil {
			if err := o.cache.SetJSON(ctx, cache.TurnLogKey(sid, job.turn), out.Log); err != nil {
				log.Warn("Turn log write failed", "error", err)
			}
		}
		if o.states != nil {
			o.mergeTurnOutcome(ctx, sid, job.turn, out, log)
		}
		if !out.Usage.IsZero() {
			if err := o.sessions.AddTokens(ctx, job.sessionID, out.Usage.TotalTokens); err != nil {
				log.Warn("Token accounting failed", "error", err)
			}
		}

		log.Info("Turn evaluated",
			"score", out.Log.TurnScore,
			"intent", out.Log.Intent,
			"eval_tokens", out.Usage.TotalTokens)
	}()
}

// mergeTurnOutcome folds one background evaluation into the cached state
// snapshot so state reads surface per-turn scores before submission.
func (o *Orchestrator) mergeTurnOutcome(ctx context.Context, sid string, turn int, out *turneval.Outcome, log *slog.Logger) {
	state, err := o.states.Load(ctx, sid)
	if err != nil {
		log.Warn("State load for merge failed", "error", err)
		return
	}
	if state == nil {
		return
	}

	if state.TurnScores == nil {
		state.TurnScores = map[string]models.TurnScore{}
	}
	if state.TurnEvaluations == nil {
		state.TurnEvaluations = map[string]models.TurnEvaluation{}
	}
	key := models.TurnKey(turn)
	state.TurnScores[key] = models.TurnScore{TurnScore: out.Log.TurnScore}
	state.TurnEvaluations[key] = out.Evaluation
	state.EvalTokens.Add(out.Usage)

	if err := o.states.Save(ctx, state); err != nil {
		log.Warn("State merge write failed", "error", err)
	}
}

// Stream event frames for the websocket chat surface.
const (
	StreamDelta     = "delta"
	StreamDone      = "done"
	StreamCancelled = "cancelled"
	StreamError     = "error"
)

// StreamEvent is one frame of a streamed chat turn.
type StreamEvent struct {
	Type    string                `json:"type"`
	Content string                `json:"content,omitempty"`
	Result  *ProcessMessageResult `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
}

type streamHandle struct {
	cancel context.CancelFunc
}

// StreamMessage processes one chat turn like ProcessMessage but forwards
// reply deltas into events as they are generated, ending with a done,
// cancelled, or error frame. The channel is closed before returning. A
// session carries at most one live stream: starting a second one cancels the
// first.
func (o *Orchestrator) StreamMessage(ctx context.Context, req ProcessMessageRequest, events chan<- StreamEvent) {
	defer close(events)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle := &streamHandle{cancel: cancel}
	o.registerStream(req.SessionID, handle)
	defer o.unregisterStream(req.SessionID, handle)

	sink := make(chan string, 16)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for chunk := range sink {
			events <- StreamEvent{Type: StreamDelta, Content: chunk}
		}
	}()

	result, err := o.ProcessMessage(engine.WithStreamSink(streamCtx, sink), req)
	close(sink)
	<-forwarded

	switch {
	case streamCtx.Err() != nil && ctx.Err() == nil:
		events <- StreamEvent{Type: StreamCancelled}
	case err != nil:
		events <- StreamEvent{Type: StreamError, Error: err.Error()}
	case result.Error:
		events <- StreamEvent{Type: StreamError, Error: result.ErrorMessage, Result: result}
	default:
		events <- StreamEvent{Type: StreamDone, Result: result}
	}
}

// CancelStream aborts the session's live stream, if any. Reports whether a
// stream was cancelled.
func (o *Orchestrator) CancelStream(sessionID int) bool {
	o.mu.Lock()
	handle := o.streams[sessionID]
	o.mu.Unlock()

	if handle == nil {
		return false
	}
	handle.cancel()
	return true
}

func (o *Orchestrator) registerStream(sessionID int, handle *streamHandle) {
	o.mu.Lock()
	prev := o.streams[sessionID]
	o.streams[sessionID] = handle
	o.mu.Unlock()

	if prev != nil {
		prev.cancel()
	}
}

func (o *Orchestrator) unregisterStream(sessionID int, handle *streamHandle) {
	o.mu.Lock()
	if o.streams[sessionID] == handle {
		delete(o.streams, sessionID)
	}
	o.mu.Unlock()
}

// GetSessionState returns the cached graph state snapshot.
func (o *Orchestrator) GetSessionState(ctx context.Context, sessionID int) (*graph.State, error) {
	if o.states == nil {
		return nil, fmt.Errorf("%w: state for session %d", ErrNotFound, sessionID)
	}
	state, err := o.states.Load(ctx, stateID(sessionID))
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: state for session %d", ErrNotFound, sessionID)
	}
	return state, nil
}

// SessionScores is the grading read model: the final weighted scores plus
// the per-turn breakdown.
type SessionScores struct {
	SessionID  int                         `json:"session_id"`
	Final      *models.FinalScores         `json:"final,omitempty"`
	TurnScores map[string]models.TurnScore `json:"turn_scores,omitempty"`
}

// GetSessionScores reads the final scores, preferring the cache and falling
// back to the durable score and evaluation rows.
func (o *Orchestrator) GetSessionScores(ctx context.Context, sessionID int) (*SessionScores, error) {
	scores := &SessionScores{SessionID: sessionID}

	if o.cache != nil {
		var final models.FinalScores
		err := o.cache.GetJSON(ctx, cache.ScoresKey(stateID(sessionID)), &final)
		if err == nil {
			scores.Final = &final
			if state, err := o.states.Load(ctx, stateID(sessionID)); err == nil && state != nil {
				scores.TurnScores = state.TurnScores
			}
			return scores, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			o.logger.Warn("Score cache read failed", "session_id", sessionID, "error", err)
		}
	}

	row, err := o.submissions.GetSessionScore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	final := &models.FinalScores{
		PerformanceScore: row.PerformanceScore,
		CorrectnessScore: row.CorrectnessScore,
		TotalScore:       row.TotalScore,
		Grade:            row.Grade,
	}
	if row.PromptScore != nil {
		final.PromptScore = *row.PromptScore
	}
	scores.Final = final

	evals, err := o.evaluations.GetTurnEvaluations(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(evals) > 0 {
		scores.TurnScores = make(map[string]models.TurnScore, len(evals))
		for _, ev := range evals {
			if ev.Turn == nil {
				continue
			}
			scores.TurnScores[models.TurnKey(*ev.Turn)] = models.TurnScore{TurnScore: ev.Score}
		}
	}
	return scores, nil
}

// GetConversationHistory returns the durable message history as envelopes.
func (o *Orchestrator) GetConversationHistory(ctx context.Context, sessionID int) ([]models.Envelope, error) {
	if _, err := o.sessions.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	msgs, err := o.messages.GetSessionMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Envelopes(msgs), nil
}

// GetTurnLogs collects the cached per-turn evaluation logs in turn order.
// Turns whose log expired or was never evaluated are skipped.
func (o *Orchestrator) GetTurnLogs(ctx context.Context, sessionID int) ([]models.TurnLog, error) {
	if o.cache == nil {
		return nil, nil
	}

	next, err := o.messages.NextTurn(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sid := stateID(sessionID)
	var logs []models.TurnLog
	for turn := 1; turn < next; turn++ {
		var tl models.TurnLog
		err := o.cache.GetJSON(ctx, cache.TurnLogKey(sid, turn), &tl)
		if errors.Is(err, cache.ErrCacheMiss) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading turn log %d: %w", turn, err)
		}
		logs = append(logs, tl)
	}
	return logs, nil
}

// ClearSession ends the session and purges every cached record it owns. The
// durable rows stay for reporting.
func (o *Orchestrator) ClearSession(ctx context.Context, sessionID int) error {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := o.sessions.EndSession(ctx, sessionID); err != nil {
		return err
	}

	if o.cache != nil {
		if err := o.states.PurgeSession(ctx, stateID(sessionID)); err != nil {
			o.logger.Warn("State purge failed", "session_id", sessionID, "error", err)
		}
		key := cache.ActiveSessionKey(sess.ExamID, sess.ParticipantID)
		if err := o.cache.Delete(ctx, key); err != nil {
			o.logger.Warn("Active session cleanup failed", "session_id", sessionID, "error", err)
		}
	}
	return nil
}

// Shutdown waits for in-flight background evaluations to drain.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.bg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
