package engine

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
)

// codeGenerationKeywords mark a message asking the tutor to produce code.
var codeGenerationKeywords = []string{
	"코드 작성", "코드 생성", "코드를 작성", "코드를 생성", "코드 작성해", "코드 생성해",
}

// priorWorkKeywords mark hint-level progress in the recent conversation;
// their presence earns the participant a full-code generation step.
var priorWorkKeywords = []string{
	"힌트", "점화식", "접근", "방법", "hint", "recurrence", "approach",
}

// priorReferenceWords are explicit references to earlier tutor output.
var priorReferenceWords = []string{"제안해주신", "이전", "앞서", "말한", "바탕으로"}

// writerContextWindow is how many recent envelopes the full-code upgrade
// inspects for prior hint work (three exchanges).
const writerContextWindow = 6

const emptyReplyFallback = "죄송합니다. 응답을 생성할 수 없습니다. 다시 시도해주세요."

// degenerateEnvelopeContent keeps the provider call valid when the message
// list would otherwise be empty.
const degenerateEnvelopeContent = "안녕하세요. 무엇을 도와드릴까요?"

// write generates the tutor reply for the current turn. The writer never
// returns a node error: every failure is encoded in WriterStatus and routed
// by writerRouter.
func (e *Engine) write(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeWriter, "session_id", s.SessionID, "turn", s.CurrentTurn)
	problem := e.resolveProblem(ctx, s.SpecID)

	system, strategy, err := e.writerSystemPrompt(s, problem)
	if err != nil {
		log.Error("System prompt rendering failed", "error", err)
		return e.writerFailure(s, err), nil
	}

	req := llm.Request{
		System:   system,
		Messages: writerEnvelope(s, e.opts.HistoryWindow),
	}

	var text string
	var usage models.TokenUsage
	if sink, ok := streamSinkFrom(ctx); ok {
		text, usage, err = streamReply(ctx, e.chat, req, sink)
	} else {
		var resp *llm.Response
		resp, err = e.chat.Generate(ctx, req)
		if err == nil {
			text, usage = resp.Text, resp.Usage
		}
	}
	if err != nil {
		log.Warn("Reply generation failed", "strategy", strategy, "error", err)
		return e.writerFailure(s, err), nil
	}

	if strings.TrimSpace(text) == "" {
		log.Warn("Model returned an empty reply, substituting fallback")
		text = emptyReplyFallback
	}

	now := time.Now().UTC()
	userEnv := models.Envelope{Role: models.RoleUser, Content: s.HumanMessage, Turn: s.CurrentTurn, Timestamp: now}
	aiEnv := models.Envelope{Role: models.RoleAssistant, Content: text, Turn: s.CurrentTurn, Timestamp: now}

	e.recordTurnMapping(ctx, s)

	log.Info("Reply generated",
		"strategy", strategy,
		"reply_chars", len(text),
		"total_tokens", usage.TotalTokens)

	return &graph.Delta{
		AIMessage:    graph.StringPtr(text),
		Messages:     []models.Envelope{userEnv, aiEnv},
		WriterStatus: graph.WriterStatusPtr(models.WriterSuccess),
		WriterError:  graph.StringPtr(""),
		ChatTokens:   &usage,
	}, nil
}

// writerSystemPrompt picks and renders the system prompt for this turn:
// refusal for guardrail hits, acknowledgement for submissions, the full-code
// template when the upgrade conditions hold, otherwise the Socratic default.
// Returns the rendered prompt and the effective strategy for logging.
func (e *Engine) writerSystemPrompt(s *graph.State, problem *problems.Context) (string, models.GuideStrategy, error) {
	title := problem.BasicInfo.Title

	if s.IsGuardrailFailed {
		reason := s.GuardrailMessage
		if reason == "" {
			reason = "부적절한 요청"
		}
		prompt, err := e.prompts.Render("writer_refusal", map[string]string{
			"problem_title": title,
			"block_reason":  reason,
		})
		return prompt, s.GuideStrategy, err
	}

	if s.IntentStatus == models.IntentPassedSubmit {
		prompt, err := e.prompts.Render("writer_submission", map[string]string{
			"problem_title": title,
		})
		return prompt, s.GuideStrategy, err
	}

	if e.fullCodeEarned(s) {
		prompt, err := e.prompts.Render("writer_full_code", map[string]string{
			"problem_title":       title,
			"problem_description": problemBrief(problem),
			"keywords":            keywordList(s.Keywords),
			"memory_summary":      s.MemorySummary,
		})
		return prompt, models.StrategyFullCodeAllowed, err
	}

	strategy := s.GuideStrategy
	if !models.ValidGuideStrategy(strategy) {
		strategy = models.StrategyLogicHint
	}
	prompt, err := e.prompts.Render("writer_normal", map[string]string{
		"problem_title":       title,
		"problem_description": problemBrief(problem),
		"guide_strategy":      string(strategy),
		"keywords":            keywordList(s.Keywords),
		"memory_summary":      s.MemorySummary,
	})
	return prompt, strategy, err
}

// keywordList renders the classifier's keyword slice for prompt templates.
func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "없음"
	}
	return strings.Join(keywords, ", ")
}

// fullCodeEarned decides the context-based upgrade: the message asks for
// code generation AND the recent conversation shows hint-level work (or the
// message explicitly references earlier tutor output).
func (e *Engine) fullCodeEarned(s *graph.State) bool {
	msg := strings.ToLower(s.HumanMessage)
	if !containsAny(msg, codeGenerationKeywords) {
		return false
	}

	for _, env := range s.RecentMessages(writerContextWindow) {
		if containsAny(strings.ToLower(env.Content), priorWorkKeywords) {
			return true
		}
	}
	return containsAny(msg, priorReferenceWords)
}

// writerEnvelope assembles the chat messages: the recent history with empty
// entries filtered, then the current human message.
func writerEnvelope(s *graph.State, window int) []llm.Message {
	history := s.RecentMessages(window)
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, env := range history {
		if env.IsEmpty() {
			continue
		}
		msgs = append(msgs, llm.Message{Role: env.Role, Content: env.Content})
	}
	if strings.TrimSpace(s.HumanMessage) != "" {
		msgs = append(msgs, llm.Message{Role: models.RoleUser, Content: s.HumanMessage})
	}
	if len(msgs) == 0 {
		msgs = append(msgs, llm.Message{Role: models.RoleUser, Content: degenerateEnvelopeContent})
	}
	return msgs
}

// writerFailure maps a generation error onto the writer status taxonomy.
// Rate-limited turns also burn one retry so the router's budget is enforced.
func (e *Engine) writerFailure(s *graph.State, err error) *graph.Delta {
	delta := &graph.Delta{
		WriterError:  graph.StringPtr(err.Error()),
		ErrorMessage: graph.StringPtr(err.Error()),
	}
	switch llm.Classify(err) {
	case llm.FailureRateLimit:
		delta.WriterStatus = graph.WriterStatusPtr(models.WriterFailedRateLimit)
		delta.RetryCount = graph.IntPtr(s.RetryCount + 1)
	case llm.FailureThreshold:
		delta.WriterStatus = graph.WriterStatusPtr(models.WriterFailedThreshold)
	default:
		delta.WriterStatus = graph.WriterStatusPtr(models.WriterFailedTechnical)
	}
	return delta
}

// recordTurnMapping stores where this turn's envelope pair will land in the
// message list, keyed for the submission-time guard. Best effort.
func (e *Engine) recordTurnMapping(ctx context.Context, s *graph.State) {
	if e.cache == nil {
		return
	}

	key := cache.TurnMappingKey(s.SessionID)
	mapping := models.TurnMapping{}
	if err := e.cache.GetJSON(ctx, key, &mapping); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		e.logger.Warn("Turn mapping read failed", "session_id", s.SessionID, "error", err)
		return
	}

	start := len(s.Messages)
	mapping[models.TurnKey(s.CurrentTurn)] = [2]int{start, start + 1}
	if err := e.cache.SetJSON(ctx, key, mapping); err != nil {
		e.logger.Warn("Turn mapping write failed", "session_id", s.SessionID, "error", err)
	}
}

// streamSinkKey carries the optional delta sink used by streaming chat.
type streamSinkKey struct{}

// WithStreamSink attaches a reply sink to the context. While present, the
// writer streams its reply into sink chunk by chunk in addition to returning
// the full text in its delta. The caller owns the channel and must drain it
// until the invocation returns.
func WithStreamSink(ctx context.Context, sink chan<- string) context.Context {
	return context.WithValue(ctx, streamSinkKey{}, sink)
}

func streamSinkFrom(ctx context.Context) (chan<- string, bool) {
	sink, ok := ctx.Value(streamSinkKey{}).(chan<- string)
	return sink, ok
}

// streamReply drives a streaming generation, forwarding text deltas to sink
// while accumulating the full reply.
func streamReply(ctx context.Context, client llm.Client, req llm.Request, sink chan<- string) (string, models.TokenUsage, error) {
	chunks, err := client.GenerateStream(ctx, req)
	if err != nil {
		return "", models.TokenUsage{}, err
	}

	var b strings.Builder
	var usage models.TokenUsage
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			b.WriteString(c.Content)
			select {
			case sink <- c.Content:
			case <-ctx.Done():
				return b.String(), usage, ctx.Err()
			}
		case *llm.UsageChunk:
			usage.Add(c.Usage)
		case *llm.ErrorChunk:
			return b.String(), usage, c.Err
		}
	}
	return b.String(), usage, nil
}

// problemBrief renders the problem context as the multi-line description the
// writer templates interpolate.
func problemBrief(p *problems.Context) string {
	if p == nil {
		return ""
	}

	var parts []string
	if p.BasicInfo.Summary != "" {
		parts = append(parts, p.BasicInfo.Summary)
	}
	if p.BasicInfo.InputFormat != "" {
		parts = append(parts, "입력 형식: "+p.BasicInfo.InputFormat)
	}
	if p.BasicInfo.OutputFormat != "" {
		parts = append(parts, "출력 형식: "+p.BasicInfo.OutputFormat)
	}
	if len(p.Guide.Algorithms) > 0 {
		parts = append(parts, "필수 알고리즘: "+strings.Join(p.Guide.Algorithms, ", "))
	}
	if p.Guide.Architecture != "" {
		parts = append(parts, "솔루션 아키텍처: "+p.Guide.Architecture)
	}
	if len(p.Guide.HintRoadmap) > 0 {
		var b strings.Builder
		b.WriteString("힌트 로드맵:")
		for i, step := range p.Guide.HintRoadmap {
			b.WriteString("\n")
			b.WriteString(strconv.Itoa(i+1) + "단계: " + step)
		}
		parts = append(parts, b.String())
	}
	if len(p.Guide.Pitfalls) > 0 {
		var b strings.Builder
		b.WriteString("자주 틀리는 실수:")
		for _, pit := range p.Guide.Pitfalls {
			b.WriteString("\n- ")
			b.WriteString(pit)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}
