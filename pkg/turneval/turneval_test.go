package turneval

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
)

type stubReply struct {
	text string
	err  error
}

// stubLLM hands out scripted replies in call order.
type stubLLM struct {
	mu       sync.Mutex
	replies  []stubReply
	requests []llm.Request
}

func (s *stubLLM) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return nil, errors.New("stub: no reply scripted")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	if reply.err != nil {
		return nil, reply.err
	}
	return &llm.Response{
		Text:  reply.text,
		Usage: models.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

func (s *stubLLM) GenerateStream(context.Context, llm.Request) (<-chan llm.Chunk, error) {
	return nil, errors.New("stub: streaming not supported")
}

func (s *stubLLM) Model() string { return "stub-model" }
func (s *stubLLM) Close() error  { return nil }

func (s *stubLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *stubLLM) request(i int) llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}

const (
	intentReplyGeneration = `{"intent_types": ["GENERATION", "HINT_OR_QUERY"], "confidence": 0.9}`
	rubricReplyFull       = `{"rubrics": [
		{"name": "clarity", "score": 80, "reasoning": "구체적이다"},
		{"name": "problem_relevance", "score": 70, "reasoning": "문제와 맞닿아 있다"},
		{"name": "examples", "score": 60, "reasoning": "예시가 하나 있다"},
		{"name": "rules", "score": 50, "reasoning": "제약이 일부 명시됨"},
		{"name": "context", "score": 40, "reasoning": "이전 턴 참조가 약하다"}
	], "final_reasoning": "잘 구성된 프롬프트입니다."}`
)

func testProblem() *problems.Context {
	return &problems.Context{
		SpecID: 10,
		BasicInfo: problems.BasicInfo{
			ProblemID: "2098",
			Title:     "외판원 순회",
		},
		Guide: problems.Guide{
			Algorithms: []string{"Dynamic Programming", "Bitmasking"},
		},
	}
}

func testInput() Input {
	return Input{
		SessionID:       "sess-1",
		Turn:            3,
		HumanMessage:    "이전에 제안해주신 DP 테이블 구조로 방문 상태를 비트마스킹하는 코드를 작성해주세요. 예를 들어 입력이 4개 도시일 때요.",
		AIMessage:       "DP 테이블과 비트마스크 순회 골격을 제안했습니다.",
		PreviousContext: "이전 턴에서 DP 테이블 구조를 설명했습니다.",
		Problem:         testProblem(),
	}
}

func TestEvaluateHappyPath(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: rubricReplyFull},
		{text: "DP 테이블과 비트마스크 골격을 제안했다."},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	out, err := e.Evaluate(context.Background(), testInput())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, models.IntentGeneration, out.Log.Intent)
	assert.Equal(t, 0.9, out.Log.Confidence)
	assert.False(t, out.Log.IsGuardrailFailed)
	assert.Equal(t, "잘 구성된 프롬프트입니다.", out.Log.FinalReasoning)
	assert.Equal(t, "DP 테이블과 비트마스크 골격을 제안했다.", out.Log.AnswerSummary)
	assert.False(t, out.Log.EvaluatedAt.IsZero())

	// GENERATION weights: .30*80 + .25*70 + .20*60 + .15*50 + .10*40
	assert.Equal(t, 65.0, out.Log.TurnScore)

	require.Len(t, out.Log.Rubrics, 5)
	assert.Equal(t, CriterionClarity, out.Log.Rubrics[0].Name)
	assert.Equal(t, 80.0, out.Log.Rubrics[0].Score)
	assert.Equal(t, CriterionContext, out.Log.Rubrics[4].Name)

	assert.Equal(t, out.Log.Rubrics, out.Evaluation.Rubrics)
	assert.Equal(t, 45, out.Usage.TotalTokens)
	assert.Equal(t, 3, client.callCount())
}

func TestEvaluatePromptsCarryTurnMaterial(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: rubricReplyFull},
		{text: "요약"},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	_, err := e.Evaluate(context.Background(), testInput())
	require.NoError(t, err)

	intentReq := client.request(0)
	assert.Contains(t, intentReq.System, "외판원 순회")
	assert.Contains(t, intentReq.System, "비트마스킹하는 코드")

	judgeReq := client.request(1)
	assert.Contains(t, judgeReq.System, "GENERATION")
	assert.Contains(t, judgeReq.System, "heuristic baselines")
	assert.Contains(t, judgeReq.System, "이전 턴에서 DP 테이블 구조를 설명했습니다.")

	summaryReq := client.request(2)
	require.Len(t, summaryReq.Messages, 1)
	assert.Contains(t, summaryReq.Messages[0].Content, "비트마스크 순회 골격")
}

func TestEvaluateGuardrailShortCircuit(t *testing.T) {
	client := &stubLLM{}
	e := NewEvaluator(client, prompts.NewRegistry())

	in := testInput()
	in.GuardrailFailed = true
	in.GuardrailMessage = "정답 코드를 직접 요구하여 차단되었습니다."

	out, err := e.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, out.Log.IsGuardrailFailed)
	assert.Equal(t, 0.0, out.Log.TurnScore)
	assert.Equal(t, 0.0, out.Log.Confidence)
	assert.Equal(t, models.IntentHintOrQuery, out.Log.Intent)
	assert.Equal(t, "정답 코드를 직접 요구하여 차단되었습니다.", out.Log.FinalReasoning)
	require.Len(t, out.Log.Rubrics, 5)
	for _, r := range out.Log.Rubrics {
		assert.Equal(t, 0.0, r.Score)
	}
	assert.Equal(t, 0, client.callCount())
	assert.True(t, out.Usage.IsZero())
}

func TestEvaluateFallsBackToHeuristicsWhenJudgeFails(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{err: errors.New("model overloaded")},
		{text: "요약"},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	in := testInput()
	out, err := e.Evaluate(context.Background(), in)
	require.NoError(t, err)

	metrics := ComputeMetrics(in.HumanMessage, in.Problem.Guide.Algorithms)
	require.Len(t, out.Log.Rubrics, 5)
	for _, r := range out.Log.Rubrics {
		assert.Equal(t, metrics.BaseFor(r.Name), r.Score, r.Name)
	}
	assert.Contains(t, out.Log.FinalReasoning, "model judgement was unavailable")
	assert.Equal(t, "요약", out.Log.AnswerSummary)
}

func TestEvaluateBackfillsMissingRubrics(t *testing.T) {
	partial := `{"rubrics": [
		{"name": "Clarity", "score": 90, "reasoning": "매우 구체적"},
		{"name": "rules", "score": 30, "reasoning": "규칙 없음"}
	], "final_reasoning": "부분 평가"}`

	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: partial},
		{text: "요약"},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	in := testInput()
	out, err := e.Evaluate(context.Background(), in)
	require.NoError(t, err)

	metrics := ComputeMetrics(in.HumanMessage, in.Problem.Guide.Algorithms)
	byName := map[string]models.Rubric{}
	for _, r := range out.Log.Rubrics {
		byName[r.Name] = r
	}

	assert.Equal(t, 90.0, byName[CriterionClarity].Score)
	assert.Equal(t, 30.0, byName[CriterionRules].Score)
	assert.Equal(t, metrics.BaseFor(CriterionExamples), byName[CriterionExamples].Score)
	assert.Equal(t, "Scored from measured prompt properties.", byName[CriterionContext].Reasoning)
}

func TestEvaluateClampsRubricScores(t *testing.T) {
	overflow := `{"rubrics": [
		{"name": "clarity", "score": 150, "reasoning": "넘침"},
		{"name": "problem_relevance", "score": -20, "reasoning": "음수"},
		{"name": "examples", "score": 50, "reasoning": "보통"},
		{"name": "rules", "score": 50, "reasoning": "보통"},
		{"name": "context", "score": 50, "reasoning": "보통"}
	], "final_reasoning": "클램프 확인"}`

	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: overflow},
		{text: "요약"},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	out, err := e.Evaluate(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, 100.0, out.Log.Rubrics[0].Score)
	assert.Equal(t, 0.0, out.Log.Rubrics[1].Score)
}

func TestEvaluateSummaryFailureFallsBackToExcerpt(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: rubricReplyFull},
		{err: errors.New("model overloaded")},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	in := testInput()
	out, err := e.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, in.AIMessage, out.Log.AnswerSummary)
}

func TestEvaluateReturnsContextError(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: intentReplyGeneration},
		{text: rubricReplyFull},
		{text: "요약"},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := e.Evaluate(ctx, testInput())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWeightedScoreUsesIntentWeights(t *testing.T) {
	rubrics := []models.Rubric{
		{Name: CriterionClarity, Score: 80},
		{Name: CriterionRelevance, Score: 60},
		{Name: CriterionExamples, Score: 40},
		{Name: CriterionRules, Score: 90},
		{Name: CriterionContext, Score: 70},
	}

	// RULE_SETTING: .25*80 + .15*60 + .10*40 + .40*90 + .10*70
	assert.Equal(t, 76.0, weightedScore(models.IntentRuleSetting, rubrics))
	// Unknown intents score with HINT_OR_QUERY weights.
	assert.Equal(t, 71.0, weightedScore(models.CodeIntent("MYSTERY"), rubrics))
}

func TestRubricWeightsSumToOne(t *testing.T) {
	for intent, weights := range rubricWeights {
		var sum float64
		for _, w := range weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, string(intent))
	}
}

func TestNormalizeCriterion(t *testing.T) {
	assert.Equal(t, CriterionRelevance, normalizeCriterion("Problem Relevance"))
	assert.Equal(t, CriterionExamples, normalizeCriterion("Examples"))
	assert.Equal(t, CriterionRules, normalizeCriterion("constraints"))
	assert.Equal(t, CriterionClarity, normalizeCriterion(" clarity "))
	assert.Equal(t, "novelty", normalizeCriterion("novelty"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	long := strings.Repeat("가", 10)
	assert.Equal(t, "가가가가...", truncateRunes(long, 4))
}
