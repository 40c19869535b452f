package turneval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/prompts"
)

func TestResolveIntentDefaultsToHintOrQuery(t *testing.T) {
	assert.Equal(t, models.IntentHintOrQuery, ResolveIntent(3, "아무 질문", nil))
}

func TestResolveIntentPicksHighestPriority(t *testing.T) {
	got := ResolveIntent(3, "코드를 만들어 주세요",
		[]models.CodeIntent{models.IntentHintOrQuery, models.IntentGeneration})
	assert.Equal(t, models.IntentGeneration, got)
}

func TestResolveIntentRewritesFirstTurnFollowUp(t *testing.T) {
	// Nothing precedes turn 1, so FOLLOW_UP becomes a setup intent.
	got := ResolveIntent(1, "앞으로 힌트만 주세요",
		[]models.CodeIntent{models.IntentFollowUp})
	assert.Equal(t, models.IntentRuleSetting, got)

	got = ResolveIntent(1, "<role>알고리즘 멘토</role> 역할을 맡아주세요",
		[]models.CodeIntent{models.IntentFollowUp})
	assert.Equal(t, models.IntentSystemPrompt, got)
}

func TestResolveIntentKeepsLaterTurnFollowUp(t *testing.T) {
	got := ResolveIntent(4, "왜 그런가요?",
		[]models.CodeIntent{models.IntentFollowUp})
	assert.Equal(t, models.IntentFollowUp, got)
}

func TestResolveIntentBoostsSetupOnFirstTurn(t *testing.T) {
	// RULE_SETTING outranks GENERATION on turn 1 despite lower base priority.
	got := ResolveIntent(1, "규칙: 항상 힌트만. DP 코드도 만들어줘",
		[]models.CodeIntent{models.IntentGeneration, models.IntentRuleSetting})
	assert.Equal(t, models.IntentRuleSetting, got)

	// Later turns fall back to base priority.
	got = ResolveIntent(5, "규칙: 항상 힌트만. DP 코드도 만들어줘",
		[]models.CodeIntent{models.IntentGeneration, models.IntentRuleSetting})
	assert.Equal(t, models.IntentGeneration, got)
}

func TestResolveIntentBoostsSetupOnMarkup(t *testing.T) {
	got := ResolveIntent(5, "<rules>힌트만 제공</rules> 그리고 코드 생성",
		[]models.CodeIntent{models.IntentGeneration, models.IntentSystemPrompt})
	assert.Equal(t, models.IntentSystemPrompt, got)
}

func TestClassifyIntentParsesVerdict(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: `{"intent_types": ["RULE_SETTING"], "confidence": 0.7}`},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	in := testInput()
	intent, confidence, usage := e.classifyIntent(context.Background(), in)

	assert.Equal(t, models.IntentRuleSetting, intent)
	assert.Equal(t, 0.7, confidence)
	assert.Equal(t, 15, usage.TotalTokens)
}

func TestClassifyIntentDropsUnknownTypes(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: `{"intent_types": ["NONSENSE", "GENERATION"], "confidence": 0.8}`},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	intent, confidence, _ := e.classifyIntent(context.Background(), testInput())

	assert.Equal(t, models.IntentGeneration, intent)
	assert.Equal(t, 0.8, confidence)
}

func TestClassifyIntentZeroConfidenceWhenNothingUsable(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: `{"intent_types": ["NONSENSE"], "confidence": 0.9}`},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	intent, confidence, _ := e.classifyIntent(context.Background(), testInput())

	assert.Equal(t, models.IntentHintOrQuery, intent)
	assert.Equal(t, 0.0, confidence)
}

func TestClassifyIntentClampsConfidence(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{text: `{"intent_types": ["DEBUGGING"], "confidence": 1.5}`},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	intent, confidence, _ := e.classifyIntent(context.Background(), testInput())

	assert.Equal(t, models.IntentDebugging, intent)
	assert.Equal(t, 1.0, confidence)
}

func TestClassifyIntentFailureDefaults(t *testing.T) {
	client := &stubLLM{replies: []stubReply{
		{err: errors.New("model overloaded")},
	}}
	e := NewEvaluator(client, prompts.NewRegistry())

	intent, confidence, _ := e.classifyIntent(context.Background(), testInput())

	assert.Equal(t, models.IntentHintOrQuery, intent)
	assert.Equal(t, 0.0, confidence)
}
