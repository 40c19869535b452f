package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeIsEmpty(t *testing.T) {
	assert.True(t, Envelope{Content: ""}.IsEmpty())
	assert.True(t, Envelope{Content: "   \n\t"}.IsEmpty())
	assert.False(t, Envelope{Content: "hello"}.IsEmpty())
}

func TestTokenUsageAdd(t *testing.T) {
	u := TokenUsage{}
	assert.True(t, u.IsZero())

	u.Add(TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15})
	u.Add(TokenUsage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3})

	assert.Equal(t, 11, u.PromptTokens)
	assert.Equal(t, 7, u.CompletionTokens)
	assert.Equal(t, 18, u.TotalTokens)
	assert.False(t, u.IsZero())
}

func TestTurnKey(t *testing.T) {
	assert.Equal(t, "turn_1", TurnKey(1))
	assert.Equal(t, "turn_12", TurnKey(12))
}

func TestIntentPriorityOrdering(t *testing.T) {
	// Code-producing intents outrank conversational ones.
	assert.Greater(t, IntentPriority(IntentGeneration), IntentPriority(IntentOptimization))
	assert.Greater(t, IntentPriority(IntentOptimization), IntentPriority(IntentDebugging))
	assert.Greater(t, IntentPriority(IntentDebugging), IntentPriority(IntentTestCase))
	assert.Greater(t, IntentPriority(IntentTestCase), IntentPriority(IntentRuleSetting))
	assert.Greater(t, IntentPriority(IntentRuleSetting), IntentPriority(IntentSystemPrompt))
	assert.Greater(t, IntentPriority(IntentSystemPrompt), IntentPriority(IntentHintOrQuery))
	assert.Greater(t, IntentPriority(IntentHintOrQuery), IntentPriority(IntentFollowUp))

	// Unknown intents rank below everything.
	assert.Equal(t, 0, IntentPriority(CodeIntent("BOGUS")))
}

func TestAllCodeIntentsMatchesPriority(t *testing.T) {
	intents := AllCodeIntents()
	assert.Len(t, intents, 8)
	for i := 1; i < len(intents); i++ {
		assert.Greater(t, IntentPriority(intents[i-1]), IntentPriority(intents[i]))
	}
}

func TestValidGuideStrategy(t *testing.T) {
	assert.True(t, ValidGuideStrategy(StrategyLogicHint))
	assert.True(t, ValidGuideStrategy(StrategyFullCodeAllowed))
	assert.False(t, ValidGuideStrategy(GuideStrategy("WING_IT")))
}

func TestGradeBands(t *testing.T) {
	assert.Equal(t, "A", Grade(95))
	assert.Equal(t, "A", Grade(90))
	assert.Equal(t, "B", Grade(89.99))
	assert.Equal(t, "B", Grade(80))
	assert.Equal(t, "C", Grade(70))
	assert.Equal(t, "D", Grade(60))
	assert.Equal(t, "F", Grade(59.99))
	assert.Equal(t, "F", Grade(0))
}

func TestClampScore(t *testing.T) {
	assert.InDelta(t, 0, ClampScore(-5), 0.001)
	assert.InDelta(t, 100, ClampScore(120), 0.001)
	assert.InDelta(t, 42.5, ClampScore(42.5), 0.001)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 85.67, Round2(85.666), 0.0001)
	assert.InDelta(t, 85.66, Round2(85.664), 0.0001)
}

func TestSupportedLanguage(t *testing.T) {
	for _, lang := range []string{LangPython, LangJava, LangCPP, LangC, LangJavaScript, LangGo, LangRust} {
		assert.True(t, SupportedLanguage(lang), lang)
	}
	assert.False(t, SupportedLanguage("cobol"))
	assert.False(t, SupportedLanguage(""))
}
