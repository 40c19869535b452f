package turneval

import (
	"context"
	"regexp"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

// roleTagPattern spots markup that assigns the tutor a role or persona,
// which separates SYSTEM_PROMPT setups from plain rule lists.
var roleTagPattern = regexp.MustCompile(`(?i)<\s*/?\s*(role|system|persona|instruction|content)[^>]*>`)

// intentClassification is the model's verdict on what a prompt asked for.
type intentClassification struct {
	IntentTypes []string `json:"intent_types" jsonschema:"required,description=Applicable intent types ordered strongest first"`
	Confidence  float64  `json:"confidence" jsonschema:"required,description=Confidence in the primary classification between 0.0 and 1.0"`
}

// classifyIntent asks the model for candidate intents and resolves them to a
// single one. A failed call degrades to the resolution default so evaluation
// always proceeds.
func (e *Evaluator) classifyIntent(ctx context.Context, in Input) (models.CodeIntent, float64, models.TokenUsage) {
	var usage models.TokenUsage

	prompt, err := e.registry.Render("turn_intent", map[string]string{
		"problem_title":    problemTitle(in.Problem),
		"previous_context": orDefault(in.PreviousContext, "(none, this is the first turn)"),
		"user_prompt":      in.HumanMessage,
	})
	if err != nil {
		e.logger.Warn("Intent prompt unavailable", "error", err)
		return ResolveIntent(in.Turn, in.HumanMessage, nil), 0, usage
	}

	verdict, callUsage, err := llm.GenerateStructured[intentClassification](ctx, e.llm, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: "Classify the prompt."}},
	})
	usage.Add(callUsage)
	if err != nil {
		e.logger.Warn("Intent classification failed",
			"session_id", in.SessionID, "turn", in.Turn, "error", err)
		return ResolveIntent(in.Turn, in.HumanMessage, nil), 0, usage
	}

	candidates := make([]models.CodeIntent, 0, len(verdict.IntentTypes))
	for _, raw := range verdict.IntentTypes {
		intent := models.CodeIntent(raw)
		if models.IntentPriority(intent) > 0 {
			candidates = append(candidates, intent)
		}
	}

	confidence := verdict.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	if len(candidates) == 0 {
		confidence = 0
	}

	return ResolveIntent(in.Turn, in.HumanMessage, candidates), confidence, usage
}

// ResolveIntent picks the single intent for a turn from the classifier's
// candidates. Candidates are ranked by priority, with two first-turn rules
// on top:
//
//   - FOLLOW_UP cannot apply on turn 1 (there is nothing to follow); it is
//     rewritten to SYSTEM_PROMPT when the prompt carries role markup, else
//     to RULE_SETTING.
//   - SYSTEM_PROMPT and RULE_SETTING outrank everything on turn 1 or when
//     the prompt contains markup tags, so session-setup prompts are not
//     swallowed by a code intent mentioned in passing.
//
// With no usable candidates the intent defaults to HINT_OR_QUERY.
func ResolveIntent(turn int, prompt string, candidates []models.CodeIntent) models.CodeIntent {
	if len(candidates) == 0 {
		return models.IntentHintOrQuery
	}

	rewritten := make([]models.CodeIntent, 0, len(candidates))
	for _, c := range candidates {
		if turn == 1 && c == models.IntentFollowUp {
			if roleTagPattern.MatchString(prompt) {
				c = models.IntentSystemPrompt
			} else {
				c = models.IntentRuleSetting
			}
		}
		rewritten = append(rewritten, c)
	}

	boosted := turn == 1 || HasXMLTags(prompt)

	best := rewritten[0]
	bestRank := effectivePriority(best, boosted)
	for _, c := range rewritten[1:] {
		if rank := effectivePriority(c, boosted); rank > bestRank {
			best, bestRank = c, rank
		}
	}
	return best
}

func effectivePriority(intent models.CodeIntent, boosted bool) int {
	rank := models.IntentPriority(intent)
	if boosted && (intent == models.IntentSystemPrompt || intent == models.IntentRuleSetting) {
		rank += 100
	}
	return rank
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
