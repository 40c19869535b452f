package turneval

import (
	"context"
	"fmt"
	"strings"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

// rubricWeights maps each intent to its criterion weights, in
// canonicalCriteria order (clarity, relevance, examples, rules, context).
// Each row sums to 1.0. Code-producing intents lean on clarity and examples,
// setup intents on rules, follow-ups on context.
var rubricWeights = map[models.CodeIntent][5]float64{
	models.IntentGeneration:   {0.30, 0.25, 0.20, 0.15, 0.10},
	models.IntentOptimization: {0.25, 0.30, 0.15, 0.15, 0.15},
	models.IntentDebugging:    {0.30, 0.25, 0.25, 0.10, 0.10},
	models.IntentTestCase:     {0.25, 0.20, 0.35, 0.10, 0.10},
	models.IntentRuleSetting:  {0.25, 0.15, 0.10, 0.40, 0.10},
	models.IntentSystemPrompt: {0.30, 0.15, 0.10, 0.35, 0.10},
	models.IntentHintOrQuery:  {0.35, 0.30, 0.05, 0.10, 0.20},
	models.IntentFollowUp:     {0.25, 0.20, 0.10, 0.05, 0.40},
}

// rubricJudgement is the model's scoring of one turn.
type rubricJudgement struct {
	Rubrics        []rubricItem `json:"rubrics" jsonschema:"required,description=One entry per rubric criterion"`
	FinalReasoning string       `json:"final_reasoning" jsonschema:"required,description=Two or three sentences on the overall quality of the turn"`
}

type rubricItem struct {
	Name      string  `json:"name" jsonschema:"required,description=Rubric criterion name"`
	Score     float64 `json:"score" jsonschema:"required,description=Score between 0 and 100"`
	Reasoning string  `json:"reasoning" jsonschema:"required,description=One or two sentences justifying the score"`
}

// judgeRubrics runs the model judgement for a turn against its intent's
// criteria, with the measured metrics passed in as anchors.
func (e *Evaluator) judgeRubrics(ctx context.Context, in Input, intent models.CodeIntent, metrics Metrics) (*rubricJudgement, models.TokenUsage, error) {
	var usage models.TokenUsage

	criteria, err := e.registry.Render("eval_criteria#"+strings.ToLower(string(intent)), nil)
	if err != nil {
		return nil, usage, fmt.Errorf("load criteria for %s: %w", intent, err)
	}

	prompt, err := e.registry.Render("eval_turn", map[string]string{
		"problem_title":    problemTitle(in.Problem),
		"intent":           string(intent),
		"criteria":         criteria,
		"metrics":          metrics.Summary(),
		"previous_context": orDefault(in.PreviousContext, "(none, this is the first turn)"),
		"user_prompt":      in.HumanMessage,
		"ai_answer":        in.AIMessage,
	})
	if err != nil {
		return nil, usage, fmt.Errorf("render evaluation prompt: %w", err)
	}

	judged, callUsage, err := llm.GenerateStructured[rubricJudgement](ctx, e.llm, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: "Score the turn."}},
	})
	usage.Add(callUsage)
	if err != nil {
		return nil, usage, err
	}
	return judged, usage, nil
}

// canonicalRubrics maps a judgement onto the five canonical criteria in
// fixed order. A criterion the model skipped is backfilled from its
// quantitative base so every log carries all five scores.
func canonicalRubrics(judged []rubricItem, metrics Metrics) []models.Rubric {
	byName := make(map[string]rubricItem, len(judged))
	for _, item := range judged {
		byName[normalizeCriterion(item.Name)] = item
	}

	out := make([]models.Rubric, len(canonicalCriteria))
	for i, name := range canonicalCriteria {
		if item, ok := byName[name]; ok {
			out[i] = models.Rubric{
				Name:      name,
				Score:     clampScore(item.Score),
				Reasoning: item.Reasoning,
			}
			continue
		}
		out[i] = models.Rubric{
			Name:      name,
			Score:     metrics.BaseFor(name),
			Reasoning: "Scored from measured prompt properties.",
		}
	}
	return out
}

// normalizeCriterion folds model spelling variants onto canonical names.
func normalizeCriterion(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "relevance", "problem_relevance", "topic_relevance":
		return CriterionRelevance
	case "example", "examples", "example_usage":
		return CriterionExamples
	case "rule", "rules", "constraints", "structure":
		return CriterionRules
	case "context", "context_usage", "context_reference":
		return CriterionContext
	case "clarity", "clearness", "specificity":
		return CriterionClarity
	}
	return n
}

// weightedScore folds the five rubric scores into one turn score using the
// intent's weights.
func weightedScore(intent models.CodeIntent, rubrics []models.Rubric) float64 {
	weights, ok := rubricWeights[intent]
	if !ok {
		weights = rubricWeights[models.IntentHintOrQuery]
	}

	scores := make(map[string]float64, len(rubrics))
	for _, r := range rubrics {
		scores[r.Name] = r.Score
	}

	var total float64
	for i, name := range canonicalCriteria {
		total += weights[i] * scores[name]
	}
	return round1(clampScore(total))
}

// heuristicJudgement builds a judgement from the quantitative bases alone,
// used when the model judge is unavailable.
func heuristicJudgement(metrics Metrics) *rubricJudgement {
	items := make([]rubricItem, len(canonicalCriteria))
	for i, name := range canonicalCriteria {
		items[i] = rubricItem{
			Name:      name,
			Score:     metrics.BaseFor(name),
			Reasoning: "Scored from measured prompt properties.",
		}
	}
	return &rubricJudgement{
		Rubrics:        items,
		FinalReasoning: "Heuristic evaluation from measured prompt properties; model judgement was unavailable.",
	}
}
