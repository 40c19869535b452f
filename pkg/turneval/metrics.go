package turneval

import (
	"fmt"
	"regexp"
	"strings"
)

// Word runs must cover Hangul, so the class is Unicode letters and digits
// rather than \w.
var (
	wordPattern      = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceSplit    = regexp.MustCompile(`[.!?]\s+`)
	xmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	codeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inputPattern     = regexp.MustCompile(`(?i)입력[:\s]*[^\n]+`)
	outputPattern    = regexp.MustCompile(`(?i)출력[:\s]*[^\n]+`)
	integerPattern   = regexp.MustCompile(`\b\d+\b`)
	decimalPattern   = regexp.MustCompile(`\b\d+\.\d+\b`)
	bigOPattern      = regexp.MustCompile(`(?i)O\([^)]+\)`)
	secondsPattern   = regexp.MustCompile(`\b\d+\s*초`)
	megabytePattern  = regexp.MustCompile(`(?i)\b\d+\s*MB`)
	numberedLine     = regexp.MustCompile(`^\d+[.)]\s`)
	bulletLine       = regexp.MustCompile(`^\s*[-*+]\s`)
)

var exampleKeywords = []string{
	"예시", "예", "예를 들어", "예를 들면", "example", "e.g.",
}

var exampleSignals = []string{
	"예시", "예", "입력", "출력", "예를 들어", "예를 들면",
	"example", "input", "output", "for example", "e.g.",
}

var constraintKeywords = []string{
	"제약", "제약조건", "제약 조건", "조건", "제한", "제한사항",
	"constraint", "limit", "requirement", "condition",
	"시간 복잡도", "공간 복잡도", "time complexity", "space complexity",
}

var contextKeywords = []string{
	"이전", "앞서", "앞에서", "위에서", "지금까지", "방금",
	"제안해주신", "작성해주신", "말씀하신", "알려주신",
	"previous", "earlier", "above", "mentioned", "said",
}

var technicalTerms = []string{
	"알고리즘", "자료구조", "복잡도", "시간복잡도", "공간복잡도",
	"algorithm", "data structure", "complexity",
	"dp", "동적계획법", "dynamic programming",
	"그래프", "트리", "graph", "tree",
	"비트마스킹", "bitmask", "bitmasking",
	"재귀", "recursion", "recursive",
	"반복문", "iteration", "iterative",
	"정렬", "sort", "sorting",
	"탐색", "search", "searching",
	"해시", "hash", "hashing",
}

// Metrics carries the measured properties of one prompt and the base scores
// derived from them. The bases anchor the LLM judgement and substitute for a
// rubric the judgement failed to deliver.
type Metrics struct {
	WordCount             int
	SentenceCount         int
	HasSpecificValues     bool
	SpecificValueCount    int
	HasExamples           bool
	ExampleCount          int
	XMLTagCount           int
	ConstraintCount       int
	StructuredCount       int
	ContextReferenceCount int
	TechnicalTermCount    int
	CodeBlockCount        int

	ClarityBase   float64
	ExamplesBase  float64
	RulesBase     float64
	ContextBase   float64
	RelevanceBase float64
}

// ComputeMetrics measures text against the quality heuristics.
// problemAlgorithms extends the technical-term vocabulary with the problem's
// own algorithm names.
func ComputeMetrics(text string, problemAlgorithms []string) Metrics {
	m := Metrics{
		WordCount:             len(wordPattern.FindAllString(text, -1)),
		SentenceCount:         countSentences(text),
		SpecificValueCount:    countSpecificValues(text),
		HasSpecificValues:     hasSpecificValues(text),
		ExampleCount:          countExamples(text),
		HasExamples:           containsAny(text, exampleSignals),
		XMLTagCount:           len(xmlTagPattern.FindAllString(text, -1)),
		ConstraintCount:       countContained(text, constraintKeywords),
		StructuredCount:       countStructuredLines(text),
		ContextReferenceCount: countContained(text, contextKeywords),
		TechnicalTermCount:    countTechnicalTerms(text, problemAlgorithms),
		CodeBlockCount:        len(codeBlockPattern.FindAllString(text, -1)),
	}

	m.ClarityBase = clarityBase(m.WordCount, m.SentenceCount, m.HasSpecificValues)
	m.ExamplesBase = examplesBase(m.HasExamples, m.ExampleCount)
	m.RulesBase = rulesBase(m.XMLTagCount, m.ConstraintCount, m.StructuredCount)
	m.ContextBase = contextBase(m.ContextReferenceCount)
	m.RelevanceBase = relevanceBase(m.TechnicalTermCount)
	return m
}

// BaseFor returns the quantitative base score for a canonical criterion name.
func (m Metrics) BaseFor(criterion string) float64 {
	switch criterion {
	case CriterionClarity:
		return m.ClarityBase
	case CriterionExamples:
		return m.ExamplesBase
	case CriterionRules:
		return m.RulesBase
	case CriterionContext:
		return m.ContextBase
	case CriterionRelevance:
		return m.RelevanceBase
	}
	return 0
}

// Summary renders the metrics as prompt-ready lines.
func (m Metrics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- words: %d, sentences: %d, concrete values: %d\n", m.WordCount, m.SentenceCount, m.SpecificValueCount)
	fmt.Fprintf(&b, "- examples or I/O pairs: %d\n", m.ExampleCount)
	fmt.Fprintf(&b, "- XML tags: %d, stated constraints: %d, list items: %d\n", m.XMLTagCount, m.ConstraintCount, m.StructuredCount)
	fmt.Fprintf(&b, "- references to earlier turns: %d\n", m.ContextReferenceCount)
	fmt.Fprintf(&b, "- technical terms for this problem: %d\n", m.TechnicalTermCount)
	fmt.Fprintf(&b, "- heuristic baselines: clarity %.0f, examples %.0f, rules %.0f, context %.0f, relevance %.0f",
		m.ClarityBase, m.ExamplesBase, m.RulesBase, m.ContextBase, m.RelevanceBase)
	return b.String()
}

// HasXMLTags reports whether text contains any markup tag.
func HasXMLTags(text string) bool {
	return xmlTagPattern.MatchString(text)
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func countExamples(text string) int {
	inputs := len(inputPattern.FindAllString(text, -1))
	outputs := len(outputPattern.FindAllString(text, -1))
	keywords := countContained(text, exampleKeywords)
	return max(inputs, max(outputs, keywords))
}

func hasSpecificValues(text string) bool {
	return integerPattern.MatchString(text) ||
		decimalPattern.MatchString(text) ||
		bigOPattern.MatchString(text) ||
		secondsPattern.MatchString(text) ||
		megabytePattern.MatchString(text)
}

func countSpecificValues(text string) int {
	return len(integerPattern.FindAllString(text, -1)) +
		len(decimalPattern.FindAllString(text, -1)) +
		len(bigOPattern.FindAllString(text, -1))
}

func countStructuredLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if numberedLine.MatchString(line) || bulletLine.MatchString(line) {
			count++
		}
	}
	return count
}

func countTechnicalTerms(text string, problemAlgorithms []string) int {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	count := 0
	for _, term := range technicalTerms {
		if !seen[term] && strings.Contains(lower, term) {
			seen[term] = true
			count++
		}
	}
	for _, alg := range problemAlgorithms {
		term := strings.ToLower(alg)
		if term != "" && !seen[term] && strings.Contains(lower, term) {
			seen[term] = true
			count++
		}
	}
	return count
}

func countContained(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Base score shapes: generous middles, small floors. Length windows reward
// prompts that are developed but not rambling.

func clarityBase(words, sentences int, hasSpecific bool) float64 {
	var score float64
	switch {
	case words >= 20 && words <= 200:
		score += 40
	case (words >= 10 && words < 20) || (words > 200 && words <= 300):
		score += 25
	case words < 10:
		score += 10
	default:
		score += 15
	}

	switch {
	case sentences >= 2 && sentences <= 10:
		score += 30
	case sentences == 1:
		score += 15
	default:
		score += 20
	}

	if hasSpecific {
		score += 30
	}
	if score > 100 {
		score = 100
	}
	return score
}

func examplesBase(hasExamples bool, count int) float64 {
	if !hasExamples {
		return 0
	}
	switch {
	case count >= 2:
		return 100
	case count == 1:
		return 70
	default:
		return 30
	}
}

func rulesBase(xmlCount, constraintCount, structuredCount int) float64 {
	var score float64
	if xmlCount > 0 {
		score += 30
		if xmlCount >= 2 {
			score += 10
		}
	}
	if constraintCount > 0 {
		score += 40
		if constraintCount >= 2 {
			score += 10
		}
	}
	if structuredCount > 0 {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

func contextBase(referenceCount int) float64 {
	switch {
	case referenceCount >= 2:
		return 100
	case referenceCount == 1:
		return 70
	default:
		return 0
	}
}

func relevanceBase(termCount int) float64 {
	switch {
	case termCount >= 3:
		return 100
	case termCount == 2:
		return 80
	case termCount == 1:
		return 60
	default:
		return 0
	}
}
