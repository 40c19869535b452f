// Package problems resolves problem specifications for the evaluation engine.
//
// A Context carries everything the graph nodes need to know about the exam
// problem: the statement summary shown to the LLM, resource limits used by
// the execution sandbox, the tutoring guide the writer draws hints from, and
// the guardrail keyword list the intent analyzer matches against.
package problems

import (
	"strconv"
	"strings"
)

// TestCase is a single judge input/output pair.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	IsSample bool   `json:"is_sample"`
}

// BasicInfo describes the problem statement.
type BasicInfo struct {
	ProblemID    string `json:"problem_id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
}

// Constraints holds the resource limits and the reasoning that justifies the
// intended algorithm class. Limits use the judge's native units.
type Constraints struct {
	TimeLimitMS    int               `json:"time_limit_ms"`
	MemoryLimitKB  int               `json:"memory_limit_kb"`
	VariableRanges map[string]string `json:"variable_ranges,omitempty"`
	Reasoning      string            `json:"reasoning,omitempty"`
}

// Guide is the tutoring material for the writer and the holistic evaluator.
// HintRoadmap is ordered from concept to base case.
type Guide struct {
	Algorithms   []string `json:"algorithms"`
	Architecture string   `json:"architecture,omitempty"`
	HintRoadmap  []string `json:"hint_roadmap,omitempty"`
	Pitfalls     []string `json:"pitfalls,omitempty"`
}

// Context is the immutable problem record for one spec id.
type Context struct {
	SpecID       int         `json:"spec_id"`
	BasicInfo    BasicInfo   `json:"basic_info"`
	Constraints  Constraints `json:"constraints"`
	Guide        Guide       `json:"ai_guide"`
	SolutionCode string      `json:"solution_code,omitempty"`
	TestCases    []TestCase  `json:"test_cases,omitempty"`
	Keywords     []string    `json:"keywords,omitempty"`
}

// KeywordUnion returns the guardrail keyword set: the explicit keywords plus
// every algorithm name lowercased, deduplicated case-insensitively while
// preserving first-seen order.
func (c *Context) KeywordUnion() []string {
	seen := make(map[string]bool, len(c.Keywords)+len(c.Guide.Algorithms))
	union := make([]string, 0, len(c.Keywords)+len(c.Guide.Algorithms))

	add := func(kw string) {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		union = append(union, key)
	}

	for _, kw := range c.Keywords {
		add(kw)
	}
	for _, alg := range c.Guide.Algorithms {
		add(alg)
	}
	return union
}

// HasTestCases reports whether the context carries judge test cases. The
// submission flow must not run code evaluation without them.
func (c *Context) HasTestCases() bool {
	return len(c.TestCases) > 0
}

// SampleTests returns only the test cases visible to the participant.
func (c *Context) SampleTests() []TestCase {
	var samples []TestCase
	for _, tc := range c.TestCases {
		if tc.IsSample {
			samples = append(samples, tc)
		}
	}
	return samples
}

// emptyContext is the skeleton returned for unknown spec ids. The graph keeps
// running without problem material rather than failing the turn.
func emptyContext(specID int) *Context {
	return &Context{
		SpecID: specID,
		BasicInfo: BasicInfo{
			ProblemID: strconv.Itoa(specID),
		},
	}
}
