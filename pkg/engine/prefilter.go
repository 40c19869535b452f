package engine

import (
	"strings"

	"github.com/examkit/proctor/pkg/models"
)

// The keyword prefilter is the first guardrail layer: a fast, deterministic
// screen for answer-extraction prompts that never calls a model. Rules run
// in order and the first hit wins; a structural-question match passes the
// message outright before any block rule is consulted.

// structuralKeywords mark questions about code shape rather than content.
// Such prompts are legitimate exam usage.
var structuralKeywords = []string{
	"인터페이스", "함수 정의", "함수 선언", "구조", "틀", "껍데기",
	"의사코드", "수도코드", "pseudo", "interface", "structure", "skeleton",
}

// answerWords disqualify a structural match: "정답 구조" is still an answer
// request.
var answerWords = []string{"정답", "풀이", "answer", "solution"}

// blockPatterns are hard answer-extraction phrases.
var blockPatterns = []string{
	// Korean
	"정답 코드", "정답 알려줘", "답 코드", "완성된 코드", "핵심 코드",
	"로직 전체", "점화식 알려줘", "재귀 구조", "핵심 로직", "dp[x][vis]",
	"점화식은", "재귀는", "알고리즘 전체",
	// English
	"complete solution", "answer code", "entire code", "whole solution",
	"complete algorithm", "recurrence relation", "dp formula",
}

// hintWords soften a blocked phrase into a guidance request, which passes.
var hintWords = []string{
	"힌트", "가이드", "방향", "수립", "어떻게", "학습",
	"hint", "guide", "direction",
}

// directAskWords are imperative "just tell me" forms.
var directAskWords = []string{
	"알려줘", "알려", "뭐야", "뭐", "정답",
	"tell me", "what is", "show me",
}

// answerRelatedWords pair with problem-specific keywords in rule 5.
var answerRelatedWords = []string{
	"점화식", "recurrence", "재귀", "로직", "알고리즘", "solution", "code",
}

// fullCodePhrases trigger the context-sensitive rule: allowed only when the
// recent conversation already asked the tutor to generate code.
var fullCodePhrases = []string{"전체 코드", "full code", "whole code"}

// codeGenPhrases mark a prior code-generation request in the history window.
var codeGenPhrases = []string{
	"코드 작성", "코드 생성", "코드를 작성", "코드를 생성", "작성해주신 코드",
}

// prefilterHistoryWindow is how many recent envelopes the context-sensitive
// rule inspects.
const prefilterHistoryWindow = 3

// violation is a Layer 1 block verdict.
type violation struct {
	Reason  models.BlockReason
	Message string
}

// prefilter holds the effective keyword tables after deployment extensions.
type prefilter struct {
	block []string
	hint  []string
}

func newPrefilter(extraBlock, extraHint []string) *prefilter {
	p := &prefilter{
		block: append(append([]string{}, blockPatterns...), lowered(extraBlock)...),
		hint:  append(append([]string{}, hintWords...), lowered(extraHint)...),
	}
	return p
}

// Check screens one message. history is the recent conversation (oldest
// first); problemKeywords is the problem's guarded vocabulary, already
// lowercased. A nil return means the message passes to the classifier.
func (p *prefilter) Check(message string, history []string, problemKeywords []string) *violation {
	msg := strings.ToLower(message)

	// Rule 1: structural questions pass unless they also ask for the answer.
	if containsAny(msg, structuralKeywords) && !containsAny(msg, answerWords) {
		return nil
	}

	hasHint := containsAny(msg, p.hint)

	// Rule 2: hard answer-extraction phrases.
	if containsAny(msg, p.block) && !hasHint {
		return &violation{
			Reason:  models.BlockDirectAnswer,
			Message: "정답 코드 요청 패턴 감지",
		}
	}

	// Rule 3: asking for the recurrence itself.
	if (strings.Contains(msg, "점화식") || strings.Contains(msg, "recurrence")) &&
		containsAny(msg, directAskWords) && !hasHint {
		return &violation{
			Reason:  models.BlockDirectAnswer,
			Message: "점화식 직접 요청 패턴 감지",
		}
	}

	// Rule 4: "전체 코드" is allowed only after the conversation already
	// asked for code generation.
	if containsAny(msg, fullCodePhrases) {
		if !historyHasCodeGen(history) {
			return &violation{
				Reason:  models.BlockDirectAnswer,
				Message: "전체 코드 요청 패턴 감지 (이전 대화에 코드 생성 요청 없음)",
			}
		}
		return nil
	}

	// Rule 5: problem-specific keywords combined with answer vocabulary.
	if containsAny(msg, problemKeywords) &&
		(containsAny(msg, answerRelatedWords) || containsAny(msg, directAskWords)) &&
		!hasHint {
		return &violation{
			Reason:  models.BlockDirectAnswer,
			Message: "문제 특정 정답 요청 패턴 감지",
		}
	}

	return nil
}

// historyHasCodeGen reports whether the tail of the history window contains
// a code-generation request.
func historyHasCodeGen(history []string) bool {
	start := len(history) - prefilterHistoryWindow
	if start < 0 {
		start = 0
	}
	for _, entry := range history[start:] {
		if containsAny(strings.ToLower(entry), codeGenPhrases) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func lowered(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
