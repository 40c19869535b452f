package turneval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCountHandlesHangul(t *testing.T) {
	m := ComputeMetrics("동적계획법으로 풀어야 하나요", nil)
	assert.Equal(t, 3, m.WordCount)
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 3, countSentences("첫 문장입니다. 둘째 문장! 셋째?"))
	assert.Equal(t, 1, countSentences("구분자 없는 한 문장"))
	assert.Equal(t, 0, countSentences(""))
}

func TestCountExamplesPrefersStrongestSignal(t *testing.T) {
	// Two input lines beat one output line and zero example keywords.
	assert.Equal(t, 2, countExamples("입력: 1 2 3\n입력: 4 5\n출력: 6"))
	assert.Equal(t, 0, countExamples("설명만 있는 문장"))
}

func TestCountConstraintKeywords(t *testing.T) {
	// "제약 조건" matches itself, the bare "제약", and the bare "조건".
	assert.Equal(t, 3, countContained("제약 조건: N은 16 이하", constraintKeywords))
	assert.Equal(t, 0, countContained("아무 제한어 없음x", []string{"constraint"}))
}

func TestCountTechnicalTermsIncludesProblemAlgorithms(t *testing.T) {
	text := "DP와 비트마스킹으로 그래프 탐색"
	assert.Equal(t, 4, countTechnicalTerms(text, nil))
	assert.Equal(t, 5, countTechnicalTerms(text+" TSP 접근", []string{"TSP"}))
	// A problem algorithm already in the base vocabulary counts once.
	assert.Equal(t, 4, countTechnicalTerms(text, []string{"그래프"}))
}

func TestCountStructuredLines(t *testing.T) {
	text := "1. 첫째 규칙\n- 둘째 규칙\n  * 들여쓴 항목\n그냥 문장"
	assert.Equal(t, 3, countStructuredLines(text))
}

func TestHasSpecificValues(t *testing.T) {
	assert.True(t, hasSpecificValues("도시는 16개"))
	assert.True(t, hasSpecificValues("O(2^N * N^2) 복잡도"))
	assert.True(t, hasSpecificValues("limit is 128 MB"))
	assert.False(t, hasSpecificValues("값 언급 없음"))
}

func TestHasXMLTags(t *testing.T) {
	assert.True(t, HasXMLTags("<role>tutor</role>"))
	assert.False(t, HasXMLTags("N < 16 인 경우"))
	assert.False(t, HasXMLTags("태그 없음"))
}

func TestClarityBaseWindows(t *testing.T) {
	assert.Equal(t, 100.0, clarityBase(50, 3, true))
	assert.Equal(t, 85.0, clarityBase(15, 2, true))
	assert.Equal(t, 25.0, clarityBase(5, 1, false))
	assert.Equal(t, 40.0, clarityBase(250, 1, false))
	assert.Equal(t, 35.0, clarityBase(400, 12, false))
}

func TestExamplesBase(t *testing.T) {
	assert.Equal(t, 0.0, examplesBase(false, 0))
	assert.Equal(t, 30.0, examplesBase(true, 0))
	assert.Equal(t, 70.0, examplesBase(true, 1))
	assert.Equal(t, 100.0, examplesBase(true, 2))
}

func TestRulesBaseCapsAtHundred(t *testing.T) {
	assert.Equal(t, 0.0, rulesBase(0, 0, 0))
	assert.Equal(t, 30.0, rulesBase(1, 0, 0))
	assert.Equal(t, 40.0, rulesBase(0, 1, 0))
	assert.Equal(t, 100.0, rulesBase(2, 2, 1))
}

func TestContextBase(t *testing.T) {
	assert.Equal(t, 0.0, contextBase(0))
	assert.Equal(t, 70.0, contextBase(1))
	assert.Equal(t, 100.0, contextBase(2))
}

func TestRelevanceBase(t *testing.T) {
	assert.Equal(t, 0.0, relevanceBase(0))
	assert.Equal(t, 60.0, relevanceBase(1))
	assert.Equal(t, 80.0, relevanceBase(2))
	assert.Equal(t, 100.0, relevanceBase(3))
}

func TestComputeMetricsRichPrompt(t *testing.T) {
	prompt := "이전에 제안해주신 DP 접근을 기억하세요. " +
		"예를 들어 입력: 4개의 도시, 출력: 35 같은 예시가 있습니다. " +
		"제약 조건: N은 16 이하이고 시간 복잡도는 O(2^N * N^2)여야 합니다."

	m := ComputeMetrics(prompt, []string{"Dynamic Programming", "TSP"})

	assert.GreaterOrEqual(t, m.SentenceCount, 3)
	assert.True(t, m.HasSpecificValues)
	assert.True(t, m.HasExamples)
	assert.GreaterOrEqual(t, m.ExampleCount, 1)
	assert.GreaterOrEqual(t, m.ConstraintCount, 2)
	assert.GreaterOrEqual(t, m.ContextReferenceCount, 2)
	assert.GreaterOrEqual(t, m.TechnicalTermCount, 2)

	assert.Equal(t, 100.0, m.ContextBase)
	assert.Greater(t, m.RelevanceBase, 0.0)
	assert.Greater(t, m.RulesBase, 0.0)
}

func TestBaseForUnknownCriterion(t *testing.T) {
	m := ComputeMetrics("짧은 질문", nil)
	assert.Equal(t, 0.0, m.BaseFor("novelty"))
	assert.Equal(t, m.ClarityBase, m.BaseFor(CriterionClarity))
}

func TestMetricsSummaryListsBaselines(t *testing.T) {
	m := ComputeMetrics("예시 포함: 입력 1, 출력 2", nil)
	s := m.Summary()
	assert.Contains(t, s, "heuristic baselines")
	assert.Contains(t, s, "clarity")
	assert.Contains(t, s, "relevance")
}
