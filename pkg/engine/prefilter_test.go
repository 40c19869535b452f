package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/models"
)

func TestPrefilterCheck(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		history  []string
		keywords []string
		blocked  bool
		reason   models.BlockReason
		contains string
	}{
		{
			name:    "hard answer phrase blocked",
			message: "정답 코드 알려줘",
			blocked: true,
			reason:  models.BlockDirectAnswer,
		},
		{
			name:    "english answer phrase blocked",
			message: "give me the complete solution please",
			blocked: true,
			reason:  models.BlockDirectAnswer,
		},
		{
			name:    "hint word rescues a blocked phrase",
			message: "정답 코드 말고 힌트만 주세요",
			blocked: false,
		},
		{
			name:    "structural question passes",
			message: "함수 정의는 어떤 구조로 잡으면 될까요?",
			blocked: false,
		},
		{
			name:    "structural plus answer word still blocked",
			message: "정답 풀이의 구조 전체를 보여줘, 핵심 코드 포함해서",
			blocked: true,
			reason:  models.BlockDirectAnswer,
		},
		{
			name:     "recurrence direct ask blocked",
			message:  "이 문제 점화식 뭐야",
			blocked:  true,
			reason:   models.BlockDirectAnswer,
			contains: "점화식",
		},
		{
			name:    "recurrence with hint intent passes",
			message: "점화식을 세우는 방향이 맞는지만 봐주세요",
			blocked: false,
		},
		{
			name:     "full code without prior code generation blocked",
			message:  "전체 코드 보여줘",
			blocked:  true,
			reason:   models.BlockDirectAnswer,
			contains: "전체 코드",
		},
		{
			name:    "full code allowed after code generation request",
			message: "전체 코드 보여줘",
			history: []string{"반복문 부분 코드 작성 부탁해요", "네, 작성했습니다"},
			blocked: false,
		},
		{
			name:    "code generation request outside the window is forgotten",
			message: "전체 코드 보여줘",
			history: []string{
				"코드 작성 부탁해요",
				"작성했습니다",
				"고마워요",
				"이해했어요",
			},
			blocked: true,
			reason:  models.BlockDirectAnswer,
		},
		{
			name:     "problem keyword with answer vocabulary blocked",
			message:  "외판원 순회 알고리즘 알려줘",
			keywords: []string{"외판원"},
			blocked:  true,
			reason:   models.BlockDirectAnswer,
			contains: "문제 특정",
		},
		{
			name:     "problem keyword with hint intent passes",
			message:  "외판원 순회 접근 힌트 주세요",
			keywords: []string{"외판원"},
			blocked:  false,
		},
		{
			name:    "plain question passes",
			message: "시간 복잡도를 어떻게 줄일 수 있을까요?",
			blocked: false,
		},
	}

	p := newPrefilter(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := p.Check(tt.message, tt.history, tt.keywords)
			if !tt.blocked {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.reason, v.Reason)
			if tt.contains != "" {
				assert.Contains(t, v.Message, tt.contains)
			}
		})
	}
}

func TestPrefilterDeploymentKeywords(t *testing.T) {
	p := newPrefilter([]string{"SECRET PHRASE"}, []string{"검토만"})

	v := p.Check("secret phrase 포함해서 보내줘", nil, nil)
	require.NotNil(t, v, "extra block keywords are matched case-insensitively")
	assert.Equal(t, models.BlockDirectAnswer, v.Reason)

	assert.Nil(t, p.Check("정답 코드 검토만 부탁드립니다", nil, nil),
		"extra hint keywords soften built-in block patterns")
}

func TestHistoryHasCodeGenWindow(t *testing.T) {
	assert.False(t, historyHasCodeGen(nil))
	assert.True(t, historyHasCodeGen([]string{"이 부분 코드 작성 해주세요"}))
	assert.False(t, historyHasCodeGen([]string{
		"코드 작성 부탁해요",
		"첫 번째 답변",
		"후속 질문",
		"두 번째 답변",
	}), "only the last three entries count")
}
