package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/models"
)

func TestApplyScalarOverwrite(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{SessionID: StringPtr("sess-1"), CurrentTurn: IntPtr(3)})

	assert.Equal(t, "sess-1", s.SessionID)
	assert.Equal(t, 3, s.CurrentTurn)

	// Later writers win.
	s.Apply(&Delta{CurrentTurn: IntPtr(4)})
	assert.Equal(t, 4, s.CurrentTurn)

	// Absent fields leave prior values untouched.
	s.Apply(&Delta{HumanMessage: StringPtr("hello")})
	assert.Equal(t, "sess-1", s.SessionID)
	assert.Equal(t, 4, s.CurrentTurn)
}

func TestApplyMessagesAppend(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{Messages: []models.Envelope{{Role: models.RoleUser, Content: "q1", Turn: 1}}})
	s.Apply(&Delta{Messages: []models.Envelope{
		{Role: models.RoleAssistant, Content: "a1", Turn: 1},
		{Role: models.RoleUser, Content: "q2", Turn: 2},
	}})

	require.Len(t, s.Messages, 3)
	assert.Equal(t, "q1", s.Messages[0].Content)
	assert.Equal(t, "a1", s.Messages[1].Content)
	assert.Equal(t, "q2", s.Messages[2].Content)
}

func TestApplyTurnScoresUnion(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{TurnScores: map[string]models.TurnScore{
		"turn_1": {TurnScore: 70},
	}})
	s.Apply(&Delta{TurnScores: map[string]models.TurnScore{
		"turn_2": {TurnScore: 85},
	}})

	require.Len(t, s.TurnScores, 2)
	assert.InDelta(t, 70, s.TurnScores["turn_1"].TurnScore, 0.001)
	assert.InDelta(t, 85, s.TurnScores["turn_2"].TurnScore, 0.001)

	// Same key overwrites, the rest of the map survives.
	s.Apply(&Delta{TurnScores: map[string]models.TurnScore{
		"turn_1": {TurnScore: 75},
	}})
	require.Len(t, s.TurnScores, 2)
	assert.InDelta(t, 75, s.TurnScores["turn_1"].TurnScore, 0.001)
}

func TestApplyTokenUsageAdds(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{ChatTokens: &models.TokenUsage{PromptTokens: 100, CompletionTokens: 40, TotalTokens: 140}})
	s.Apply(&Delta{ChatTokens: &models.TokenUsage{PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60}})
	s.Apply(&Delta{EvalTokens: &models.TokenUsage{PromptTokens: 30, CompletionTokens: 5, TotalTokens: 35}})

	assert.Equal(t, 150, s.ChatTokens.PromptTokens)
	assert.Equal(t, 50, s.ChatTokens.CompletionTokens)
	assert.Equal(t, 200, s.ChatTokens.TotalTokens)
	assert.Equal(t, 35, s.EvalTokens.TotalTokens)
}

func TestApplyNilDeltaIsNoop(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{SessionID: StringPtr("sess-1")})
	before := s.Clone()

	s.Apply(nil)

	assert.Equal(t, before.SessionID, s.SessionID)
	assert.Equal(t, before.CurrentTurn, s.CurrentTurn)
}

func TestCloneIsDeep(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{
		Messages:   []models.Envelope{{Role: models.RoleUser, Content: "q1", Turn: 1}},
		TurnScores: map[string]models.TurnScore{"turn_1": {TurnScore: 70}},
		Keywords:   []string{"dp"},
	})

	c := s.Clone()
	c.Messages[0].Content = "mutated"
	c.TurnScores["turn_1"] = models.TurnScore{TurnScore: 0}
	c.Keywords[0] = "mutated"

	assert.Equal(t, "q1", s.Messages[0].Content)
	assert.InDelta(t, 70, s.TurnScores["turn_1"].TurnScore, 0.001)
	assert.Equal(t, "dp", s.Keywords[0])
}

func TestLastAIReply(t *testing.T) {
	s := NewState()
	assert.Empty(t, s.LastAIReply())

	now := time.Now()
	s.Apply(&Delta{Messages: []models.Envelope{
		{Role: models.RoleUser, Content: "q1", Turn: 1, Timestamp: now},
		{Role: models.RoleAssistant, Content: "a1", Turn: 1, Timestamp: now},
		{Role: models.RoleUser, Content: "q2", Turn: 2, Timestamp: now},
	}})

	assert.Equal(t, "a1", s.LastAIReply())
}

func TestRecentMessages(t *testing.T) {
	s := NewState()
	s.Apply(&Delta{Messages: []models.Envelope{
		{Role: models.RoleUser, Content: "q1"},
		{Role: models.RoleAssistant, Content: "a1"},
		{Role: models.RoleUser, Content: "q2"},
	}})

	recent := s.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "a1", recent[0].Content)
	assert.Equal(t, "q2", recent[1].Content)

	// Window larger than history returns everything.
	assert.Len(t, s.RecentMessages(10), 3)
	assert.Empty(t, s.RecentMessages(0))
}
