package models

import (
	"strings"
	"time"
)

// Envelope is one entry of the session state's ordered message list.
// Turn carries the logical exchange number so submission-time evaluation can
// reconstruct turn pairs without the cached index mapping.
type Envelope struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Turn      int       `json:"turn"`
	Timestamp time.Time `json:"timestamp"`
}

// IsEmpty reports whether the envelope carries no usable content.
func (e Envelope) IsEmpty() bool {
	return strings.TrimSpace(e.Content) == ""
}

// TokenUsage accumulates LLM token counts. Counters only ever grow for the
// life of a session.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates other into u componentwise.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// IsZero reports whether no tokens have been recorded.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// TurnMapping records where a turn's user/assistant envelopes landed in the
// state message list: turn → [startIdx, endIdx]. Written by the Writer,
// read back by the submission-time guard.
type TurnMapping map[string][2]int
