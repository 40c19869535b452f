package engine

import (
	"context"
	"strings"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

// summarizeMemory compresses the conversation into a short summary when the
// writer hit the context-window threshold, then the graph re-enters the
// request handler for another attempt. An existing summary is folded into
// the input so repeated compaction stays stable.
func (e *Engine) summarizeMemory(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	log := e.logger.With("node", NodeSummarizeMemory, "session_id", s.SessionID, "turn", s.CurrentTurn)

	conversation := formatConversation(s.Messages)
	if s.MemorySummary != "" {
		conversation = "이전 요약:\n" + s.MemorySummary + "\n\n" + conversation
	}

	prompt, err := e.prompts.Render("summarize_memory", map[string]string{
		"conversation": conversation,
	})
	if err != nil {
		return nil, err
	}

	resp, err := e.chat.Generate(ctx, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: "Summarize the conversation."}},
	})
	if err != nil {
		// The retry still needs a smaller prompt, so fall back to a crude
		// truncation of the conversation text.
		log.Warn("Memory summarization failed, truncating instead", "error", err)
		return &graph.Delta{MemorySummary: graph.StringPtr(truncateSummary(conversation))}, nil
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		summary = truncateSummary(conversation)
	}

	e.persistSummary(ctx, s.SessionID, summary)

	log.Info("Memory summarized", "summary_chars", len(summary), "total_tokens", resp.Usage.TotalTokens)

	return &graph.Delta{
		MemorySummary: graph.StringPtr(summary),
		ChatTokens:    &resp.Usage,
	}, nil
}

// persistSummary caches the summary for session-state reads. Best effort.
func (e *Engine) persistSummary(ctx context.Context, sessionID, summary string) {
	if e.cache == nil {
		return
	}
	if err := e.cache.SetString(ctx, cache.MemorySummaryKey(sessionID), summary); err != nil {
		e.logger.Warn("Memory summary write failed", "session_id", sessionID, "error", err)
	}
}

// truncateSummary keeps the head of the conversation text, cutting on a rune
// boundary.
func truncateSummary(s string) string {
	const max = 500
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
