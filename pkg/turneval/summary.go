package turneval

import (
	"context"
	"strings"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/models"
)

const (
	// summaryMaxLines caps the recorded answer summary.
	summaryMaxLines = 3
	// summaryExcerptRunes bounds the raw-reply excerpt kept when the model
	// summary is unavailable.
	summaryExcerptRunes = 200
)

// summarize condenses the tutor's reply into at most three lines for the
// holistic evaluator. The summary is an enrichment: when the model call
// fails the turn keeps an excerpt of the raw reply instead.
func (e *Evaluator) summarize(ctx context.Context, in Input) (string, models.TokenUsage) {
	var usage models.TokenUsage

	if strings.TrimSpace(in.AIMessage) == "" {
		return "", usage
	}

	prompt, err := e.registry.Render("answer_summary", map[string]string{"ai_answer": ""})
	if err != nil {
		e.logger.Warn("Summary prompt unavailable", "error", err)
		return truncateRunes(in.AIMessage, summaryExcerptRunes), usage
	}

	resp, err := e.llm.Generate(ctx, llm.Request{
		System:   prompt,
		Messages: []llm.Message{{Role: models.RoleUser, Content: in.AIMessage}},
	})
	if err != nil {
		e.logger.Warn("Answer summary failed, keeping an excerpt",
			"session_id", in.SessionID, "turn", in.Turn, "error", err)
		return truncateRunes(in.AIMessage, summaryExcerptRunes), usage
	}
	usage.Add(resp.Usage)

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return truncateRunes(in.AIMessage, summaryExcerptRunes), usage
	}
	return clipLines(summary, summaryMaxLines), usage
}

// clipLines keeps the first n non-empty lines of text.
func clipLines(text string, n int) string {
	if text == "" || n <= 0 {
		return ""
	}
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, "\n")
}

// truncateRunes keeps the first n runes of s, marking the cut. Rune-based so
// Hangul content is never split mid-character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
