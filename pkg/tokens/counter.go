// Package tokens provides tokenizer-based size estimation for prompt
// budgeting. Counts are estimates: providers tokenize slightly differently,
// so callers treat results as thresholds, not invoices.
package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/examkit/proctor/pkg/models"
)

// messageOverhead approximates per-message formatting cost (role markers,
// separators) across providers.
const messageOverhead = 10

// Counter counts tokens with the cl100k_base encoding, a workable
// approximation for both Gemini and Claude tokenizers.
type Counter struct {
	encoder *tiktoken.Tiktoken
	mu      sync.Mutex
}

var (
	defaultCounter *Counter
	counterOnce    sync.Once
)

// Default returns the shared counter. Encoding data loads once; if loading
// fails the counter falls back to character-based estimation.
func Default() *Counter {
	counterOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			defaultCounter = &Counter{}
			return
		}
		defaultCounter = &Counter{encoder: enc}
	})
	return defaultCounter
}

// Count returns the token count of text.
func (c *Counter) Count(text string) int {
	if c.encoder == nil {
		// Rough heuristic: ~4 chars per token for mixed prose and code.
		return len(text) / 4
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.encoder.Encode(text, nil, nil))
}

// CountMessages estimates the prompt cost of a message history including
// per-message formatting overhead.
func (c *Counter) CountMessages(messages []models.Envelope) int {
	total := 0
	for _, msg := range messages {
		total += messageOverhead + c.Count(msg.Content)
	}
	return total
}
