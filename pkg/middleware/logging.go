package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/examkit/proctor/pkg/llm"
)

// logPreviewLen bounds logged prompt/response excerpts.
const logPreviewLen = 100

// Logging records every call with its call-site name, duration, and token
// usage. Errors are logged and passed through untouched.
func Logging(name string) Middleware {
	return func(next llm.Client) llm.Client {
		return &loggingClient{next: next, name: name}
	}
}

type loggingClient struct {
	next llm.Client
	name string
}

func (c *loggingClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	log := slog.With("caller", c.name, "model", c.next.Model())
	log.Debug("LLM call started",
		"messages", len(req.Messages),
		"prompt", truncate(lastContent(req)))

	start := time.Now()
	resp, err := c.next.Generate(ctx, req)
	if err != nil {
		log.Error("LLM call failed", "duration", time.Since(start), "error", err)
		return nil, err
	}

	log.Info("LLM call completed",
		"duration", time.Since(start),
		"total_tokens", resp.Usage.TotalTokens,
		"response", truncate(resp.Text))
	return resp, nil
}

func (c *loggingClient) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	log := slog.With("caller", c.name, "model", c.next.Model())
	log.Debug("LLM stream started",
		"messages", len(req.Messages),
		"prompt", truncate(lastContent(req)))

	start := time.Now()
	chunks, err := c.next.GenerateStream(ctx, req)
	if err != nil {
		log.Error("LLM stream open failed", "duration", time.Since(start), "error", err)
		return nil, err
	}

	out := make(chan llm.Chunk, 16)
	go func() {
		defer close(out)
		var total int
		for chunk := range chunks {
			switch ch := chunk.(type) {
			case *llm.TextChunk:
				total += len(ch.Content)
			case *llm.UsageChunk:
				log.Info("LLM stream completed",
					"duration", time.Since(start),
					"chars", total,
					"total_tokens", ch.Usage.TotalTokens)
			case *llm.ErrorChunk:
				log.Error("LLM stream failed", "duration", time.Since(start), "error", ch.Err)
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *loggingClient) Model() string { return c.next.Model() }

func (c *loggingClient) Close() error { return c.next.Close() }

func lastContent(req llm.Request) string {
	if len(req.Messages) == 0 {
		return req.System
	}
	return req.Messages[len(req.Messages)-1].Content
}

func truncate(s string) string {
	if len(s) <= logPreviewLen {
		return s
	}
	return s[:logPreviewLen] + "..."
}
