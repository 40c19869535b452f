package middleware

import (
	"context"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/masking"
)

// Masking scrubs credential material from every outgoing request. It sits
// above the logging layer so neither the provider nor the call log sees the
// original text. Responses pass through untouched.
func Masking(svc *masking.Service) Middleware {
	return func(next llm.Client) llm.Client {
		return &maskingClient{next: next, svc: svc}
	}
}

type maskingClient struct {
	next llm.Client
	svc  *masking.Service
}

func (c *maskingClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return c.next.Generate(ctx, c.scrub(req))
}

func (c *maskingClient) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	return c.next.GenerateStream(ctx, c.scrub(req))
}

// scrub masks the system prompt and message contents. The messages slice is
// copied first; callers keep their unmasked conversation state.
func (c *maskingClient) scrub(req llm.Request) llm.Request {
	req.System = c.svc.Mask(req.System)
	if len(req.Messages) > 0 {
		messages := make([]llm.Message, len(req.Messages))
		copy(messages, req.Messages)
		for i := range messages {
			messages[i].Content = c.svc.Mask(messages[i].Content)
		}
		req.Messages = messages
	}
	return req
}

func (c *maskingClient) Model() string { return c.next.Model() }

func (c *maskingClient) Close() error { return c.next.Close() }
