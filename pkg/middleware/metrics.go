package middleware

import (
	"context"
	"time"

	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/metrics"
)

// Metrics records call volume, latency and token usage per call site. Placed
// outermost in the chain, one observation covers rate-limit wait and retries.
func Metrics(name string) Middleware {
	return func(next llm.Client) llm.Client {
		return &metricsClient{next: next, name: name}
	}
}

type metricsClient struct {
	next llm.Client
	name string
}

func (c *metricsClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	start := time.Now()
	resp, err := c.next.Generate(ctx, req)
	c.observe(time.Since(start), err)
	if resp != nil {
		c.countTokens(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}
	return resp, err
}

func (c *metricsClient) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	start := time.Now()
	chunks, err := c.next.GenerateStream(ctx, req)
	if err != nil {
		c.observe(time.Since(start), err)
		return nil, err
	}

	out := make(chan llm.Chunk, 16)
	go func() {
		defer close(out)
		var streamErr error
		for chunk := range chunks {
			switch ch := chunk.(type) {
			case *llm.UsageChunk:
				c.countTokens(ch.Usage.PromptTokens, ch.Usage.CompletionTokens)
			case *llm.ErrorChunk:
				streamErr = ch.Err
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				c.observe(time.Since(start), ctx.Err())
				return
			}
		}
		c.observe(time.Since(start), streamErr)
	}()
	return out, nil
}

func (c *metricsClient) observe(d time.Duration, err error) {
	model := c.next.Model()
	metrics.LLMRequests.WithLabelValues(c.name, model, metrics.Outcome(err)).Inc()
	metrics.LLMDuration.WithLabelValues(c.name, model).Observe(d.Seconds())
}

func (c *metricsClient) countTokens(prompt, completion int) {
	model := c.next.Model()
	if prompt > 0 {
		metrics.LLMTokens.WithLabelValues(c.name, model, metrics.TokenKindPrompt).Add(float64(prompt))
	}
	if completion > 0 {
		metrics.LLMTokens.WithLabelValues(c.name, model, metrics.TokenKindCompletion).Add(float64(completion))
	}
}

func (c *metricsClient) Model() string { return c.next.Model() }

func (c *metricsClient) Close() error { return c.next.Close() }
