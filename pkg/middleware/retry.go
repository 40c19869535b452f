package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/examkit/proctor/pkg/llm"
)

// Backoff strategies.
const (
	BackoffExponential = "exponential"
	BackoffLinear      = "linear"
	BackoffFixed       = "fixed"
)

// RetryConfig controls transient-failure retries.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	Strategy     string        `yaml:"strategy"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
}

// DefaultRetryConfig returns 3 attempts with exponential backoff from 1s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		Strategy:     BackoffExponential,
		InitialDelay: time.Second,
		MaxDelay:     time.Minute,
	}
}

// Delay computes the pause before retry number attempt (0-based), clamped to
// MaxDelay.
func (c RetryConfig) Delay(attempt int) time.Duration {
	var d time.Duration
	switch c.Strategy {
	case BackoffLinear:
		d = c.InitialDelay * time.Duration(attempt+1)
	case BackoffFixed:
		d = c.InitialDelay
	default:
		d = c.InitialDelay * time.Duration(1<<attempt)
	}
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

// Retry re-issues failed calls when the error looks transient (rate, quota,
// timeout). Non-retryable errors pass through immediately.
func Retry(cfg RetryConfig) Middleware {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	return func(next llm.Client) llm.Client {
		return &retryingClient{next: next, cfg: cfg}
	}
}

type retryingClient struct {
	next llm.Client
	cfg  RetryConfig
}

func (c *retryingClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		resp, err := c.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !llm.Retryable(err) {
			return nil, err
		}
		if attempt == c.cfg.MaxAttempts-1 {
			break
		}

		delay := c.cfg.Delay(attempt)
		slog.Warn("LLM call failed, retrying",
			"attempt", attempt+1,
			"max_attempts", c.cfg.MaxAttempts,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

// GenerateStream retries only the stream establishment. A stream that fails
// after emitting chunks is not replayed; the consumer already saw partial
// output.
func (c *retryingClient) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		chunks, err := c.next.GenerateStream(ctx, req)
		if err == nil {
			return chunks, nil
		}
		lastErr = err
		if !llm.Retryable(err) {
			return nil, err
		}
		if attempt == c.cfg.MaxAttempts-1 {
			break
		}

		delay := c.cfg.Delay(attempt)
		slog.Warn("LLM stream open failed, retrying",
			"attempt", attempt+1,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (c *retryingClient) Model() string { return c.next.Model() }

func (c *retryingClient) Close() error { return c.next.Close() }
