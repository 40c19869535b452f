package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/examkit/proctor/pkg/llm"
)

// RateLimitConfig bounds call frequency with a sliding window.
type RateLimitConfig struct {
	MaxCalls int           `yaml:"max_calls"`
	Window   time.Duration `yaml:"window"`
}

// DefaultRateLimitConfig matches the provider free-tier budget.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{MaxCalls: 15, Window: time.Minute}
}

// RateLimit delays calls that would exceed cfg.MaxCalls per cfg.Window.
// Calls are never dropped; excess callers block until a slot frees up or
// their context expires.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.MaxCalls <= 0 {
		cfg.MaxCalls = 15
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	limiter := &slidingWindow{cfg: cfg}

	return func(next llm.Client) llm.Client {
		return &rateLimitedClient{next: next, limiter: limiter}
	}
}

type slidingWindow struct {
	cfg   RateLimitConfig
	mu    sync.Mutex
	calls []time.Time
}

// acquire blocks until a slot is free, then records the call.
func (w *slidingWindow) acquire(ctx context.Context) error {
	for {
		w.mu.Lock()
		now := time.Now()
		cutoff := now.Add(-w.cfg.Window)
		// Drop calls that left the window.
		kept := w.calls[:0]
		for _, t := range w.calls {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		w.calls = kept

		if len(w.calls) < w.cfg.MaxCalls {
			w.calls = append(w.calls, now)
			w.mu.Unlock()
			return nil
		}

		wait := w.calls[0].Add(w.cfg.Window).Sub(now)
		w.mu.Unlock()

		slog.Debug("Rate limit window full, delaying call", "wait", wait)
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

type rateLimitedClient struct {
	next    llm.Client
	limiter *slidingWindow
}

func (c *rateLimitedClient) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if err := c.limiter.acquire(ctx); err != nil {
		return nil, err
	}
	return c.next.Generate(ctx, req)
}

func (c *rateLimitedClient) GenerateStream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	if err := c.limiter.acquire(ctx); err != nil {
		return nil, err
	}
	return c.next.GenerateStream(ctx, req)
}

func (c *rateLimitedClient) Model() string { return c.next.Model() }

func (c *rateLimitedClient) Close() error { return c.next.Close() }
