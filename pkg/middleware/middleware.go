// Package middleware composes the LLM call pipeline: rate limiting, retry
// with backoff, credential masking, and structured call logging, each as a
// transparent wrapper around the llm.Client interface.
//
// Production order is rate limit → retry → masking → logging → provider, so
// a retried call re-enters neither the limiter window nor the outer log
// line, and the call log only ever sees scrubbed text.
package middleware

import "github.com/examkit/proctor/pkg/llm"

// Middleware wraps a client with one concern.
type Middleware func(llm.Client) llm.Client

// Chain applies middlewares so the first argument is the outermost layer.
func Chain(base llm.Client, mws ...Middleware) llm.Client {
	client := base
	for i := len(mws) - 1; i >= 0; i-- {
		client = mws[i](client)
	}
	return client
}
