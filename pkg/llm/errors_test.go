package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{"rate limit", errors.New("429: rate limit exceeded"), FailureRateLimit},
		{"quota", errors.New("RESOURCE_EXHAUSTED: quota exceeded for model"), FailureRateLimit},
		{"context window", errors.New("input exceeds context window"), FailureThreshold},
		{"token limit", errors.New("prompt token count above maximum"), FailureThreshold},
		{"other", errors.New("connection refused"), FailureOther},
		{"nil", nil, FailureOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(errors.New("rate limit exceeded")))
	assert.True(t, Retryable(errors.New("quota exhausted")))
	assert.True(t, Retryable(errors.New("request timeout after 30s")))
	assert.False(t, Retryable(errors.New("invalid api key")))
	assert.False(t, Retryable(errors.New("context window overflow")))
	assert.False(t, Retryable(nil))
}
