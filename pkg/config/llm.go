package config

import (
	"fmt"
	"maps"
	"time"
)

// LLMProviderConfig defines LLM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable name for API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Sampling temperature; nil means provider default
	Temperature *float64 `yaml:"temperature,omitempty"`

	// Maximum completion tokens per call
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Client-side rate limiting (sliding window)
	RateLimit *RateLimitConfig `yaml:"rate_limit,omitempty"`

	// Transient-failure retry policy
	Retry *RetryConfig `yaml:"retry,omitempty"`
}

// RateLimitConfig bounds outbound calls to a provider. Over-limit callers
// block until the window frees up; calls are never dropped.
type RateLimitConfig struct {
	MaxCalls int           `yaml:"max_calls"`
	Period   time.Duration `yaml:"period"`
}

// RetryConfig controls retries of transient LLM failures.
type RetryConfig struct {
	MaxRetries   int             `yaml:"max_retries"`
	Backoff      BackoffStrategy `yaml:"backoff,omitempty"`
	InitialDelay time.Duration   `yaml:"initial_delay,omitempty"`
	MaxDelay     time.Duration   `yaml:"max_delay,omitempty"`
}

// LLMProviderRegistry resolves provider names to configurations. Initialize
// builds it once and it is read-only afterwards, so lookups take no lock.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
}

// NewLLMProviderRegistry copies the given providers into a fresh registry.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	return &LLMProviderRegistry{providers: maps.Clone(providers)}
}

// Get returns the named provider configuration.
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns a copy of the provider table.
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	return maps.Clone(r.providers)
}

// Has reports whether the named provider exists.
func (r *LLMProviderRegistry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Len returns the number of registered providers.
func (r *LLMProviderRegistry) Len() int {
	return len(r.providers)
}
