package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a config that passes every validator check; tests
// mutate one field at a time.
func validTestConfig() *Config {
	return &Config{
		Defaults: &Defaults{
			LLMProvider:           "gemini",
			Language:              "python",
			HistoryWindow:         10,
			MemoryThresholdTokens: 6000,
		},
		Server:    DefaultServerConfig(),
		Cache:     DefaultCacheConfig(),
		Guardrail: &GuardrailConfig{},
		Masking:   &MaskingConfig{},
		Scoring:   DefaultScoringConfig(),
		Queue:     DefaultQueueConfig(),
		Judge0:    DefaultJudge0Config(),
		Retention: DefaultRetentionConfig(),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"gemini": {
				Type:      ProviderGemini,
				Model:     "gemini-2.0-flash",
				APIKeyEnv: "GOOGLE_API_KEY",
			},
		}),
	}
}

func TestValidateAll_Valid(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*LLMProviderConfig)
		errContains string
	}{
		{
			name:        "missing type",
			mutate:      func(p *LLMProviderConfig) { p.Type = "" },
			errContains: "type",
		},
		{
			name:        "unsupported type",
			mutate:      func(p *LLMProviderConfig) { p.Type = "openai" },
			errContains: "unsupported type",
		},
		{
			name:        "missing model",
			mutate:      func(p *LLMProviderConfig) { p.Model = "" },
			errContains: "model",
		},
		{
			name:        "missing api key env",
			mutate:      func(p *LLMProviderConfig) { p.APIKeyEnv = "" },
			errContains: "api_key_env",
		},
		{
			name: "zero rate limit calls",
			mutate: func(p *LLMProviderConfig) {
				p.RateLimit = &RateLimitConfig{MaxCalls: 0, Period: time.Minute}
			},
			errContains: "max_calls",
		},
		{
			name: "invalid backoff",
			mutate: func(p *LLMProviderConfig) {
				p.Retry = &RetryConfig{MaxRetries: 3, Backoff: "geometric"}
			},
			errContains: "backoff",
		},
		{
			name: "initial delay exceeds max",
			mutate: func(p *LLMProviderConfig) {
				p.Retry = &RetryConfig{MaxRetries: 3, InitialDelay: 2 * time.Minute, MaxDelay: time.Minute}
			},
			errContains: "initial_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &LLMProviderConfig{
				Type:      ProviderGemini,
				Model:     "gemini-2.0-flash",
				APIKeyEnv: "GOOGLE_API_KEY",
			}
			tt.mutate(provider)

			cfg := validTestConfig()
			cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
				"gemini": provider,
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validTestConfig()
	cfg.Defaults.LLMProvider = "missing"
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	assert.Contains(t, err.Error(), "missing")

	cfg = validTestConfig()
	cfg.Defaults.EvalLLMProvider = "missing-eval"
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-eval")

	cfg = validTestConfig()
	cfg.Defaults.HistoryWindow = 0
	assert.Error(t, NewValidator(cfg).ValidateAll())
}

func TestValidateMasking(t *testing.T) {
	cfg := validTestConfig()
	cfg.Masking.ExtraPatterns = []MaskingPattern{{Pattern: `(?i)exam-internal-[0-9]{4}`, Replacement: "__MASKED__"}}
	assert.NoError(t, NewValidator(cfg).ValidateAll())

	cfg = validTestConfig()
	cfg.Masking.ExtraPatterns = []MaskingPattern{{Pattern: `[unclosed`, Replacement: "__MASKED__"}}
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")

	cfg = validTestConfig()
	cfg.Masking.ExtraPatterns = []MaskingPattern{{Replacement: "__MASKED__"}}
	assert.ErrorIs(t, NewValidator(cfg).ValidateAll(), ErrMissingRequiredField)
}

func TestValidateScoring(t *testing.T) {
	cfg := validTestConfig()
	cfg.Scoring.PromptWeight = 0.5
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "sum to 1.0")

	cfg = validTestConfig()
	cfg.Scoring.CorrectnessWeight = -0.1
	assert.Error(t, NewValidator(cfg).ValidateAll())

	cfg = validTestConfig()
	cfg.Scoring.TurnEvalParallelism = 0
	assert.Error(t, NewValidator(cfg).ValidateAll())
}

func TestValidateQueue(t *testing.T) {
	cfg := validTestConfig()
	cfg.Queue.WorkerCount = 0
	assert.Error(t, NewValidator(cfg).ValidateAll())

	cfg = validTestConfig()
	cfg.Queue.ResultMaxWait = 100 * time.Millisecond
	cfg.Queue.ResultPollInterval = time.Second
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result_max_wait")
}

func TestValidateJudge0(t *testing.T) {
	cfg := validTestConfig()
	cfg.Judge0.CPUTimeLimit = 0
	assert.Error(t, NewValidator(cfg).ValidateAll())

	// Empty base URL is allowed: submissions fall back to LLM scoring.
	cfg = validTestConfig()
	cfg.Judge0.BaseURL = ""
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateServer(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Port = 0
	assert.Error(t, NewValidator(cfg).ValidateAll())

	cfg = validTestConfig()
	cfg.Server.Port = 70000
	assert.Error(t, NewValidator(cfg).ValidateAll())
}

func TestValidateRetention(t *testing.T) {
	cfg := validTestConfig()
	cfg.Retention.Schedule = "not a cron spec"
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron")

	cfg = validTestConfig()
	cfg.Retention.Schedule = "*/30 * * * *"
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}
