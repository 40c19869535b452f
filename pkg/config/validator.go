package config

import (
	"fmt"
	"math"
	"regexp"

	"github.com/robfig/cron/v3"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → defaults → masking → scoring → queue →
	// judge0 → server → retention. Providers first so defaults can reference
	// them.

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	if err := v.validateScoring(); err != nil {
		return fmt.Errorf("scoring validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateJudge0(); err != nil {
		return fmt.Errorf("judge0 validation failed: %w", err)
	}

	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: unsupported type: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if provider.MaxTokens < 0 {
			return NewValidationError("llm_provider", name, "max_tokens", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}

		if rl := provider.RateLimit; rl != nil {
			if rl.MaxCalls < 1 {
				return NewValidationError("llm_provider", name, "rate_limit.max_calls", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
			}
			if rl.Period <= 0 {
				return NewValidationError("llm_provider", name, "rate_limit.period", fmt.Errorf("%w: must be positive", ErrInvalidValue))
			}
		}

		if r := provider.Retry; r != nil {
			if r.MaxRetries < 0 {
				return NewValidationError("llm_provider", name, "retry.max_retries", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
			}
			if r.Backoff != "" && !r.Backoff.IsValid() {
				return NewValidationError("llm_provider", name, "retry.backoff", fmt.Errorf("%w: invalid strategy: %s", ErrInvalidValue, r.Backoff))
			}
			if r.MaxDelay > 0 && r.InitialDelay > r.MaxDelay {
				return NewValidationError("llm_provider", name, "retry.initial_delay", fmt.Errorf("%w: exceeds max_delay", ErrInvalidValue))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("%w: '%s'", ErrLLMProviderNotFound, d.LLMProvider))
	}
	if d.EvalLLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.EvalLLMProvider) {
		return NewValidationError("defaults", "defaults", "eval_llm_provider", fmt.Errorf("%w: '%s'", ErrLLMProviderNotFound, d.EvalLLMProvider))
	}
	if d.HistoryWindow < 1 {
		return NewValidationError("defaults", "defaults", "history_window", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if d.MemoryThresholdTokens < 1 {
		return NewValidationError("defaults", "defaults", "memory_threshold_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	if v.cfg.Masking == nil {
		return nil
	}

	for i, p := range v.cfg.Masking.ExtraPatterns {
		field := fmt.Sprintf("extra_patterns[%d].pattern", i)
		if p.Pattern == "" {
			return NewValidationError("masking", "masking", field, ErrMissingRequiredField)
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return NewValidationError("masking", "masking", field, fmt.Errorf("invalid regex: %w", err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateScoring() error {
	s := v.cfg.Scoring

	for field, w := range map[string]float64{
		"prompt_weight":      s.PromptWeight,
		"performance_weight": s.PerformanceWeight,
		"correctness_weight": s.CorrectnessWeight,
	} {
		if w < 0 || w > 1 {
			return NewValidationError("scoring", "scoring", field, fmt.Errorf("%w: must be within [0,1]", ErrInvalidValue))
		}
	}

	sum := s.PromptWeight + s.PerformanceWeight + s.CorrectnessWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return NewValidationError("scoring", "scoring", "", fmt.Errorf("%w: weights must sum to 1.0, got %.4f", ErrInvalidValue, sum))
	}

	if s.TurnEvalParallelism < 1 {
		return NewValidationError("scoring", "scoring", "turn_eval_parallelism", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.BlockTimeout <= 0 {
		return NewValidationError("queue", "queue", "block_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.ResultPollInterval <= 0 {
		return NewValidationError("queue", "queue", "result_poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.ResultMaxWait < q.ResultPollInterval {
		return NewValidationError("queue", "queue", "result_max_wait", fmt.Errorf("%w: must be at least result_poll_interval", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateJudge0() error {
	j := v.cfg.Judge0

	// BaseURL may be empty: submissions then fall back to LLM-estimated
	// scoring, which dev setups rely on.
	if j.CPUTimeLimit <= 0 {
		return NewValidationError("judge0", "judge0", "cpu_time_limit", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if j.MemoryLimitKB < 1 {
		return NewValidationError("judge0", "judge0", "memory_limit_kb", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if j.PollInterval <= 0 {
		return NewValidationError("judge0", "judge0", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if j.MaxPollAttempts < 1 {
		return NewValidationError("judge0", "judge0", "max_poll_attempts", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server

	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "server", "port", fmt.Errorf("%w: must be within [1,65535]", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.SessionIdleTimeout <= 0 {
		return NewValidationError("retention", "retention", "session_idle_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.EvaluationRetentionDays < 1 {
		return NewValidationError("retention", "retention", "evaluation_retention_days", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		return NewValidationError("retention", "retention", "schedule", fmt.Errorf("invalid cron expression: %w", err))
	}

	return nil
}
