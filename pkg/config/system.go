package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`

	// AllowedWSOrigins are additional origin patterns accepted for
	// WebSocket upgrades beyond same-origin.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8000,
	}
}

// CacheConfig holds Redis connection settings for live state, turn logs,
// checkpoints, and the execution queue.
type CacheConfig struct {
	Host        string        `yaml:"host,omitempty"`
	Port        int           `yaml:"port,omitempty"`
	PasswordEnv string        `yaml:"password_env,omitempty"`
	DB          int           `yaml:"db,omitempty"`
	DefaultTTL  time.Duration `yaml:"default_ttl,omitempty"`
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Host:       "localhost",
		Port:       6379,
		DB:         0,
		DefaultTTL: 1 * time.Hour,
	}
}

// GuardrailConfig tunes the two-layer intent classifier.
type GuardrailConfig struct {
	// Enabled toggles the whole guardrail; when false every message is
	// treated as SAFE/CHAT. Tests and offline replays turn it off.
	Enabled *bool `yaml:"enabled,omitempty"`

	// ExtraBlockKeywords extends the built-in layer-1 hard-block table.
	ExtraBlockKeywords []string `yaml:"extra_block_keywords,omitempty"`

	// ExtraHintKeywords extends the built-in layer-1 hint vocabulary.
	ExtraHintKeywords []string `yaml:"extra_hint_keywords,omitempty"`
}

// IsEnabled resolves the Enabled pointer, defaulting to true.
func (g *GuardrailConfig) IsEnabled() bool {
	if g == nil || g.Enabled == nil {
		return true
	}
	return *g.Enabled
}

// MaskingPattern is one regex scrubbing rule applied to outbound LLM text.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// MaskingConfig tunes the outbound credential scrubber. Participants paste
// live tokens into chat and code often enough that everything bound for a
// third-party model provider passes through the masking service first.
type MaskingConfig struct {
	// Enabled toggles masking; nil defaults to on.
	Enabled *bool `yaml:"enabled,omitempty"`

	// ExtraPatterns extends the built-in pattern table with
	// deployment-specific rules.
	ExtraPatterns []MaskingPattern `yaml:"extra_patterns,omitempty"`
}

// IsEnabled resolves the Enabled pointer, defaulting to true.
func (m *MaskingConfig) IsEnabled() bool {
	if m == nil || m.Enabled == nil {
		return true
	}
	return *m.Enabled
}

// ScoringConfig holds the final-score weights and the submission-time
// evaluation fan-out limit.
type ScoringConfig struct {
	PromptWeight      float64 `yaml:"prompt_weight,omitempty"`
	PerformanceWeight float64 `yaml:"performance_weight,omitempty"`
	CorrectnessWeight float64 `yaml:"correctness_weight,omitempty"`

	// TurnEvalParallelism caps concurrent per-turn evaluations on submit.
	TurnEvalParallelism int `yaml:"turn_eval_parallelism,omitempty"`
}

// DefaultScoringConfig returns the built-in scoring defaults.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		PromptWeight:        0.25,
		PerformanceWeight:   0.25,
		CorrectnessWeight:   0.50,
		TurnEvalParallelism: 5,
	}
}
