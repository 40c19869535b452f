package config

// Config is the root object assembled by Initialize: the resolved defaults,
// one section per tunable subsystem and the LLM provider registry. Loading
// finishes before anything else starts, so callers treat it as read-only.
type Config struct {
	configDir string // where the YAML was loaded from

	// Defaults names the providers and core knobs subsystems fall back to.
	Defaults *Defaults

	// HTTP server settings
	Server *ServerConfig

	// Redis cache settings
	Cache *CacheConfig

	// Two-layer guardrail tuning
	Guardrail *GuardrailConfig

	// Outbound credential masking
	Masking *MaskingConfig

	// Final-score weights and evaluation fan-out
	Scoring *ScoringConfig

	// Execution queue and judge worker settings
	Queue *QueueConfig

	// Judge0 sandbox adapter settings
	Judge0 *Judge0Config

	// Retention and cleanup settings
	Retention *RetentionConfig

	// LLMProviderRegistry resolves provider names from defaults and requests.
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats summarizes what was loaded, for the startup log line.
type Stats struct {
	LLMProviders int
}

func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir reports where configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider looks up a provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ChatProvider returns the provider config for the chat/writer path.
func (c *Config) ChatProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.LLMProvider)
}

// EvalProvider returns the provider config for evaluation paths.
func (c *Config) EvalProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.EvalProvider())
}
