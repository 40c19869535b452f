package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ProctorYAMLConfig represents the complete proctor.yaml file structure
type ProctorYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Defaults  *Defaults         `yaml:"defaults"`
	Guardrail *GuardrailConfig  `yaml:"guardrail"`
	Masking   *MaskingConfig    `yaml:"masking"`
	Scoring   *ScoringConfig    `yaml:"scoring"`
	Queue     *QueueConfig      `yaml:"queue"`
	Judge0    *Judge0Config     `yaml:"judge0"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Cache     *CacheConfig     `yaml:"cache"`
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply default values
//  6. Build in-memory registries
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"chat_provider", cfg.Defaults.LLMProvider,
		"eval_provider", cfg.Defaults.EvalProvider())

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load proctor.yaml (system, defaults, guardrail, masking, scoring, queue, judge0)
	proctorConfig, err := loader.loadProctorYAML()
	if err != nil {
		return nil, NewLoadError("proctor.yaml", err)
	}

	// 2. Load llm-providers.yaml (optional; built-ins cover the common case)
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined providers (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Resolve defaults (YAML overrides built-in)
	defaults := proctorConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = builtin.DefaultLLMProvider
	}
	if defaults.Language == "" {
		defaults.Language = builtin.DefaultLanguage
	}
	if defaults.HistoryWindow <= 0 {
		defaults.HistoryWindow = builtin.HistoryWindow
	}
	if defaults.MemoryThresholdTokens <= 0 {
		defaults.MemoryThresholdTokens = builtin.MemoryThresholdTokens
	}

	// 6. Resolve section configs (merge user YAML over built-in defaults
	// so unset fields keep their defaults)
	scoringConfig := DefaultScoringConfig()
	if proctorConfig.Scoring != nil {
		if err := mergo.Merge(scoringConfig, proctorConfig.Scoring, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scoring config: %w", err)
		}
	}

	queueConfig := DefaultQueueConfig()
	if proctorConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, proctorConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	judge0Config := DefaultJudge0Config()
	if proctorConfig.Judge0 != nil {
		if err := mergo.Merge(judge0Config, proctorConfig.Judge0, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge judge0 config: %w", err)
		}
	}

	guardrailConfig := proctorConfig.Guardrail
	if guardrailConfig == nil {
		guardrailConfig = &GuardrailConfig{}
	}

	maskingConfig := proctorConfig.Masking
	if maskingConfig == nil {
		maskingConfig = &MaskingConfig{}
	}

	serverConfig := resolveServerConfig(proctorConfig.System)
	cacheConfig := resolveCacheConfig(proctorConfig.System)
	retentionConfig := resolveRetentionConfig(proctorConfig.System)

	// 7. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Server:              serverConfig,
		Cache:               cacheConfig,
		Guardrail:           guardrailConfig,
		Masking:             maskingConfig,
		Scoring:             scoringConfig,
		Queue:               queueConfig,
		Judge0:              judge0Config,
		Retention:           retentionConfig,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand ${VAR} / ${VAR:-default} before parsing
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadProctorYAML() (*ProctorYAMLConfig, error) {
	var config ProctorYAMLConfig

	if err := l.loadYAML("proctor.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		// The file is optional: built-in providers are enough when the
		// deployment only sets API keys.
		if errors.Is(err, ErrConfigNotFound) {
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// mergeLLMProviders lays user-defined providers over the built-in registry.
// A user entry replaces a built-in entry of the same name wholesale; partial
// entries surface as validation errors instead of inheriting fields.
func mergeLLMProviders(builtin, user map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	merged := make(map[string]*LLMProviderConfig, len(builtin)+len(user))
	for name, provider := range builtin {
		merged[name] = &provider
	}
	for name, provider := range user {
		merged[name] = &provider
	}
	return merged
}

// resolveServerConfig resolves server configuration from system YAML, applying defaults.
func resolveServerConfig(sys *SystemYAMLConfig) *ServerConfig {
	cfg := DefaultServerConfig()

	if sys == nil || sys.Server == nil {
		return cfg
	}

	s := sys.Server
	if s.Host != "" {
		cfg.Host = s.Host
	}
	if s.Port > 0 {
		cfg.Port = s.Port
	}
	if len(s.AllowedWSOrigins) > 0 {
		cfg.AllowedWSOrigins = s.AllowedWSOrigins
	}

	return cfg
}

// resolveCacheConfig resolves cache configuration from system YAML, applying defaults.
func resolveCacheConfig(sys *SystemYAMLConfig) *CacheConfig {
	cfg := DefaultCacheConfig()

	if sys == nil || sys.Cache == nil {
		return cfg
	}

	c := sys.Cache
	if c.Host != "" {
		cfg.Host = c.Host
	}
	if c.Port > 0 {
		cfg.Port = c.Port
	}
	if c.PasswordEnv != "" {
		cfg.PasswordEnv = c.PasswordEnv
	}
	if c.DB > 0 {
		cfg.DB = c.DB
	}
	if c.DefaultTTL > 0 {
		cfg.DefaultTTL = c.DefaultTTL
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.SessionIdleTimeout > 0 {
		cfg.SessionIdleTimeout = r.SessionIdleTimeout
	}
	if r.EvaluationRetentionDays > 0 {
		cfg.EvaluationRetentionDays = r.EvaluationRetentionDays
	}
	if r.Schedule != "" {
		cfg.Schedule = r.Schedule
	}

	return cfg
}
