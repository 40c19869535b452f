package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfigDir creates a temporary config directory with valid files.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	proctorYAML := `
system:
  server:
    host: 127.0.0.1
    port: 9000
  cache:
    host: ${REDIS_HOST:-localhost}
    port: 6379
defaults:
  llm_provider: gemini
  language: python
scoring:
  prompt_weight: 0.25
  performance_weight: 0.25
  correctness_weight: 0.50
queue:
  worker_count: 3
judge0:
  base_url: http://judge0.local:2358
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte(proctorYAML), 0o644))

	providersYAML := `
llm_providers:
  gemini:
    type: gemini
    model: gemini-2.0-flash
    api_key_env: GOOGLE_API_KEY
    max_tokens: 2048
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))

	return dir
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, configDir, cfg.ConfigDir())
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Cache.Host)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, "http://judge0.local:2358", cfg.Judge0.BaseURL)

	// User YAML overrides the built-in gemini provider
	gemini, err := cfg.GetLLMProvider("gemini")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, gemini.Type)
	assert.Equal(t, 2048, gemini.MaxTokens)

	// Built-in anthropic provider survives the merge
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic"))
	assert.GreaterOrEqual(t, cfg.Stats().LLMProviders, 2)
}

func TestInitializeMissingProctorYAML(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeOptionalProvidersFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte("defaults:\n  llm_provider: gemini\n"), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in providers alone satisfy the registry.
	assert.True(t, cfg.LLMProviderRegistry.Has("gemini"))
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic"))
}

func TestInitializeAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte("{}\n"), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Defaults.LLMProvider)
	assert.Equal(t, "gemini", cfg.Defaults.EvalProvider())
	assert.Equal(t, "python", cfg.Defaults.Language)
	assert.Equal(t, 10, cfg.Defaults.HistoryWindow)
	assert.Equal(t, 0.25, cfg.Scoring.PromptWeight)
	assert.Equal(t, 0.50, cfg.Scoring.CorrectnessWeight)
	assert.Equal(t, 5, cfg.Scoring.TurnEvalParallelism)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Queue.BlockTimeout)
	assert.Equal(t, 60*time.Second, cfg.Queue.ResultMaxWait)
	assert.Equal(t, 262144, cfg.Judge0.MemoryLimitKB)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 1*time.Hour, cfg.Cache.DefaultTTL)
	assert.Equal(t, 6*time.Hour, cfg.Retention.SessionIdleTimeout)
	assert.True(t, cfg.Guardrail.IsEnabled())
}

func TestInitializePartialSectionKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	proctorYAML := `
queue:
  worker_count: 8
scoring:
  turn_eval_parallelism: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte(proctorYAML), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values take effect; unset siblings keep defaults.
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.ResultPollInterval)
	assert.Equal(t, 3, cfg.Scoring.TurnEvalParallelism)
	assert.Equal(t, 0.25, cfg.Scoring.PromptWeight)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte("queue: [not: a map\n"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeUnknownDefaultProvider(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte("defaults:\n  llm_provider: nonexistent\n"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGuardrailDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proctor.yaml"), []byte("guardrail:\n  enabled: false\n"), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, cfg.Guardrail.IsEnabled())
}
