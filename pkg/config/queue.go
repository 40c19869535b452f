package config

import "time"

// QueueConfig contains execution-queue and worker pool configuration.
// These values control how code submissions are pulled and run.
type QueueConfig struct {
	// WorkerCount is the number of judge worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// BlockTimeout is how long a worker blocks on an empty queue before
	// re-checking for shutdown (BRPOP timeout for the redis queue).
	BlockTimeout time.Duration `yaml:"block_timeout"`

	// ResultPollInterval is how often a submitter polls for a result.
	ResultPollInterval time.Duration `yaml:"result_poll_interval"`

	// ResultMaxWait caps how long a submitter waits for a result before
	// falling back to LLM-estimated scoring.
	ResultMaxWait time.Duration `yaml:"result_max_wait"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:        2,
		BlockTimeout:       1 * time.Second,
		ResultPollInterval: 500 * time.Millisecond,
		ResultMaxWait:      60 * time.Second,
	}
}

// Judge0Config holds sandbox adapter settings.
type Judge0Config struct {
	// BaseURL of the Judge0 instance (e.g. https://judge0.example.com).
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable carrying the auth token.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// CPUTimeLimit is the per-test CPU budget in seconds.
	CPUTimeLimit float64 `yaml:"cpu_time_limit,omitempty"`

	// MemoryLimitKB is the per-test memory budget in kilobytes.
	MemoryLimitKB int `yaml:"memory_limit_kb,omitempty"`

	// PollInterval and MaxPollAttempts bound the wait for a single
	// Judge0 submission to leave the queued state.
	PollInterval    time.Duration `yaml:"poll_interval,omitempty"`
	MaxPollAttempts int           `yaml:"max_poll_attempts,omitempty"`
}

// DefaultJudge0Config returns the built-in sandbox defaults.
func DefaultJudge0Config() *Judge0Config {
	return &Judge0Config{
		APIKeyEnv:       "JUDGE0_API_KEY",
		CPUTimeLimit:    2.0,
		MemoryLimitKB:   262144,
		PollInterval:    500 * time.Millisecond,
		MaxPollAttempts: 60,
	}
}
