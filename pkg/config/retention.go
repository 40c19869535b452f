package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionIdleTimeout is how long an open session may sit without a new
	// message before the cleanup job closes it (sets ended_at).
	SessionIdleTimeout time.Duration `yaml:"session_idle_timeout"`

	// EvaluationRetentionDays is how many days to keep evaluation rows for
	// closed sessions before purging them.
	EvaluationRetentionDays int `yaml:"evaluation_retention_days"`

	// Schedule is the cron expression driving the cleanup jobs.
	Schedule string `yaml:"schedule"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionIdleTimeout:      6 * time.Hour,
		EvaluationRetentionDays: 180,
		Schedule:                "0 */1 * * *",
	}
}
