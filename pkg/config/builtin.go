package config

import "time"

// BuiltinConfig holds configurations compiled into the binary. User YAML
// overrides any of these by name; the deployment only has to provide API keys.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	MaskingPatterns map[string]MaskingPattern

	DefaultLLMProvider    string
	DefaultLanguage       string
	HistoryWindow         int
	MemoryThresholdTokens int
}

func floatPtr(f float64) *float64 { return &f }

// GetBuiltinConfig returns the built-in component configurations.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"gemini": {
				Type:        ProviderGemini,
				Model:       "gemini-2.0-flash",
				APIKeyEnv:   "GOOGLE_API_KEY",
				Temperature: floatPtr(0.2),
				MaxTokens:   4096,
				RateLimit: &RateLimitConfig{
					MaxCalls: 15,
					Period:   60 * time.Second,
				},
				Retry: &RetryConfig{
					MaxRetries:   3,
					Backoff:      BackoffExponential,
					InitialDelay: 1 * time.Second,
					MaxDelay:     60 * time.Second,
				},
			},
			"anthropic": {
				Type:        ProviderAnthropic,
				Model:       "claude-sonnet-4-5",
				APIKeyEnv:   "ANTHROPIC_API_KEY",
				Temperature: floatPtr(0.2),
				MaxTokens:   4096,
				RateLimit: &RateLimitConfig{
					MaxCalls: 15,
					Period:   60 * time.Second,
				},
				Retry: &RetryConfig{
					MaxRetries:   3,
					Backoff:      BackoffExponential,
					InitialDelay: 1 * time.Second,
					MaxDelay:     60 * time.Second,
				},
			},
		},

		MaskingPatterns: initBuiltinMaskingPatterns(),

		DefaultLLMProvider:    "gemini",
		DefaultLanguage:       "python",
		HistoryWindow:         10,
		MemoryThresholdTokens: 6000,
	}
}

// initBuiltinMaskingPatterns returns the built-in credential patterns the
// masking service compiles at startup. Every pattern runs against ordinary
// exam chat and submitted code, so each one must be a high-confidence
// credential shape.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"openai_key": {
			Pattern:     `\bsk-[A-Za-z0-9_-]{20,}\b`,
			Replacement: `__MASKED_API_KEY__`,
			Description: "OpenAI/Anthropic style secret keys",
		},
		"google_api_key": {
			Pattern:     `\bAIza[0-9A-Za-z_-]{35}\b`,
			Replacement: `__MASKED_API_KEY__`,
			Description: "Google API keys",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[0-9A-Z]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9]{36,255}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub personal access tokens",
		},
		"slack_token": {
			Pattern:     `\bxox[baprs]-[A-Za-z0-9-]{10,72}\b`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
		"jwt": {
			Pattern:     `\beyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{4,}\.[A-Za-z0-9_-]{10,}\b`,
			Replacement: `__MASKED_JWT__`,
			Description: "JSON web tokens",
		},
		"bearer_token": {
			Pattern:     `(?i)\b(bearer)\s+([A-Za-z0-9._~+/-]{20,}=*)`,
			Replacement: `${1} __MASKED_TOKEN__`,
			Description: "Bearer authorization header values",
		},
		"private_key_block": {
			Pattern:     `(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`,
			Replacement: `__MASKED_PRIVATE_KEY__`,
			Description: "PEM private key blocks",
		},
		"basic_auth_url": {
			Pattern:     `\b(https?|postgres(?:ql)?|redis|mysql|amqp)(://[^\s:/@]+):([^\s:/@]+)@`,
			Replacement: `${1}${2}:__MASKED_PASSWORD__@`,
			Description: "Credentials embedded in connection URLs",
		},
		"password_assignment": {
			Pattern:     `(?i)\b(password|passwd|pwd)(["']?\s*[:=]\s*)["']([^"'\n]{4,})["']`,
			Replacement: `${1}${2}"__MASKED_PASSWORD__"`,
			Description: "Quoted password literals in config or code",
		},
	}
}
