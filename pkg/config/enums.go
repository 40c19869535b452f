package config

// LLMProviderType identifies the SDK used to reach a provider.
type LLMProviderType string

const (
	// ProviderGemini uses the google.golang.org/genai SDK
	ProviderGemini LLMProviderType = "gemini"
	// ProviderAnthropic uses the anthropic-sdk-go SDK
	ProviderAnthropic LLMProviderType = "anthropic"
)

// IsValid checks if the provider type is supported
func (t LLMProviderType) IsValid() bool {
	switch t {
	case ProviderGemini, ProviderAnthropic:
		return true
	default:
		return false
	}
}

// BackoffStrategy controls how retry delays grow between attempts
type BackoffStrategy string

const (
	BackoffExponential BackoffStrategy = "exponential"
	BackoffLinear      BackoffStrategy = "linear"
	BackoffFixed       BackoffStrategy = "fixed"
)

// IsValid checks if the backoff strategy is supported
func (b BackoffStrategy) IsValid() bool {
	switch b {
	case BackoffExponential, BackoffLinear, BackoffFixed:
		return true
	default:
		return false
	}
}
