package llm

import (
	"context"
	"fmt"
)

// New constructs the provider named in cfg. Gemini is the default provider.
func New(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiClient(ctx, cfg)
	case "anthropic":
		return NewAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
