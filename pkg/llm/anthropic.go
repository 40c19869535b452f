package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/examkit/proctor/pkg/models"
)

// AnthropicClient implements Client on the Anthropic SDK.
type AnthropicClient struct {
	client anthropic.Client
	cfg    Config
}

// NewAnthropicClient creates a Claude-backed client.
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = string(anthropic.ModelClaudeSonnet4_0)
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &AnthropicClient{client: client, cfg: cfg}, nil
}

func (a *AnthropicClient) Model() string { return a.cfg.Model }

func (a *AnthropicClient) Close() error { return nil }

func (a *AnthropicClient) Generate(ctx context.Context, req Request) (*Response, error) {
	params := a.buildParams(req)

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic invocation failed: %w", err)
	}

	out := &Response{}
	for _, block := range message.Content {
		if block.Type == "text" {
			out.Text += block.Text
		}
	}
	out.Usage = anthropicUsage(message.Usage)
	return out, nil
}

func (a *AnthropicClient) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	params := a.buildParams(req)
	chunks := make(chan Chunk, 64)

	go func() {
		defer close(chunks)

		stream := a.client.Messages.NewStreaming(ctx, params)
		message := anthropic.Message{}
		for stream.Next() {
			event := stream.Current()
			if err := message.Accumulate(event); err != nil {
				chunks <- &ErrorChunk{Err: fmt.Errorf("anthropic stream accumulate failed: %w", err)}
				return
			}
			switch eventVariant := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := eventVariant.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					select {
					case chunks <- &TextChunk{Content: delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			chunks <- &ErrorChunk{Err: fmt.Errorf("anthropic streaming error: %w", err)}
			return
		}
		chunks <- &UsageChunk{Usage: anthropicUsage(message.Usage)}
	}()

	return chunks, nil
}

func (a *AnthropicClient) buildParams(req Request) anthropic.MessageNewParams {
	sdkMessages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == models.RoleAssistant {
			sdkMessages = append(sdkMessages, anthropic.NewAssistantMessage(block))
		} else {
			sdkMessages = append(sdkMessages, anthropic.NewUserMessage(block))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = a.cfg.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.Model),
		Messages:  sdkMessages,
		MaxTokens: int64(maxTokens),
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	} else if a.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(a.cfg.Temperature)
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params
}

func anthropicUsage(u anthropic.Usage) models.TokenUsage {
	return models.TokenUsage{
		PromptTokens:     int(u.InputTokens),
		CompletionTokens: int(u.OutputTokens),
		TotalTokens:      int(u.InputTokens + u.OutputTokens),
	}
}
