package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/examkit/proctor/pkg/models"
)

// GeminiClient implements Client on the Google genai SDK.
type GeminiClient struct {
	client *genai.Client
	cfg    Config
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg}, nil
}

func (g *GeminiClient) Model() string { return g.cfg.Model }

func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	contents, config := g.buildRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	out := &Response{}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" && !part.Thought {
				out.Text += part.Text
			}
		}
	}
	out.Usage = geminiUsage(resp.UsageMetadata)
	return out, nil
}

func (g *GeminiClient) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	contents, config := g.buildRequest(req)
	chunks := make(chan Chunk, 64)

	go func() {
		defer close(chunks)
		var usage *genai.GenerateContentResponseUsageMetadata

		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.cfg.Model, contents, config) {
			if err != nil {
				chunks <- &ErrorChunk{Err: fmt.Errorf("gemini streaming error: %w", err)}
				return
			}
			if resp.UsageMetadata != nil {
				usage = resp.UsageMetadata
			}
			for _, cand := range resp.Candidates {
				if cand.Content == nil {
					continue
				}
				for _, part := range cand.Content.Parts {
					if part.Text != "" && !part.Thought {
						select {
						case chunks <- &TextChunk{Content: part.Text}:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
		chunks <- &UsageChunk{Usage: geminiUsage(usage)}
	}()

	return chunks, nil
}

func (g *GeminiClient) buildRequest(req Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	var contents []*genai.Content
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*req.Temperature))
	} else if g.cfg.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(g.cfg.Temperature))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	} else if g.cfg.MaxTokens > 0 {
		config.MaxOutputTokens = int32(g.cfg.MaxTokens)
	}
	if req.JSONMode {
		config.ResponseMIMEType = "application/json"
	}
	return contents, config
}

func geminiUsage(u *genai.GenerateContentResponseUsageMetadata) models.TokenUsage {
	if u == nil {
		return models.TokenUsage{}
	}
	return models.TokenUsage{
		PromptTokens:     int(u.PromptTokenCount),
		CompletionTokens: int(u.CandidatesTokenCount),
		TotalTokens:      int(u.TotalTokenCount),
	}
}
