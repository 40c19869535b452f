// Package llm abstracts the chat-completion providers behind a single
// client interface. The engine never talks to a provider SDK directly; it
// goes through the middleware pipeline, which wraps the clients defined here.
package llm

import (
	"context"

	"github.com/examkit/proctor/pkg/models"
)

// Message is one conversation entry sent to a provider.
type Message struct {
	Role    models.Role
	Content string
}

// Request describes a single completion call.
type Request struct {
	System      string
	Messages    []Message
	Temperature *float64
	MaxTokens   int
	// JSONMode asks the provider for a JSON-only response where supported.
	JSONMode bool
}

// Response is a completed (non-streaming) generation.
type Response struct {
	Text  string
	Usage models.TokenUsage
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a delta of the model's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption; sent once at end of stream.
type UsageChunk struct{ Usage models.TokenUsage }

// ErrorChunk signals a provider error; the stream closes after it.
type ErrorChunk struct{ Err error }

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }

// Client is the provider-agnostic completion interface.
type Client interface {
	// Generate performs one blocking completion.
	Generate(ctx context.Context, req Request) (*Response, error)
	// GenerateStream performs a streaming completion. The channel closes
	// when the stream finishes; an ErrorChunk precedes the close on failure.
	GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error)
	// Model returns the configured model identifier.
	Model() string
	// Close releases provider resources.
	Close() error
}

// Config selects and parameterizes a provider.
type Config struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	APIKey      string `yaml:"api_key"`
	MaxTokens   int    `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}
