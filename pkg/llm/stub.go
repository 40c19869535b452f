package llm

import (
	"context"
	"sync"

	"github.com/examkit/proctor/pkg/models"
)

// StubResponse scripts one StubClient reply.
type StubResponse struct {
	Text  string
	Usage models.TokenUsage
	Err   error
}

// StubClient is a scripted Client for tests. Responses are consumed in order;
// the last one repeats once the script runs out. Every request is recorded.
type StubClient struct {
	mu        sync.Mutex
	responses []StubResponse
	next      int
	calls     []Request
}

var _ Client = (*StubClient)(nil)

// NewStubClient creates a stub that replays the given responses.
func NewStubClient(responses ...StubResponse) *StubClient {
	if len(responses) == 0 {
		responses = []StubResponse{{
			Text:  "stub response",
			Usage: models.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}}
	}
	return &StubClient{responses: responses}
}

func (s *StubClient) take(req Request) StubResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	resp := s.responses[s.next]
	if s.next < len(s.responses)-1 {
		s.next++
	}
	return resp
}

func (s *StubClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp := s.take(req)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{Text: resp.Text, Usage: resp.Usage}, nil
}

func (s *StubClient) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	resp := s.take(req)
	chunks := make(chan Chunk, 4)
	go func() {
		defer close(chunks)
		if resp.Err != nil {
			chunks <- &ErrorChunk{Err: resp.Err}
			return
		}
		// Split in two so consumers exercise delta aggregation.
		half := len(resp.Text) / 2
		if half > 0 {
			chunks <- &TextChunk{Content: resp.Text[:half]}
		}
		chunks <- &TextChunk{Content: resp.Text[half:]}
		chunks <- &UsageChunk{Usage: resp.Usage}
	}()
	return chunks, nil
}

func (s *StubClient) Model() string { return "stub" }

func (s *StubClient) Close() error { return nil }

// Calls returns the recorded requests.
func (s *StubClient) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.calls...)
}

// CallCount returns how many requests the stub served.
func (s *StubClient) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
