package engine

import (
	"context"

	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/models"
)

// handleRequest opens a turn: it advances the turn counter and clears the
// transient per-turn flags so a retried or summarized re-entry starts clean.
// Problem context is not staged into state; nodes resolve it from the
// registry at point of use, which also guarantees submissions see freshly
// loaded test cases.
func (e *Engine) handleRequest(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	turn := s.CurrentTurn + 1

	e.logger.Debug("Handling request",
		"node", NodeHandleRequest,
		"session_id", s.SessionID,
		"turn", turn,
		"is_submitted", s.IsSubmitted)

	return &graph.Delta{
		CurrentTurn:       graph.IntPtr(turn),
		IsGuardrailFailed: graph.BoolPtr(false),
		GuardrailMessage:  graph.StringPtr(""),
		WriterStatus:      graph.WriterStatusPtr(models.WriterPending),
		WriterError:       graph.StringPtr(""),
		ErrorMessage:      graph.StringPtr(""),
	}, nil
}
