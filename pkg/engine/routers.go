package engine

import (
	"github.com/examkit/proctor/pkg/graph"
	"github.com/examkit/proctor/pkg/models"
)

// intentRouter routes on the guardrail verdict. Submissions divert to the
// evaluation guard before any reply is written; blocked messages still go to
// the writer, which produces the educational refusal.
func (e *Engine) intentRouter(s *graph.State) string {
	if s.IsSubmitted || s.IntentStatus == models.IntentPassedSubmit {
		return NodeEvalTurnGuard
	}

	switch s.IntentStatus {
	case models.IntentPassedHint:
		return NodeWriter
	case models.IntentFailedGuardrail:
		return NodeWriter
	case models.IntentFailedRateLimit:
		return NodeHandleRequest
	default:
		return NodeWriter
	}
}

// writerRouter routes on the writer outcome. Rate-limited turns re-enter the
// request handler until the retry budget is spent; context-window overflows
// compact memory first and then retry.
func (e *Engine) writerRouter(s *graph.State) string {
	switch s.WriterStatus {
	case models.WriterSuccess:
		return graph.End
	case models.WriterFailedRateLimit:
		if s.RetryCount < e.opts.MaxRetries {
			return NodeHandleRequest
		}
		return NodeHandleFailure
	case models.WriterFailedThreshold:
		return NodeSummarizeMemory
	default:
		return NodeHandleFailure
	}
}

// mainRouter gates the submission scoring pipeline: only submitted sessions
// proceed to holistic evaluation, everything else terminates the invocation.
func (e *Engine) mainRouter(s *graph.State) string {
	if s.IsSubmitted {
		return NodeEvalHolisticFlow
	}
	return graph.End
}
