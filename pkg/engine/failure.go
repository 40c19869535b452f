package engine

import (
	"context"
	"strings"

	"github.com/examkit/proctor/pkg/graph"
)

const failureFallbackReply = "죄송합니다. 일시적인 오류로 응답을 생성하지 못했습니다. 잠시 후 다시 시도해주세요."

// handleFailure is the terminal sink for turns the pipeline could not serve:
// exhausted rate-limit retries, technical writer failures, unexpected node
// errors. It guarantees the caller gets a readable reply and a populated
// error message; the failed exchange is not appended to the history.
func (e *Engine) handleFailure(ctx context.Context, s *graph.State) (*graph.Delta, error) {
	e.logger.Error("Turn failed",
		"node", NodeHandleFailure,
		"session_id", s.SessionID,
		"turn", s.CurrentTurn,
		"writer_status", s.WriterStatus,
		"writer_error", s.WriterError,
		"error_message", s.ErrorMessage,
		"retry_count", s.RetryCount)

	delta := &graph.Delta{}
	if strings.TrimSpace(s.AIMessage) == "" {
		delta.AIMessage = graph.StringPtr(failureFallbackReply)
	}
	if strings.TrimSpace(s.ErrorMessage) == "" {
		msg := s.WriterError
		if msg == "" {
			msg = "요청 처리 중 오류가 발생했습니다"
		}
		delta.ErrorMessage = graph.StringPtr(msg)
	}
	return delta, nil
}
