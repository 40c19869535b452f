package graph

import (
	"errors"
	"fmt"
)

// Compilation errors.
var (
	ErrNoEntryPoint  = errors.New("graph: no entry point set")
	ErrUnknownNode   = errors.New("graph: edge references unknown node")
	ErrDuplicateNode = errors.New("graph: node registered twice")
	ErrNoOutgoing    = errors.New("graph: node has no outgoing edge or router")
	ErrUnreachable   = errors.New("graph: END is not reachable from node")
)

// InvokeError wraps a node failure so callers receive a structured error
// instead of a raw panic or provider exception crossing the API boundary.
type InvokeError struct {
	Node      string
	SessionID string
	Err       error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("graph invocation failed at node %q (session %s): %v", e.Node, e.SessionID, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }

// ErrorDetails shapes the failure for the API error envelope.
func (e *InvokeError) ErrorDetails() map[string]string {
	return map[string]string{
		"error_type":    fmt.Sprintf("%T", e.Err),
		"error_message": e.Err.Error(),
		"session_id":    e.SessionID,
	}
}
