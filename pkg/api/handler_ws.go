package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/services"
)

// wsWriteTimeout bounds a single WebSocket send so one slow client cannot
// stall its stream forwarder.
const wsWriteTimeout = 10 * time.Second

// Client → server frame types.
const (
	wsFrameMessage = "message"
	wsFrameCancel  = "cancel"
)

// streamer is the slice of the orchestrator the socket needs. Narrowing it
// keeps the frame loop testable with a fake.
type streamer interface {
	StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.PromptSession, error)
	StreamMessage(ctx context.Context, req services.ProcessMessageRequest, events chan<- services.StreamEvent)
	CancelStream(sessionID int) bool
}

// wsClientFrame is a frame received from the client. A "message" frame either
// names an existing session_id or carries exam_id/participant_id/spec_id to
// open one implicitly. A "cancel" frame names the turn_id to stop.
type wsClientFrame struct {
	Type          string `json:"type"`
	SessionID     int    `json:"session_id,omitempty"`
	TurnID        string `json:"turn_id,omitempty"`
	Message       string `json:"message,omitempty"`
	ExamID        int    `json:"exam_id,omitempty"`
	ParticipantID int    `json:"participant_id,omitempty"`
	SpecID        int    `json:"spec_id,omitempty"`
}

// wsServerFrame is a delta, cancelled, or error frame sent to the client.
type wsServerFrame struct {
	Type    string `json:"type"`
	TurnID  string `json:"turn_id,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// wsDoneFrame closes one streamed turn. Token counts are always present,
// zero included, so clients can account usage without special cases.
type wsDoneFrame struct {
	Type        string `json:"type"`
	TurnID      string `json:"turn_id"`
	FullContent string `json:"full_content"`
	ChatTokens  int    `json:"chat_tokens"`
	EvalTokens  int    `json:"eval_tokens"`
}

// chatSocket owns one WebSocket connection: a read loop dispatching client
// frames, plus one stream/forwarder goroutine pair per in-flight turn.
// Concurrent writes are safe with coder/websocket, so forwarders send
// directly without a shared writer goroutine.
type chatSocket struct {
	conn    *websocket.Conn
	stream  streamer
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	active map[string]int // turn_id → session_id for in-flight streams
	wg     sync.WaitGroup
}

// chatSocketHandler handles GET /api/v1/chat/ws. It upgrades the connection
// and blocks until the client disconnects.
func (s *Server) chatSocketHandler(c *echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin checking is handled by the exam core proxy
	})
	if err != nil {
		return fmt.Errorf("websocket accept: %w", err)
	}

	sock := &chatSocket{
		conn:    conn,
		stream:  s.stream,
		logger:  s.logger,
		timeout: wsWriteTimeout,
		active:  make(map[string]int),
	}
	sock.run(c.Request().Context())
	return nil
}

// run is the read loop. It exits when the client disconnects or the request
// context ends, then cancels in-flight streams and waits for their
// forwarders before closing the connection.
func (sock *chatSocket) run(parentCtx context.Context) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer func() {
		cancel()
		sock.wg.Wait()
		_ = sock.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		_, data, err := sock.conn.Read(ctx)
		if err != nil {
			return
		}

		var frame wsClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			sock.send(ctx, wsServerFrame{Type: services.StreamError, Error: "invalid frame"})
			continue
		}

		switch frame.Type {
		case wsFrameMessage:
			sock.handleMessage(ctx, frame)
		case wsFrameCancel:
			sock.handleCancel(frame)
		default:
			sock.send(ctx, wsServerFrame{
				Type:   services.StreamError,
				TurnID: frame.TurnID,
				Error:  fmt.Sprintf("unknown frame type %q", frame.Type),
			})
		}
	}
}

// handleMessage starts one streamed turn. The stream itself and the event
// forwarder run on their own goroutines so the read loop stays responsive to
// cancel frames.
func (sock *chatSocket) handleMessage(ctx context.Context, frame wsClientFrame) {
	if frame.TurnID == "" {
		sock.send(ctx, wsServerFrame{Type: services.StreamError, Error: "turn_id is required"})
		return
	}
	if frame.Message == "" {
		sock.send(ctx, wsServerFrame{Type: services.StreamError, TurnID: frame.TurnID, Error: "message is required"})
		return
	}

	sessionID := frame.SessionID
	if sessionID <= 0 {
		if frame.ExamID <= 0 || frame.ParticipantID <= 0 || frame.SpecID <= 0 {
			sock.send(ctx, wsServerFrame{
				Type:   services.StreamError,
				TurnID: frame.TurnID,
				Error:  "session_id or exam_id/participant_id/spec_id are required",
			})
			return
		}
		sess, err := sock.stream.StartSession(ctx, models.StartSessionRequest{
			ExamID:        frame.ExamID,
			ParticipantID: frame.ParticipantID,
			SpecID:        frame.SpecID,
		})
		if err != nil {
			sock.send(ctx, wsServerFrame{Type: services.StreamError, TurnID: frame.TurnID, Error: err.Error()})
			return
		}
		sessionID = sess.ID
	}

	sock.mu.Lock()
	sock.active[frame.TurnID] = sessionID
	sock.mu.Unlock()

	events := make(chan services.StreamEvent, 16)

	sock.wg.Add(2)
	go func() {
		defer sock.wg.Done()
		sock.stream.StreamMessage(ctx, services.ProcessMessageRequest{
			SessionID: sessionID,
			Message:   frame.Message,
		}, events)
	}()
	go func() {
		defer sock.wg.Done()
		defer func() {
			sock.mu.Lock()
			delete(sock.active, frame.TurnID)
			sock.mu.Unlock()
		}()
		for ev := range events {
			sock.send(ctx, frameForEvent(frame.TurnID, ev))
		}
	}()
}

// handleCancel stops the stream a prior message frame started. Unknown turn
// ids are ignored: the stream may already have finished.
func (sock *chatSocket) handleCancel(frame wsClientFrame) {
	sock.mu.Lock()
	sessionID, ok := sock.active[frame.TurnID]
	sock.mu.Unlock()
	if !ok {
		sock.logger.Debug("Cancel for unknown turn", "turn_id", frame.TurnID)
		return
	}
	sock.stream.CancelStream(sessionID)
}

// frameForEvent converts one stream event to its wire frame. The cancelled
// frame comes from the stream's own event sequence, so a cancelled turn never
// also produces a done frame.
func frameForEvent(turnID string, ev services.StreamEvent) any {
	switch ev.Type {
	case services.StreamDelta:
		return wsServerFrame{Type: services.StreamDelta, TurnID: turnID, Content: ev.Content}
	case services.StreamDone:
		frame := wsDoneFrame{Type: services.StreamDone, TurnID: turnID}
		if ev.Result != nil {
			frame.FullContent = ev.Result.Response
			frame.ChatTokens = ev.Result.ChatTokens
			frame.EvalTokens = ev.Result.EvalTokens
		}
		return frame
	case services.StreamCancelled:
		return wsServerFrame{Type: services.StreamCancelled, TurnID: turnID}
	default:
		return wsServerFrame{Type: services.StreamError, TurnID: turnID, Error: ev.Error}
	}
}

// send marshals and writes one frame with a write timeout.
func (sock *chatSocket) send(ctx context.Context, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		sock.logger.Warn("Failed to marshal WebSocket frame", "error", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, sock.timeout)
	defer cancel()
	if err := sock.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		sock.logger.Warn("Failed to send WebSocket frame", "error", err)
	}
}
