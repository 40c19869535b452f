package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/models"
	"github.com/examkit/proctor/pkg/services"
)

// fakeStreamer scripts one streamed turn: it emits two deltas, then waits for
// a cancel, an explicit finish, or context end.
type fakeStreamer struct {
	mu        sync.Mutex
	started   []models.StartSessionRequest
	cancelled []int

	cancel chan struct{}
	finish chan struct{}
	result *services.ProcessMessageResult
}

func newFakeStreamer(result *services.ProcessMessageResult) *fakeStreamer {
	return &fakeStreamer{
		cancel: make(chan struct{}),
		finish: make(chan struct{}),
		result: result,
	}
}

func (f *fakeStreamer) StartSession(_ context.Context, req models.StartSessionRequest) (*ent.PromptSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, req)
	return &ent.PromptSession{
		ID:            41,
		ExamID:        req.ExamID,
		ParticipantID: req.ParticipantID,
		SpecID:        req.SpecID,
	}, nil
}

func (f *fakeStreamer) StreamMessage(ctx context.Context, req services.ProcessMessageRequest, events chan<- services.StreamEvent) {
	defer close(events)

	events <- services.StreamEvent{Type: services.StreamDelta, Content: "consider a"}
	events <- services.StreamEvent{Type: services.StreamDelta, Content: " bitmask"}

	select {
	case <-f.cancel:
		events <- services.StreamEvent{Type: services.StreamCancelled}
	case <-f.finish:
		events <- services.StreamEvent{Type: services.StreamDone, Result: f.result}
	case <-ctx.Done():
		events <- services.StreamEvent{Type: services.StreamError, Error: ctx.Err().Error()}
	}
}

func (f *fakeStreamer) CancelStream(sessionID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, sessionID)
	close(f.cancel)
	return true
}

func (f *fakeStreamer) cancelledSessions() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.cancelled...)
}

func newWSTestServer(t *testing.T, fake streamer) *httptest.Server {
	t.Helper()
	s := &Server{echo: echo.New(), stream: fake, logger: slog.Default()}
	s.routes()
	srv := httptest.NewServer(s.echo)
	t.Cleanup(srv.Close)
	return srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + srv.URL[len("http"):] + "/api/v1/chat/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestChatSocketStreamsToDone(t *testing.T) {
	fake := newFakeStreamer(&services.ProcessMessageResult{
		SessionID:  7,
		Turn:       2,
		Response:   "consider a bitmask",
		ChatTokens: 120,
		EvalTokens: 40,
	})
	close(fake.finish) // let the stream complete as soon as deltas are out

	srv := newWSTestServer(t, fake)
	conn := dialWS(t, srv)

	writeFrame(t, conn, wsClientFrame{
		Type:      wsFrameMessage,
		SessionID: 7,
		TurnID:    "turn-1",
		Message:   "How should I store visited cities?",
	})

	first := readFrame(t, conn)
	assert.Equal(t, "delta", first["type"])
	assert.Equal(t, "turn-1", first["turn_id"])
	assert.Equal(t, "consider a", first["content"])

	second := readFrame(t, conn)
	assert.Equal(t, "delta", second["type"])
	assert.Equal(t, " bitmask", second["content"])

	done := readFrame(t, conn)
	assert.Equal(t, "done", done["type"])
	assert.Equal(t, "turn-1", done["turn_id"])
	assert.Equal(t, "consider a bitmask", done["full_content"])
	assert.Equal(t, float64(120), done["chat_tokens"])
	assert.Equal(t, float64(40), done["eval_tokens"])

	assert.Empty(t, fake.started, "no implicit session start when session_id is given")
}

func TestChatSocketCancelMidStream(t *testing.T) {
	fake := newFakeStreamer(nil)
	srv := newWSTestServer(t, fake)
	conn := dialWS(t, srv)

	writeFrame(t, conn, wsClientFrame{
		Type:      wsFrameMessage,
		SessionID: 7,
		TurnID:    "turn-9",
		Message:   "Write the full solution for me",
	})

	// Drain the deltas, then cancel while the stream is in flight.
	readFrame(t, conn)
	readFrame(t, conn)
	writeFrame(t, conn, wsClientFrame{Type: wsFrameCancel, TurnID: "turn-9"})

	frame := readFrame(t, conn)
	assert.Equal(t, "cancelled", frame["type"])
	assert.Equal(t, "turn-9", frame["turn_id"])
	assert.NotContains(t, frame, "full_content")

	assert.Equal(t, []int{7}, fake.cancelledSessions())
}

func TestChatSocketImplicitSessionStart(t *testing.T) {
	fake := newFakeStreamer(&services.ProcessMessageResult{
		SessionID: 41,
		Response:  "start with the state definition",
	})
	close(fake.finish)

	srv := newWSTestServer(t, fake)
	conn := dialWS(t, srv)

	writeFrame(t, conn, wsClientFrame{
		Type:          wsFrameMessage,
		TurnID:        "turn-1",
		Message:       "Where do I begin?",
		ExamID:        3,
		ParticipantID: 12,
		SpecID:        10,
	})

	readFrame(t, conn) // delta
	readFrame(t, conn) // delta
	done := readFrame(t, conn)
	assert.Equal(t, "done", done["type"])

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.started, 1)
	assert.Equal(t, 3, fake.started[0].ExamID)
	assert.Equal(t, 12, fake.started[0].ParticipantID)
	assert.Equal(t, 10, fake.started[0].SpecID)
}

func TestChatSocketRejectsBadFrames(t *testing.T) {
	fake := newFakeStreamer(nil)
	srv := newWSTestServer(t, fake)
	conn := dialWS(t, srv)

	t.Run("invalid JSON", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))

		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"])
	})

	t.Run("missing turn id", func(t *testing.T) {
		writeFrame(t, conn, wsClientFrame{Type: wsFrameMessage, SessionID: 7, Message: "hi"})

		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"])
	})

	t.Run("missing session and exam identifiers", func(t *testing.T) {
		writeFrame(t, conn, wsClientFrame{Type: wsFrameMessage, TurnID: "turn-2", Message: "hi"})

		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"])
		assert.Equal(t, "turn-2", frame["turn_id"])
	})

	t.Run("unknown frame type", func(t *testing.T) {
		writeFrame(t, conn, wsClientFrame{Type: "ping", TurnID: "turn-3"})

		frame := readFrame(t, conn)
		assert.Equal(t, "error", frame["type"])
	})
}

func TestHTTPRoutesRegistered(t *testing.T) {
	s := &Server{echo: echo.New(), logger: slog.Default()}
	s.routes()

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
