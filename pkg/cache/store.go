package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/examkit/proctor/pkg/graph"
)

// StateStore persists full session state snapshots under langgraph:state:{s}.
// The orchestrator writes it after every invocation so reads (GET state) and
// resumes never have to replay from the database.
type StateStore struct {
	client *Client
}

// NewStateStore wraps the cache client.
func NewStateStore(client *Client) *StateStore {
	return &StateStore{client: client}
}

// Save writes the snapshot.
func (s *StateStore) Save(ctx context.Context, state *graph.State) error {
	if state.SessionID == "" {
		return fmt.Errorf("state has no session id")
	}
	return s.client.SetJSON(ctx, StateKey(state.SessionID), state)
}

// Load returns the snapshot or (nil, nil) when none is cached.
func (s *StateStore) Load(ctx context.Context, sessionID string) (*graph.State, error) {
	state := graph.NewState()
	err := s.client.GetJSON(ctx, StateKey(sessionID), state)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Delete drops the snapshot.
func (s *StateStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Delete(ctx, StateKey(sessionID))
}

// PurgeSession removes every session-scoped record the engine maintains.
// Turn-log and checkpoint blobs carry their own TTLs and are left to expire.
func (s *StateStore) PurgeSession(ctx context.Context, sessionID string) error {
	return s.client.Delete(ctx,
		StateKey(sessionID),
		TurnMappingKey(sessionID),
		MemorySummaryKey(sessionID),
		ScoresKey(sessionID),
		CheckpointLatestKey(sessionID),
	)
}

// Saver is the cache-backed graph.Checkpointer. Each Put writes the snapshot
// under its checkpoint key and advances the latest pointer.
type Saver struct {
	client *Client
}

// NewSaver wraps the cache client.
func NewSaver(client *Client) *Saver {
	return &Saver{client: client}
}

var _ graph.Checkpointer = (*Saver)(nil)

func (s *Saver) Put(ctx context.Context, threadID, checkpointID string, state *graph.State) error {
	if err := s.client.SetJSON(ctx, CheckpointKey(threadID, checkpointID), state); err != nil {
		return err
	}
	return s.client.SetString(ctx, CheckpointLatestKey(threadID), checkpointID)
}

func (s *Saver) Latest(ctx context.Context, threadID string) (*graph.State, error) {
	id, err := s.client.GetString(ctx, CheckpointLatestKey(threadID))
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := graph.NewState()
	err = s.client.GetJSON(ctx, CheckpointKey(threadID, id), state)
	if errors.Is(err, ErrCacheMiss) {
		// Pointer outlived the snapshot; treat as no checkpoint.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *Saver) Delete(ctx context.Context, threadID string) error {
	return s.client.Delete(ctx, CheckpointLatestKey(threadID))
}
