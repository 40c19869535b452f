package graph

import (
	"context"
	"sync"
)

// Checkpointer persists state snapshots at node boundaries, keyed by the
// invocation's thread id (the session id). Implementations: MemorySaver for
// tests and a cache-backed saver for production.
type Checkpointer interface {
	// Put stores a snapshot under (threadID, checkpointID).
	Put(ctx context.Context, threadID, checkpointID string, state *State) error
	// Latest returns the most recent snapshot for the thread, or nil if none.
	Latest(ctx context.Context, threadID string) (*State, error)
	// Delete removes all snapshots for the thread.
	Delete(ctx context.Context, threadID string) error
}

// MemorySaver keeps checkpoints in process memory.
type MemorySaver struct {
	mu     sync.RWMutex
	byID   map[string]map[string]*State
	latest map[string]string
	order  map[string][]string
}

// NewMemorySaver creates an empty in-memory checkpointer.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{
		byID:   map[string]map[string]*State{},
		latest: map[string]string{},
		order:  map[string][]string{},
	}
}

func (m *MemorySaver) Put(_ context.Context, threadID, checkpointID string, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID[threadID] == nil {
		m.byID[threadID] = map[string]*State{}
	}
	m.byID[threadID][checkpointID] = state.Clone()
	m.latest[threadID] = checkpointID
	m.order[threadID] = append(m.order[threadID], checkpointID)
	return nil
}

func (m *MemorySaver) Latest(_ context.Context, threadID string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.latest[threadID]
	if !ok {
		return nil, nil
	}
	st := m.byID[threadID][id]
	if st == nil {
		return nil, nil
	}
	return st.Clone(), nil
}

func (m *MemorySaver) Delete(_ context.Context, threadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, threadID)
	delete(m.latest, threadID)
	delete(m.order, threadID)
	return nil
}

// Checkpoints returns the checkpoint ids stored for a thread in write order.
// Test helper.
func (m *MemorySaver) Checkpoints(threadID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order[threadID]...)
}
