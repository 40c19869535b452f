package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// End is the terminal destination name. Routers and edges pointing at End
// stop the invocation.
const End = "END"

// DefaultMaxSteps bounds a single invocation. The main graph is cyclic
// (rate-limit retries re-enter the request handler), so a runaway route must
// fail loudly instead of spinning.
const DefaultMaxSteps = 25

// NodeFunc consumes the shared state and returns a partial update.
// A nil delta is a valid "no change" result.
type NodeFunc func(ctx context.Context, s *State) (*Delta, error)

// RouterFunc picks the next node name from the post-node state.
type RouterFunc func(s *State) string

type conditionalEdge struct {
	router       RouterFunc
	destinations map[string]bool
}

// Builder assembles a Graph. Not safe for concurrent use; build once at
// startup and share the compiled Graph.
type Builder struct {
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]conditionalEdge
	entry       string
	err         error
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes:       map[string]NodeFunc{},
		edges:       map[string]string{},
		conditional: map[string]conditionalEdge{},
	}
}

// AddNode registers a named node. Re-registering a name is reported at
// Compile time.
func (b *Builder) AddNode(name string, fn NodeFunc) *Builder {
	if _, dup := b.nodes[name]; dup {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		return b
	}
	b.nodes[name] = fn
	return b
}

// AddEdge declares an unconditional edge from → to (to may be End).
func (b *Builder) AddEdge(from, to string) *Builder {
	b.edges[from] = to
	return b
}

// AddConditionalEdges declares a router on from whose result must be one of
// destinations (which may include End).
func (b *Builder) AddConditionalEdges(from string, router RouterFunc, destinations ...string) *Builder {
	set := make(map[string]bool, len(destinations))
	for _, d := range destinations {
		set[d] = true
	}
	b.conditional[from] = conditionalEdge{router: router, destinations: set}
	return b
}

// SetEntryPoint declares the first node of every invocation.
func (b *Builder) SetEntryPoint(name string) *Builder {
	b.entry = name
	return b
}

// Graph is a compiled, immutable node graph.
type Graph struct {
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]conditionalEdge
	entry       string
}

// Compile validates the graph shape and freezes it:
// the entry point exists, every edge target is a known node or End, every
// node has exactly one outgoing edge or router, all declared router
// destinations are known, and End is reachable from every node.
func (b *Builder) Compile() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.entry == "" {
		return nil, ErrNoEntryPoint
	}
	if _, ok := b.nodes[b.entry]; !ok {
		return nil, fmt.Errorf("%w: entry %q", ErrUnknownNode, b.entry)
	}

	for from, to := range b.edges {
		if _, ok := b.nodes[from]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, from)
		}
		if to != End {
			if _, ok := b.nodes[to]; !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownNode, from, to)
			}
		}
	}
	for from, ce := range b.conditional {
		if _, ok := b.nodes[from]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, from)
		}
		for dest := range ce.destinations {
			if dest == End {
				continue
			}
			if _, ok := b.nodes[dest]; !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownNode, from, dest)
			}
		}
	}

	for name := range b.nodes {
		_, hasEdge := b.edges[name]
		_, hasRouter := b.conditional[name]
		if !hasEdge && !hasRouter {
			return nil, fmt.Errorf("%w: %q", ErrNoOutgoing, name)
		}
	}

	if err := b.checkEndReachable(); err != nil {
		return nil, err
	}

	return &Graph{
		nodes:       b.nodes,
		edges:       b.edges,
		conditional: b.conditional,
		entry:       b.entry,
	}, nil
}

// checkEndReachable verifies every node's fan-out can terminate.
func (b *Builder) checkEndReachable() error {
	// reaches[n] = true once a path n → … → End is known.
	reaches := map[string]bool{}
	changed := true
	for changed {
		changed = false
		for name := range b.nodes {
			if reaches[name] {
				continue
			}
			if to, ok := b.edges[name]; ok {
				if to == End || reaches[to] {
					reaches[name] = true
					changed = true
				}
			}
			if ce, ok := b.conditional[name]; ok {
				for dest := range ce.destinations {
					if dest == End || reaches[dest] {
						reaches[name] = true
						changed = true
						break
					}
				}
			}
		}
	}
	for name := range b.nodes {
		if !reaches[name] {
			return fmt.Errorf("%w: %q", ErrUnreachable, name)
		}
	}
	return nil
}

// InvokeOptions configures one graph invocation.
type InvokeOptions struct {
	// ThreadID keys checkpoints; conventionally the session id. When a
	// checkpoint exists for the thread it is loaded as the base state and
	// the input delta is applied on top.
	ThreadID string
	// Checkpointer persists snapshots at node boundaries. Nil disables
	// checkpointing.
	Checkpointer Checkpointer
	// MaxSteps bounds the walk; zero means DefaultMaxSteps.
	MaxSteps int
}

// Invoke drives the graph from the entry node until End. The input delta is
// applied to the (resumed or fresh) state before the first node runs.
//
// A node error or an undeclared router destination aborts the walk and is
// returned as *InvokeError; the partially updated state is returned alongside
// so the orchestrator can still surface token counts and diagnostics.
func (g *Graph) Invoke(ctx context.Context, input *Delta, opts InvokeOptions) (*State, error) {
	log := slog.With("thread_id", opts.ThreadID)

	// 1. Resume from the latest checkpoint when one exists.
	state := NewState()
	if opts.Checkpointer != nil && opts.ThreadID != "" {
		snap, err := opts.Checkpointer.Latest(ctx, opts.ThreadID)
		if err != nil {
			log.Warn("Checkpoint load failed, starting fresh", "error", err)
		} else if snap != nil {
			state = snap
		}
	}
	state.Apply(input)

	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	// 2. Walk the graph.
	current := g.entry
	for step := 0; step < maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return state, &InvokeError{Node: current, SessionID: state.SessionID, Err: err}
		}

		fn := g.nodes[current]
		started := time.Now()
		delta, err := runNode(ctx, fn, state)
		if err != nil {
			return state, &InvokeError{Node: current, SessionID: state.SessionID, Err: err}
		}
		state.Apply(delta)
		log.Debug("Node completed", "node", current, "elapsed", time.Since(started))

		// 3. Checkpoint at the node boundary. Best effort: the durable
		// store is the source of truth, the snapshot only speeds resume.
		if opts.Checkpointer != nil && opts.ThreadID != "" {
			ckptID := uuid.New().String()
			if err := opts.Checkpointer.Put(ctx, opts.ThreadID, ckptID, state); err != nil {
				log.Warn("Checkpoint write failed", "node", current, "error", err)
			}
		}

		// 4. Route.
		next, err := g.route(current, state)
		if err != nil {
			return state, &InvokeError{Node: current, SessionID: state.SessionID, Err: err}
		}
		if next == End {
			return state, nil
		}
		current = next
	}

	return state, &InvokeError{
		Node:      current,
		SessionID: state.SessionID,
		Err:       fmt.Errorf("max steps (%d) exceeded", maxSteps),
	}
}

func (g *Graph) route(current string, state *State) (string, error) {
	if to, ok := g.edges[current]; ok {
		return to, nil
	}
	ce, ok := g.conditional[current]
	if !ok {
		// Compile guarantees an outgoing edge; defends against hand-built graphs.
		return "", fmt.Errorf("node %q has no outgoing edge", current)
	}
	dest := ce.router(state)
	if !ce.destinations[dest] {
		return "", fmt.Errorf("router on %q returned undeclared destination %q", current, dest)
	}
	return dest, nil
}

// runNode isolates node panics so one misbehaving node cannot take down the
// caller; the panic surfaces as a normal node error.
func runNode(ctx context.Context, fn NodeFunc, s *State) (d *Delta, err error) {
	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("node panic: %v", r)
		}
	}()
	return fn(ctx, s)
}

// Entry returns the entry node name.
func (g *Graph) Entry() string { return g.entry }

// HasNode reports whether the graph contains the named node.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}
