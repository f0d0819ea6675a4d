package term

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Graph is the arena that owns every term of a computation. Nodes are
// addressed by ID handles; interning a node whose identity already exists
// returns the existing handle instead of storing a duplicate.
//
// All methods are safe for concurrent use. Composition that interleaves
// interning from several goroutines is memory-safe, and identity dedup is
// atomic per Intern call.
type Graph struct {
	mu     sync.RWMutex
	nodes  []Node        // arena; index == ID
	keys   []string      // full identity per ID
	index  map[string]ID // identity -> ID
	logger *slog.Logger
}

// NewGraph creates an empty Graph.
func NewGraph(opts ...Option) *Graph {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		nodes:  make([]Node, 0, o.capacity),
		keys:   make([]string, 0, o.capacity),
		index:  make(map[string]ID, o.capacity),
		logger: o.logger,
	}
}

// Intern registers n and returns its handle.
//
// Steps:
//  1. Reject nil nodes and inputs that this graph did not issue.
//  2. Build the identity: StaticIdentity() + the ordered input handles.
//  3. If the identity is already present, return the existing ID (no validation rerun).
//  4. Otherwise validate (window length >= 0, then the node's own Validator hook)
//     and append the node to the arena.
//
// A node that fails validation is never stored.
func (g *Graph) Intern(n Node) (ID, error) {
	if n == nil {
		return 0, termErrorf("Intern", ErrNilNode)
	}
	key := identity(n)

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, in := range n.Inputs() {
		if int(in) < 0 || int(in) >= len(g.nodes) {
			return 0, termErrorf("Intern: input "+strconv.Itoa(int(in)), ErrUnknownTerm)
		}
	}
	if id, ok := g.index[key]; ok {
		g.logger.Debug("term reused", slog.Int("id", int(id)), slog.String("identity", key))
		return id, nil
	}
	if n.WindowLength() < 0 {
		return 0, termErrorf("Intern: "+n.StaticIdentity(), ErrNegativeWindowLength)
	}
	if v, ok := n.(Validator); ok {
		if err := v.Validate(); err != nil {
			return 0, err
		}
	}

	id := ID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.keys = append(g.keys, key)
	g.index[key] = id
	g.logger.Debug("term interned", slog.Int("id", int(id)), slog.String("identity", key))

	return id, nil
}

// Node returns the node behind id.
func (g *Graph) Node(id ID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return nil, termErrorf("Node", ErrUnknownTerm)
	}

	return g.nodes[id], nil
}

// Identity returns the full identity string the graph computed for id.
func (g *Graph) Identity(id ID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(g.keys) {
		return "", termErrorf("Identity", ErrUnknownTerm)
	}

	return g.keys[id], nil
}

// Len returns the number of distinct nodes interned so far.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// identity renders StaticIdentity followed by the ordered inputs, e.g.
// "Rank(method=ordinal)<-[3]". Input order is significant.
func identity(n Node) string {
	var b strings.Builder
	b.WriteString(n.StaticIdentity())
	b.WriteString("<-[")
	for i, in := range n.Inputs() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(in)))
	}
	b.WriteByte(']')

	return b.String()
}

// RequireWindowLength is the check shared by terms that operate on a trailing
// window: window_length must be strictly positive.
func RequireWindowLength(n Node) error {
	if n.WindowLength() == 0 {
		return termErrorf(n.StaticIdentity(), ErrWindowLengthNotSpecified)
	}

	return nil
}
