package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNodeNotFound indicates an operation referenced a node ID outside [0, NodeCount()).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Label identifies the attribute carried by a node. VF3-style matchers
// compare labels for equality; the engine never interprets their value.
type Label int32

// Graph is an in-memory, integer-indexed labeled graph.
//
// muEdgeAdj guards edges and adjacency during construction. Once a Graph
// is passed to the matching engine it is treated as read-only, so the
// lock only protects the loading phase against concurrent AddNode/AddEdge
// calls (e.g. a loader populating it from multiple goroutines).
type Graph struct {
	muEdgeAdj sync.RWMutex

	directed   bool
	allowLoops bool
	allowMulti bool

	labels []Label
	out    [][]int32 // out[u] = sorted target node IDs reachable from u
	in     [][]int32 // in[u] = sorted source node IDs with an edge into u (only tracked when directed)

	edgeCount int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets whether edges added to the Graph are directed.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loop edges (a node connected to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair of nodes.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// New creates an empty Graph. By default it is undirected, with no loops
// and no multi-edges.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
