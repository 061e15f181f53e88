// File: methods.go
// Role: Node and edge lifecycle: AddNode/AddEdge/HasEdge/Neighbors/InNeighbors,
// plus read-only accessors used by the classifier, sorter, and matching state.
//
// Determinism:
//   - Neighbors/InNeighbors return node IDs sorted ascending.
//
// Concurrency:
//   - Mutations and reads both go through muEdgeAdj; construction is expected
//     to finish before the Graph is shared with engine workers.
package graph

import "sort"

// AddNode appends a new node with the given label and returns its ID.
// IDs are assigned in insertion order starting at 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label Label) int {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id := len(g.labels)
	g.labels = append(g.labels, label)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return id
}

// AddEdge connects from->to. For undirected graphs it also records the
// mirror adjacency so Neighbors reports both endpoints symmetrically.
//
// Returns ErrNodeNotFound if either endpoint is out of range,
// ErrLoopNotAllowed on a disabled self-loop, and ErrMultiEdgeNotAllowed
// on a disabled duplicate edge.
//
// Complexity: O(log degree) to check for an existing parallel edge, O(degree)
// to insert into the sorted adjacency slice.
func (g *Graph) AddEdge(from, to int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if from < 0 || from >= len(g.labels) || to < 0 || to >= len(g.labels) {
		return ErrNodeNotFound
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && contains(g.out[from], int32(to)) {
		return ErrMultiEdgeNotAllowed
	}

	g.out[from] = insertSorted(g.out[from], int32(to))
	g.edgeCount++

	if g.directed {
		g.in[to] = insertSorted(g.in[to], int32(from))
	} else if from != to {
		g.out[to] = insertSorted(g.out[to], int32(from))
	}

	return nil
}

// HasEdge reports whether an edge from->to exists.
//
// Complexity: O(log degree).
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if from < 0 || from >= len(g.labels) || to < 0 || to >= len(g.labels) {
		return false
	}

	return contains(g.out[from], int32(to))
}

// Neighbors returns the sorted out-neighbors of id (mirror-inclusive for
// undirected graphs). The returned slice must not be mutated by the caller.
//
// Complexity: O(1).
func (g *Graph) Neighbors(id int) []int32 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if id < 0 || id >= len(g.labels) {
		return nil
	}

	return g.out[id]
}

// InNeighbors returns the sorted in-neighbors of id. For undirected graphs
// this is identical to Neighbors, since every edge is mirrored both ways.
//
// Complexity: O(1).
func (g *Graph) InNeighbors(id int) []int32 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if id < 0 || id >= len(g.labels) {
		return nil
	}
	if !g.directed {
		return g.out[id]
	}

	return g.in[id]
}

// Degree returns len(Neighbors(id)) + len(InNeighbors(id)) for directed
// graphs, or simply len(Neighbors(id)) for undirected graphs (no double
// counting, since each undirected edge appears once per endpoint).
//
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	if !g.directed {
		return len(g.Neighbors(id))
	}

	return len(g.Neighbors(id)) + len(g.InNeighbors(id))
}

// Label returns the label of node id.
//
// Complexity: O(1).
func (g *Graph) Label(id int) (Label, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if id < 0 || id >= len(g.labels) {
		return 0, ErrNodeNotFound
	}

	return g.labels[id], nil
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.labels)
}

// EdgeCount returns the number of edges added via AddEdge (each undirected
// edge counts once, matching the caller's AddEdge call count).
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Directed reports whether the Graph was constructed with WithDirected(true).
func (g *Graph) Directed() bool {
	return g.directed
}

func contains(sorted []int32, v int32) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}

func insertSorted(sorted []int32, v int32) []int32 {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	sorted = append(sorted, 0)
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = v

	return sorted
}
