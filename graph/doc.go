// Package graph defines the labeled graph representation consumed by the
// matching engine: integer-indexed nodes carrying an integer label, and
// directed or undirected edges between them.
//
// Node IDs are dense integers in [0, NodeCount()), assigned in insertion
// order by AddNode. This mirrors the VF3 family's nodeID_t convention and
// lets the matching state keep O(1) per-node bookkeeping in plain slices
// instead of maps.
//
// Graph is safe for concurrent readers once built; AddNode/AddEdge guard
// the adjacency structures with a single RWMutex (mutation is expected to
// happen once, during loading, before the graph is handed to the matching
// engine and its worker pool).
package graph
