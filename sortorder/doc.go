// Package sortorder produces the pattern-node visitation order consumed by
// match.NewState to build the root search state, mirroring VF3's
// VF3NodeSorter / connectivity-probability heuristic at a reduced,
// auditable scope.
//
// The order is built the way a breadth-first traversal walks a graph (see
// the degree-priority queue in Sort), but the queue pops the frontier node
// with the highest degree in the pattern graph first rather than strict
// insertion order:
// each connected component is seeded from its lowest-id unvisited node,
// then every dequeue picks the highest-degree frontier node reachable so
// far (ties broken by ascending id) and enqueues its unvisited neighbors.
// This keeps the most constrained, already-connected nodes early in the
// branching order, which is what tightens VF3-style pruning fastest, while
// guaranteeing every component is covered and ties are resolved
// deterministically.
package sortorder
