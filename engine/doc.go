// Package engine implements the search-state exploration engine: a
// depth-first tree search over partial mappings between a pattern graph
// and a target graph, together with its parallel work-distribution
// subsystem.
//
// The engine is polymorphic over any State implementation (see state.go);
// it never constructs graphs, classifies nodes, or picks a branching
// order — those are the concerns of the graph, classify, and sortorder
// packages. See the match package for the concrete State this engine is
// normally run against.
//
// Three engine variants are provided. Parallel and ParallelWLS expose
// Run(s0); Sequential exposes FindFirst, FindAll and FindAllIterative:
//
//   - Sequential: single goroutine, native call-stack recursion (or an
//     explicit heap stack via FindAllIterative).
//   - Parallel: a worker pool sharing one GlobalStack; children are always
//     flat-pushed to the global stack for maximum sharing.
//   - ParallelWLS: refines Parallel with a per-worker local stack; shallow
//     children (small CoreLen) or children exceeding the local-stack cap
//     still spill to the global stack, everything else stays local.
//
// All three produce the same multiset of solutions for the same seed
// state, regardless of worker count or WLS thresholds.
package engine
