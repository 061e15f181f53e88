// Command and library root for subiso: a subgraph isomorphism search
// engine following the VF3 family of algorithms.
//
// Package layout:
//
//	graph/         — integer-indexed labeled graph representation
//	graphio/       — line-oriented graph file loader
//	classify/      — node equivalence-class assignment
//	sortorder/     — pattern-node visitation order heuristic
//	match/         — the concrete search state and its feasibility rules
//	engine/        — the search-state exploration engine (sequential and
//	                 parallel, work-local-stack variants)
//	config/        — optional layered YAML run configuration
//	observability/ — optional OpenTelemetry metrics
//	cmd/subiso/    — command-line entrypoint
package subiso
