// Package match provides the concrete engine.State implementation the
// search engine runs against: a partial mapping from pattern-graph nodes
// to target-graph nodes, together with the constructor that builds the
// empty root state.
//
// The visitation order of pattern nodes (typically sortorder.Sort's
// output) is fixed for the lifetime of a search tree rooted at one
// NewState call: at depth k, the state always proposes order[k] as the
// next pattern node, and NextPair enumerates target candidates for it.
package match
