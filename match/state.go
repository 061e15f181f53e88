// File: state.go
// Role: the engine.State implementation driving subgraph isomorphism
// search: core mapping storage, candidate enumeration, feasibility
// pruning, and solution extraction.
package match

import (
	"github.com/katalvlaran/subiso/classify"
	"github.com/katalvlaran/subiso/engine"
	"github.com/katalvlaran/subiso/graph"
)

// State is a partial mapping from pattern nodes to target nodes, plus the
// fixed pattern-node visitation order and the classifications used for
// the label/class-compatibility check.
//
// coreP2T[p] is the target node mapped to pattern node p, or -1 if p is
// unmapped; coreT2P is its inverse, indexed by target node. Both are
// copied on Extend so siblings never alias mutable storage.
type State struct {
	pattern *graph.Graph
	target  *graph.Graph

	patternClasses *classify.Classification
	targetClasses  *classify.Classification

	order []int

	coreLen int
	coreP2T []int
	coreT2P []int

	// added records pairs in the order they were added, for Solution().
	added []engine.Pair
}

// NewState builds the empty root state for a search of pattern into
// target, visiting pattern nodes in the given order (see the sortorder
// package). targetClasses must come from classify.ClassifyTarget(target)
// and patternClasses from classify.ClassifyPattern(pattern, targetClasses);
// IsFeasible compares the two class ids directly, so classifications built
// any other way make that comparison meaningless.
func NewState(pattern, target *graph.Graph, patternClasses, targetClasses *classify.Classification, order []int) *State {
	coreP2T := make([]int, pattern.NodeCount())
	for i := range coreP2T {
		coreP2T[i] = engine.NullPair
	}
	coreT2P := make([]int, target.NodeCount())
	for i := range coreT2P {
		coreT2P[i] = engine.NullPair
	}

	return &State{
		pattern:        pattern,
		target:         target,
		patternClasses: patternClasses,
		targetClasses:  targetClasses,
		order:          order,
		coreP2T:        coreP2T,
		coreT2P:        coreT2P,
	}
}

// IsGoal reports whether every pattern node has been mapped.
func (s *State) IsGoal() bool {
	return s.coreLen == len(s.order)
}

// IsDead reports whether no extension can possibly succeed: there are
// still pattern nodes left to map, but the target has no unmapped nodes
// left to offer them.
func (s *State) IsDead() bool {
	if s.coreLen == len(s.order) {
		return false
	}

	return s.unmappedTargetCount() == 0
}

// CoreLen returns the number of pairs mapped so far.
func (s *State) CoreLen() int {
	return s.coreLen
}

// NextPair returns the next target-node candidate for the pattern node at
// the current depth (order[CoreLen()]), scanning target ids in ascending
// order starting just after prevN2. prevN1 is accepted for interface
// conformance but unused: within one state every candidate shares the
// same pattern node.
func (s *State) NextPair(_ int, prevN2 int) (int, int, bool) {
	if s.coreLen >= len(s.order) {
		return 0, 0, false
	}

	n1 := s.order[s.coreLen]

	start := 0
	if prevN2 != engine.NullPair {
		start = prevN2 + 1
	}

	for n2 := start; n2 < len(s.coreT2P); n2++ {
		if s.coreT2P[n2] == engine.NullPair {
			return n1, n2, true
		}
	}

	return 0, 0, false
}

// IsFeasible checks, in increasing cost order: class compatibility,
// pattern-edge-to-target-edge consistency against every already-mapped
// neighbor (both directions), and a 1-look-ahead unmapped-neighbor count.
func (s *State) IsFeasible(n1, n2 int) bool {
	if s.patternClasses.Class(n1) != s.targetClasses.Class(n2) {
		return false
	}

	if !s.edgesConsistent(n1, n2) {
		return false
	}

	return s.lookAheadOK(n1, n2)
}

// Extend returns a new State with (n1, n2) added to the core mapping. The
// core slices are copied so the parent and every other child remain
// independent.
func (s *State) Extend(n1, n2 int) engine.State {
	coreP2T := make([]int, len(s.coreP2T))
	copy(coreP2T, s.coreP2T)
	coreT2P := make([]int, len(s.coreT2P))
	copy(coreT2P, s.coreT2P)

	coreP2T[n1] = n2
	coreT2P[n2] = n1

	added := make([]engine.Pair, len(s.added), len(s.added)+1)
	copy(added, s.added)
	added = append(added, engine.Pair{PatternNode: n1, TargetNode: n2})

	return &State{
		pattern:        s.pattern,
		target:         s.target,
		patternClasses: s.patternClasses,
		targetClasses:  s.targetClasses,
		order:          s.order,
		coreLen:        s.coreLen + 1,
		coreP2T:        coreP2T,
		coreT2P:        coreT2P,
		added:          added,
	}
}

// Solution returns the mapping accumulated so far, ordered by the
// sequence pairs were added.
func (s *State) Solution() engine.Solution {
	sol := make(engine.Solution, len(s.added))
	copy(sol, s.added)

	return sol
}

func (s *State) unmappedTargetCount() int {
	count := 0
	for _, p := range s.coreT2P {
		if p == engine.NullPair {
			count++
		}
	}

	return count
}

// edgesConsistent requires that for every pattern edge between n1 and an
// already-mapped pattern neighbor, the corresponding target edge exists
// between n2 and that neighbor's image — checked in both directions so
// directed pattern graphs are handled correctly.
func (s *State) edgesConsistent(n1, n2 int) bool {
	for _, pn := range s.pattern.Neighbors(n1) {
		tp := s.coreP2T[pn]
		if tp == engine.NullPair {
			continue
		}
		if !s.target.HasEdge(n2, tp) {
			return false
		}
	}

	for _, pn := range s.pattern.InNeighbors(n1) {
		tp := s.coreP2T[pn]
		if tp == engine.NullPair {
			continue
		}
		if !s.target.HasEdge(tp, n2) {
			return false
		}
	}

	return true
}

// lookAheadOK requires that n1's unmapped pattern-neighbor count not
// exceed n2's unmapped target-neighbor count: a necessary condition for
// n1's remaining neighbors to eventually all find a home among n2's.
func (s *State) lookAheadOK(n1, n2 int) bool {
	patternUnmapped := 0
	for _, pn := range s.pattern.Neighbors(n1) {
		if int(pn) == n1 {
			continue
		}
		if s.coreP2T[pn] == engine.NullPair {
			patternUnmapped++
		}
	}

	targetUnmapped := 0
	for _, tn := range s.target.Neighbors(n2) {
		if int(tn) == n2 {
			continue
		}
		if s.coreT2P[tn] == engine.NullPair {
			targetUnmapped++
		}
	}

	return patternUnmapped <= targetUnmapped
}
