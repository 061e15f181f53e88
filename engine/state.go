package engine

// NullPair stands in for VF3's NULL_NODE sentinel: the "no previous pair"
// value passed to the first NextPair call of a state.
const NullPair = -1

// Pair is one (pattern node, target node) correspondence in a mapping.
type Pair struct {
	PatternNode int
	TargetNode  int
}

// Solution is a complete mapping from pattern nodes to target nodes,
// ordered by the sequence in which pairs were added to the state that
// produced it. Equality between two Solutions is by multiset of Pairs,
// not by order.
type Solution []Pair

// State is the search-node abstraction the engine explores. It is opaque
// to the engine beyond this capability set.
//
// Implementations must satisfy:
//   - Extending a feasible pair never reduces the pruning power of its
//     descendants.
//   - NextPair is pure and deterministic given the state's current
//     contents.
//   - Extend returns a state whose subsequent mutation is independent of
//     its parent (sibling isolation): two children of the same parent
//     must never alias mutable storage.
type State interface {
	// IsGoal reports whether the partial mapping is complete and valid.
	IsGoal() bool

	// IsDead reports whether no extension of this state can reach a goal.
	IsDead() bool

	// CoreLen returns the current mapping size (a depth indicator).
	CoreLen() int

	// NextPair returns the next candidate pair after (prevN1, prevN2) in
	// lexicographic order, or ok=false once exhausted. The first call of
	// an enumeration passes (NullPair, NullPair).
	NextPair(prevN1, prevN2 int) (n1, n2 int, ok bool)

	// IsFeasible reports whether adding (n1, n2) to the mapping could
	// possibly lead to a goal (a necessary, not sufficient, condition).
	IsFeasible(n1, n2 int) bool

	// Extend returns a new, independent state with (n1, n2) added.
	Extend(n1, n2 int) State

	// Solution extracts the mapping accumulated so far.
	Solution() Solution
}

// Visitor is invoked at each goal state found during FindAll/Run. It
// receives the goal state itself and returns true to request early
// termination of the search, false to continue enumerating.
//
// If no Visitor is supplied, the engine enumerates to exhaustion.
type Visitor func(s State) (stop bool)
