// File: sequential.go
// Role: the single-goroutine engine variant — native call-stack recursion,
// plus an explicit-heap-stack alternative proving the same traversal order
// without relying on Go's goroutine stack.
package engine

import "time"

// Sequential performs a depth-first search of a single State tree on the
// calling goroutine. It is the baseline against which Parallel and
// ParallelWLS are tested: for the same seed state, all three must produce
// an identical multiset of solutions.
type Sequential struct {
	sink *Sink
}

// NewSequential creates a Sequential engine. If store is true, every
// solution is retained for later retrieval via Solutions(). visit may be
// nil to enumerate without early stop.
func NewSequential(store bool, visit Visitor) *Sequential {
	return &Sequential{sink: NewSink(store, visit)}
}

// FindFirst runs the search and stops at the first goal state, regardless
// of any attached Visitor's return value. That goal is recorded in the
// Sink like any other. It reports whether a goal was found.
func (e *Sequential) FindFirst(s0 State) bool {
	start := time.Now()
	found := false
	e.descend(s0, func(s State) bool {
		found = true
		e.sink.Record(s)

		return true
	})
	e.sink.RecordDuration(time.Since(start))

	return found
}

// FindAll runs the search to exhaustion, or until the Sink's Visitor (set
// at construction) requests an early stop. It returns true iff at least
// one solution was found.
func (e *Sequential) FindAll(s0 State) bool {
	start := time.Now()
	e.descend(s0, e.sink.Record)
	e.sink.RecordDuration(time.Since(start))

	return e.sink.Count() > 0
}

// FindAllIterative is functionally equivalent to FindAll but walks an
// explicit heap-allocated stack of (state, cursor) frames instead of
// native recursion, for callers wary of recursion depth on very deep
// pattern graphs.
func (e *Sequential) FindAllIterative(s0 State) bool {
	start := time.Now()
	e.iterate(s0, e.sink.Record)
	e.sink.RecordDuration(time.Since(start))

	return e.sink.Count() > 0
}

// Sink exposes the engine's accumulator for Count/Solutions/FirstSolutionAt.
func (e *Sequential) Sink() *Sink {
	return e.sink
}

// descend is the recursive DFS core, parameterized over the goal callback
// so FindFirst can stop at the first goal whatever the Visitor returns.
func (e *Sequential) descend(s State, onGoal func(State) bool) bool {
	if s.IsDead() {
		return false
	}
	e.sink.ExpandState()

	if s.IsGoal() {
		return onGoal(s)
	}

	n1, n2 := NullPair, NullPair
	for {
		cn1, cn2, ok := s.NextPair(n1, n2)
		if !ok {
			return false
		}
		n1, n2 = cn1, cn2

		if s.IsFeasible(n1, n2) {
			child := s.Extend(n1, n2)
			if e.descend(child, onGoal) {
				return true
			}
		}
	}
}

// frame is one level of the explicit stack used by iterate: the state at
// this level plus the (n1, n2) pair most recently tried from it.
type frame struct {
	s      State
	n1, n2 int
}

// iterate reproduces descend's exact left-to-right traversal order using
// an explicit stack instead of the call stack.
func (e *Sequential) iterate(s0 State, onGoal func(State) bool) {
	if s0.IsDead() {
		return
	}

	e.sink.ExpandState()
	if s0.IsGoal() {
		onGoal(s0)

		return
	}
	stack := []frame{{s: s0, n1: NullPair, n2: NullPair}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		n1, n2, ok := top.s.NextPair(top.n1, top.n2)
		if !ok {
			stack = stack[:len(stack)-1]

			continue
		}
		top.n1, top.n2 = n1, n2

		if !top.s.IsFeasible(n1, n2) {
			continue
		}

		child := top.s.Extend(n1, n2)
		if child.IsDead() {
			continue
		}

		if child.IsGoal() {
			e.sink.ExpandState()
			if onGoal(child) {
				return
			}

			continue
		}

		e.sink.ExpandState()
		stack = append(stack, frame{s: child, n1: NullPair, n2: NullPair})
	}
}
