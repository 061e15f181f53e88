package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fanState is a minimal State whose NextPair offers a fixed number of
// feasible children per level, used to observe exactly how many children
// a single expansion produces without any real graph-matching semantics.
type fanState struct {
	level  int
	fanout int
}

func (s *fanState) IsGoal() bool { return s.level >= 2 }
func (s *fanState) IsDead() bool { return false }
func (s *fanState) CoreLen() int { return s.level }

func (s *fanState) NextPair(_ int, prevN2 int) (int, int, bool) {
	start := 0
	if prevN2 != NullPair {
		start = prevN2 + 1
	}
	if start >= s.fanout {
		return 0, 0, false
	}

	return s.level, start, true
}

func (s *fanState) IsFeasible(int, int) bool { return true }
func (s *fanState) Extend(int, int) State    { return &fanState{level: s.level + 1, fanout: s.fanout} }
func (s *fanState) Solution() Solution       { return nil }

// TestParallelBootstrapExpandsBeforeAnyWorkerRuns confirms Run's bootstrap
// step (processState called directly on s0, by the caller) pushes every
// child of s0 to the global stack before a worker pool even exists, rather
// than leaving s0 itself as the only item for some worker to claim.
func TestParallelBootstrapExpandsBeforeAnyWorkerRuns(t *testing.T) {
	s0 := &fanState{level: 0, fanout: 5}
	gs := NewGlobalStack()
	p := &Parallel{cfg: Config{}, sink: NewSink(false, nil)}

	p.processState(s0, gs)

	assert.Equal(t, 5, gs.Len())
}

// TestParallelWLSBootstrapExpandIgnoresLocalCapZero confirms bootstrapExpand
// pushes every child of s0 straight to the global stack at the
// ShallowThreshold=0, LocalCap=0 boundary. bootstrapExpand does not go
// through put() at all, so the bootstrap step distributes work without
// relying on put's LocalCap==0 handling.
func TestParallelWLSBootstrapExpandIgnoresLocalCapZero(t *testing.T) {
	s0 := &fanState{level: 0, fanout: 6}
	gs := NewGlobalStack()
	p := &ParallelWLS{cfg: Config{ShallowThreshold: 0, LocalCap: 0}, sink: NewSink(false, nil)}

	p.bootstrapExpand(s0, gs)

	require.Equal(t, 6, gs.Len())
}

// TestParallelWLSPutForcesGlobalWhenLocalCapZero is the direct regression
// test for the put() boundary bug: with LocalCap==0, every non-shallow
// child must spill to the global stack, never to the local stack.
func TestParallelWLSPutForcesGlobalWhenLocalCapZero(t *testing.T) {
	p := &ParallelWLS{cfg: Config{ShallowThreshold: 0, LocalCap: 0}, sink: NewSink(false, nil)}
	local := &localStack{}

	child := &fanState{level: 1, fanout: 1}
	ok := p.put(child, local)

	assert.False(t, ok)
	assert.Equal(t, 0, local.len())
}

// TestParallelWLSRunDistributesAcrossWorkersAtZeroZeroBoundary exercises
// the ShallowThreshold=0, LocalCap=0 boundary, where every child routes
// to the global stack, with eight workers. Through the public API the
// observable checks are that Run returns without error and that its count
// matches Sequential exactly.
func TestParallelWLSRunDistributesAcrossWorkersAtZeroZeroBoundary(t *testing.T) {
	build := func() State { return newFakeStateForBootstrapTest(5, 3) }

	seq := NewSequential(true, nil)
	seq.FindAll(build())

	wls := NewWLS(Config{NumThreads: 8, ShallowThreshold: 0, LocalCap: 0, StoreSolutions: true}, nil)
	count, _, err := wls.Run(build())
	require.NoError(t, err)

	assert.Equal(t, seq.Sink().Count(), count)
}

// newFakeStateForBootstrapTest builds a k-permutation State identical in
// shape to engine_test.go's fakeState, duplicated here because white-box
// tests in package engine cannot import the _test-package helper.
type bootstrapFakeState struct {
	domainSize int
	target     int
	used       map[int]bool
	path       []int
}

func newFakeStateForBootstrapTest(domainSize, target int) *bootstrapFakeState {
	return &bootstrapFakeState{domainSize: domainSize, target: target, used: map[int]bool{}}
}

func (s *bootstrapFakeState) IsGoal() bool { return len(s.path) == s.target }
func (s *bootstrapFakeState) IsDead() bool { return false }
func (s *bootstrapFakeState) CoreLen() int { return len(s.path) }

func (s *bootstrapFakeState) NextPair(_ int, prevN2 int) (int, int, bool) {
	start := 0
	if prevN2 != NullPair {
		start = prevN2 + 1
	}
	for v := start; v < s.domainSize; v++ {
		if s.used[v] {
			continue
		}

		return len(s.path), v, true
	}

	return 0, 0, false
}

func (s *bootstrapFakeState) IsFeasible(int, int) bool { return true }

func (s *bootstrapFakeState) Extend(_ int, n2 int) State {
	used := make(map[int]bool, len(s.used)+1)
	for k, v := range s.used {
		used[k] = v
	}
	used[n2] = true

	path := make([]int, len(s.path)+1)
	copy(path, s.path)
	path[len(s.path)] = n2

	return &bootstrapFakeState{domainSize: s.domainSize, target: s.target, used: used, path: path}
}

func (s *bootstrapFakeState) Solution() Solution {
	sol := make(Solution, len(s.path))
	for i, v := range s.path {
		sol[i] = Pair{PatternNode: i, TargetNode: v}
	}

	return sol
}
