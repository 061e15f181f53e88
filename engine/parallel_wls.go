// File: parallel_wls.go
// Role: the work-local-stack (WLS) parallel engine — each worker keeps an
// unsynchronized local stack of states it generated itself, spilling to
// the shared GlobalStack only for shallow states (small CoreLen, likely to
// spawn many descendants worth sharing) or once its local stack exceeds a
// capacity. This trades a little load-balancing precision for far less
// contention on the global mutex than Parallel.
//
// A worker holding local work never calls the termination detector's
// acquire for that work: local states cannot be consumed by any other
// worker, so they correctly never perturb active_worker_count (see
// termination.go). A worker that exits early on a Visitor stop request
// while still holding local work must release its global active credit
// explicitly, since it will never call acquire again to do so naturally —
// this is new behavior the flat VF3 worker loop never needed, since it
// never observed an early-stop signal at all.
package engine

import (
	"sync"
	"time"
)

// ParallelWLS is the locality-preserving parallel engine.
type ParallelWLS struct {
	cfg  Config
	sink *Sink
}

// NewWLS creates a ParallelWLS engine. visit may be nil.
func NewWLS(cfg Config, visit Visitor) *ParallelWLS {
	return &ParallelWLS{cfg: cfg, sink: NewSink(cfg.StoreSolutions, visit)}
}

// Run bootstraps the search by expanding s0 on the calling goroutine
// before any worker starts, via bootstrapExpand rather than the ordinary
// put policy: bootstrap children always land on the global stack so every
// worker can find work immediately, instead of racing to claim s0 itself
// and routing its children into that one worker's local stack. It then
// drives the worker pool to exhaustion (or early stop via the Sink's
// Visitor), blocking until every worker has exited, and returns the
// solution count and the wall-clock time the first solution was recorded
// (the zero time.Time if none was found).
func (p *ParallelWLS) Run(s0 State) (count uint64, firstSolutionAt time.Time, err error) {
	if s0.IsDead() {
		return 0, time.Time{}, nil
	}

	start := time.Now()

	gs := NewGlobalStack()
	p.bootstrapExpand(s0, gs)

	numWorkers := p.cfg.numWorkers()
	det := newTerminationDetector(gs, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(id int) {
			defer wg.Done()
			p.runWorker(id, gs, det)
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)
	p.sink.RecordDuration(elapsed)
	if elapsed > 0 {
		p.sink.RecordIdleRatio(float64(det.idleDuration()) / (float64(numWorkers) * float64(elapsed)))
	}

	firstSolutionAt, _ = p.sink.FirstSolutionAt()

	return p.sink.Count(), firstSolutionAt, nil
}

// Sink exposes the engine's accumulator for Count/Solutions/FirstSolutionAt.
func (p *ParallelWLS) Sink() *Sink {
	return p.sink
}

func (p *ParallelWLS) runWorker(id int, gs *GlobalStack, det *terminationDetector) {
	local := &localStack{}

	for {
		if p.sink.StopRequested() {
			det.release(id)

			return
		}

		if s, ok := local.pop(); ok {
			p.processState(s, id, local, gs)

			continue
		}

		s, done := det.acquire(id, p.sink.StopRequested)
		if done {
			return
		}

		p.processState(s, id, local, gs)
	}
}

// bootstrapExpand expands s0 on the calling goroutine, before any worker
// starts, pushing every feasible child straight to the global stack
// regardless of put's shallow/cap routing. This is the NULL_THREAD
// bootstrap step: it never touches the termination detector, since the
// calling goroutine is not one of the numbered workers it tracks.
func (p *ParallelWLS) bootstrapExpand(s0 State, gs *GlobalStack) {
	if s0.IsDead() {
		return
	}
	p.sink.ExpandState()

	if s0.IsGoal() {
		p.sink.Record(s0)

		return
	}

	n1, n2 := NullPair, NullPair
	for {
		cn1, cn2, ok := s0.NextPair(n1, n2)
		if !ok {
			return
		}
		n1, n2 = cn1, cn2

		if !s0.IsFeasible(n1, n2) {
			continue
		}

		child := s0.Extend(n1, n2)
		if child.IsDead() {
			continue
		}

		gs.Push(child)
	}
}

// processState expands one state, routing each feasible child to either
// this worker's local stack or the shared global stack per put: shallow
// children (CoreLen below ShallowThreshold) and children beyond LocalCap
// spill to the global stack; everything else stays local.
func (p *ParallelWLS) processState(s State, id int, local *localStack, gs *GlobalStack) {
	if s.IsDead() {
		return
	}
	p.sink.ExpandState()

	if s.IsGoal() {
		p.sink.Record(s)

		return
	}

	n1, n2 := NullPair, NullPair
	for {
		cn1, cn2, ok := s.NextPair(n1, n2)
		if !ok {
			return
		}
		n1, n2 = cn1, cn2

		if !s.IsFeasible(n1, n2) {
			continue
		}

		child := s.Extend(n1, n2)
		if child.IsDead() {
			continue
		}

		if p.put(child, local) {
			continue
		}

		gs.Push(child)
	}
}

// put attempts to push child onto the worker's local stack, returning true
// if it did. It refuses (returning false, leaving the push to the global
// stack) when child is shallow enough to be worth sharing, or when the
// local stack has already reached its configured capacity. LocalCap == 0
// means no local stack at all: local.len() >= 0 is always true, so every
// child spills to the global stack.
func (p *ParallelWLS) put(child State, local *localStack) bool {
	if p.cfg.ShallowThreshold > 0 && child.CoreLen() < p.cfg.ShallowThreshold {
		return false
	}

	if local.len() >= p.cfg.LocalCap {
		return false
	}

	local.push(child)

	return true
}
