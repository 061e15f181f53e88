// File: parallel.go
// Role: the flat parallel engine — a worker pool sharing a single
// GlobalStack. Every child of every state is pushed back to the shared
// stack, maximizing sharing at the cost of contention; see parallel_wls.go
// for the locality-preserving refinement.
package engine

import (
	"sync"
	"time"
)

// Config controls both Parallel and ParallelWLS.
type Config struct {
	// NumThreads is the worker pool size. Values <= 0 are treated as 1.
	NumThreads int

	// BaseCPU is carried through for API/CLI compatibility and logging
	// only; no CPU-affinity mechanism is wired (see the engine section of
	// the design ledger for why).
	BaseCPU int

	// StoreSolutions, if true, retains every found Solution for retrieval
	// via Solutions() after Run returns.
	StoreSolutions bool

	// ShallowThreshold and LocalCap configure ParallelWLS's put policy;
	// Parallel ignores both.
	ShallowThreshold int
	LocalCap         int
}

func (c Config) numWorkers() int {
	if c.NumThreads <= 0 {
		return 1
	}

	return c.NumThreads
}

// Parallel is the flat work-distribution engine: NumThreads workers pull
// and push exclusively against one shared GlobalStack.
type Parallel struct {
	cfg  Config
	sink *Sink
}

// New creates a Parallel engine. visit may be nil.
func New(cfg Config, visit Visitor) *Parallel {
	return &Parallel{cfg: cfg, sink: NewSink(cfg.StoreSolutions, visit)}
}

// Run bootstraps the search by expanding s0 on the calling goroutine
// before any worker starts (processState pushes every feasible child
// straight to the global stack, so this is equivalent to a NULL_THREAD
// expansion: no worker's active credit is touched by it), then drives the
// worker pool to exhaustion (or early stop via the Sink's Visitor). It
// blocks until every worker has exited, then returns the solution count
// and the wall-clock time the first solution was recorded (the zero
// time.Time if none was found).
func (p *Parallel) Run(s0 State) (count uint64, firstSolutionAt time.Time, err error) {
	if s0.IsDead() {
		return 0, time.Time{}, nil
	}

	start := time.Now()

	gs := NewGlobalStack()
	p.processState(s0, gs)

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
func (p *Parallel) Sink() *Sink {
	return p.sink
}

func (p *Parallel) runWorker(id int, gs *GlobalStack, det *terminationDetector) {
	for {
		s, done := det.acquire(id, p.sink.StopRequested)
		if done {
			return
		}

		p.processState(s, gs)
	}
}

// processState expands one state: records it if it is a goal, otherwise
// enumerates every feasible (n1, n2) pair and pushes each resulting child
// to the global stack for any worker to pick up.
func (p *Parallel) processState(s State, gs *GlobalStack) {
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

		gs.Push(child)
	}
}
