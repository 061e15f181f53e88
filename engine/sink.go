// File: sink.go
// Role: thread-safe accumulator of found mappings: solution count, optional
// stored solutions, first-solution wall-clock time, and an optional
// Visitor delegate.
//
// Concurrency:
//   - count is an atomic.Uint64; Record is safe under concurrent calls.
//   - firstAt's publication uses two atomics (firstCAS decides the writer,
//     firstPublished gates readers) so that the happens-before edge runs
//     through the atomic operations themselves rather than relying on
//     firstCAS's CompareAndSwap alone to order the plain time.Time write.
//   - solutions is guarded by mu; order across goroutines is unspecified.
//   - the Visitor callback is invoked under mu as well, serializing calls
//     across workers so a Visitor need not be safe for concurrent use.
//   - the attached observability.Recorder (default observability.Noop{})
//     is called inline from Record/ExpandState/RecordIdleRatio/
//     RecordDuration, the same per-event idiom flowgraph's MetricsRecorder
//     uses; Recorder implementations must themselves be safe for
//     concurrent use, which otelRecorder and Noop both are.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/subiso/observability"
)

// Sink accumulates the results of a search: how many goals were found,
// optionally which ones, when the first was found, and whether a Visitor
// has asked the search to stop.
type Sink struct {
	mu        sync.Mutex
	solutions []Solution
	store     bool
	visit     Visitor

	rec        observability.Recorder
	engineName string

	count          uint64 // atomic
	statesExpanded uint64 // atomic

	firstCAS       atomic.Bool
	firstAt        time.Time
	firstPublished atomic.Bool

	stopRequested atomic.Bool
}

// NewSink creates a Sink. If store is true, Record keeps every Solution in
// memory for later retrieval via Solutions(). visit may be nil. The
// attached Recorder defaults to observability.Noop{}; set SetRecorder to
// wire a real one.
func NewSink(store bool, visit Visitor) *Sink {
	return &Sink{store: store, visit: visit, rec: observability.Noop{}}
}

// SetRecorder attaches rec (tagging every call with engineName) so
// Record, ExpandState, RecordIdleRatio, and RecordDuration report through
// it instead of the default no-op. Must be called before the engine's
// Run/FindAll/FindAllIterative, not concurrently with it.
func (s *Sink) SetRecorder(rec observability.Recorder, engineName string) {
	s.rec = rec
	s.engineName = engineName
}

// Record registers a goal state: increments the solution counter, captures
// the first-solution timestamp exactly once, appends state.Solution() when
// storage is enabled, and delegates to the Visitor if one is attached.
//
// Returns true iff the Visitor requested early termination; false if there
// is no Visitor or it asked to continue.
func (s *Sink) Record(state State) bool {
	atomic.AddUint64(&s.count, 1)
	s.rec.RecordSolutionFound(context.Background(), s.engineName)

	if s.firstCAS.CompareAndSwap(false, true) {
		s.firstAt = time.Now()
		s.firstPublished.Store(true)
	}

	s.mu.Lock()
	if s.store {
		s.solutions = append(s.solutions, state.Solution())
	}
	var stop bool
	if s.visit != nil {
		// Serialized under mu: Visitor implementations are not required to
		// be safe for concurrent invocation from multiple workers.
		stop = s.visit(state)
	}
	s.mu.Unlock()

	if stop {
		s.stopRequested.Store(true)
	}

	return stop
}

// Count returns the number of solutions recorded so far.
func (s *Sink) Count() uint64 {
	return atomic.LoadUint64(&s.count)
}

// ExpandState increments the states-expanded counter and reports the same
// increment to observability.Recorder.RecordStatesExpanded on every call.
// The engines call it once per state that passes the dead check in
// processState/bootstrapExpand/descend/iterate, whether it then turns out
// to be a goal or an ordinary branch point; dead states are not counted.
func (s *Sink) ExpandState() {
	atomic.AddUint64(&s.statesExpanded, 1)
	s.rec.RecordStatesExpanded(context.Background(), s.engineName, 1)
}

// StatesExpanded returns the number of states expanded so far.
func (s *Sink) StatesExpanded() uint64 {
	return atomic.LoadUint64(&s.statesExpanded)
}

// RecordIdleRatio reports the fraction of wall-clock time a worker pool
// spent idle, sampled once at termination by Parallel/ParallelWLS's Run.
func (s *Sink) RecordIdleRatio(ratio float64) {
	s.rec.RecordWorkerIdleRatio(context.Background(), s.engineName, ratio)
}

// RecordDuration reports the wall-clock duration of one Run/FindAll call.
func (s *Sink) RecordDuration(d time.Duration) {
	s.rec.RecordSearchDuration(context.Background(), s.engineName, d)
}

// FirstSolutionAt returns the wall-clock time the first solution was
// recorded, and ok=true iff at least one solution has been recorded.
func (s *Sink) FirstSolutionAt() (t time.Time, ok bool) {
	if !s.firstPublished.Load() {
		return time.Time{}, false
	}

	return s.firstAt, true
}

// Solutions returns a snapshot copy of the stored solutions. Empty (but
// non-nil) if storage was disabled.
func (s *Sink) Solutions() []Solution {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Solution, len(s.solutions))
	copy(out, s.solutions)

	return out
}

// StopRequested reports whether any Visitor invocation has returned true.
// In the parallel engines other workers may still record additional
// solutions before observing this flag.
func (s *Sink) StopRequested() bool {
	return s.stopRequested.Load()
}

// Reset zeroes the counter, clears the first-solution flag, discards any
// stored solutions, and clears the stop flag.
func (s *Sink) Reset() {
	atomic.StoreUint64(&s.count, 0)
	atomic.StoreUint64(&s.statesExpanded, 0)
	s.firstPublished.Store(false)
	s.firstCAS.Store(false)
	s.firstAt = time.Time{}
	s.stopRequested.Store(false)

	s.mu.Lock()
	s.solutions = nil
	s.mu.Unlock()
}
