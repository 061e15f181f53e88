// File: termination.go
// Role: the termination detector — the mechanism deciding when every
// worker is idle and no states remain anywhere, so workers can exit
// safely and promptly.
//
// Protocol (per worker i, boolean wasIdle[i] initialized true; shared
// active initialized 0), all under the global stack's mutex:
//
//   - Global stack non-empty: pop a state; if wasIdle[i], increment active
//     and clear wasIdle[i]. Return the state.
//   - Global stack empty:
//   - If !wasIdle[i]: decrement active, set wasIdle[i].
//   - If active <= 0: broadcast so every parked worker re-evaluates, then
//     return (nil, exit=true).
//   - Otherwise park on the stack's condition variable until a Push, a
//     stop request, or an exit signal wakes this worker, then retry.
//
// active counts workers currently holding global-stack work; it reaches
// zero only after every worker has observed an empty global stack at
// least once since its last pop — exactly the required safety property:
// a worker exits only when no further work will be produced anywhere,
// since any worker still "active" might still push more children before
// itself going idle.
//
// stop (a caller-supplied predicate, normally Sink.StopRequested) is
// re-checked on every loop iteration, including right after waking from
// Wait, so a Visitor-requested stop wakes parked workers via the same
// broadcast channel as new work rather than leaving them blocked forever.
package engine

import "time"

// terminationDetector implements the protocol above against a shared
// GlobalStack. A worker with non-empty local work (WLS) never consults
// it — local states cannot produce states another worker could consume,
// so local work must not perturb active, by design (see package doc in
// parallel_wls.go).
type terminationDetector struct {
	gs      *GlobalStack
	wasIdle []bool
	active  int64         // guarded by gs.mu
	idle    time.Duration // guarded by gs.mu; cumulative time spent in Wait
}

func newTerminationDetector(gs *GlobalStack, numWorkers int) *terminationDetector {
	wasIdle := make([]bool, numWorkers)
	for i := range wasIdle {
		wasIdle[i] = true
	}

	return &terminationDetector{gs: gs, wasIdle: wasIdle}
}

// acquire blocks until either a state is available for workerID, stop()
// reports true, or every worker has observed the global stack empty with
// no workers holding work — in either of the latter two cases it returns
// (nil, true) after releasing workerID's active credit, if any.
func (d *terminationDetector) acquire(workerID int, stop func() bool) (State, bool) {
	d.gs.mu.Lock()
	defer d.gs.mu.Unlock()

	for {
		if stop() {
			d.releaseLocked(workerID)

			return nil, true
		}

		if n := len(d.gs.items); n > 0 {
			s := d.gs.items[n-1]
			d.gs.items = d.gs.items[:n-1]
			if d.wasIdle[workerID] {
				d.active++
				d.wasIdle[workerID] = false
			}

			return s, false
		}

		if !d.wasIdle[workerID] {
			d.active--
			d.wasIdle[workerID] = true
		}

		if d.active <= 0 {
			d.gs.cond.Broadcast()

			return nil, true
		}

		parkedAt := time.Now()
		d.gs.cond.Wait()
		d.idle += time.Since(parkedAt)
	}
}

// releaseLocked clears workerID's active credit, if any, and wakes every
// other parked worker so they re-evaluate stop/termination promptly. Must
// be called with d.gs.mu held.
func (d *terminationDetector) releaseLocked(workerID int) {
	if !d.wasIdle[workerID] {
		d.active--
		d.wasIdle[workerID] = true
	}
	d.gs.cond.Broadcast()
}

// release is releaseLocked for callers (WLS workers exiting with local
// work still held) that have not already taken the lock.
func (d *terminationDetector) release(workerID int) {
	d.gs.mu.Lock()
	defer d.gs.mu.Unlock()
	d.releaseLocked(workerID)
}

// activeWorkerCount reports the current value of active, for tests
// asserting the post-Run invariant active == 0.
func (d *terminationDetector) activeWorkerCount() int64 {
	d.gs.mu.Lock()
	defer d.gs.mu.Unlock()

	return d.active
}

// idleDuration reports the cumulative time every worker has spent parked
// in acquire's Wait, summed across workers. Combined with the pool size
// and the Run's total wall-clock duration, this yields the worker-idle
// ratio reported via observability.Recorder.RecordWorkerIdleRatio.
func (d *terminationDetector) idleDuration() time.Duration {
	d.gs.mu.Lock()
	defer d.gs.mu.Unlock()

	return d.idle
}
