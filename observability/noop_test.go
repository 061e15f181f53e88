package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopImplementsRecorder(t *testing.T) {
	var rec Recorder = Noop{}
	ctx := context.Background()

	rec.RecordStatesExpanded(ctx, "sequential", 10)
	rec.RecordSolutionFound(ctx, "sequential")
	rec.RecordWorkerIdleRatio(ctx, "sequential", 0.5)
	rec.RecordSearchDuration(ctx, "sequential", time.Second)
}
