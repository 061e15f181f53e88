package observability

import (
	"context"
	"time"
)

// Noop is a Recorder that discards every call. It is the default when no
// meter provider is configured.
type Noop struct{}

var _ Recorder = Noop{}

func (Noop) RecordStatesExpanded(context.Context, string, int64)        {}
func (Noop) RecordSolutionFound(context.Context, string)                {}
func (Noop) RecordWorkerIdleRatio(context.Context, string, float64)     {}
func (Noop) RecordSearchDuration(context.Context, string, time.Duration) {}
