package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder records search-engine metrics. Use New for an OTel-backed
// implementation or Noop{} to disable metrics entirely.
type Recorder interface {
	// RecordStatesExpanded adds delta to the running count of search
	// states expanded, tagged by engine variant.
	RecordStatesExpanded(ctx context.Context, engineName string, delta int64)

	// RecordSolutionFound increments the solutions-found counter.
	RecordSolutionFound(ctx context.Context, engineName string)

	// RecordWorkerIdleRatio samples the fraction of wall-clock time a
	// worker pool spent idle, observed once at termination.
	RecordWorkerIdleRatio(ctx context.Context, engineName string, ratio float64)

	// RecordSearchDuration records the total wall-clock duration of one
	// Run call.
	RecordSearchDuration(ctx context.Context, engineName string, d time.Duration)
}

// otelRecorder implements Recorder using OpenTelemetry metric instruments.
type otelRecorder struct {
	statesExpanded  metric.Int64Counter
	solutionsFound  metric.Int64Counter
	workerIdleRatio metric.Float64Histogram
	searchDuration  metric.Float64Histogram
}

// New builds a Recorder from meter, an OpenTelemetry Meter obtained from a
// configured MeterProvider. If instrument creation fails, a Noop recorder
// is returned instead of propagating the error, since metrics are always
// optional.
func New(meter metric.Meter) Recorder {
	r, err := newOtelRecorder(meter)
	if err != nil {
		slog.Warn("observability: metric instrument creation failed, using no-op recorder", slog.String("error", err.Error()))

		return Noop{}
	}

	return r
}

func newOtelRecorder(meter metric.Meter) (*otelRecorder, error) {
	statesExpanded, err := meter.Int64Counter("subiso.states_expanded_total",
		metric.WithDescription("Number of search states expanded"))
	if err != nil {
		return nil, err
	}

	solutionsFound, err := meter.Int64Counter("subiso.solutions_found_total",
		metric.WithDescription("Number of complete mappings found"))
	if err != nil {
		return nil, err
	}

	workerIdleRatio, err := meter.Float64Histogram("subiso.worker_idle_ratio",
		metric.WithDescription("Fraction of wall-clock time a worker pool spent idle"))
	if err != nil {
		return nil, err
	}

	searchDuration, err := meter.Float64Histogram("subiso.search_duration_seconds",
		metric.WithDescription("Wall-clock duration of a Run call"), metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &otelRecorder{
		statesExpanded:  statesExpanded,
		solutionsFound:  solutionsFound,
		workerIdleRatio: workerIdleRatio,
		searchDuration:  searchDuration,
	}, nil
}

func (r *otelRecorder) RecordStatesExpanded(ctx context.Context, engineName string, delta int64) {
	r.statesExpanded.Add(ctx, delta, metric.WithAttributes(attribute.String("engine", engineName)))
}

func (r *otelRecorder) RecordSolutionFound(ctx context.Context, engineName string) {
	r.solutionsFound.Add(ctx, 1, metric.WithAttributes(attribute.String("engine", engineName)))
}

func (r *otelRecorder) RecordWorkerIdleRatio(ctx context.Context, engineName string, ratio float64) {
	r.workerIdleRatio.Record(ctx, ratio, metric.WithAttributes(attribute.String("engine", engineName)))
}

func (r *otelRecorder) RecordSearchDuration(ctx context.Context, engineName string, d time.Duration) {
	r.searchDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("engine", engineName)))
}
