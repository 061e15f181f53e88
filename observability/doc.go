// Package observability wires optional OpenTelemetry metrics around the
// search engine: states expanded, solutions found, worker idle ratio at
// termination, and total search duration.
//
// Recorder is no-op by default (see Noop); callers that want real metrics
// supply an OTel meter provider to New.
package observability
