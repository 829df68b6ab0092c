// Package observability provides OpenTelemetry tracing and metrics helpers
// for query evaluation.
//
// Tracing:
//
//	tp := observability.InitTracer(observability.DefaultTracerConfig("peopleq"),
//	    observability.NewLogExporter(log))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanGetByID)
//	defer span.End()
//
// Metrics:
//
//	metrics, err := observability.NewQueryMetrics(observability.Meter("peopleq"))
//	metrics.RecordEvaluation(ctx, "find_all", 4, elapsed)
//
// Without InitTracer the global no-op providers are used and every helper is
// safe to call.
package observability
