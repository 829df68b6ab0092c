package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric instrument names.
const (
	MetricEvaluations = "query.evaluations"
	MetricRecords     = "query.records"
	MetricErrors      = "query.errors"
	MetricDuration    = "query.duration"
)

// QueryMetrics holds the instruments recorded for each query evaluation.
type QueryMetrics struct {
	evaluations metric.Int64Counter
	records     metric.Int64Counter
	errors      metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewQueryMetrics creates metric instruments on the given meter.
func NewQueryMetrics(meter metric.Meter) (*QueryMetrics, error) {
	evaluations, err := meter.Int64Counter(MetricEvaluations,
		metric.WithDescription("Terminal evaluations of repository queries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricEvaluations, err)
	}

	records, err := meter.Int64Counter(MetricRecords,
		metric.WithDescription("Records read from the store by query evaluations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRecords, err)
	}

	errs, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed query evaluations by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of query evaluations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDuration, err)
	}

	return &QueryMetrics{
		evaluations: evaluations,
		records:     records,
		errors:      errs,
		duration:    duration,
	}, nil
}

// RecordEvaluation records one finished evaluation of operation that read
// records elements from the store.
func (m *QueryMetrics) RecordEvaluation(ctx context.Context, operation string, records int, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String(AttrOperation, operation))
	m.evaluations.Add(ctx, 1, attrs)
	m.records.Add(ctx, int64(records), attrs)
	m.duration.Record(ctx, d.Seconds(), attrs)
}

// RecordError records a failed evaluation of operation.
func (m *QueryMetrics) RecordError(ctx context.Context, operation, code string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperation, operation),
		attribute.String(AttrErrorCode, code),
	))
}
