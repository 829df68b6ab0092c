package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/peoplequery/logger"
)

const defaultTracerName = "github.com/kbukum/peoplequery/observability"

// TracerConfig configures the OpenTelemetry tracer.
type TracerConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// SampleRate is the sampling rate (0.0 to 1.0).
	SampleRate float64
}

// DefaultTracerConfig returns sensible defaults for development.
func DefaultTracerConfig(serviceName string) TracerConfig {
	return TracerConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		SampleRate:     1.0,
	}
}

// InitTracer installs a global tracer provider that sends finished spans to
// exporter synchronously. The provider should be shut down on exit.
func InitTracer(config TracerConfig, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	var sampler sdktrace.Sampler
	switch {
	case config.SampleRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case config.SampleRate <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(config.SampleRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(newResource(config)),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)
	return tp
}

func newResource(config TracerConfig) *resource.Resource {
	return resource.NewSchemaless(
		attribute.String(AttrServiceName, config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
		attribute.String("environment", config.Environment),
	)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// StartSpan starts a new span using the default tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer(defaultTracerName).Start(ctx, name, opts...)
}

// SetSpanError records err on span and marks it failed.
func SetSpanError(span trace.Span, err error) {
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Span names.
const (
	SpanGetByID = "repository.get_by_id"
	SpanFindAll = "repository.find_all"
)

// Attribute keys.
const (
	AttrServiceName  = "service.name"
	AttrOperation    = "query.operation"
	AttrRecordID     = "record.id"
	AttrRecords      = "query.records"
	AttrEvaluationID = "query.evaluation_id"
	AttrErrorCode    = "error.code"
)

// LogExporter writes finished spans to a logger at debug level.
type LogExporter struct {
	log *logger.Logger
}

// NewLogExporter creates a span exporter backed by log.
func NewLogExporter(log *logger.Logger) *LogExporter {
	return &LogExporter{log: log.WithComponent("tracing")}
}

// ExportSpans implements sdktrace.SpanExporter.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := logger.Fields(
			"span", s.Name(),
			"trace_id", s.SpanContext().TraceID().String(),
			"duration_us", s.EndTime().Sub(s.StartTime()).Microseconds(),
			"status", s.Status().Code.String(),
		)
		for _, kv := range s.Attributes() {
			fields[string(kv.Key)] = kv.Value.Emit()
		}
		e.log.Debug("span finished", fields)
	}
	return nil
}

// Shutdown implements sdktrace.SpanExporter.
func (e *LogExporter) Shutdown(context.Context) error { return nil }
