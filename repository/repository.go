package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/peoplequery/logger"
	"github.com/kbukum/peoplequery/observability"
	"github.com/kbukum/peoplequery/pipeline"
	"github.com/kbukum/peoplequery/query"
	"github.com/kbukum/peoplequery/record"
)

const tracerName = "github.com/kbukum/peoplequery/repository"

// Operation names used in logs, span attributes and metrics.
const (
	OpGetByID = "get_by_id"
	OpFindAll = "find_all"
)

// PersonRepository serves deferred queries over a record.Store.
type PersonRepository struct {
	store   *record.Store
	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.QueryMetrics
}

// Option configures a PersonRepository during creation.
type Option func(*PersonRepository)

// WithLogger sets the logger evaluations are reported to.
func WithLogger(log *logger.Logger) Option {
	return func(r *PersonRepository) {
		if log != nil {
			r.log = log.WithComponent("repository")
		}
	}
}

// WithTracer sets the tracer used for evaluation spans. Defaults to a tracer
// from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *PersonRepository) { r.tracer = t }
}

// WithMetrics enables metric recording for every evaluation.
func WithMetrics(m *observability.QueryMetrics) Option {
	return func(r *PersonRepository) { r.metrics = m }
}

// New creates a repository over store.
func New(store *record.Store, opts ...Option) *PersonRepository {
	r := &PersonRepository{
		store:  store,
		log:    logger.Nop(),
		tracer: observability.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetByID returns a query for the record with the given id. The query
// completes empty when no such record exists.
func (r *PersonRepository) GetByID(id int) *query.Single[record.Record] {
	lookup := pipeline.Lazy(func(_ context.Context) (record.Record, bool, error) {
		rec, ok := r.store.ByID(id)
		return rec, ok, nil
	})
	return query.FromPipeline(r.instrument(OpGetByID, observability.SpanGetByID, lookup,
		attribute.Int(observability.AttrRecordID, id),
	)).Next()
}

// FindAll returns a query over every record in store order.
func (r *PersonRepository) FindAll() *query.Many[record.Record] {
	all := pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[record.Record] {
		return pipeline.FromSlice(r.store.All()).Iter(ctx)
	})
	return query.FromPipeline(r.instrument(OpFindAll, observability.SpanFindAll, all))
}

func (r *PersonRepository) instrument(op, spanName string, source *pipeline.Pipeline[record.Record], attrs ...attribute.KeyValue) *pipeline.Pipeline[record.Record] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[record.Record] {
		e := r.begin(ctx, op, spanName, attrs...)
		e.source = source.Iter(e.ctx)
		return e
	})
}
