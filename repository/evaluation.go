package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/peoplequery/errors"
	"github.com/kbukum/peoplequery/logger"
	"github.com/kbukum/peoplequery/observability"
	"github.com/kbukum/peoplequery/pipeline"
	"github.com/kbukum/peoplequery/record"
)

// evaluation wraps the store iterator of one terminal call. It is reported
// once the terminal has its final outcome, so failures raised downstream of
// the store (cardinality, transformation) are attributed to it too. Raw
// iteration outside a terminal is reported on Close instead.
type evaluation struct {
	repo     *PersonRepository
	ctx      context.Context
	op       string
	id       string
	span     trace.Span
	start    time.Time
	source   pipeline.Iterator[record.Record]
	count    int
	err      error
	deferred bool
	closed   bool
	reported bool
}

func (r *PersonRepository) begin(ctx context.Context, op, spanName string, attrs ...attribute.KeyValue) *evaluation {
	id := uuid.NewString()
	spanAttrs := append([]attribute.KeyValue{
		attribute.String(observability.AttrOperation, op),
		attribute.String(observability.AttrEvaluationID, id),
	}, attrs...)
	spanCtx, span := r.tracer.Start(ctx, spanName, trace.WithAttributes(spanAttrs...))
	e := &evaluation{
		repo:  r,
		ctx:   spanCtx,
		op:    op,
		id:    id,
		span:  span,
		start: time.Now(),
	}
	e.deferred = pipeline.OnFinish(ctx, e.report)
	return e
}

// Next reads from the store under the evaluation's span context.
func (e *evaluation) Next(_ context.Context) (record.Record, bool, error) {
	rec, ok, err := e.source.Next(e.ctx)
	if err != nil {
		e.err = err
		return rec, false, err
	}
	if ok {
		e.count++
	}
	return rec, ok, nil
}

func (e *evaluation) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	closeErr := e.source.Close()
	if !e.deferred {
		e.report(nil)
	}
	return closeErr
}

// report ends the span and records the outcome. err is the terminal's final
// error; a store read error is used when the terminal reports none.
func (e *evaluation) report(err error) {
	if e.reported {
		return
	}
	e.reported = true
	if err == nil {
		err = e.err
	}

	e.span.SetAttributes(attribute.Int(observability.AttrRecords, e.count))
	observability.SetSpanError(e.span, err)
	e.span.End()

	if m := e.repo.metrics; m != nil {
		m.RecordEvaluation(e.ctx, e.op, e.count, time.Since(e.start))
		if err != nil {
			m.RecordError(e.ctx, e.op, errorCode(err))
		}
	}

	log := e.repo.log
	switch {
	case err == nil:
		if log.DebugEnabled() {
			log.Debug("query evaluated", logger.Fields(
				logger.FieldOperation, e.op,
				logger.FieldEvaluation, e.id,
				logger.FieldCount, e.count,
			))
		}
	case errors.IsCardinalityCode(errors.CodeOf(err)):
		log.Info("query cardinality violated", e.errorFields(err))
	default:
		log.Warn("query evaluation failed", e.errorFields(err))
	}
}

func (e *evaluation) errorFields(err error) map[string]interface{} {
	return logger.Fields(
		logger.FieldOperation, e.op,
		logger.FieldEvaluation, e.id,
		logger.FieldCount, e.count,
		logger.FieldError, err.Error(),
		logger.FieldErrorCode, errorCode(err),
	)
}

func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return string(code)
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return "CANCELLED"
	}
	return string(errors.ErrCodeInternal)
}
