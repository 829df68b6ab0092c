package query

import (
	"context"

	"github.com/kbukum/peoplequery/pipeline"
)

// Single is a deferred computation yielding at most one value.
type Single[T any] struct {
	p *pipeline.Pipeline[T]
}

// Just returns a Single that yields v.
func Just[T any](v T) *Single[T] {
	return &Single[T]{p: pipeline.FromSlice([]T{v})}
}

// Empty returns a Single that completes without a value.
func Empty[T any]() *Single[T] {
	return &Single[T]{p: pipeline.Empty[T]()}
}

// Fail returns a Single whose every evaluation fails with err.
func Fail[T any](err error) *Single[T] {
	return &Single[T]{p: pipeline.Fail[T](err)}
}

// Defer returns a Single that calls fn on each evaluation. fn reports
// absence by returning ok == false.
func Defer[T any](fn func(ctx context.Context) (T, bool, error)) *Single[T] {
	return &Single[T]{p: pipeline.Lazy(fn)}
}

// Map returns a Single of fn applied to the value. fn is never called when
// the source is empty. An error from fn, or a panic, fails the evaluation
// with code TRANSFORM_FAILED.
func Map[T, U any](s *Single[T], fn func(T) (U, error)) *Single[U] {
	return &Single[U]{p: pipeline.Map(s.p, func(_ context.Context, v T) (U, error) {
		return fn(v)
	})}
}

// Filter yields the value only if pred accepts it, otherwise completes empty.
func (s *Single[T]) Filter(pred func(T) bool) *Single[T] {
	return &Single[T]{p: pipeline.Filter(s.p, pred)}
}

// DefaultIfEmpty yields v when the source completes without a value.
func (s *Single[T]) DefaultIfEmpty(v T) *Single[T] {
	return Defer(func(ctx context.Context) (T, bool, error) {
		got, ok, err := pipeline.First(ctx, s.p)
		if err != nil {
			return got, false, err
		}
		if !ok {
			return v, true, nil
		}
		return got, true, nil
	})
}

// DoOnNext calls fn with the value before passing it on.
func (s *Single[T]) DoOnNext(fn func(T)) *Single[T] {
	return &Single[T]{p: tap(s.p, fn)}
}

// DoOnError calls fn with the error that fails an evaluation. The error
// still reaches the terminal.
func (s *Single[T]) DoOnError(fn func(error)) *Single[T] {
	return &Single[T]{p: onError(s.p, fn)}
}

// AsMany views s as a sequence of zero or one element. It is a function
// rather than a method because Many[T].Collect returns Single[[]T].
func AsMany[T any](s *Single[T]) *Many[T] {
	return &Many[T]{p: s.p}
}

// Block evaluates the query on the calling goroutine. ok is false when the
// query completed empty.
func (s *Single[T]) Block(ctx context.Context) (T, bool, error) {
	return pipeline.First(ctx, s.p)
}

// Result evaluates the query and returns its outcome as a Result.
func (s *Single[T]) Result(ctx context.Context) Result[T] {
	v, ok, err := s.Block(ctx)
	switch {
	case err != nil:
		return Err[T](err)
	case ok:
		return Ok(v)
	default:
		return None[T]()
	}
}

// Subscribe evaluates the query and delivers the outcome synchronously:
// onNext at most once with the value, or onError once with the failure.
// Either handler may be nil.
func (s *Single[T]) Subscribe(ctx context.Context, onNext func(T), onError func(error)) {
	v, ok, err := s.Block(ctx)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if ok && onNext != nil {
		onNext(v)
	}
}

func tap[T any](p *pipeline.Pipeline[T], fn func(T)) *pipeline.Pipeline[T] {
	return pipeline.Tap(p, func(_ context.Context, v T) error {
		fn(v)
		return nil
	})
}

func onError[T any](p *pipeline.Pipeline[T], fn func(error)) *pipeline.Pipeline[T] {
	return pipeline.OnError(p, func(_ context.Context, err error) {
		fn(err)
	})
}
