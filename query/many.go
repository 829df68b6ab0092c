package query

import (
	"context"

	"github.com/kbukum/peoplequery/pipeline"
)

// Many is a deferred computation yielding an ordered sequence of values.
type Many[T any] struct {
	p *pipeline.Pipeline[T]
}

// FromSlice returns a Many over items. The slice is copied.
func FromSlice[T any](items []T) *Many[T] {
	snapshot := make([]T, len(items))
	copy(snapshot, items)
	return &Many[T]{p: pipeline.FromSlice(snapshot)}
}

// DeferMany returns a Many that calls fn on each evaluation and yields the
// returned elements in order.
func DeferMany[T any](fn func(ctx context.Context) []T) *Many[T] {
	return &Many[T]{p: pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[T] {
		return pipeline.FromSlice(fn(ctx)).Iter(ctx)
	})}
}

// FromPipeline wraps an existing pipeline.
func FromPipeline[T any](p *pipeline.Pipeline[T]) *Many[T] {
	return &Many[T]{p: p}
}

// MapMany returns a Many of fn applied to each element, in order. An error
// from fn, or a panic, fails the evaluation with code TRANSFORM_FAILED.
func MapMany[T, U any](m *Many[T], fn func(T) (U, error)) *Many[U] {
	return &Many[U]{p: pipeline.Map(m.p, func(_ context.Context, v T) (U, error) {
		return fn(v)
	})}
}

// Filter keeps the elements pred accepts, preserving order.
func (m *Many[T]) Filter(pred func(T) bool) *Many[T] {
	return &Many[T]{p: pipeline.Filter(m.p, pred)}
}

// Take yields at most n elements and stops pulling from the source after that.
func (m *Many[T]) Take(n int) *Many[T] {
	return &Many[T]{p: pipeline.Take(m.p, n)}
}

// DoOnNext calls fn with each element before passing it on.
func (m *Many[T]) DoOnNext(fn func(T)) *Many[T] {
	return &Many[T]{p: tap(m.p, fn)}
}

// DoOnError calls fn with the error that fails an evaluation. The error
// still reaches the terminal.
func (m *Many[T]) DoOnError(fn func(error)) *Many[T] {
	return &Many[T]{p: onError(m.p, fn)}
}

type tally[T any] struct {
	first T
	count int
}

// Single yields the only element of the sequence. The whole source is read;
// zero or several elements fail the evaluation with a *CardinalityError.
func (m *Many[T]) Single() *Single[T] {
	counted := pipeline.Reduce(m.p,
		func() tally[T] { return tally[T]{} },
		func(acc tally[T], v T) tally[T] {
			if acc.count == 0 {
				acc.first = v
			}
			acc.count++
			return acc
		},
	)
	return Defer(func(ctx context.Context) (T, bool, error) {
		var zero T
		acc, _, err := pipeline.First(ctx, counted)
		if err != nil {
			return zero, false, err
		}
		if acc.count != 1 {
			return zero, false, newCardinalityError(acc.count)
		}
		return acc.first, true, nil
	})
}

// Next yields the first element, or completes empty if there is none.
func (m *Many[T]) Next() *Single[T] {
	return &Single[T]{p: pipeline.Take(m.p, 1)}
}

// Collect yields all elements as one slice, in order. An empty source yields
// an empty, non-nil slice.
func (m *Many[T]) Collect() *Single[[]T] {
	return &Single[[]T]{p: pipeline.Reduce(m.p,
		func() []T { return make([]T, 0) },
		func(acc []T, v T) []T { return append(acc, v) },
	)}
}

// Count yields the number of elements.
func (m *Many[T]) Count() *Single[int] {
	return &Single[int]{p: pipeline.Reduce(m.p,
		func() int { return 0 },
		func(acc int, _ T) int { return acc + 1 },
	)}
}

// BlockFirst evaluates the query and returns its first element. The rest of
// the sequence is never pulled.
func (m *Many[T]) BlockFirst(ctx context.Context) (T, bool, error) {
	return pipeline.First(ctx, m.p)
}

// Subscribe evaluates the query, calling onNext for each element in order
// and onError at most once if the evaluation fails. Either handler may be nil.
func (m *Many[T]) Subscribe(ctx context.Context, onNext func(T), onError func(error)) {
	err := pipeline.ForEach(ctx, m.p, func(_ context.Context, v T) error {
		if onNext != nil {
			onNext(v)
		}
		return nil
	})
	if err != nil && onError != nil {
		onError(err)
	}
}
