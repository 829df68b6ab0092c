// Package pipeline provides composable, pull-based iterator pipelines.
//
// Pipelines are lazy: building one only composes closures. Work happens when
// a terminal (Collect, First, Drain, ForEach) calls the pipeline's factory,
// which builds a fresh iterator chain and pulls from it. Every terminal call
// re-runs the chain from the source, so a Pipeline can be evaluated any
// number of times and each evaluation is independent.
//
// Everything runs on the caller's goroutine. The only cancellation point is
// the source checking ctx between elements.
//
// Sources that need the final outcome of an evaluation (to end a span, for
// instance) register with OnFinish from their factory. Terminals nested inside
// another terminal's evaluation share its outcome.
//
// # Operators
//
//   - Map: transform each value; failures and panics abort the evaluation
//   - Filter: keep values matching a predicate
//   - Tap: side-effect per value
//   - OnError: side-effect on the error that ends an evaluation
//   - Take: stop after n values
//   - Reduce: accumulate all values into one result
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := pipeline.Map(src, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	evens := pipeline.Filter(doubled, func(n int) bool { return n%4 == 0 })
//	first, ok, err := pipeline.First(ctx, evens)
package pipeline
