package query

// Result is the outcome of evaluating a Single: a value, nothing, or an error.
type Result[T any] struct {
	value   T
	present bool
	err     error
}

// Ok returns a Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, present: true}
}

// None returns an empty Result.
func None[T any]() Result[T] {
	return Result[T]{}
}

// Err returns a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value and whether one is present.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.present
}

// Err returns the evaluation error, if any.
func (r Result[T]) Err() error { return r.err }

// IsPresent reports whether the Result holds a value.
func (r Result[T]) IsPresent() bool { return r.present }

// IsEmpty reports whether evaluation completed without a value or an error.
func (r Result[T]) IsEmpty() bool { return !r.present && r.err == nil }

// IsErr reports whether evaluation failed.
func (r Result[T]) IsErr() bool { return r.err != nil }

// OrElse returns the value if present, otherwise fallback.
func (r Result[T]) OrElse(fallback T) T {
	if r.present {
		return r.value
	}
	return fallback
}
