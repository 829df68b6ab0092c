package pipeline

import "context"

type scopeKey struct{}

// evalScope belongs to the outermost terminal of one evaluation. Terminals
// nested inside it (a Lazy function calling First, for example) share it.
type evalScope struct {
	finishers []func(error)
}

// OnFinish registers fn to be called with the final error (nil on success)
// of the terminal evaluation ctx belongs to, after every iterator in the
// chain has been closed. It reports false when ctx is not part of a terminal
// evaluation, in which case fn is not registered.
func OnFinish(ctx context.Context, fn func(error)) bool {
	s, ok := ctx.Value(scopeKey{}).(*evalScope)
	if !ok {
		return false
	}
	s.finishers = append(s.finishers, fn)
	return true
}

func beginScope(ctx context.Context) (context.Context, func(error)) {
	if _, ok := ctx.Value(scopeKey{}).(*evalScope); ok {
		return ctx, func(error) {}
	}
	s := &evalScope{}
	return context.WithValue(ctx, scopeKey{}, s), s.finish
}

func (s *evalScope) finish(err error) {
	for _, fn := range s.finishers {
		fn(err)
	}
}
