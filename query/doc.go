// Package query provides deferred, composable query handles.
//
// A Single yields at most one value and a Many yields an ordered sequence.
// Both are recipes: composing operators never runs anything, and every
// terminal call (Block, Result, BlockFirst, Subscribe) evaluates the whole
// chain again from its source. Handles are immutable, so a handle can be
// shared, extended in several directions and evaluated any number of times.
//
// Absence is not an error. A Single that finds nothing completes empty
// (ok == false, Result.IsEmpty, onNext never called). The only failures are a
// violated exactly-one constraint, reported as *CardinalityError by
// Many.Single, and a failing Map function, reported as an errors.AppError
// with code TRANSFORM_FAILED.
//
// # Usage
//
//	fiona := query.MapMany(repo.FindAll(), func(r record.Record) (string, error) {
//	    return r.FirstName, nil
//	}).Filter(func(name string) bool { return name == "Fiona" }).Single()
//
//	name, ok, err := fiona.Block(ctx)
//	if query.IsNoElements(err) {
//	    // nobody matched
//	}
package query
