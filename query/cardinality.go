package query

import (
	stderrors "errors"

	"github.com/kbukum/peoplequery/errors"
)

// Cardinality tells apart the two ways an exactly-one query can fail.
type Cardinality int

const (
	// CardinalityNone means the source produced no elements.
	CardinalityNone Cardinality = iota + 1
	// CardinalityMultiple means the source produced more than one element.
	CardinalityMultiple
)

// String returns "none" or "multiple".
func (c Cardinality) String() string {
	switch c {
	case CardinalityNone:
		return "none"
	case CardinalityMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// CardinalityError is returned by Many.Single when the source did not produce
// exactly one element. It unwraps to an *errors.AppError with code
// NO_ELEMENTS or TOO_MANY_ELEMENTS.
type CardinalityError struct {
	Kind  Cardinality
	Count int
	app   *errors.AppError
}

func newCardinalityError(count int) *CardinalityError {
	if count == 0 {
		return &CardinalityError{Kind: CardinalityNone, app: errors.NoElements()}
	}
	return &CardinalityError{Kind: CardinalityMultiple, Count: count, app: errors.TooManyElements(count)}
}

func (e *CardinalityError) Error() string { return e.app.Error() }

// Unwrap returns the underlying AppError.
func (e *CardinalityError) Unwrap() error { return e.app }

// IsNoElements reports whether err is a CardinalityError of kind none.
func IsNoElements(err error) bool {
	var ce *CardinalityError
	return stderrors.As(err, &ce) && ce.Kind == CardinalityNone
}

// IsTooManyElements reports whether err is a CardinalityError of kind multiple.
func IsTooManyElements(err error) bool {
	var ce *CardinalityError
	return stderrors.As(err, &ce) && ce.Kind == CardinalityMultiple
}
