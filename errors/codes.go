package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Query evaluation errors
const (
	// ErrCodeNoElements indicates a single-element query found nothing.
	ErrCodeNoElements ErrorCode = "NO_ELEMENTS"
	// ErrCodeTooManyElements indicates a single-element query found more than one element.
	ErrCodeTooManyElements ErrorCode = "TOO_MANY_ELEMENTS"
	// ErrCodeTransformFailed indicates a mapping function failed during evaluation.
	ErrCodeTransformFailed ErrorCode = "TRANSFORM_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var cardinalityCodes = map[ErrorCode]bool{
	ErrCodeNoElements:      true,
	ErrCodeTooManyElements: true,
}

// IsCardinalityCode returns true if the code reports a violated
// exactly-one constraint.
func IsCardinalityCode(code ErrorCode) bool {
	return cardinalityCodes[code]
}
