package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("person", "123")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.Details["resource"] != "person" {
		t.Errorf("expected resource=person, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "123" {
		t.Errorf("expected id=123, got %v", err.Details["id"])
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("person", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("index corrupted")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("id", "must be positive")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "id" {
		t.Errorf("expected field=id, got %v", err.Details["field"])
	}
}

func TestAppError_Cardinality(t *testing.T) {
	none := NoElements()
	if none.Code != ErrCodeNoElements {
		t.Errorf("expected NO_ELEMENTS, got %s", none.Code)
	}
	if none.Details["count"] != 0 {
		t.Errorf("expected count=0, got %v", none.Details["count"])
	}

	many := TooManyElements(3)
	if many.Code != ErrCodeTooManyElements {
		t.Errorf("expected TOO_MANY_ELEMENTS, got %s", many.Code)
	}
	if many.Details["count"] != 3 {
		t.Errorf("expected count=3, got %v", many.Details["count"])
	}
	if !strings.Contains(many.Error(), "found 3") {
		t.Errorf("expected message to mention count, got %q", many.Error())
	}

	if !IsCardinalityCode(none.Code) || !IsCardinalityCode(many.Code) {
		t.Error("cardinality codes should be recognised")
	}
	if IsCardinalityCode(ErrCodeTransformFailed) {
		t.Error("TRANSFORM_FAILED is not a cardinality code")
	}
}

func TestAppError_TransformFailed_Unwraps(t *testing.T) {
	cause := fmt.Errorf("bad conversion")
	err := TransformFailed(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Error(), "bad conversion") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := NotFound("item", "1").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["resource"] != "item" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := AlreadyExists("person", "1").WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"AlreadyExists", AlreadyExists("person", "7"), ErrCodeAlreadyExists},
		{"MissingField", MissingField("first_name"), ErrCodeMissingField},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput},
		{"TransformFailed", TransformFailed(nil), ErrCodeTransformFailed},
		{"NoElements", NoElements(), ErrCodeNoElements},
		{"TooManyElements", TooManyElements(2), ErrCodeTooManyElements},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestAppError_AsAppError(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("outer: %w", NoElements())); got != ErrCodeNoElements {
		t.Errorf("expected NO_ELEMENTS, got %q", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("expected empty code for nil, got %q", got)
	}
}

func TestHasCode_NestedAppErrors(t *testing.T) {
	inner := NoElements()
	outer := TransformFailed(inner)
	if !HasCode(outer, ErrCodeTransformFailed) {
		t.Error("expected outer code to match")
	}
	if !HasCode(outer, ErrCodeNoElements) {
		t.Error("expected inner code to match through the cause chain")
	}
	if HasCode(outer, ErrCodeNotFound) {
		t.Error("unexpected NOT_FOUND match")
	}
}
