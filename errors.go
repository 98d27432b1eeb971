package fluentsql

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for builder and rendering failures.
var (
	// ErrInvalidOperation is returned when a builder method is called in a
	// state that does not allow it, e.g. joining before any table was added.
	ErrInvalidOperation = errors.New("fluentsql: invalid operation")

	// ErrUnsupportedOperation is returned when a statement or selection
	// cannot be expressed, e.g. an INSERT with nothing to insert.
	ErrUnsupportedOperation = errors.New("fluentsql: unsupported operation")
)

// InvalidOperationError describes a builder call made out of order.
type InvalidOperationError struct {
	Op     string // Builder method, e.g. "InnerJoin"
	Reason string
}

// Error returns the error string.
func (e *InvalidOperationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fluentsql: invalid operation %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("fluentsql: invalid operation %s", e.Op)
}

// Is reports whether the target error matches InvalidOperationError.
// This allows errors.Is(err, ErrInvalidOperation) to return true.
func (e *InvalidOperationError) Is(err error) bool {
	return err == ErrInvalidOperation
}

// NewInvalidOperationError returns a new InvalidOperationError.
func NewInvalidOperationError(op, reason string) *InvalidOperationError {
	return &InvalidOperationError{Op: op, Reason: reason}
}

// IsInvalidOperation returns true if the error is an InvalidOperationError.
func IsInvalidOperation(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidOperationError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidOperation)
}

// UnsupportedOperationError describes a statement or item kind that
// cannot be rendered or mapped.
type UnsupportedOperationError struct {
	Op   string // Operation, e.g. "render insert"
	Kind string // Offending kind or a short description
}

// Error returns the error string.
func (e *UnsupportedOperationError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("fluentsql: %s: %s is not supported", e.Op, e.Kind)
	}
	return fmt.Sprintf("fluentsql: %s is not supported", e.Op)
}

// Is reports whether the target error matches UnsupportedOperationError.
func (e *UnsupportedOperationError) Is(err error) bool {
	return err == ErrUnsupportedOperation
}

// NewUnsupportedOperationError returns a new UnsupportedOperationError.
func NewUnsupportedOperationError(op, kind string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Op: op, Kind: kind}
}

// IsUnsupportedOperation returns true if the error is an UnsupportedOperationError.
func IsUnsupportedOperation(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOperationError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedOperation)
}

// AggregateError represents multiple errors collected by a builder.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "fluentsql: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("fluentsql: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As
// inspect each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
