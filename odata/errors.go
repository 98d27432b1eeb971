package odata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a selected property or navigation
	// is not part of the configured schema.
	ErrUnknownField = errors.New("odata: unknown field")

	// ErrInvalidConfig is returned by options and config loading.
	ErrInvalidConfig = errors.New("odata: invalid config")
)

// UnknownFieldError reports a selected path missing from the schema.
type UnknownFieldError struct {
	Path string // Slash separated, e.g. "Contact/Nickname"
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("odata: unknown field %q", e.Path)
}

// Is reports whether the target matches ErrUnknownField.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e)
}

// ParseError reports a malformed query option.
type ParseError struct {
	Option string // e.g. "$top"
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("odata: invalid %s %q: %v", e.Option, e.Value, e.Err)
	}
	return fmt.Sprintf("odata: invalid %s %q", e.Option, e.Value)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e)
}

// ConfigError reports an invalid mapper option or config value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("odata: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("odata: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}
