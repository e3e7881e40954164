package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Catalog errors
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// Materialization errors
	ErrPathEscape ErrorCode = "PATH_ESCAPE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// ScaffgenError represents a structured error with code and details
type ScaffgenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScaffgenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScaffgenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScaffgenError) Is(target error) bool {
	var targetErr *ScaffgenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScaffgenError with the given code and message
func New(code ErrorCode, message string) *ScaffgenError {
	return &ScaffgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScaffgenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScaffgenError {
	return &ScaffgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScaffgenError
func Wrap(err error, code ErrorCode, message string) *ScaffgenError {
	if err == nil {
		return nil
	}
	return &ScaffgenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScaffgenError {
	if err == nil {
		return nil
	}
	return &ScaffgenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScaffgenError) WithDetail(key string, value interface{}) *ScaffgenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not ScaffgenErrors
func GetCode(err error) ErrorCode {
	var scaffErr *ScaffgenError
	if errors.As(err, &scaffErr) {
		return scaffErr.Code
	}
	return ErrUnknown
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code ErrorCode) bool {
	var scaffErr *ScaffgenError
	if errors.As(err, &scaffErr) {
		return scaffErr.Code == code
	}
	return false
}
