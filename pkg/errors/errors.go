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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Spec resolution errors
	ErrSpecEntryInvalid ErrorCode = "SPEC_ENTRY_INVALID"
	ErrAmbiguousRename  ErrorCode = "AMBIGUOUS_RENAME"

	// Install errors
	ErrCopyFailed ErrorCode = "COPY_FAILED"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// BootstageError represents a structured error with code and details
type BootstageError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootstageError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootstageError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootstageError) Is(target error) bool {
	var targetErr *BootstageError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootstageError with the given code and message
func New(code ErrorCode, message string) *BootstageError {
	return &BootstageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootstageError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootstageError {
	return &BootstageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootstageError
func Wrap(err error, code ErrorCode, message string) *BootstageError {
	if err == nil {
		return nil
	}
	return &BootstageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootstageError {
	if err == nil {
		return nil
	}
	return &BootstageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootstageError) WithDetail(key string, value interface{}) *BootstageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bsErr *BootstageError
	if errors.As(err, &bsErr) {
		return bsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BootstageError
func GetErrorCode(err error) ErrorCode {
	var bsErr *BootstageError
	if errors.As(err, &bsErr) {
		return bsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BootstageError
func GetErrorDetails(err error) map[string]interface{} {
	var bsErr *BootstageError
	if errors.As(err, &bsErr) {
		return bsErr.Details
	}
	return nil
}
