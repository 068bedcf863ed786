// Package apierr provides structured errors for the assistant engine and its
// HTTP adapter. User-typed oddities are absorbed by defaulting in the engine;
// errors here mark caller contract violations and collaborator failures.
package apierr

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a specific error class.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates the caller violated an input contract,
	// such as an out-of-enum period type.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeClassifierFailed indicates a pluggable classifier failed.
	ErrCodeClassifierFailed ErrorCode = "CLASSIFIER_FAILED"
	// ErrCodeLLMUnavailable indicates the LLM collaborator is not reachable.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// EngineError is a structured error carrying an error class.
type EngineError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *EngineError {
	return &EngineError{Code: ErrCodeInvalidArgument, Message: msg}
}

// ClassifierFailed creates a classifier failure error.
func ClassifierFailed(msg string, cause error) *EngineError {
	return &EngineError{Code: ErrCodeClassifierFailed, Message: msg, Cause: cause}
}

// LLMUnavailable creates an LLM unavailable error.
func LLMUnavailable(msg string) *EngineError {
	return &EngineError{Code: ErrCodeLLMUnavailable, Message: msg}
}

// Timeout creates a timeout error.
func Timeout(msg string) *EngineError {
	return &EngineError{Code: ErrCodeTimeout, Message: msg}
}

// Wrap wraps an existing error with a code and message.
func Wrap(cause error, code ErrorCode, msg string) *EngineError {
	return &EngineError{Code: code, Message: msg, Cause: cause}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Code == code
	}
	return false
}

// CodeOf extracts the error code from any error, falling back to the given
// default for unstructured errors.
func CodeOf(err error, defaultCode ErrorCode) ErrorCode {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return defaultCode
}
