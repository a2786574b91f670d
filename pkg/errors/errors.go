// Package errors provides structured error types for babelgallery.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI and the HTTP gallery can decide how to surface it
// without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures (seed, range, display, room, ...)
//   - RENDER_SURFACE: the raster for an image could not be created
//   - RATE_LIMITED: the gallery refused to generate right now
//   - INTERNAL_ERROR: anything unexpected
//
// None of these are retryable for the request that produced them.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSeed, "seed must be non-negative, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidSeed) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderSurface, origErr, "encode png")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Generator errors
	ErrCodeInvalidSeed   Code = "INVALID_SEED"
	ErrCodeInvalidRange  Code = "INVALID_RANGE"
	ErrCodeRenderSurface Code = "RENDER_SURFACE"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidDisplay Code = "INVALID_DISPLAY"
	ErrCodeInvalidRoom    Code = "INVALID_ROOM"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Serving errors
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return code == ErrCodeRateLimited
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.Code()
	}
	return ""
}

// IsValidation reports whether err is an input validation failure, i.e.
// the caller sent something the generator will never accept.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidSeed, ErrCodeInvalidRange, ErrCodeInvalidInput,
		ErrCodeInvalidDisplay, ErrCodeInvalidRoom, ErrCodeInvalidFormat,
		ErrCodeInvalidPath, ErrCodeInvalidConfig:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RateLimitedError provides additional information for rate-limited responses.
type RateLimitedError struct {
	RetryAfter int // Seconds to wait before retrying
	Message    string
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
