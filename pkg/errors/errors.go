// Package errors provides structured error types for the tianzige application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into three groups mirroring where a failure can
// occur in the generation pipeline:
//   - INVALID_*: input validation failures (color, page size, margins, sizes)
//   - SIZE_CONFLICT, GRID_TOO_SMALL: layout computation failures
//   - IO_ERROR, INTERNAL_ERROR: everything past the geometry stage
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColor, "invalid hex color format: %q", color)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "writing %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidPageSize Code = "INVALID_PAGE_SIZE"
	ErrCodeInvalidMargin   Code = "INVALID_MARGIN"
	ErrCodeInvalidSize     Code = "INVALID_SIZE"
	ErrCodeInvalidOption   Code = "INVALID_OPTION"

	// Layout errors
	ErrCodeSizeConflict Code = "SIZE_CONFLICT"
	ErrCodeGridTooSmall Code = "GRID_TOO_SMALL"

	// Output errors
	ErrCodeIO       Code = "IO_ERROR"
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
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
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

// IsSizing reports whether err is a layout failure: an explicit square
// size that conflicts with minimum box counts, a grid with zero
// complete squares, or an invalid size request. The batch template
// loop skips these and aborts on everything else.
func IsSizing(err error) bool {
	switch GetCode(err) {
	case ErrCodeSizeConflict, ErrCodeGridTooSmall, ErrCodeInvalidSize:
		return true
	}
	return false
}
