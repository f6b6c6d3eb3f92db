// Package errors provides structured error types for the goldpath tools.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across both command-line tools
//   - Machine-readable error codes for programmatic handling
//   - Parse context (line number, scaffold name) on every failure
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MALFORMED_*: field- or line-level validation failures
//   - INVALID_*: values outside an enumerated vocabulary
//   - UNKNOWN_*: references to things that do not exist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeColumnCount, "got %d columns, want at least 9", n)
//	if errors.Is(err, errors.ErrCodeColumnCount) {
//	    // Handle structural line-shape violation
//	}
//
//	// Attach the offending line number
//	return errors.WithLine(err, lineNum)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Row and line validation errors
	ErrCodeMalformedRow        Code = "MALFORMED_ROW"
	ErrCodeColumnCount         Code = "COLUMN_COUNT"
	ErrCodeMalformedCloneField Code = "MALFORMED_CLONE_FIELD"
	ErrCodeInvalidOrientation  Code = "INVALID_ORIENTATION"
	ErrCodeUnknownTag          Code = "UNKNOWN_TAG"

	// Assembly construction errors
	ErrCodeOverlap Code = "OVERLAP"

	// Curated-to-original mapping errors
	ErrCodeUnknownScaffold Code = "UNKNOWN_SCAFFOLD"
	ErrCodeEmptyMapping    Code = "EMPTY_MAPPING"

	// Command boundary errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileExists    Code = "FILE_EXISTS"
)

// Error is a structured error with a code, optional cause, and optional
// parse context identifying where in the input the problem was found.
type Error struct {
	Code     Code   // Machine-readable error code
	Message  string // Human-readable message
	Cause    error  // Underlying error (optional)
	Line     int    // 1-based input line number, 0 if not applicable
	Scaffold string // Scaffold/object name, empty if not applicable
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Scaffold != "" {
		msg = fmt.Sprintf("%s (scaffold %q)", msg, e.Scaffold)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
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

// WithLine attaches a 1-based line number to err. If err is not an *Error
// it is wrapped as a MALFORMED_ROW error so the context is kept. Errors
// that already carry a line number are returned unchanged.
func WithLine(err error, line int) error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Code: ErrCodeMalformedRow, Message: err.Error(), Cause: err, Line: line}
	}
	if e.Line > 0 {
		return err
	}
	clone := *e
	clone.Line = line
	return &clone
}

// WithScaffold attaches a scaffold name to err, wrapping non-structured
// errors the same way WithLine does.
func WithScaffold(err error, scaffold string) error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Code: ErrCodeMalformedRow, Message: err.Error(), Cause: err, Scaffold: scaffold}
	}
	if e.Scaffold != "" {
		return err
	}
	clone := *e
	clone.Scaffold = scaffold
	return &clone
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
