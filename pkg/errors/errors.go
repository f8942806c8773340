// Package errors provides structured error types for sitetree.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI (and tests) can tell a malformed METADATA file apart from
// a missing interpreter without matching on message text.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MISSING_* / INVALID_*: metadata and input validation failures
//   - *_NOT_FOUND: environment discovery failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingName, "no Name declaration found")
//	if errors.Is(err, errors.ErrCodeMissingName) {
//	    // Handle incomplete record
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "read %s", dir)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Node-level metadata errors
	ErrCodeMissingName                 Code = "MISSING_NAME"
	ErrCodeMissingVersion              Code = "MISSING_VERSION"
	ErrCodeInvalidDependencyConstraint Code = "INVALID_DEPENDENCY_CONSTRAINT"

	// Input validation errors
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Environment discovery errors
	ErrCodeInterpreterNotFound  Code = "INTERPRETER_NOT_FOUND"
	ErrCodeSitePackagesNotFound Code = "SITE_PACKAGES_NOT_FOUND"

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

// Is reports whether any *Error in err's chain carries the given code.
// Unlike a single errors.As lookup, an outer error with a different code
// does not hide an inner match: a graph-assembly error wrapping a
// MISSING_VERSION node error satisfies both codes.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause's own user message when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
