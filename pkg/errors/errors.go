// Package errors provides structured error types for rdtree.
//
// Every failure that reaches the user carries a [Code] so callers can tell an
// unusable input apart from a registry failure without matching on strings:
//   - INVALID_*: the argument or manifest could not be used
//   - REGISTRY_ERROR, PACKAGE_NOT_FOUND: the registry request failed
//   - PARSE_ERROR: a JSON document was malformed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "manifest %s has no name", path)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle input error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRegistry, origErr, "fetch %s", name)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"

	// Registry errors
	ErrCodeRegistry        Code = "REGISTRY_ERROR"
	ErrCodePackageNotFound Code = "PACKAGE_NOT_FOUND"

	// Decoding errors
	ErrCodeParse Code = "PARSE_ERROR"
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

// Is reports whether any *Error in err's chain carries code.
// A registry failure caused by malformed JSON therefore matches both
// ErrCodeRegistry and ErrCodeParse.
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
// For *Error values the code prefixes are dropped along the whole cause chain,
// so "REGISTRY_ERROR: request x: PARSE_ERROR: bad body" reads
// "request x: bad body". Other errors return their string as-is.
func UserMessage(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
