// Package errors provides structured error types for depscan.
//
// This package defines error codes and types that enable:
//   - A fixed taxonomy for scan failures (manifest, registry, version)
//   - Machine-readable error codes in JSON/YAML reports
//   - User-friendly messages on the console
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes that matter during a scan are:
//   - MANIFEST_PARSE: a manifest exists but cannot be read; fatal for that
//     ecosystem only
//   - REGISTRY_UNAVAILABLE: network failure, unexpected status or malformed
//     registry response; the package is skipped
//   - PACKAGE_NOT_FOUND: the registry does not know the package; the package
//     is skipped
//   - INVALID_VERSION: a declared or published version is not semver; the
//     package is skipped
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidVersion, "not a semantic version: %q", v)
//	if errors.Is(err, errors.ErrCodeInvalidVersion) {
//	    // skip the package
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRegistryUnavailable, origErr, "fetch %s", name)
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
	ErrCodeInvalidVersion Code = "INVALID_VERSION"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Manifest errors
	ErrCodeManifestParse Code = "MANIFEST_PARSE"

	// Registry errors
	ErrCodePackageNotFound     Code = "PACKAGE_NOT_FOUND"
	ErrCodeRegistryUnavailable Code = "REGISTRY_UNAVAILABLE"

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
// It unwraps the error chain looking for an *Error with a matching code,
// so an outer error with a different code does not hide an inner match.
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
