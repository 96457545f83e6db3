// Package dErrors provides coded domain errors shared by services and handlers.
//
// Stores return sentinel errors (pkg/platform/sentinel) for infrastructure
// facts; services translate those into coded errors from this package, and the
// HTTP layer maps codes to status codes via httputil.WriteError. Validation
// errors may carry the offending field path so clients can highlight the
// input that failed.
package dErrors

import "errors"

// Code classifies a domain error for transport mapping.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation"
	CodeNotFound     Code = "not_found"
	CodeForbidden    Code = "forbidden"
	CodeUnauthorized Code = "unauthorized"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	Field   string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewField constructs a validation-style error carrying the field path.
func NewField(code Code, message, field string) *Error {
	return &Error{Code: code, Message: message, Field: field}
}

// Wrap attaches a cause to a coded error so the original failure is preserved
// for logging while the message stays safe for clients.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for unknown
// errors so unexpected failures never leak details.
func CodeOf(err error) Code {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return CodeInternal
}

// FieldOf extracts the field path from err, if any.
func FieldOf(err error) string {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Field
	}
	return ""
}
