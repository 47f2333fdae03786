package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested template, item or container was not found
	CodeNotFound Code = "not_found"

	// CodeCapacityExceeded indicates a container has no room for the operation
	CodeCapacityExceeded Code = "capacity_exceeded"

	// CodeInsufficientFunds indicates a gold balance cannot cover the operation
	CodeInsufficientFunds Code = "insufficient_funds"

	// CodeRequirementNotMet indicates a level or similar requirement was not satisfied
	CodeRequirementNotMet Code = "requirement_not_met"

	// CodeInvariantViolation indicates an operation would break a domain invariant
	// (enhancement at cap, quantity underflow)
	CodeInvariantViolation Code = "invariant_violation"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Error represents an engine error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code when the
// cause is already an engine error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var engErr *Error
	if errors.As(err, &engErr) {
		return &Error{
			Code:    engErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// CapacityExceeded creates a capacity exceeded error
func CapacityExceeded(message string) *Error {
	return New(CodeCapacityExceeded, message)
}

// CapacityExceededf creates a formatted capacity exceeded error
func CapacityExceededf(format string, args ...any) *Error {
	return Newf(CodeCapacityExceeded, format, args...)
}

// InsufficientFunds creates an insufficient funds error
func InsufficientFunds(message string) *Error {
	return New(CodeInsufficientFunds, message)
}

// RequirementNotMet creates a requirement not met error
func RequirementNotMet(message string) *Error {
	return New(CodeRequirementNotMet, message)
}

// RequirementNotMetf creates a formatted requirement not met error
func RequirementNotMetf(format string, args ...any) *Error {
	return Newf(CodeRequirementNotMet, format, args...)
}

// InvariantViolation creates an invariant violation error
func InvariantViolation(message string) *Error {
	return New(CodeInvariantViolation, message)
}

// InvariantViolationf creates a formatted invariant violation error
func InvariantViolationf(format string, args ...any) *Error {
	return Newf(CodeInvariantViolation, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsCapacityExceeded checks if the error is a capacity exceeded error
func IsCapacityExceeded(err error) bool {
	return Is(err, CodeCapacityExceeded)
}

// IsInsufficientFunds checks if the error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return Is(err, CodeInsufficientFunds)
}

// IsRequirementNotMet checks if the error is a requirement not met error
func IsRequirementNotMet(err error) bool {
	return Is(err, CodeRequirementNotMet)
}

// IsInvariantViolation checks if the error is an invariant violation error
func IsInvariantViolation(err error) bool {
	return Is(err, CodeInvariantViolation)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code
	}
	return CodeUnknown
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
