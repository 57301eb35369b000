package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeDivisionByZero  ErrorCode = "DIVISION_BY_ZERO"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal        ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Argument and arithmetic failures. Messages are fixed per call site and never
// carry the offending value.
var (
	ErrNotNumbers        = NewError(ErrCodeInvalidArgument, "both parameters must be numbers")
	ErrNotNumber         = NewError(ErrCodeInvalidArgument, "parameter must be a number")
	ErrNotString         = NewError(ErrCodeInvalidArgument, "parameter must be a string")
	ErrNotArray          = NewError(ErrCodeInvalidArgument, "parameter must be an array")
	ErrEmptyArray        = NewError(ErrCodeInvalidArgument, "array must not be empty")
	ErrNonNumericElement = NewError(ErrCodeInvalidArgument, "all array elements must be numbers")
	ErrInvalidAge        = NewError(ErrCodeInvalidArgument, "age must be a positive number")
	ErrUnknownOperator   = NewError(ErrCodeInvalidArgument, "unknown arithmetic operator")
	ErrInvalidPayload    = NewError(ErrCodeInvalidArgument, "invalid payload")
	ErrDivisionByZero    = NewError(ErrCodeDivisionByZero, "division by zero is not allowed")
)

// Service-level errors.
var (
	ErrUnknownOperation = NewError(ErrCodeNotFound, "operation not registered")
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
