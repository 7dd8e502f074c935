package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeValidation        ErrorCode = "VALIDATION"
	ErrCodeInvalidAssignment ErrorCode = "INVALID_ASSIGNMENT"
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

// FieldError names a single failed input constraint.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  []FieldError
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

// NewTaskNotFound reports a missing task by id.
func NewTaskNotFound(id string) *Error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("task not found with id: %s", id))
}

// NewProjectNotFound reports a missing project by id.
func NewProjectNotFound(id string) *Error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("project not found with id: %s", id))
}

// NewValidationError aggregates failed field constraints into one error.
func NewValidationError(fields ...FieldError) *Error {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return &Error{
		Code:    ErrCodeValidation,
		Message: strings.Join(parts, ", "),
		Fields:  fields,
	}
}

// Common domain errors.
var (
	ErrTaskNotAssigned = NewError(ErrCodeInvalidAssignment, "task is not assigned to this project")
	ErrProjectHasTasks = NewError(ErrCodeConflict, "project still has assigned tasks")
	ErrInvalidPayload  = NewError(ErrCodeValidation, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
