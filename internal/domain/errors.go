package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
)

type DomainError struct {
	Code    string
	Message string
	// Fields carries per-field messages for VALIDATION_FAILED.
	Fields map[string][]string
}

func (e *DomainError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// Is matches by code so wrapped and contextual errors compare equal to the sentinels.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrUnauthenticated - no identity or an invalid one
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "authentication credentials were not provided or are invalid",
	}

	// ErrForbidden - identity is known but the action is denied
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "you do not have permission to perform this action",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - malformed input
	ErrValidation = &DomainError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Code:    CodeForbidden,
		Message: message,
	}
}

// ValidationErrors collects field problems; Err returns nil when nothing was added.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &DomainError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Fields:  v,
	}
}

// NewValidationError creates a VALIDATION_FAILED error for a single field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Fields:  map[string][]string{field: {message}},
	}
}

// NonFieldErrors is the field key for problems not tied to a single input.
const NonFieldErrors = "non_field_errors"
