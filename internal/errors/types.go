package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeInvalidConfiguration ErrorType = iota
	ErrorTypeInvalidStateTransition
	ErrorTypeRejectedEmptyInput
	ErrorTypeExcessiveUsage
	ErrorTypeNotFound
	ErrorTypeStorage
	ErrorTypeNotification
	ErrorTypeTimeout
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeInvalidConfiguration:
		return "invalid_configuration"
	case ErrorTypeInvalidStateTransition:
		return "invalid_state_transition"
	case ErrorTypeRejectedEmptyInput:
		return "rejected_empty_input"
	case ErrorTypeExcessiveUsage:
		return "excessive_usage"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeStorage:
		return "storage"
	case ErrorTypeNotification:
		return "notification"
	case ErrorTypeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// AppError is the structured error shared by the engines, the stores and the host.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code so sentinel-style comparisons work with errors.Is.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// IsWarning reports whether the error is informational and the operation still took effect.
func (e *AppError) IsWarning() bool {
	return e.Type == ErrorTypeExcessiveUsage
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
