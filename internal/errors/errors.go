package errors

import (
	"errors"
	"fmt"
)

// NewInvalidConfigurationError creates an error for a rejected configuration value
func NewInvalidConfigurationError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidConfiguration,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Code:    "INVALID_CONFIGURATION",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewInvalidStateError creates an error for an operation that is not allowed in the current state
func NewInvalidStateError(operation string, state string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidStateTransition,
		Message: fmt.Sprintf("cannot %s while %s", operation, state),
		Code:    "INVALID_STATE",
		Context: map[string]interface{}{
			"operation": operation,
			"state":     state,
		},
	}
}

// NewInvalidArgumentError creates an error for an argument outside the accepted range
func NewInvalidArgumentError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidStateTransition,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Code:    "INVALID_ARGUMENT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewRejectedEmptyInputError creates an error for blank user input
func NewRejectedEmptyInputError(field string) *AppError {
	return &AppError{
		Type:    ErrorTypeRejectedEmptyInput,
		Message: fmt.Sprintf("%s cannot be empty", field),
		Code:    "EMPTY_INPUT",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewExcessiveUsageWarning creates a soft warning; the operation it describes still happened
func NewExcessiveUsageWarning(action string, count int) *AppError {
	return &AppError{
		Type:    ErrorTypeExcessiveUsage,
		Message: fmt.Sprintf("%s used %d times, maybe it's time to take a break?", action, count),
		Code:    "EXCESSIVE_USAGE",
		Context: map[string]interface{}{
			"action": action,
			"count":  count,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewStorageError creates a new storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewNotificationError creates an error for a failed notification delivery
func NewNotificationError(target string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeNotification,
		Message: fmt.Sprintf("notification delivery failed: %s", target),
		Code:    "NOTIFICATION_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"target": target,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsWarning reports whether err only carries a soft warning
func IsWarning(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsWarning()
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidConfiguration,
			ErrorTypeInvalidStateTransition,
			ErrorTypeRejectedEmptyInput,
			ErrorTypeExcessiveUsage,
			ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		case ErrorTypeNotification:
			return "The notification could not be delivered. Please check your notification settings."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidConfiguration, ErrorTypeInvalidStateTransition,
			ErrorTypeRejectedEmptyInput, ErrorTypeExcessiveUsage, ErrorTypeNotFound:
			return false // user errors and warnings
		case ErrorTypeStorage, ErrorTypeNotification, ErrorTypeTimeout:
			return true
		default:
			return true
		}
	}
	return true
}
