package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewInvalidConfigurationError(t *testing.T) {
	err := NewInvalidConfigurationError("minutes", 0, "must be between 1 and 9999")

	if err.Type != ErrorTypeInvalidConfiguration {
		t.Errorf("type = %v, want %v", err.Type, ErrorTypeInvalidConfiguration)
	}
	if err.Message != "invalid minutes: must be between 1 and 9999" {
		t.Errorf("message = %v", err.Message)
	}
	if err.Code != "INVALID_CONFIGURATION" {
		t.Errorf("code = %v", err.Code)
	}
	if value, ok := err.GetContext("value"); !ok || value != 0 {
		t.Errorf("value context = %v, %v", value, ok)
	}
}

func TestNewInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("start", "time is up")

	if err.Type != ErrorTypeInvalidStateTransition {
		t.Errorf("type = %v", err.Type)
	}
	if err.Message != "cannot start while time is up" {
		t.Errorf("message = %v", err.Message)
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("index", 7, "out of range")

	if err.Type != ErrorTypeInvalidStateTransition {
		t.Errorf("type = %v", err.Type)
	}
	if err.Code != "INVALID_ARGUMENT" {
		t.Errorf("code = %v", err.Code)
	}
}

func TestNewExcessiveUsageWarning(t *testing.T) {
	err := NewExcessiveUsageWarning("extend", 4)

	if err.Type != ErrorTypeExcessiveUsage {
		t.Errorf("type = %v", err.Type)
	}
	if count, ok := err.GetContext("count"); !ok || count != 4 {
		t.Errorf("count context = %v, %v", count, ok)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("snapshot", "timer")

	if err.Message != "snapshot not found: timer" {
		t.Errorf("message = %v", err.Message)
	}
	resource, ok := err.GetContext("resource")
	if !ok || resource != "snapshot" {
		t.Errorf("NewNotFoundError should set resource context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("locked")
	err := NewStorageError("save timer", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("type = %v", err.Type)
	}
	if err.Message != "storage operation failed: save timer" {
		t.Errorf("message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("cause = %v", err.Cause)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, ErrorTypeNotification, "push failed")

	if err.Code != "notification" {
		t.Errorf("code = %v", err.Code)
	}
	if err.Cause != cause {
		t.Errorf("cause = %v", err.Cause)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("task", "1"))

	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Type != ErrorTypeNotFound {
		t.Errorf("AsAppError(wrapped) = %v, %v", appErr, ok)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError should see through wrapping")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError should be false for plain errors")
	}
	if !IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Error("IsErrorType should match wrapped type")
	}
	if !IsWarning(NewExcessiveUsageWarning("extend", 4)) {
		t.Error("IsWarning should match excessive usage")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"empty input", NewRejectedEmptyInputError("task text"), "task text cannot be empty"},
		{"storage", NewStorageError("save", errors.New("x")), "A storage error occurred. Please try again."},
		{"notification", NewNotificationError("ntfy", nil), "The notification could not be delivered. Please check your notification settings."},
		{"timeout", NewTimeoutError("notify", "10s"), "The operation timed out. Please try again."},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewRejectedEmptyInputError("text")); code != "EMPTY_INPUT" {
		t.Errorf("code = %v", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("code = %v", code)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid config", NewInvalidConfigurationError("minutes", 0, "x"), false},
		{"invalid state", NewInvalidStateError("start", "done"), false},
		{"warning", NewExcessiveUsageWarning("extend", 4), false},
		{"not found", NewNotFoundError("task", "1"), false},
		{"storage", NewStorageError("save", nil), true},
		{"notification", NewNotificationError("ntfy", nil), true},
		{"plain", errors.New("plain"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
