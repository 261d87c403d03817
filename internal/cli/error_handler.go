package cli

import (
	"fmt"
	"io"

	"productivity-clock/internal/errors"
	"productivity-clock/internal/logging"
	"productivity-clock/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	out io.Writer
}

// NewErrorHandler creates a new error handler that prints warnings to out
func NewErrorHandler(out io.Writer) *ErrorHandler {
	if out == nil {
		out = io.Discard
	}
	return &ErrorHandler{out: out}
}

// Handle provides user-friendly error messages for validation and other errors.
// Warnings are printed and swallowed because the operation they describe succeeded.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsWarning(err) {
		fmt.Fprintf(eh.out, "Warning: %s\n", errors.GetUserMessage(err))
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s: %v\n", operation, err)
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsUserError reports whether err was caused by input rather than by the environment
func (eh *ErrorHandler) IsUserError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsAppError(err) && !errors.ShouldLogError(err)
}

// IsStorageError checks if an error came from the snapshot store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
