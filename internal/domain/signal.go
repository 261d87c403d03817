package domain

import (
	"fmt"

	"productivity-clock/internal/errors"
)

// Signal is the outcome attached to every engine operation.
type Signal int

const (
	SignalOK Signal = iota
	SignalInvalidConfig
	SignalInvalidState
	SignalInvalidArgument
	SignalRejectedEmpty
	// SignalExcessiveExtension is a soft warning; the extension was still granted.
	SignalExcessiveExtension
)

// String returns the string representation of the signal
func (s Signal) String() string {
	switch s {
	case SignalOK:
		return "ok"
	case SignalInvalidConfig:
		return "invalid_config"
	case SignalInvalidState:
		return "invalid_state"
	case SignalInvalidArgument:
		return "invalid_argument"
	case SignalRejectedEmpty:
		return "rejected_empty"
	case SignalExcessiveExtension:
		return "excessive_extension"
	default:
		return "unknown"
	}
}

// Applied reports whether the operation changed (or was allowed to keep) the state.
func (s Signal) Applied() bool {
	return s == SignalOK || s == SignalExcessiveExtension
}

// Err converts the signal into a structured error for the named operation.
func (s Signal) Err(operation string) error {
	switch s {
	case SignalOK:
		return nil
	case SignalInvalidConfig:
		return errors.NewInvalidConfigurationError("minutes", nil, "value is outside the allowed range")
	case SignalInvalidState:
		return errors.NewInvalidStateError(operation, "in the current timer state")
	case SignalInvalidArgument:
		return errors.NewInvalidArgumentError("index", nil, "out of range")
	case SignalRejectedEmpty:
		return errors.NewRejectedEmptyInputError("task text")
	case SignalExcessiveExtension:
		return &errors.AppError{
			Type:    errors.ErrorTypeExcessiveUsage,
			Message: fmt.Sprintf("%s used repeatedly, maybe it's time to take a break?", operation),
			Code:    "EXCESSIVE_USAGE",
		}
	default:
		return errors.WrapError(nil, errors.ErrorTypeInvalidStateTransition, "unknown signal")
	}
}
