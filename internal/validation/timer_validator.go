package validation

import "fmt"

// TimerValidator checks countdown lengths against configured bounds
type TimerValidator struct {
	validator  *Validator
	minMinutes float64
	maxMinutes float64
}

// NewTimerValidator creates a timer validator accepting [minMinutes, maxMinutes]
func NewTimerValidator(minMinutes, maxMinutes float64) *TimerValidator {
	return &TimerValidator{
		validator:  NewValidator(),
		minMinutes: minMinutes,
		maxMinutes: maxMinutes,
	}
}

// ValidateMinutes validates a countdown length in minutes
func (tv *TimerValidator) ValidateMinutes(minutes float64) error {
	if !tv.validator.IsWithinRange(minutes, tv.minMinutes, tv.maxMinutes) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("minutes", minutes,
			fmt.Sprintf("must be between %g and %g", tv.minMinutes, tv.maxMinutes))
		return validationError
	}
	return nil
}
