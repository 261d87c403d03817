package validation

// TaskValidator provides validation for task text
type TaskValidator struct {
	validator *Validator
	maxLength int
}

// NewTaskValidator creates a new task validator with the given maximum text length
func NewTaskValidator(maxLength int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
		maxLength: maxLength,
	}
}

// ValidateText validates task text for creation or edit
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(text)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("task_text")
		return validationError
	}

	if tv.maxLength > 0 && !tv.validator.IsWithinMaxLength(trimmed, tv.maxLength) {
		validationError.AddInvalidLengthError("task_text", trimmed, tv.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidText returns the cleaned task text if valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(text), nil
}
