package validation

// NotificationValidator checks push notification settings
type NotificationValidator struct {
	validator *Validator
}

// NewNotificationValidator creates a new notification validator
func NewNotificationValidator() *NotificationValidator {
	return &NotificationValidator{validator: NewValidator()}
}

// ValidateSettings validates an ntfy server URL and topic
func (nv *NotificationValidator) ValidateSettings(server, topic string) error {
	validationError := NewValidationError()

	if !nv.validator.IsValidServerURL(server) {
		validationError.AddInvalidFormatError("server", server, "absolute http(s) URL")
	}

	if topic == "" {
		validationError.AddRequiredError("topic")
	} else if !nv.validator.IsValidTopic(topic) {
		validationError.AddInvalidFormatError("topic", topic, "letters, numbers, underscores, and hyphens")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
