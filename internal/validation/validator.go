package validation

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks the trimmed character count against max
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsWithinRange checks that value is a real number within [min, max]
func (v *Validator) IsWithinRange(value, min, max float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= min && value <= max
}

// IsValidTopic checks an ntfy topic name
func (v *Validator) IsValidTopic(topic string) bool {
	return topicPattern.MatchString(topic)
}

// IsValidServerURL checks for an absolute http or https URL with a host
func (v *Validator) IsValidServerURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
