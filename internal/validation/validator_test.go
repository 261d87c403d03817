package validation

import (
	"math"
	"testing"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "buy milk", true},
		{"String with leading/trailing spaces", "  buy milk  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinMaxLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Short", "abc", 5, true},
		{"Exactly max", "abcde", 5, true},
		{"Too long", "abcdef", 5, false},
		{"Trims before counting", "  abcde  ", 5, true},
		{"Counts runes not bytes", "ééééé", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsWithinMaxLength(tt.input, tt.max); got != tt.expected {
				t.Errorf("IsWithinMaxLength(%q, %d) = %v, expected %v", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinRange(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"Lower bound", 1, true},
		{"Upper bound", 9999, true},
		{"Inside", 25, true},
		{"Below", 0.5, false},
		{"Above", 10000, false},
		{"NaN", math.NaN(), false},
		{"Infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsWithinRange(tt.value, 1, 9999); got != tt.expected {
				t.Errorf("IsWithinRange(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidTopic(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"my-topic_1", true},
		{"MyTopic", true},
		{"", false},
		{"has space", false},
		{"slash/topic", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := validator.IsValidTopic(tt.input); got != tt.expected {
				t.Errorf("IsValidTopic(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidServerURL(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://ntfy.sh", true},
		{"http://localhost:8080", true},
		{"ntfy.sh", false},
		{"ftp://ntfy.sh", false},
		{"https://", false},
		{"://bad", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := validator.IsValidServerURL(tt.input); got != tt.expected {
				t.Errorf("IsValidServerURL(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
