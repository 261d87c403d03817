package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator(10)

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid text", "buy milk", false, ""},
		{"Empty text", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Too long", strings.Repeat("a", 11), true, ErrorTypeInvalidLength},
		{"Exactly max", strings.Repeat("a", 10), false, ""},
		{"Punctuation is fine", "@#$%!", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.True(t, validationErr.HasType(tt.errorType))
		})
	}
}

func TestTaskValidator_GetValidText(t *testing.T) {
	validator := NewTaskValidator(100)

	text, err := validator.GetValidText("  buy oat milk  ")
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", text)

	_, err = validator.GetValidText(" ")
	assert.Error(t, err)
}

func TestTaskValidator_UnlimitedLength(t *testing.T) {
	validator := NewTaskValidator(0)
	assert.NoError(t, validator.ValidateText(strings.Repeat("a", 10000)))
}
