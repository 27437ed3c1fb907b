package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "paracetamol", "paracetamol"},
		{"percent sign", "50%", `50\%`},
		{"underscore", "co_trimoxazole", `co\_trimoxazole`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash before metachar", `\%`, `\\\%`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeLikePattern(tt.input))
		})
	}
}
