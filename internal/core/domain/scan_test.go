package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeParcelNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "digits only", input: "1234567890", want: "1234567890"},
		{name: "mixed separators", input: "AB12-34", want: "1234"},
		{name: "whitespace and letters", input: " 59 000 123 abc ", want: "59000123"},
		{name: "empty", input: "", want: ""},
		{name: "no digits", input: "no-digits-here", want: ""},
		{name: "unicode letters", input: "№123/456", want: "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeParcelNumber(tt.input))
		})
	}
}
