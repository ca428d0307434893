package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookmeta/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", sanitizer.Trim("  hello \n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestRemoveExtraWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses spaces", input: "a   b", expected: "a b"},
		{name: "collapses mixed whitespace", input: "a \t\n b", expected: "a b"},
		{name: "trims", input: "  a b  ", expected: "a b"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.RemoveExtraWhitespace(tt.input))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x07c"))
	assert.Equal(t, "a\nb\tc\r", sanitizer.RemoveControlChars("a\nb\tc\r"))
	assert.Equal(t, "ab", sanitizer.RemoveControlChars("a\x1b\x7fb"))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first second third", sanitizer.SingleLine("first\nsecond\r\nthird"))
	assert.Equal(t, "one line", sanitizer.SingleLine("one line"))
}
