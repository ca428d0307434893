package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookmeta/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies transforms in order",
			input: "  <b>Bold</b>\n\ntext  ",
			transforms: []func(string) string{
				sanitizer.SingleLine,
				sanitizer.CleanForHTML,
			},
			expected: "<b>Bold</b> text",
		},
		{
			name:  "order matters",
			input: "<u>x</u>",
			transforms: []func(string) string{
				sanitizer.CleanForHTML,
				strings.ToUpper,
			},
			expected: "&LT;U&GT;X&LT;/U&GT;",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:       "handles empty input",
			input:      "",
			transforms: []func(string) string{sanitizer.Trim, sanitizer.CleanForHTML},
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApply_Generic(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 7, sanitizer.Apply(3, double, inc))
	assert.Equal(t, 8, sanitizer.Apply(3, inc, double))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.RemoveControlChars,
		sanitizer.SingleLine,
		sanitizer.CleanForHTML,
	)

	assert.Equal(t, `A \x22good\x22 <i>book</i>`, clean("A \"good\"\x00\n<i>book</i>"))
	assert.Equal(t, "", clean(""))

	identity := sanitizer.Compose[string]()
	assert.Equal(t, "same", identity("same"))
}
