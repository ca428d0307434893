package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookmeta/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple title", input: "The Left Hand of Darkness", expected: "the-left-hand-of-darkness"},
		{name: "punctuation collapses", input: "Catch-22: A Novel!", expected: "catch-22-a-novel"},
		{name: "surrounding junk", input: "  --Dune--  ", expected: "dune"},
		{name: "diacritics", input: "Crème Brûlée", expected: "creme-brulee"},
		{name: "decomposed diacritics", input: "Cafe\u0301", expected: "cafe"},
		{name: "ligatures", input: "Æon Œuvre Straße", expected: "aeon-oeuvre-strasse"},
		{name: "compatibility forms", input: "ﬁsh ２０４８", expected: "fish-2048"},
		{name: "stroked letters", input: "Łódź Søren", expected: "lodz-soren"},
		{name: "quotes", input: `"Ender's Game"`, expected: "ender-s-game"},
		{name: "ideographs are separators", input: "Book 三体 Two", expected: "book-two"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "@@@", expected: ""},
		{name: "keep case", input: "Dune Messiah", opts: []slug.Option{slug.Lowercase(false)}, expected: "Dune-Messiah"},
		{name: "custom separator", input: "Dune Messiah", opts: []slug.Option{slug.Separator("_")}, expected: "dune_messiah"},
		{name: "max length cuts at word boundary", input: "Catch-22", opts: []slug.Option{slug.MaxLength(6)}, expected: "catch"},
		{name: "max length mid word", input: "Neuromancer", opts: []slug.Option{slug.MaxLength(5)}, expected: "neuro"},
		{name: "max length includes separator", input: "ab cd", opts: []slug.Option{slug.MaxLength(4)}, expected: "ab-c"},
		{name: "long separator", input: "a b", opts: []slug.Option{slug.Separator("--"), slug.MaxLength(3)}, expected: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}
