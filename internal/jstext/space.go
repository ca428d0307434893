// Package jstext holds the ECMAScript whitespace rules shared by the title
// and pages packages.
package jstext

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is whitespace in the ECMAScript sense: the Unicode
// White_Space set plus U+FEFF, minus U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace as String.prototype.trim does.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// RemoveSpace drops every whitespace rune from s.
func RemoveSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
