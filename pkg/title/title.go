package title

import (
	"regexp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/bookmeta/internal/jstext"
)

var defaultBlocklist = []string{"Boaty McBoatface"}

// DefaultBlocklist returns the titles that are never accepted, in any letter
// case. Each call returns a new slice.
func DefaultBlocklist() []string {
	return slices.Clone(defaultBlocklist)
}

// allowedContent is the set of patterns a title must match at least one of.
var allowedContent = []*regexp.Regexp{
	regexp.MustCompile(`\d+`),
	regexp.MustCompile(`^[\p{L}\w]+$`),
	regexp.MustCompile(`-+`),
	regexp.MustCompile(`'`),
	regexp.MustCompile(`"+`),
	regexp.MustCompile(` `),
	regexp.MustCompile(`[\x{00F1}-\x{036F}]+`),
}

var defaultValidator = NewValidator(defaultBlocklist...)

// DefaultValidator returns the validator used by IsTitle.
func DefaultValidator() Validator {
	return NewValidator(defaultBlocklist...)
}

// Validator checks title candidates against a blocklist and the
// allowed-content patterns. The zero value has an empty blocklist.
type Validator struct {
	blocked []string
}

// NewValidator returns a Validator rejecting every title in blocklist,
// ignoring letter case.
func NewValidator(blocklist ...string) Validator {
	blocked := make([]string, 0, len(blocklist))
	for _, b := range blocklist {
		blocked = append(blocked, lower(b))
	}
	return Validator{blocked: blocked}
}

// Valid reports whether s is an acceptable title.
func (v Validator) Valid(s string) bool {
	return jstext.Trim(s) == s && !v.Blocked(s) && hasAllowedContent(s)
}

// Blocked reports whether s equals a blocklist entry, ignoring letter case.
func (v Validator) Blocked(s string) bool {
	ls := lower(s)
	for _, b := range v.blocked {
		if b == ls {
			return true
		}
	}
	return false
}

// IsTitle reports whether v is text and an acceptable title according to
// DefaultValidator(). Accepted text types are string and non-nil *string.
func IsTitle(v any) bool {
	s, ok := text(v)
	if !ok {
		return false
	}
	return defaultValidator.Valid(s)
}

func hasAllowedContent(s string) bool {
	for _, re := range allowedContent {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// lower uses a fresh caser per call; cases.Caser is not safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	default:
		return "", false
	}
}
