package title

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/bookmeta/internal/jstext"
)

// Equivalence identifies a normalization under which two titles are compared.
type Equivalence uint8

const (
	// None means no strategy made the titles equal.
	None Equivalence = iota
	// DiacriticInsensitive trims, decomposes canonically and drops combining
	// diacritical marks (U+0300..U+036F).
	DiacriticInsensitive
	// LigatureExpanded decomposes for compatibility and spells "æ" as "ae".
	LigatureExpanded
	// BidiStripped decomposes for compatibility and drops U+202E.
	BidiStripped
)

const rightToLeftOverride = '\u202e'

var strategies = [...]Equivalence{DiacriticInsensitive, LigatureExpanded, BidiStripped}

// Strategies returns the equivalences tried by SameTitle, in order. Each
// call returns a new slice.
func Strategies() []Equivalence {
	return slices.Clone(strategies[:])
}

var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

func (e Equivalence) String() string {
	switch e {
	case DiacriticInsensitive:
		return "diacritic_insensitive"
	case LigatureExpanded:
		return "ligature_expanded"
	case BidiStripped:
		return "bidi_stripped"
	default:
		return "none"
	}
}

// Normalize returns s in the form compared by e. None returns s unchanged.
func (e Equivalence) Normalize(s string) string {
	switch e {
	case DiacriticInsensitive:
		return transformString(jstext.Trim(s), norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	case LigatureExpanded:
		return strings.ReplaceAll(norm.NFKD.String(s), "\u00e6", "ae")
	case BidiStripped:
		return transformString(s, norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
			return r == rightToLeftOverride
		})))
	default:
		return s
	}
}

// Equal reports whether a and b normalize to the same string under e.
func (e Equivalence) Equal(a, b string) bool {
	return e.Normalize(a) == e.Normalize(b)
}

// SameTitle reports whether a and b denote the same title and which strategy
// matched first. Every strategy is applied to the original inputs.
func SameTitle(a, b string) (Equivalence, bool) {
	for _, e := range strategies {
		if e.Equal(a, b) {
			return e, true
		}
	}
	return None, false
}

// IsSameTitle reports whether a and b are both text and denote the same title.
func IsSameTitle(a, b any) bool {
	sa, ok := text(a)
	if !ok {
		return false
	}
	sb, ok := text(b)
	if !ok {
		return false
	}
	_, same := SameTitle(sa, sb)
	return same
}

// transformString runs s through a freshly built chain; chains carry state
// and are not shared between calls.
func transformString(s string, ts ...transform.Transformer) string {
	out, _, err := transform.String(transform.Chain(ts...), s)
	if err != nil {
		return s
	}
	return out
}
