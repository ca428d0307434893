package sanitizer

import (
	"fmt"
	"slices"
	"strings"
)

// Mode selects what happens to tags outside a Policy's allowed set.
type Mode uint8

const (
	// ModeEscape renders disallowed tags as visible text.
	ModeEscape Mode = iota
	// ModeStrip drops disallowed tags and keeps their text content.
	ModeStrip
)

func (m Mode) String() string {
	switch m {
	case ModeEscape:
		return "escape"
	case ModeStrip:
		return "strip"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses "escape" or "strip". "discard" is accepted as strip.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "escape":
		return ModeEscape, nil
	case "strip", "discard":
		return ModeStrip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Policy describes which tags survive sanitization.
type Policy struct {
	AllowedTags        []string
	DisallowedTagsMode Mode
}

// DefaultPolicy returns a policy that allows <b> and <i> and escapes
// everything else. Each call returns a new Policy.
func DefaultPolicy() Policy {
	return Policy{
		AllowedTags:        []string{"b", "i"},
		DisallowedTagsMode: ModeEscape,
	}
}

// Clone returns a copy of p that shares no memory with it.
func (p Policy) Clone() Policy {
	p.AllowedTags = slices.Clone(p.AllowedTags)
	return p
}

// Allows reports whether tag is in the allowed set, ignoring case.
func (p Policy) Allows(tag string) bool {
	for _, t := range p.AllowedTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
