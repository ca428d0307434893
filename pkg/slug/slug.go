package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

// MaxLength caps the slug at n characters. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
)

// fold decomposes s and drops combining marks.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return ligatures.Replace(out)
}

// Make creates a URL-safe slug from s.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}

	sepLen := len([]rune(cfg.separator))

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	count := 0

	for _, r := range fold(s) {
		isWord := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isWord {
			pendingSep = count > 0
			continue
		}

		need := 1
		if pendingSep {
			need += sepLen
		}
		if cfg.maxLength > 0 && count+need > cfg.maxLength {
			break
		}

		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		count += need
	}

	return b.String()
}
