package sanitizer

import "strings"

var quoteEscaper = strings.NewReplacer(`"`, `\x22`, `'`, `\x27`)

// EscapeQuotes replaces every double quote with the four characters \x22 and
// every single quote with \x27.
func EscapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// HTMLCleaner returns a pipeline that escapes quotes and then sanitizes with
// e under a copy of p taken now; later changes to p have no effect.
func HTMLCleaner(e Engine, p Policy) func(string) string {
	p = p.Clone()
	return Compose(EscapeQuotes, func(s string) string {
		return e.Sanitize(s, p)
	})
}

var cleanForHTML = HTMLCleaner(TokenEngine{}, DefaultPolicy())

// CleanForHTML returns dirty in a form safe for embedding into HTML: quotes
// are escaped, <b> and <i> are kept and every other tag is shown as text.
func CleanForHTML(dirty string) string {
	return cleanForHTML(dirty)
}
