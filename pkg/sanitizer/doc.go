// Package sanitizer makes untrusted text safe to embed in HTML and provides
// small string clean-up helpers that can be chained into pipelines.
//
// # HTML
//
// CleanForHTML is the entry point used for book descriptions and notes. It
// first replaces quote characters with the literal sequences \x22 and \x27 and
// then runs the text through an Engine under DefaultPolicy(), which keeps <b>
// and <i> and renders every other tag as visible text:
//
//	sanitizer.CleanForHTML(`<b>ok</b><u>no</u>`)
//	// "<b>ok</b>&lt;u&gt;no&lt;/u&gt;"
//
//	sanitizer.CleanForHTML(`It's a "test"`)
//	// `It\x27s a \x22test\x22`
//
// A Policy names the allowed tags and what happens to the rest: ModeEscape
// renders them as text, ModeStrip drops the markup and keeps the text (text
// inside script and style elements is dropped as well). Attributes are never
// carried over. TokenEngine, built on the golang.org/x/net/html tokenizer, is
// the default Engine; any type with the same method can replace it through
// HTMLCleaner.
//
// # Pipelines
//
// Apply and Compose chain string transforms:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	    sanitizer.CleanForHTML,
//	)
//
// # Error handling
//
// None of the helpers returns an error. Malformed markup is treated as text.
//
// All functions are stateless and safe for concurrent use.
package sanitizer
