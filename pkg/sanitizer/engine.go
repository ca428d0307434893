package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// Engine sanitizes markup according to a Policy.
type Engine interface {
	Sanitize(text string, p Policy) string
}

// TokenEngine is an Engine that walks the input with the HTML tokenizer.
// Allowed tags are re-emitted without attributes, text is entity-decoded and
// re-escaped, comments and doctypes are dropped, and elements left open at
// the end of the input are closed. The content of iframe, noembed, noframes,
// noscript, plaintext and xmp is sanitized as markup, not kept as raw text.
type TokenEngine struct{}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	voidElements = map[string]bool{
		"area": true, "base": true, "br": true, "col": true, "embed": true,
		"hr": true, "img": true, "input": true, "link": true, "meta": true,
		"param": true, "source": true, "track": true, "wbr": true,
	}

	// nonTextTags lose their text content as well in ModeStrip.
	nonTextTags = map[string]bool{
		"script": true, "style": true, "textarea": true, "option": true,
	}

	// markupTags are read as raw text by the tokenizer although their content
	// is markup; it is sanitized again on its own.
	markupTags = map[string]bool{
		"iframe": true, "noembed": true, "noframes": true, "noscript": true,
		"plaintext": true, "xmp": true,
	}
)

type frame struct {
	name    string
	allowed bool
	silent  bool
}

// Sanitize implements Engine.
func (TokenEngine) Sanitize(text string, p Policy) string {
	var (
		b      strings.Builder
		open   []frame
		silent int
		markup bool
	)
	b.Grow(len(text))

	closeFrames := func(from int) {
		for i := len(open) - 1; i >= from; i-- {
			b.WriteString(closingTag(open[i], p))
			if open[i].silent {
				silent--
			}
		}
		open = open[:from]
	}

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		inMarkup := markup
		markup = false

		switch tt {
		case html.ErrorToken:
			closeFrames(0)
			return b.String()

		case html.TextToken:
			switch {
			case silent > 0:
			case inMarkup:
				b.WriteString(TokenEngine{}.Sanitize(string(z.Raw()), p))
			default:
				b.WriteString(textEscaper.Replace(string(z.Text())))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			f := frame{name: string(name), allowed: p.Allows(string(name))}
			void := tt == html.SelfClosingTagToken || voidElements[f.name]
			markup = markupTags[f.name]

			switch {
			case f.allowed:
				b.WriteString(openingTag(f.name, void))
			case p.DisallowedTagsMode == ModeEscape:
				b.WriteString(textEscaper.Replace(openingTag(f.name, void)))
			default:
				f.silent = nonTextTags[f.name]
			}

			if !void {
				open = append(open, f)
				if f.silent {
					silent++
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if i := lastOpen(open, string(name)); i >= 0 {
				closeFrames(i)
			}
		}
	}
}

func openingTag(name string, void bool) string {
	if void {
		return "<" + name + " />"
	}
	return "<" + name + ">"
}

func closingTag(f frame, p Policy) string {
	switch {
	case f.allowed:
		return "</" + f.name + ">"
	case p.DisallowedTagsMode == ModeEscape:
		return "&lt;/" + f.name + "&gt;"
	default:
		return ""
	}
}

func lastOpen(open []frame, name string) int {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i].name == name {
			return i
		}
	}
	return -1
}
