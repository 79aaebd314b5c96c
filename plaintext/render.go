// Package plaintext renders HTML node trees as visible plain text.
//
// Rendering keeps only what a reader sees: text content, with paragraph
// boundaries rebuilt from p and br elements. Layout, styling, comments and
// script or style bodies are dropped.
package plaintext

import (
	"strings"
	"unicode"

	"github.com/fwojciec/post2txt"
	"golang.org/x/net/html"
)

// LineBreak is written before every p and br element.
const LineBreak = "\r\n"

// overlappable lists elements whose unmatched end tags some parsers keep as
// literal text.
var overlappable = map[string]bool{
	"form": true,
}

// Render appends the visible text of n to b.
func Render(b *strings.Builder, n post2txt.Node) {
	switch n := n.(type) {
	case *post2txt.Comment:
		// never output
	case *post2txt.Document:
		if n != nil {
			renderChildren(b, n.Children)
		}
	case *post2txt.Element:
		if n == nil {
			return
		}
		if n.Is("p") || n.Is("br") {
			b.WriteString(LineBreak)
		}
		renderChildren(b, n.Children)
	case *post2txt.Text:
		if n != nil {
			renderText(b, n)
		}
	}
}

func renderChildren(b *strings.Builder, children []post2txt.Node) {
	for _, c := range children {
		Render(b, c)
	}
}

// RenderContents appends the visible text inside n, treating n as the
// top of the fragment: the element itself emits no line break, and its
// direct text is rendered even when n is a script or style element.
// Any other node renders as with Render.
func RenderContents(b *strings.Builder, n post2txt.Node) {
	el, ok := n.(*post2txt.Element)
	if !ok || el == nil {
		Render(b, n)
		return
	}
	for _, c := range el.Children {
		if t, ok := c.(*post2txt.Text); ok && t != nil {
			writeText(b, t)
			continue
		}
		Render(b, c)
	}
}

func renderText(b *strings.Builder, t *post2txt.Text) {
	if parent, ok := t.Parent().(*post2txt.Element); ok && (parent.Is("script") || parent.Is("style")) {
		return
	}
	writeText(b, t)
}

func writeText(b *strings.Builder, t *post2txt.Text) {
	if IsOverlappedClosing(t.Raw) {
		return
	}
	b.WriteString(StripSeparators(html.UnescapeString(t.Raw)))
}

// IsOverlappedClosing reports whether raw is an end tag of an overlappable
// element that the parser emitted as text, such as "</form>".
func IsOverlappedClosing(raw string) bool {
	if len(raw) <= 4 || !strings.HasPrefix(raw, "</") || !strings.HasSuffix(raw, ">") {
		return false
	}
	name := strings.ToLower(raw[2 : len(raw)-1])
	return overlappable[name]
}

// StripSeparators removes every rune in the Unicode separator category (Z),
// including non-breaking and ideographic spaces. Other whitespace such as
// tabs and newlines is kept.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Z, r) {
			return -1
		}
		return r
	}, s)
}
