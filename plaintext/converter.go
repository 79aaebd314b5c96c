package plaintext

import (
	"strings"

	"github.com/fwojciec/post2txt"
)

// Ensure Converter implements post2txt.Converter at compile time.
var _ post2txt.Converter = (*Converter)(nil)

// Converter renders nodes to plain-text lines.
type Converter struct {
	// TrimLines enables trimming of rendered lines. See post2txt.Config.
	TrimLines bool
}

// NewConverter creates a new Converter.
func NewConverter(trimLines bool) *Converter {
	return &Converter{TrimLines: trimLines}
}

// Convert renders the contents of n and splits the text into lines.
func (c *Converter) Convert(n post2txt.Node) []string {
	var b strings.Builder
	RenderContents(&b, n)

	lines := SplitLines(b.String())
	if c.TrimLines {
		lines = TrimLines(lines)
	}
	return lines
}
