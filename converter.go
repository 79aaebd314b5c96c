package post2txt

// Converter renders the visible text of a node as plain-text lines.
type Converter interface {
	// Convert renders n and its descendants and splits the result into
	// lines. It never fails; unexpected structure produces no output.
	Convert(n Node) []string
}
