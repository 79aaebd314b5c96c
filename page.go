package post2txt

import "io"

// Page is a parsed HTML document that can evaluate selection queries.
type Page interface {
	// Query evaluates an opaque query expression against the document and
	// returns the matching nodes in document order. No matches is not an
	// error; a malformed expression is.
	Query(expr string) ([]Node, error)
}

// Parser builds Pages from HTML.
// Implementations differ in the query language their Pages accept.
type Parser interface {
	// Parse reads already-decoded HTML from r.
	Parse(r io.Reader) (Page, error)
}

// Query languages understood by the bundled parsers.
const (
	QueryXPath = "xpath"
	QueryCSS   = "css"
)

// SourceOpener opens saved pages for parsing.
type SourceOpener interface {
	// Open returns the content of the page at path decoded to UTF-8.
	// A missing file is reported as ENOTFOUND.
	Open(path string) (io.ReadCloser, error)
}
