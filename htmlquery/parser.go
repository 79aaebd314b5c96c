// Package htmlquery provides an XPath-queryable post2txt.Parser backed by
// github.com/antchfx/htmlquery.
package htmlquery

import (
	"io"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/post2txt"
	p2thtml "github.com/fwojciec/post2txt/html"
	xhtml "golang.org/x/net/html"
)

// Ensure Parser implements post2txt.Parser at compile time.
var _ post2txt.Parser = (*Parser)(nil)

// Ensure Page implements post2txt.Page at compile time.
var _ post2txt.Page = (*Page)(nil)

// Parser parses HTML into pages that evaluate XPath 1.0 expressions.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML from r.
func (p *Parser) Parse(r io.Reader) (post2txt.Page, error) {
	top, tree, err := p2thtml.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Page{top: top, tree: tree}, nil
}

// Page is a parsed document queried with XPath.
type Page struct {
	top  *xhtml.Node
	tree *p2thtml.Tree
}

// Query evaluates an XPath expression. Attribute selections such as
// //a/@href yield detached elements named after the attribute whose only
// child is the attribute value.
func (p *Page) Query(expr string) ([]post2txt.Node, error) {
	matches, err := htmlquery.QueryAll(p.top, expr)
	if err != nil {
		return nil, post2txt.Errorf(post2txt.EINVALID, "invalid xpath %q: %v", expr, err)
	}

	nodes := make([]post2txt.Node, 0, len(matches))
	for _, m := range matches {
		if n := p.tree.Lookup(m); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}
