// Package goquery provides a CSS-selector-queryable post2txt.Parser backed
// by github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/post2txt"
	p2thtml "github.com/fwojciec/post2txt/html"
)

// Ensure Parser implements post2txt.Parser at compile time.
var _ post2txt.Parser = (*Parser)(nil)

// Ensure Page implements post2txt.Page at compile time.
var _ post2txt.Page = (*Page)(nil)

// Parser parses HTML into pages that evaluate CSS selectors.
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
	return &Page{doc: goquery.NewDocumentFromNode(top), tree: tree}, nil
}

// Page is a parsed document queried with CSS selectors.
type Page struct {
	doc  *goquery.Document
	tree *p2thtml.Tree
}

// Query evaluates a CSS selector. goquery silently matches nothing for
// malformed selectors, so the selector is compiled up front to report them.
func (p *Page) Query(expr string) ([]post2txt.Node, error) {
	sel, err := cascadia.Compile(expr)
	if err != nil {
		return nil, post2txt.Errorf(post2txt.EINVALID, "invalid selector %q: %v", expr, err)
	}

	matches := p.doc.FindMatcher(sel)
	nodes := make([]post2txt.Node, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		if n := p.tree.Lookup(s.Get(0)); n != nil {
			nodes = append(nodes, n)
		}
	})
	return nodes, nil
}
