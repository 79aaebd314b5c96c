package mock

import (
	"io"

	"github.com/fwojciec/post2txt"
)

var _ post2txt.Parser = (*Parser)(nil)

// Parser is a mock implementation of post2txt.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (post2txt.Page, error)
}

func (p *Parser) Parse(r io.Reader) (post2txt.Page, error) {
	return p.ParseFn(r)
}

var _ post2txt.Page = (*Page)(nil)

// Page is a mock implementation of post2txt.Page.
type Page struct {
	QueryFn func(expr string) ([]post2txt.Node, error)
}

func (p *Page) Query(expr string) ([]post2txt.Node, error) {
	return p.QueryFn(expr)
}
