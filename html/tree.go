// Package html adapts golang.org/x/net/html parse trees to post2txt nodes.
package html

import (
	"io"
	"strings"

	"github.com/fwojciec/post2txt"
	xhtml "golang.org/x/net/html"
)

// Tree is a post2txt view of a parsed x/net/html document. It remembers
// which post2txt node was built from which parser node so query results
// can be mapped back.
type Tree struct {
	root  *post2txt.Document
	nodes map[*xhtml.Node]post2txt.Node
}

// Parse parses HTML from r and builds its Tree.
func Parse(r io.Reader) (*xhtml.Node, *Tree, error) {
	n, err := xhtml.Parse(r)
	if err != nil {
		return nil, nil, post2txt.Errorf(post2txt.EINVALID, "failed to parse HTML: %v", err)
	}
	return n, NewTree(n), nil
}

// NewTree builds the Tree rooted at n. A root that is not a document node
// is wrapped in a new Document.
func NewTree(n *xhtml.Node) *Tree {
	t := &Tree{nodes: make(map[*xhtml.Node]post2txt.Node)}
	if n == nil {
		t.root = post2txt.NewDocument()
		return t
	}
	if n.Type == xhtml.DocumentNode {
		t.root = post2txt.NewDocument()
		t.nodes[n] = t.root
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			t.root.AppendChild(t.convert(c, true))
		}
		return t
	}
	t.root = post2txt.NewDocument(t.convert(n, true))
	return t
}

// Root returns the document node.
func (t *Tree) Root() *post2txt.Document {
	return t.root
}

// Lookup returns the post2txt node built from n. Nodes that are not part of
// the tree, such as attribute nodes synthesized by query engines, are
// converted on the fly into detached nodes. Lookup returns nil for node
// kinds that have no post2txt counterpart.
func (t *Tree) Lookup(n *xhtml.Node) post2txt.Node {
	if n == nil {
		return nil
	}
	if node, ok := t.nodes[n]; ok {
		return node
	}
	return t.convert(n, false)
}

// convert maps n and its descendants. Doctype, raw and error nodes are
// dropped.
func (t *Tree) convert(n *xhtml.Node, register bool) post2txt.Node {
	var node post2txt.Node
	switch n.Type {
	case xhtml.DocumentNode:
		doc := post2txt.NewDocument()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			doc.AppendChild(t.convert(c, register))
		}
		node = doc
	case xhtml.ElementNode:
		el := post2txt.NewElement(n.Data, convertAttrs(n.Attr))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			el.AppendChild(t.convert(c, register))
		}
		node = el
	case xhtml.TextNode:
		// The parser has already decoded character references outside
		// raw text elements; store the source form so rendering decodes
		// exactly once.
		if isRawText(n.Parent) {
			node = post2txt.NewText(n.Data)
		} else {
			node = post2txt.NewText(xhtml.EscapeString(n.Data))
		}
	case xhtml.CommentNode:
		node = post2txt.NewComment(n.Data)
	default:
		return nil
	}
	if register {
		t.nodes[n] = node
	}
	return node
}

// rawTextElements hold text the parser keeps verbatim, references included.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"xmp":       true,
}

func isRawText(n *xhtml.Node) bool {
	return n != nil && n.Type == xhtml.ElementNode && rawTextElements[n.Data]
}

// attrEscaper restores ampersands the parser decoded in attribute values.
// Other characters need no escaping inside a quoted attribute, so values
// such as "a?b=1&amp;c=2" read as they do in the markup.
var attrEscaper = strings.NewReplacer("&", "&amp;")

func convertAttrs(attrs []xhtml.Attribute) []post2txt.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]post2txt.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = post2txt.Attr{Key: a.Key, Val: attrEscaper.Replace(a.Val)}
	}
	return out
}
