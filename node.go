package post2txt

import "strings"

// Node is one node of a parsed HTML tree. The set of node kinds is closed:
// every Node is exactly one of *Document, *Element, *Text or *Comment.
// Code that switches over node kinds handles these four and treats anything
// else as a no-op.
//
// Trees are owned by the Page that produced them and are read-only once
// built.
type Node interface {
	// Parent returns the containing node, or nil for a root or detached node.
	Parent() Node

	setParent(Node)
}

// Attr is a single element attribute. Order matches the source markup.
// Val is the literal value, so character references such as "&amp;" are
// still encoded.
type Attr struct {
	Key string
	Val string
}

// Document is the root container of a parsed page.
type Document struct {
	Children []Node
}

// NewDocument returns a Document owning the given children.
func NewDocument(children ...Node) *Document {
	d := &Document{}
	for _, c := range children {
		d.AppendChild(c)
	}
	return d
}

// Parent always returns nil.
func (d *Document) Parent() Node { return nil }

func (d *Document) setParent(Node) {}

// AppendChild adds c as the last child of d.
func (d *Document) AppendChild(c Node) {
	if c == nil {
		return
	}
	c.setParent(d)
	d.Children = append(d.Children, c)
}

// Element is a tagged node with attributes and children.
type Element struct {
	// Name is the tag name as produced by the parser, normally lower case.
	Name     string
	Attrs    []Attr
	Children []Node

	parent Node
}

// NewElement returns an Element owning the given children.
func NewElement(name string, attrs []Attr, children ...Node) *Element {
	e := &Element{Name: name, Attrs: attrs}
	for _, c := range children {
		e.AppendChild(c)
	}
	return e
}

// Parent returns the containing node.
func (e *Element) Parent() Node { return e.parent }

func (e *Element) setParent(p Node) { e.parent = p }

// AppendChild adds c as the last child of e.
func (e *Element) AppendChild(c Node) {
	if c == nil {
		return
	}
	c.setParent(e)
	e.Children = append(e.Children, c)
}

// Attr returns the value of the first attribute named key.
// Attribute names are matched case-insensitively.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// Is reports whether the element has the given tag name, ignoring case.
func (e *Element) Is(name string) bool {
	return strings.EqualFold(e.Name, name)
}

// Text holds character data. Raw is kept in its source form, so character
// references such as "&amp;" are still encoded.
type Text struct {
	Raw string

	parent Node
}

// NewText returns a detached Text node.
func NewText(raw string) *Text {
	return &Text{Raw: raw}
}

// Parent returns the containing node.
func (t *Text) Parent() Node { return t.parent }

func (t *Text) setParent(p Node) { t.parent = p }

// Comment is an HTML comment. Its content is never rendered.
type Comment struct {
	Data string

	parent Node
}

// NewComment returns a detached Comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// Parent returns the containing node.
func (c *Comment) Parent() Node { return c.parent }

func (c *Comment) setParent(p Node) { c.parent = p }
