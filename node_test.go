package post2txt_test

import (
	"testing"

	"github.com/fwojciec/post2txt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_LinksParents(t *testing.T) {
	t.Parallel()

	text := post2txt.NewText("hello")
	p := post2txt.NewElement("p", nil, text)
	doc := post2txt.NewDocument(p)

	require.Len(t, doc.Children, 1)
	assert.Same(t, p, text.Parent())
	assert.Same(t, doc, p.Parent())
	assert.Nil(t, doc.Parent())
}

func TestElement_AppendChild_IgnoresNil(t *testing.T) {
	t.Parallel()

	e := post2txt.NewElement("div", nil)
	e.AppendChild(nil)

	assert.Empty(t, e.Children)
}

func TestElement_Attr(t *testing.T) {
	t.Parallel()

	e := post2txt.NewElement("a", []post2txt.Attr{
		{Key: "HREF", Val: "http://example.com/t=1"},
		{Key: "href", Val: "ignored"},
	})

	t.Run("matches case-insensitively and returns first", func(t *testing.T) {
		t.Parallel()

		v, ok := e.Attr("href")

		assert.True(t, ok)
		assert.Equal(t, "http://example.com/t=1", v)
	})

	t.Run("reports missing attribute", func(t *testing.T) {
		t.Parallel()

		_, ok := e.Attr("id")

		assert.False(t, ok)
	})
}

func TestElement_Is(t *testing.T) {
	t.Parallel()

	assert.True(t, post2txt.NewElement("BR", nil).Is("br"))
	assert.False(t, post2txt.NewElement("b", nil).Is("br"))
}

func TestDetachedNodes_HaveNoParent(t *testing.T) {
	t.Parallel()

	assert.Nil(t, post2txt.NewText("x").Parent())
	assert.Nil(t, post2txt.NewComment("x").Parent())
	assert.Nil(t, post2txt.NewElement("x", nil).Parent())
}
