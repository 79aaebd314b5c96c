package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/goquery"
	"github.com/fwojciec/post2txt/htmlquery"
	"github.com/fwojciec/post2txt/plaintext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements post2txt.Parser at compile time.
var _ post2txt.Parser = (*goquery.Parser)(nil)

const thread = `<html><body>
<a href="http://example.com/t=1" onclick="return copyThreadUrl(this)">copy</a>
<table>
<tr><td class="t_f" id="postmessage_1"><p>Hello</p><p>there</p></td></tr>
<tr><td class="t_f" id="postmessage_2">World<br>again</td></tr>
</table>
</body></html>`

func TestPage_Query(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser().Parse(strings.NewReader(thread))
	require.NoError(t, err)

	t.Run("selects permalink anchor", func(t *testing.T) {
		t.Parallel()

		nodes, err := page.Query(post2txt.DefaultCSSURLQuery)

		require.NoError(t, err)
		require.Len(t, nodes, 1)
		href, ok := nodes[0].(*post2txt.Element).Attr("href")
		assert.True(t, ok)
		assert.Equal(t, "http://example.com/t=1", href)
	})

	t.Run("selects posts in document order", func(t *testing.T) {
		t.Parallel()

		nodes, err := page.Query(post2txt.DefaultCSSPostQuery)

		require.NoError(t, err)
		require.Len(t, nodes, 2)
		id, _ := nodes[1].(*post2txt.Element).Attr("id")
		assert.Equal(t, "postmessage_2", id)
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		t.Parallel()

		nodes, err := page.Query("div.missing")

		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("malformed selector is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := page.Query("td[class=")

		require.Error(t, err)
		assert.Equal(t, post2txt.EINVALID, post2txt.ErrorCode(err))
	})
}

func TestPage_MatchesXPathRendering(t *testing.T) {
	t.Parallel()

	cssPage, err := goquery.NewParser().Parse(strings.NewReader(thread))
	require.NoError(t, err)
	xpathPage, err := htmlquery.NewParser().Parse(strings.NewReader(thread))
	require.NoError(t, err)

	cssNodes, err := cssPage.Query(post2txt.DefaultCSSPostQuery)
	require.NoError(t, err)
	xpathNodes, err := xpathPage.Query(post2txt.DefaultPostQuery)
	require.NoError(t, err)
	require.Len(t, cssNodes, len(xpathNodes))

	conv := plaintext.NewConverter(false)
	for i := range cssNodes {
		assert.Equal(t, conv.Convert(xpathNodes[i]), conv.Convert(cssNodes[i]))
	}
	assert.Equal(t, []string{"World", "again"}, conv.Convert(cssNodes[1]))
}
