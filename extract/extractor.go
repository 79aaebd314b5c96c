// Package extract turns parsed thread pages into transcripts.
// It coordinates the permalink and post queries, plain-text rendering, and
// storage of one transcript per source page.
package extract

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/post2txt"
)

// Extractor builds a Transcript from a parsed page.
type Extractor struct {
	// URLQuery selects the permalink anchor. Empty skips the URL step.
	URLQuery string

	// PostQuery selects the post body nodes.
	PostQuery string

	Converter post2txt.Converter
	Logger    *slog.Logger
}

// Extract runs the URL step and the post step against page. The steps are
// independent: a failure in either is logged and treated as no matches, and
// never stops the other.
func (e *Extractor) Extract(page post2txt.Page) *post2txt.Transcript {
	t := &post2txt.Transcript{}

	if err := e.extractURL(page, t); err != nil {
		e.logger().Error("exception when finding post url", "query", e.URLQuery, "err", err)
	}
	if err := e.extractPosts(page, t); err != nil {
		e.logger().Error("exception when finding posts", "query", e.PostQuery, "err", err)
	}
	return t
}

func (e *Extractor) extractURL(page post2txt.Page, t *post2txt.Transcript) (err error) {
	if e.URLQuery == "" {
		return nil
	}
	defer recoverInto(&err)

	nodes, err := page.Query(e.URLQuery)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		e.logger().Info("post url not found", "query", e.URLQuery)
		return nil
	}

	a, ok := nodes[0].(*post2txt.Element)
	if !ok {
		return nil
	}
	href, ok := a.Attr("href")
	if !ok {
		e.logger().Info("post url anchor has no href", "query", e.URLQuery)
		return nil
	}
	e.logger().Info("post url", "url", href)
	t.URL = href
	return nil
}

// extractPosts appends posts to t as they are rendered, so posts completed
// before a failure are kept.
func (e *Extractor) extractPosts(page post2txt.Page, t *post2txt.Transcript) (err error) {
	defer recoverInto(&err)

	nodes, err := page.Query(e.PostQuery)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		e.logger().Info("no posts found", "query", e.PostQuery)
		return nil
	}

	for _, n := range nodes {
		post := &post2txt.Post{}
		if el, ok := n.(*post2txt.Element); ok {
			post.ID, _ = el.Attr("id")
		}
		e.logger().Info("extracting post", "id", post.ID)
		post.Lines = e.Converter.Convert(n)
		t.Posts = append(t.Posts, post)
	}
	return nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// recoverInto turns a panic raised by a query engine or converter into an
// EINTERNAL error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = post2txt.Errorf(post2txt.EINTERNAL, "%s", fmt.Sprint(r))
	}
}
