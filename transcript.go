package post2txt

import (
	"context"
	"strings"
)

// Transcript is the plain-text rendering of one thread page.
type Transcript struct {
	// URL is the post permalink, empty when none was found.
	URL string

	Posts []*Post
}

// Post is the rendered text of one matched post node.
type Post struct {
	// ID is the id attribute of the post node, if it had one.
	ID    string
	Lines []string
}

// Lines returns the output lines of the transcript: the URL followed by a
// blank line when present, then every post's lines, each post followed by
// one blank line.
func (t *Transcript) Lines() []string {
	var lines []string
	if t.URL != "" {
		lines = append(lines, t.URL, "")
	}
	for _, p := range t.Posts {
		lines = append(lines, p.Lines...)
		lines = append(lines, "")
	}
	return lines
}

// FormatTranscript joins the transcript lines, terminating each with newline.
func FormatTranscript(t *Transcript, newline string) string {
	var b strings.Builder
	for _, line := range t.Lines() {
		b.WriteString(line)
		b.WriteString(newline)
	}
	return b.String()
}

// TranscriptStore persists transcripts.
type TranscriptStore interface {
	// Save writes t to path, replacing any existing file. A failed save
	// leaves no partial output behind.
	Save(ctx context.Context, path string, t *Transcript) error
}
