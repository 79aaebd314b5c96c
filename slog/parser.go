package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/post2txt"
)

// Ensure LoggingParser implements post2txt.Parser.
var _ post2txt.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   post2txt.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next post2txt.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs bytes read and duration.
func (p *LoggingParser) Parse(r io.Reader) (page post2txt.Page, err error) {
	cr := &countingReader{r: r}
	defer func(begin time.Time) {
		p.logger.Debug("parse",
			"bytes", cr.n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(cr)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.n += int64(n)
	return n, err
}
