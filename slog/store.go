package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/post2txt"
)

// Ensure LoggingStore implements post2txt.TranscriptStore.
var _ post2txt.TranscriptStore = (*LoggingStore)(nil)

// LoggingStore wraps a TranscriptStore with logging.
type LoggingStore struct {
	next   post2txt.TranscriptStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next post2txt.TranscriptStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the target and line count.
func (s *LoggingStore) Save(ctx context.Context, path string, t *post2txt.Transcript) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save transcript",
			"path", path,
			"posts", len(t.Posts),
			"lines", len(t.Lines()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, path, t)
}
