package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/mock"
	p2tslog "github.com/fwojciec/post2txt/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("logs path and counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var gotPath string
		inner := &mock.TranscriptStore{
			SaveFn: func(ctx context.Context, path string, tr *post2txt.Transcript) error {
				gotPath = path
				return nil
			},
		}
		tr := &post2txt.Transcript{
			URL:   "http://example.com/t=1",
			Posts: []*post2txt.Post{{Lines: []string{"a", "b"}}},
		}

		err := p2tslog.NewLoggingStore(inner, logger).Save(context.Background(), "out.txt", tr)

		require.NoError(t, err)
		assert.Equal(t, "out.txt", gotPath)
		output := buf.String()
		assert.Contains(t, output, "save transcript")
		assert.Contains(t, output, "path=out.txt")
		assert.Contains(t, output, "posts=1")
		assert.Contains(t, output, "lines=5")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TranscriptStore{
			SaveFn: func(ctx context.Context, path string, tr *post2txt.Transcript) error {
				return errors.New("disk full")
			},
		}

		err := p2tslog.NewLoggingStore(inner, logger).Save(context.Background(), "out.txt", &post2txt.Transcript{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
