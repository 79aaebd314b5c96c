package mock

import (
	"context"

	"github.com/fwojciec/post2txt"
)

var _ post2txt.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore is a mock implementation of post2txt.TranscriptStore.
type TranscriptStore struct {
	SaveFn func(ctx context.Context, path string, t *post2txt.Transcript) error
}

func (s *TranscriptStore) Save(ctx context.Context, path string, t *post2txt.Transcript) error {
	return s.SaveFn(ctx, path, t)
}
