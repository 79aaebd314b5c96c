package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/charset"
	"golang.org/x/text/encoding"
)

// Ensure FileStore implements post2txt.TranscriptStore at compile time.
var _ post2txt.TranscriptStore = (*FileStore)(nil)

// FileStore writes transcripts as encoded text files with atomic replace
// semantics. Content is written to a temporary file next to the target and
// renamed over it once complete.
type FileStore struct {
	enc     encoding.Encoding
	newline string
}

// NewFileStore creates a new FileStore writing in enc with each line
// terminated by newline.
func NewFileStore(enc encoding.Encoding, newline string) *FileStore {
	return &FileStore{enc: enc, newline: newline}
}

// Save writes t to path, replacing any existing file.
func (s *FileStore) Save(ctx context.Context, path string, t *post2txt.Transcript) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = s.write(tmp, t); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *FileStore) write(w io.Writer, t *post2txt.Transcript) error {
	enc := charset.NewWriter(w, s.enc)
	if _, err := io.WriteString(enc, post2txt.FormatTranscript(t, s.newline)); err != nil {
		return err
	}
	return enc.Close()
}
