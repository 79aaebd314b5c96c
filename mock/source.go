package mock

import (
	"io"

	"github.com/fwojciec/post2txt"
)

var _ post2txt.SourceOpener = (*SourceOpener)(nil)

// SourceOpener is a mock implementation of post2txt.SourceOpener.
type SourceOpener struct {
	OpenFn func(path string) (io.ReadCloser, error)
}

func (o *SourceOpener) Open(path string) (io.ReadCloser, error) {
	return o.OpenFn(path)
}
