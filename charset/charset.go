// Package charset resolves named character encodings with golang.org/x/text
// and wraps readers and writers to transcode through them.
package charset

import (
	"io"
	"strings"

	"github.com/fwojciec/post2txt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Lookup returns the encoding registered under name. WHATWG labels such as
// "gb18030" or "utf-8" are tried first, then IANA names such as "IBM437".
// Names are matched case-insensitively.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, post2txt.Errorf(post2txt.EINVALID, "encoding name required")
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, post2txt.Errorf(post2txt.EINVALID, "unknown encoding %q", name)
}

// Name returns a display name for enc, falling back to "unknown".
func Name(enc encoding.Encoding) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return name
	}
	return "unknown"
}

// NewReader returns a reader that decodes r from enc into UTF-8.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// NewWriter returns a writer that encodes UTF-8 into enc before writing to
// w. Characters enc cannot represent are replaced rather than failing the
// write. The returned writer must be closed to flush buffered output.
func NewWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}
