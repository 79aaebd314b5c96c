// Package fs provides file-based input and output for transcripts.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/charset"
	"golang.org/x/text/encoding"
)

// FindSources returns the regular files directly inside dir whose names
// match any of the glob patterns. Results are de-duplicated and sorted.
func FindSources(dir string, patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, post2txt.Errorf(post2txt.EINVALID, "invalid source pattern %q: %v", pattern, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !matchAny(patterns, entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// OutputName derives a transcript file name from a source path: the base
// name without its extension, with every occurrence of remove deleted, plus
// ext. The directory of source is not kept.
// Example: "dir/Thread - Powered by X.html" → "Thread.txt"
func OutputName(source, remove, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if remove != "" {
		base = strings.ReplaceAll(base, remove, "")
	}
	return base + ext
}

// Ensure SourceOpener implements post2txt.SourceOpener at compile time.
var _ post2txt.SourceOpener = (*SourceOpener)(nil)

// SourceOpener opens source pages stored in a fixed character encoding.
type SourceOpener struct {
	enc encoding.Encoding
}

// NewSourceOpener creates a new SourceOpener decoding from enc.
func NewSourceOpener(enc encoding.Encoding) *SourceOpener {
	return &SourceOpener{enc: enc}
}

// Open opens path and decodes it to UTF-8.
func (o *SourceOpener) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, post2txt.Errorf(post2txt.ENOTFOUND, "source file doesn't exist: %s", path)
	} else if err != nil {
		return nil, err
	}
	return &decodedFile{Reader: charset.NewReader(f, o.enc), f: f}, nil
}

type decodedFile struct {
	io.Reader
	f *os.File
}

func (d *decodedFile) Close() error {
	return d.f.Close()
}

// IsFile reports whether path exists and is not a directory.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
