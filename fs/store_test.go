package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/post2txt"
	"github.com/fwojciec/post2txt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestFileStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ post2txt.TranscriptStore = &fs.FileStore{}
}

// Story: Atomic Transcript Storage
// Transcripts are written to a temp file and renamed into place.

func TestFileStore_SaveWritesTranscript(t *testing.T) {
	t.Parallel()

	// Given a store writing UTF-8 with LF line endings
	dir := t.TempDir()
	store := fs.NewFileStore(unicode.UTF8, "\n")
	path := filepath.Join(dir, "thread.txt")

	// When I save a transcript
	err := store.Save(context.Background(), path, &post2txt.Transcript{
		URL:   "http://example.com/t=1",
		Posts: []*post2txt.Post{{Lines: []string{"Hello", "World"}}},
	})

	// Then the file holds the URL, a blank line and the post block
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/t=1\n\nHello\nWorld\n\n", string(content))

	// And no temp file remains
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_SaveEncodesOutput(t *testing.T) {
	t.Parallel()

	// Given a store writing GB18030 with CRLF line endings
	path := filepath.Join(t.TempDir(), "thread.txt")
	store := fs.NewFileStore(simplifiedchinese.GB18030, "\r\n")

	// When I save Chinese text
	err := store.Save(context.Background(), path, &post2txt.Transcript{
		Posts: []*post2txt.Post{{Lines: []string{"你好"}}},
	})

	// Then the bytes decode from GB18030
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	assert.Equal(t, "你好\r\n\r\n", string(decoded))
}

func TestFileStore_SaveOverwritesExisting(t *testing.T) {
	t.Parallel()

	// Given an existing target file
	path := filepath.Join(t.TempDir(), "thread.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))
	store := fs.NewFileStore(unicode.UTF8, "\n")

	// When I save an empty transcript
	err := store.Save(context.Background(), path, &post2txt.Transcript{})

	// Then the file is replaced by an empty one
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestFileStore_FailedSaveLeavesNothing(t *testing.T) {
	t.Parallel()

	// Given a target path occupied by a non-empty directory
	dir := t.TempDir()
	path := filepath.Join(dir, "thread.txt")
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))
	store := fs.NewFileStore(unicode.UTF8, "\n")

	// When I save
	err := store.Save(context.Background(), path, &post2txt.Transcript{URL: "u"})

	// Then the save fails
	require.Error(t, err)

	// And only the directory remains
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "thread.txt", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestFileStore_SaveMissingDirectory(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(unicode.UTF8, "\n")

	err := store.Save(context.Background(), filepath.Join(t.TempDir(), "missing", "t.txt"), &post2txt.Transcript{})

	assert.Error(t, err)
}

func TestFileStore_SaveCanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := fs.NewFileStore(unicode.UTF8, "\n")

	err := store.Save(ctx, filepath.Join(dir, "t.txt"), &post2txt.Transcript{})

	require.ErrorIs(t, err, context.Canceled)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
