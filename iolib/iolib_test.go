package iolib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a.txt")
	assert.False(t, FileExists(name))
	require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	assert.True(t, FileExists(name))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestCopyFileContents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("hello\nworld\n"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0644))

	require.NoError(t, CopyFileContents(src, dst))
	got, err := File2string(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", got)

	assert.Error(t, CopyFileContents(filepath.Join(dir, "missing"), dst))
}

func TestFile2stringMissing(t *testing.T) {
	_, err := File2string(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEachLine(t *testing.T) {
	var lines []string
	n, err := EachLine(strings.NewReader("one\r\ntwo\n\nthree"), func(l string) {
		lines = append(lines, l)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), n)
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)

	lines = nil
	_, err = EachLine(strings.NewReader(""), func(l string) { lines = append(lines, l) })
	require.NoError(t, err)
	assert.Empty(t, lines)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestEachLineError(t *testing.T) {
	_, err := EachLine(failingReader{}, func(string) {})
	assert.EqualError(t, err, "disk on fire")
}

func TestCreate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.txt")
	f, err := Create(name)
	require.NoError(t, err)
	_, err = f.WriteString("(a 1)")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := File2string(name)
	require.NoError(t, err)
	assert.Equal(t, "(a 1)", got)

	_, err = Create(filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"))
	assert.Error(t, err)
}
