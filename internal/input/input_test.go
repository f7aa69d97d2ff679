package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadAll_StdinWhenNoPaths(t *testing.T) {
	got, err := ReadAll(nil, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", got)
}

func TestReadAll_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "===\nA\n===\nalpha\n")
	b := writeFile(t, dir, "b.txt", "===\nB\n===\nbeta\n")

	got, err := ReadAll([]string{b, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, "===\nB\n===\nbeta\n===\nA\n===\nalpha\n", got)
}

// Files are joined byte for byte; a missing trailing newline runs into the
// next source.
func TestReadAll_NoImplicitNewline(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo")
	b := writeFile(t, dir, "b.txt", "bar\n")

	got, err := ReadAll([]string{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", got)
}

func TestReadAll_DashReadsStdin(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "file\n")

	got, err := ReadAll([]string{a, StdinName}, strings.NewReader("stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "file\nstdin\n", got)
}

func TestReadAll_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "present\n")
	missing := filepath.Join(dir, "nope.txt")

	got, err := ReadAll([]string{a, missing}, nil)
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, ErrInputUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var ue *UnavailableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, missing, ue.Source)
	assert.Contains(t, err.Error(), missing)
}

func TestReadAll_DirectoryIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadAll([]string{dir}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
}

func TestReadAll_NilStdin(t *testing.T) {
	_, err := ReadAll(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.Contains(t, err.Error(), StdinName)
}

func TestReadAll_StripsUTF8BOM(t *testing.T) {
	got, err := ReadAll(nil, strings.NewReader("\uFEFFheader\n"))
	require.NoError(t, err)
	assert.Equal(t, "header\n", got)
}

func TestReadAll_DecodesUTF16WithBOM(t *testing.T) {
	// "hi\n" as UTF-16LE with BOM.
	le := []byte{0xff, 0xfe, 'h', 0, 'i', 0, '\n', 0}
	got, err := ReadAll(nil, strings.NewReader(string(le)))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", got)
}

func TestReadAll_BOMPerSource(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "\uFEFFone\n")
	b := writeFile(t, dir, "b.txt", "\uFEFFtwo\n")

	got, err := ReadAll([]string{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", got)
}
