package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileUsesUsernameKeyedPath(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	relPath, err := store.SaveFile("mike", "report.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "attachments/mike/report.pdf", relPath)
}

func TestSavePreviewUsesPreviewSubpath(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	relPath, err := store.SavePreview("mike", "report.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "attachments/mike/preview/report.png", relPath)
}

func TestSaveWritesContent(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	relPath, err := store.SaveFile("mike", "note.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	relPath, err := store.SaveFile("mike", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "attachments/mike/passwd", relPath)
}

func TestRemoveDeletesFile(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	relPath, err := store.SaveFile("mike", "gone.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(relPath))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	assert.NoError(t, store.Remove("attachments/mike/never-existed.txt"))
	// Deleting twice behaves the same.
	assert.NoError(t, store.Remove("attachments/mike/never-existed.txt"))
}

func TestRemoveEmptyPathIsNoop(t *testing.T) {
	store := NewLocalStorage(t.TempDir())
	assert.NoError(t, store.Remove(""))
}
