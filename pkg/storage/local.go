// Package storage keeps attachment files on local disk under a layout
// keyed by the owning username:
//
//	<root>/attachments/<username>/<file>
//	<root>/attachments/<username>/preview/<file>
//
// Paths returned and accepted by the store are relative to root, so
// they can be persisted and served from a static route directly.
package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

type Storage interface {
	SaveFile(username, filename string, src io.Reader) (string, error)
	SavePreview(username, filename string, src io.Reader) (string, error)
	// Remove deletes the file at the given relative path. A file that
	// is already gone is not an error.
	Remove(relPath string) error
}

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) SaveFile(username, filename string, src io.Reader) (string, error) {
	relPath := path.Join("attachments", username, path.Base(filename))
	return relPath, s.write(relPath, src)
}

func (s *LocalStorage) SavePreview(username, filename string, src io.Reader) (string, error) {
	relPath := path.Join("attachments", username, "preview", path.Base(filename))
	return relPath, s.write(relPath, src)
}

func (s *LocalStorage) write(relPath string, src io.Reader) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (s *LocalStorage) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
