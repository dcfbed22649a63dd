package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists uploaded document files. Stored names are opaque;
// callers keep the original name in their own records.
type FileStore interface {
	Save(r io.Reader, originalName string) (storedName string, size int64, err error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

// LocalFileStore stores files on the local filesystem under a single
// base directory.
type LocalFileStore struct {
	baseDir string
}

// NewLocalFileStore creates a local file store rooted at baseDir,
// creating the directory if needed.
func NewLocalFileStore(baseDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalFileStore{baseDir: baseDir}, nil
}

// Save writes the reader's contents to a freshly named file and returns
// the stored name and byte count. The stored name is a random UUID plus
// the original extension, so uploads can never collide or traverse
// outside the base directory.
func (s *LocalFileStore) Save(r io.Reader, originalName string) (string, int64, error) {
	ext := sanitizeExt(filepath.Ext(originalName))
	storedName := uuid.New().String() + ext

	f, err := os.OpenFile(filepath.Join(s.baseDir, storedName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", 0, fmt.Errorf("create stored file: %w", err)
	}

	size, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", 0, fmt.Errorf("write stored file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", 0, fmt.Errorf("close stored file: %w", err)
	}
	return storedName, size, nil
}

// Open opens a stored file for reading
func (s *LocalFileStore) Open(storedName string) (io.ReadCloser, error) {
	path, err := s.resolve(storedName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	return f, nil
}

// Remove deletes a stored file. Removing a file that is already gone is
// not an error.
func (s *LocalFileStore) Remove(storedName string) error {
	path, err := s.resolve(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}

// resolve rejects names that would escape the base directory.
func (s *LocalFileStore) resolve(storedName string) (string, error) {
	if storedName == "" || storedName != filepath.Base(storedName) {
		return "", fmt.Errorf("invalid stored name %q", storedName)
	}
	return filepath.Join(s.baseDir, storedName), nil
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
