// Package storage persists uploaded product images on the local filesystem
// under a public-facing base directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// localStorage implements image storage using the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// Save writes the file content under the given (already sanitized) filename.
// The base directory is created on demand. A failed write removes the
// partially written file.
func (s *localStorage) Save(filename string, r io.Reader) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.basePath, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// OpenFile opens a stored file and returns *os.File for use with http.ServeContent
func (s *localStorage) OpenFile(filename string) (*os.File, error) {
	return os.Open(filepath.Join(s.basePath, filename))
}

// Delete removes a stored file
func (s *localStorage) Delete(filename string) error {
	return os.Remove(filepath.Join(s.basePath, filename))
}
