// Package storage provides chapter content store implementations.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/novelhub/backend/internal/application/reading"
)

// Ensure LocalContentStore implements ChapterContentStore
var _ reading.ChapterContentStore = (*LocalContentStore)(nil)

// LocalContentStore reads chapter content from files under a root directory.
// Stored paths are relative to the root; paths escaping it are rejected.
type LocalContentStore struct {
	root string
}

// NewLocalContentStore creates a LocalContentStore rooted at dir
func NewLocalContentStore(dir string) (*LocalContentStore, error) {
	if dir == "" {
		return nil, errors.New("content directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid content directory: %w", err)
	}
	return &LocalContentStore{root: abs}, nil
}

// resolve maps a stored path to an absolute path inside the root
func (s *LocalContentStore) resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("content path is required")
	}
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("content path %q escapes content directory", path)
	}
	return full, nil
}

// Read returns the content stored at path
func (s *LocalContentStore) Read(ctx context.Context, path string) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(data), nil
}

// Exists reports whether a content file is present at path
func (s *LocalContentStore) Exists(ctx context.Context, path string) (bool, error) {
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
