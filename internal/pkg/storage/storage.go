package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/inkwell-cms/InkWell/internal/pkg/logger"
)

// Storage is the file-storage collaborator. Stored paths are opaque unique
// strings relative to the storage root.
type Storage interface {
	Store(data []byte, originalName string) (string, error)
	Remove(path string) error
}

type localStorage struct {
	dir string
}

// NewLocalStorage creates disk-backed storage rooted at dir.
func NewLocalStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &localStorage{dir: dir}, nil
}

// Store writes the upload under a generated name; the client-supplied name
// only contributes its extension.
func (s *localStorage) Store(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	logger.Log.Debug().Str("path", name).Int("bytes", len(data)).Msg("stored upload")
	return name, nil
}

// Remove deletes stored content. A path that is already gone is not an error.
func (s *localStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(path)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
