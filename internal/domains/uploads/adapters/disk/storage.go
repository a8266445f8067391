// Package disk stores uploads on the local filesystem.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/petcare/petcare-api/internal/domains/uploads/ports"
)

// Storage writes files into a single directory.
type Storage struct {
	dir string
}

// NewStorage creates dir when missing.
func NewStorage(dir string) (*Storage, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the directory served as /uploads.
func (s *Storage) Dir() string { return s.dir }

// Save writes content to a temp file and renames it into place.
func (s *Storage) Save(ctx context.Context, filename string, content io.Reader) (int64, error) {
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return 0, fmt.Errorf("invalid upload filename %q", filename)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return 0, err
	}
	written, copyErr := io.Copy(tmp, content)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())
		if copyErr != nil {
			return 0, copyErr
		}
		return 0, closeErr
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, filename)); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, err
	}
	return written, nil
}

// Delete removes a stored file; a missing file is not an error.
func (s *Storage) Delete(_ context.Context, filename string) error {
	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid upload filename %q", filename)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ ports.Storage = (*Storage)(nil)
