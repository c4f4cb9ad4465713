// Package localfs stores uploads on disk for the duration of extraction.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the upload under a uuid-prefixed name so concurrent uploads
// of the same filename never collide. The extraction-relevant extension is
// preserved.
func (s *Store) Save(_ context.Context, filename string, data io.Reader) (string, error) {
	key := uuid.NewString() + "_" + sanitizeFilename(filename)
	path := filepath.Join(s.dir, key)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

func (s *Store) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		return "upload.bin"
	}
	return base
}
