package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/comunidad/social-api/internal/core/ports"
)

// LocalStorage writes media under a directory that is served statically at
// publicPrefix.
type LocalStorage struct {
	dir          string
	publicPrefix string
	now          func() time.Time
}

// NewLocalStorage creates dir when missing.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, publicPrefix: publicPrefix, now: time.Now}, nil
}

// Store copies the upload to disk and returns its public path, e.g.
// /uploads/1735689600000-beach_day.jpg.
func (s *LocalStorage) Store(_ context.Context, m ports.MediaInput) (string, error) {
	name := FileName(s.now(), m.Filename)

	f, err := s.create(name)
	if errors.Is(err, fs.ErrExist) {
		// same millisecond, same name
		name = FileName(s.now(), uuid.NewString()[:8]+"-"+sanitize(m.Filename))
		f, err = s.create(name)
	}
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(f, m.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}

	return path.Join(s.publicPrefix, name), nil
}

func (s *LocalStorage) create(name string) (*os.File, error) {
	return os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}
