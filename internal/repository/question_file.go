package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore keeps the question set in a JSON file named after the record.
type FileStore struct {
	fs   afero.Fs
	dir  string
	path string
}

// NewFileStore creates a store writing to <dir>/<name>.json on fsys.
// The directory is created if it does not exist.
func NewFileStore(fsys afero.Fs, dir, name string) (*FileStore, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &FileStore{
		fs:   fsys,
		dir:  dir,
		path: filepath.Join(dir, name+".json"),
	}, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the whole file.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return data, nil
}

// Save overwrites the file. The payload is written to a temporary file first
// and renamed over the target, so readers never see a partial record.
func (s *FileStore) Save(_ context.Context, payload []byte) error {
	tmp, err := afero.TempFile(s.fs, s.dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
