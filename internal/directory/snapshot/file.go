package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"roster/internal/directory/models"
	"roster/internal/sentinel"
)

// FileSource reads the directory snapshot from a JSON file holding an ordered
// array of records. The file's modification time is the snapshot version.
type FileSource struct {
	path string
}

// NewFileSource constructs a source backed by the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the backing file path, used by the change watcher.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Version(_ context.Context) (Version, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Version{}, fmt.Errorf("snapshot %s: %w", s.path, sentinel.ErrNotFound)
		}
		return Version{}, fmt.Errorf("stat snapshot %s: %w", s.path, err)
	}
	return Version{ModTime: info.ModTime()}, nil
}

func (s *FileSource) Load(_ context.Context) ([]models.Record, Version, error) {
	// Stat before read so the reported version is never newer than the data.
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Version{}, fmt.Errorf("snapshot %s: %w", s.path, sentinel.ErrNotFound)
		}
		return nil, Version{}, fmt.Errorf("stat snapshot %s: %w", s.path, err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Version{}, fmt.Errorf("snapshot %s: %w", s.path, sentinel.ErrNotFound)
		}
		return nil, Version{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, Version{}, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}

	return records, Version{ModTime: info.ModTime()}, nil
}

var _ Source = (*FileSource)(nil)
