package snapshot

import (
	"context"
	"sync"
	"time"

	"roster/internal/directory/models"
)

// StaticSource is an in-memory source for tests and seeded demos. Records and
// version are swapped atomically via Set, which mimics a snapshot file being
// replaced on disk without touching the filesystem.
type StaticSource struct {
	mu      sync.Mutex
	records []models.Record
	version Version
	loadErr error
	loads   int
}

// NewStaticSource constructs a source preloaded with the given records at
// version 1 (a fixed, non-zero timestamp).
func NewStaticSource(records []models.Record) *StaticSource {
	s := &StaticSource{}
	s.Set(records, Version{ModTime: time.Unix(1, 0)})
	return s
}

// Set replaces the record set and advances the version.
func (s *StaticSource) Set(records []models.Record, version Version) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.version = version
	s.loadErr = nil
}

// Advance replaces the record set and bumps the version by one second,
// the way a rewritten snapshot file advances its modification time.
func (s *StaticSource) Advance(records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.version = Version{ModTime: s.version.ModTime.Add(time.Second)}
	s.loadErr = nil
}

// Fail makes subsequent Version and Load calls return the given error.
func (s *StaticSource) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// Loads reports how many times Load has been called, for reload-guard tests.
func (s *StaticSource) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func (s *StaticSource) Version(_ context.Context) (Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return Version{}, s.loadErr
	}
	return s.version, nil
}

func (s *StaticSource) Load(_ context.Context) ([]models.Record, Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.loadErr != nil {
		return nil, Version{}, s.loadErr
	}
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out, s.version, nil
}

var _ Source = (*StaticSource)(nil)
