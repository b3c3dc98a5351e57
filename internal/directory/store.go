// Package directory owns the in-memory snapshot of known users and its
// reload policy. The snapshot is the single shared mutable resource in the
// service: any number of readers, at most one reload in flight, and reloads
// swap a complete snapshot atomically so readers never observe a partial map.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"roster/internal/directory/metrics"
	"roster/internal/directory/models"
	"roster/internal/directory/snapshot"
	"roster/internal/sentinel"
	dErrors "roster/pkg/domain-errors"
)

// state is one immutable, fully-built snapshot generation. The store swaps
// the pointer wholesale; nothing mutates a state after publication.
type state struct {
	byEmail  map[string]models.Record
	version  snapshot.Version
	loadedAt time.Time
}

// Stats describes the currently loaded snapshot for the admin surface.
type Stats struct {
	Loaded   bool
	Records  int
	Version  snapshot.Version
	LoadedAt time.Time
}

// Store answers email lookups against the latest complete snapshot,
// reloading from its source when the source reports a newer version.
type Store struct {
	source  snapshot.Source
	logger  *slog.Logger
	metrics *metrics.Metrics
	clock   func() time.Time

	group   singleflight.Group
	current atomic.Pointer[state]
}

// Option configures the Store.
type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithClock injects a clock for deterministic load timestamps in tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewStore constructs a store over the given snapshot source. The store
// starts Unloaded; the first lookup (or an explicit Reload) loads it.
func NewStore(source snapshot.Source, opts ...Option) *Store {
	s := &Store{
		source: source,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Lookup returns the record stored under the normalized email and whether it
// exists. It first brings the snapshot up to date if the source has advanced;
// concurrent lookups that race a reload see either the old or new complete
// snapshot, never a partial one.
func (s *Store) Lookup(ctx context.Context, email string) (models.Record, bool, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return models.Record{}, false, err
	}

	cur := s.current.Load()
	if cur == nil {
		// ensureFresh always installs a snapshot, including the empty one.
		return models.Record{}, false, nil
	}
	rec, ok := cur.byEmail[models.NormalizeEmail(email)]
	return rec, ok, nil
}

// Reload forces a snapshot load regardless of version, sharing flight with
// any reload already in progress. Unlike the lookup path, a load failure is
// returned to the caller: an operator forcing a reload needs to know it did
// not take. The previous snapshot stays published either way.
func (s *Store) Reload(ctx context.Context) error {
	_, err, _ := s.group.Do("reload", func() (any, error) {
		return nil, s.reload(ctx)
	})
	return err
}

// Stats reports the current snapshot generation.
func (s *Store) Stats() Stats {
	cur := s.current.Load()
	if cur == nil {
		return Stats{}
	}
	return Stats{
		Loaded:   true,
		Records:  len(cur.byEmail),
		Version:  cur.version,
		LoadedAt: cur.loadedAt,
	}
}

// ensureFresh reloads when the store is unloaded or the source reports a
// newer version. The singleflight group guarantees at most one reload per
// instance; callers that lose the race share the winner's result.
func (s *Store) ensureFresh(ctx context.Context) error {
	cur := s.current.Load()

	version, err := s.source.Version(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// No snapshot is a supported first-run state: empty directory.
			if cur == nil {
				s.installEmpty()
			}
			return nil
		}
		// Probe failed. Keep serving what we have; fail only when unloaded.
		if cur != nil {
			s.logger.Warn("snapshot version probe failed, serving previous snapshot", "error", err)
			return nil
		}
		s.installEmpty()
		s.logger.Warn("snapshot version probe failed with no snapshot loaded, starting empty", "error", err)
		return nil
	}

	if cur != nil && !version.Newer(cur.version) {
		return nil
	}

	_, err, _ = s.group.Do("reload", func() (any, error) {
		// Re-check under the flight: a reload that just finished may already
		// cover the version this caller observed.
		if cur := s.current.Load(); cur != nil && !version.Newer(cur.version) {
			return nil, nil
		}
		if err := s.reload(ctx); err != nil {
			// Degrade rather than fail the lookup path: keep the previous
			// snapshot, or start empty when nothing was ever loaded.
			if s.current.Load() != nil {
				s.logger.Warn("snapshot reload failed, keeping previous snapshot", "error", err)
				return nil, nil
			}
			s.installEmpty()
			s.logger.Warn("snapshot load failed with no snapshot loaded, starting empty", "error", err)
		}
		return nil, nil
	})
	return err
}

// reload performs one full load and atomically publishes the result. A load
// failure never tears down a previously published snapshot; callers decide
// whether the failure degrades (lookup path) or surfaces (forced reload).
func (s *Store) reload(ctx context.Context) error {
	start := s.clock()
	records, version, err := s.source.Load(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.installEmpty()
			s.observeReload("empty", start)
			return nil
		}
		s.observeReload("error", start)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "snapshot load failed")
	}

	byEmail := make(map[string]models.Record, len(records))
	for _, rec := range records {
		key := models.NormalizeEmail(rec.Email)
		if key == "" {
			continue
		}
		// Later records win on duplicate normalized emails.
		byEmail[key] = rec
	}

	s.current.Store(&state{
		byEmail:  byEmail,
		version:  version,
		loadedAt: s.clock(),
	})
	s.observeReload("ok", start)
	if s.metrics != nil {
		s.metrics.SetRecordsLoaded(len(byEmail))
	}
	s.logger.Info("directory snapshot loaded",
		"records", len(byEmail),
		"version", version.String(),
	)
	return nil
}

func (s *Store) installEmpty() {
	s.current.Store(&state{
		byEmail:  map[string]models.Record{},
		loadedAt: s.clock(),
	})
	if s.metrics != nil {
		s.metrics.SetRecordsLoaded(0)
	}
}

func (s *Store) observeReload(result string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveReload(result, s.clock().Sub(start))
	}
}
