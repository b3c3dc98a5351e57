package directory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"roster/internal/directory/models"
	"roster/internal/directory/snapshot"
	"roster/internal/sentinel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

type StoreSuite struct {
	suite.Suite
	source *snapshot.StaticSource
	store  *Store
}

func (s *StoreSuite) SetupTest() {
	s.source = snapshot.NewStaticSource([]models.Record{
		{Email: "alice@x.com", UserID: "u1", Blocked: false},
		{Email: "carol@x.com", UserID: "u2", Blocked: true},
	})
	s.store = NewStore(s.source, WithLogger(testLogger()))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestLookupMatchesCaseInsensitively() {
	rec, ok, err := s.store.Lookup(context.Background(), "ALICE@X.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "u1", rec.UserID)
	assert.False(s.T(), rec.Blocked)
}

func (s *StoreSuite) TestLookupTrimsWhitespace() {
	_, ok, err := s.store.Lookup(context.Background(), "  alice@x.com  ")
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func (s *StoreSuite) TestLookupMiss() {
	_, ok, err := s.store.Lookup(context.Background(), "bob@x.com")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *StoreSuite) TestLookupBlockedRecord() {
	rec, ok, err := s.store.Lookup(context.Background(), "carol@x.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.True(s.T(), rec.Blocked)
}

func (s *StoreSuite) TestDuplicateNormalizedEmailsLastWins() {
	s.source.Advance([]models.Record{
		{Email: "Dana@x.com", UserID: "old", Blocked: true},
		{Email: "dana@X.COM", UserID: "new", Blocked: false},
	})

	rec, ok, err := s.store.Lookup(context.Background(), "dana@x.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "new", rec.UserID)
	assert.False(s.T(), rec.Blocked)

	assert.Equal(s.T(), 1, s.store.Stats().Records)
}

func (s *StoreSuite) TestNewerVersionBecomesVisible() {
	_, ok, err := s.store.Lookup(context.Background(), "erin@x.com")
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	s.source.Advance([]models.Record{
		{Email: "alice@x.com", UserID: "u1"},
		{Email: "erin@x.com", UserID: "u3"},
	})

	rec, ok, err := s.store.Lookup(context.Background(), "erin@x.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "u3", rec.UserID)
}

func (s *StoreSuite) TestUnchangedVersionDoesNotReload() {
	_, _, err := s.store.Lookup(context.Background(), "alice@x.com")
	require.NoError(s.T(), err)
	loads := s.source.Loads()

	for range 5 {
		_, _, err := s.store.Lookup(context.Background(), "alice@x.com")
		require.NoError(s.T(), err)
	}
	assert.Equal(s.T(), loads, s.source.Loads(), "same version must not trigger reloads")
}

func (s *StoreSuite) TestMissingSnapshotDegradesToEmpty() {
	store := NewStore(&missingSource{}, WithLogger(testLogger()))

	_, ok, err := store.Lookup(context.Background(), "anyone@x.com")
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	stats := store.Stats()
	assert.True(s.T(), stats.Loaded)
	assert.Zero(s.T(), stats.Records)
}

func (s *StoreSuite) TestFailedReloadKeepsPreviousSnapshot() {
	_, ok, err := s.store.Lookup(context.Background(), "alice@x.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	s.source.Fail(errors.New("disk error"))

	rec, ok, err := s.store.Lookup(context.Background(), "alice@x.com")
	require.NoError(s.T(), err)
	require.True(s.T(), ok, "readers keep the previous complete snapshot")
	assert.Equal(s.T(), "u1", rec.UserID)
}

func (s *StoreSuite) TestForcedReload() {
	s.source.Advance([]models.Record{{Email: "frank@x.com", UserID: "u4"}})
	require.NoError(s.T(), s.store.Reload(context.Background()))

	_, ok, err := s.store.Lookup(context.Background(), "frank@x.com")
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)

	stats := s.store.Stats()
	assert.True(s.T(), stats.Loaded)
	assert.Equal(s.T(), 1, stats.Records)
	assert.False(s.T(), stats.Version.IsZero())
}

func (s *StoreSuite) TestForcedReloadSurfacesLoadFailure() {
	_, _, err := s.store.Lookup(context.Background(), "alice@x.com")
	require.NoError(s.T(), err)

	s.source.Fail(errors.New("disk error"))
	err = s.store.Reload(context.Background())
	require.Error(s.T(), err)

	// The previous snapshot stays published.
	rec, ok, lookupErr := s.store.Lookup(context.Background(), "alice@x.com")
	require.NoError(s.T(), lookupErr)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "u1", rec.UserID)
}

func (s *StoreSuite) TestStatsUsesInjectedClock() {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(s.source, WithLogger(testLogger()), WithClock(func() time.Time { return now }))

	require.NoError(s.T(), store.Reload(context.Background()))
	assert.True(s.T(), store.Stats().LoadedAt.Equal(now))
}

// missingSource simulates a snapshot that never exists.
type missingSource struct{}

func (m *missingSource) Version(context.Context) (snapshot.Version, error) {
	return snapshot.Version{}, fmt.Errorf("snapshot: %w", sentinel.ErrNotFound)
}

func (m *missingSource) Load(context.Context) ([]models.Record, snapshot.Version, error) {
	return nil, snapshot.Version{}, fmt.Errorf("snapshot: %w", sentinel.ErrNotFound)
}

// slowSource blocks every Load until released, counting loads, to observe the
// single-reload guarantee under concurrency.
type slowSource struct {
	mu      sync.Mutex
	loads   int
	release chan struct{}
	records []models.Record
}

func (s *slowSource) Version(context.Context) (snapshot.Version, error) {
	return snapshot.Version{ModTime: time.Unix(10, 0)}, nil
}

func (s *slowSource) Load(context.Context) ([]models.Record, snapshot.Version, error) {
	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	<-s.release
	return s.records, snapshot.Version{ModTime: time.Unix(10, 0)}, nil
}

func (s *slowSource) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func TestConcurrentLookupsShareOneReload(t *testing.T) {
	source := &slowSource{
		release: make(chan struct{}),
		records: []models.Record{{Email: "alice@x.com", UserID: "u1"}},
	}
	store := NewStore(source, WithLogger(testLogger()))

	const readers = 16
	var wg sync.WaitGroup
	results := make([]bool, readers)
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := store.Lookup(context.Background(), "alice@x.com")
			assert.NoError(t, err)
			results[i] = ok
		}()
	}

	// Give every reader time to reach the reload guard, then release the load.
	time.Sleep(50 * time.Millisecond)
	close(source.release)
	wg.Wait()

	assert.Equal(t, 1, source.Loads(), "at most one reload may proceed per instance")
	for i, ok := range results {
		assert.True(t, ok, "reader %d must see the complete snapshot", i)
	}
}

func TestInFlightReadersKeepPriorSnapshot(t *testing.T) {
	source := snapshot.NewStaticSource([]models.Record{{Email: "alice@x.com", UserID: "u1"}})
	store := NewStore(source, WithLogger(testLogger()))

	_, ok, err := store.Lookup(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	// Readers already holding the prior generation are unaffected by the swap:
	// the snapshot they loaded stays complete and immutable.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _, err := store.Lookup(context.Background(), "alice@x.com")
				assert.NoError(t, err)
			}
		}()
	}
	for range 10 {
		source.Advance([]models.Record{
			{Email: "alice@x.com", UserID: "u1"},
			{Email: "grace@x.com", UserID: "u5"},
		})
	}
	wg.Wait()

	rec, ok, err := store.Lookup(context.Background(), "grace@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u5", rec.UserID)
}
