// Package snapshot provides versioned sources for the directory snapshot.
// A source exposes a cheap version probe and a full load; the store compares
// versions explicitly instead of polling the filesystem on every call, which
// keeps the reload contract deterministic and testable.
package snapshot

import (
	"context"
	"time"

	"roster/internal/directory/models"
)

// Version identifies a loaded snapshot. The zero value means "no snapshot".
// File-backed sources version by modification time.
type Version struct {
	ModTime time.Time
}

// IsZero reports whether the version refers to no snapshot at all.
func (v Version) IsZero() bool {
	return v.ModTime.IsZero()
}

// Newer reports whether v supersedes other.
func (v Version) Newer(other Version) bool {
	return v.ModTime.After(other.ModTime)
}

// String renders the version for stats and logs.
func (v Version) String() string {
	if v.IsZero() {
		return ""
	}
	return v.ModTime.UTC().Format(time.RFC3339Nano)
}

// Source supplies directory records wholesale.
//
// Error Contract:
//   - Version and Load return sentinel.ErrNotFound (optionally wrapped) when no
//     snapshot exists; the store degrades to an empty directory in that case.
//   - Any other error means the snapshot exists but could not be read.
type Source interface {
	// Version probes the current snapshot version without loading it.
	Version(ctx context.Context) (Version, error)
	// Load reads the full record set in file order, along with its version.
	Load(ctx context.Context) ([]models.Record, Version, error)
}
