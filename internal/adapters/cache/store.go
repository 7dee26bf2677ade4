// Package cache implements the on-disk record store for generation fingerprints.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.RecordStore = (*Store)(nil)
	_ ports.StoreOpener = (*Opener)(nil)
)

// Store persists one JSON record file per cache key under a cache directory.
// The key doubles as the on-disk location, isolating unrelated jobs from each
// other. It assumes a single writer per key per run and performs no locking.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given cache directory.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// recordPath maps a slash-separated cache key to its record file.
func (s *Store) recordPath(key string) string {
	return filepath.Join(s.dir, filepath.FromSlash(key), domain.RecordFileName)
}

// Lookup returns the last committed record for key. A missing, unreadable, or
// corrupt record file is a cache miss, never a fatal error: the cache is an
// optimization, not a correctness dependency.
func (s *Store) Lookup(key string) (*domain.CacheRecord, error) {
	data, err := os.ReadFile(s.recordPath(key)) //nolint:gosec // Path is derived from a trusted cache key
	if err != nil {
		return nil, nil
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil
	}

	// A record written under a different key is stale bookkeeping, not a hit.
	if rec.Key != key {
		return nil, nil
	}

	return &rec, nil
}

// Commit atomically replaces the record for rec.Key by writing to a temporary
// file in the same directory and renaming it over the record path.
func (s *Store) Commit(rec domain.CacheRecord) error {
	path := s.recordPath(rec.Key)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache record directory"), "key", rec.Key)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal cache record"), "key", rec.Key)
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary record file"), "key", rec.Key)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "key", rec.Key)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to close cache record"), "key", rec.Key)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to set cache record permissions"), "key", rec.Key)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to replace cache record"), "key", rec.Key)
	}

	return nil
}

// Opener implements ports.StoreOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns a Store rooted at cacheDir.
func (Opener) Open(cacheDir string) ports.RecordStore {
	return NewStore(cacheDir)
}
