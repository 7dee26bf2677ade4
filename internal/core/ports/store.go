package ports

import "go.trai.ch/regen/internal/core/domain"

// RecordStore persists cache records, one per cache key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Lookup returns the last committed record for key, or nil, nil if none
	// was ever committed or the persisted record is unreadable. A corrupt
	// record is a cache miss, never a fatal error.
	Lookup(key string) (*domain.CacheRecord, error)

	// Commit atomically replaces the record for rec.Key. A concurrent reader
	// never observes a partially written record.
	Commit(rec domain.CacheRecord) error
}

// StoreOpener opens the record store rooted at a resolved cache directory.
type StoreOpener interface {
	Open(cacheDir string) RecordStore
}
