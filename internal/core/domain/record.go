package domain

import "time"

// Fingerprint is a deterministic content digest over a tracked input set,
// rendered as a fixed-width hex string. Equality is exact; there is no
// partial staleness.
type Fingerprint string

// CacheRecord is the persisted association of a cache key to the last
// committed fingerprint and the outputs produced by that run. It is created
// on the first successful generation and overwritten on every later one;
// removal requires deleting the cache location externally.
type CacheRecord struct {
	Key         string      `json:"key,omitzero"`
	Fingerprint Fingerprint `json:"fingerprint,omitzero"`
	Outputs     []string    `json:"outputs,omitempty"`
	RunID       string      `json:"run_id,omitzero"`
	Timestamp   time.Time   `json:"timestamp,omitzero"`
}
