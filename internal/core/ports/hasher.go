// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/regen/internal/core/domain"

// Hasher computes content fingerprints over tracked input sets.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint digests the content of every path in the set. Enumeration
	// order is irrelevant. Paths that do not exist contribute a fixed
	// sentinel; an unreadable existing path is an error.
	Fingerprint(paths []string) (domain.Fingerprint, error)
}
