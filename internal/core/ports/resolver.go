package ports

import "go.trai.ch/regen/internal/core/domain"

// StagingResolver derives the filesystem layout of a generation run from the
// workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type StagingResolver interface {
	// Resolve is a pure function of ws. It fails only with
	// domain.ErrStagingNotConfigured when no base directory is set.
	Resolve(ws domain.Workspace) (domain.Layout, error)
}
