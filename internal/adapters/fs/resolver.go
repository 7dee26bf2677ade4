package fs

import (
	"path/filepath"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
)

var _ ports.StagingResolver = (*Resolver)(nil)

// Resolver derives the staging layout from the workspace configuration.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve computes the staging root and cache directory for a run. It is a
// pure function of ws and performs no filesystem access; an unset staging
// base is the only failure and is reported before any job runs.
func (r *Resolver) Resolve(ws domain.Workspace) (domain.Layout, error) {
	if ws.StagingBase == "" {
		return domain.Layout{}, domain.ErrStagingNotConfigured
	}

	base := ws.StagingBase
	if !filepath.IsAbs(base) {
		base = filepath.Join(ws.Root, base)
	}

	stagingRoot := filepath.Join(base, domain.StagingDirName)
	return domain.Layout{
		StagingRoot: stagingRoot,
		CacheDir:    filepath.Join(stagingRoot, domain.CacheDirName),
	}, nil
}
