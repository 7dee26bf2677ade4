// Package app implements the application layer for regen.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/regen/internal/engine/orchestrator"
	"go.trai.ch/regen/internal/engine/plan"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	resolver ports.StagingResolver
	stores   ports.StoreOpener
	planner  *plan.Planner
	orch     *orchestrator.Orchestrator
	logger   ports.Logger

	configPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.StagingResolver,
	stores ports.StoreOpener,
	planner *plan.Planner,
	orch *orchestrator.Orchestrator,
	logger ports.Logger,
) *App {
	return &App{
		loader:     loader,
		resolver:   resolver,
		stores:     stores,
		planner:    planner,
		orch:       orch,
		logger:     logger,
		configPath: domain.ManifestFileName,
	}
}

// SetConfigPath overrides the manifest location. Empty values are ignored.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// Generate regenerates the named variants, or all of them when names is
// empty. Overall success requires every selected job to succeed.
func (a *App) Generate(ctx context.Context, names []string) error {
	manifest, layout, store, err := a.session()
	if err != nil {
		return err
	}

	jobs, err := a.planner.Variants(manifest, layout, names)
	if err != nil {
		return err
	}

	results, runErr := a.orch.RunAll(ctx, store, jobs)
	a.report(results)

	if runErr != nil {
		a.logger.Error(runErr)
		return domain.ErrGenerationFailed
	}
	return nil
}

// Bootstrap clones the upstream checkout if absent, then regenerates the
// per-project configuration of every discovered subproject. A failure in one
// subproject's job does not prevent the remaining subprojects from running.
func (a *App) Bootstrap(ctx context.Context) error {
	manifest, layout, store, err := a.session()
	if err != nil {
		return err
	}

	if manifest.Bootstrap == nil {
		return zerr.New("manifest declares no bootstrap section")
	}

	// Without the checkout there is nothing to discover, so a failed clone
	// aborts the whole bootstrap.
	if clone, ok := a.planner.CloneJob(manifest.Bootstrap, layout); ok {
		if _, err := a.orch.RunIfStale(ctx, store, clone); err != nil {
			a.logger.Error(err)
			return domain.ErrGenerationFailed
		}
	}

	jobs, err := a.planner.ProjectJobs(manifest.Bootstrap, manifest.Workspace.Root, layout)
	if err != nil {
		return err
	}

	results, runErr := a.orch.RunAll(ctx, store, jobs)
	a.report(results)

	if runErr != nil {
		a.logger.Error(runErr)
		return domain.ErrGenerationFailed
	}
	return nil
}

// session loads the manifest, resolves the staging layout, and opens the
// record store. Configuration errors are fatal and reported before any job
// runs.
func (a *App) session() (*domain.Manifest, domain.Layout, ports.RecordStore, error) {
	manifest, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, domain.Layout{}, nil, zerr.Wrap(err, "failed to load manifest")
	}

	layout, err := a.resolver.Resolve(manifest.Workspace)
	if err != nil {
		return nil, domain.Layout{}, nil, zerr.Wrap(err, "failed to resolve staging layout")
	}

	return manifest, layout, a.stores.Open(layout.CacheDir), nil
}

func (a *App) report(results []domain.JobResult) {
	var cached, regenerated, failed int
	for _, res := range results {
		switch res.Status {
		case domain.StatusCached:
			cached++
		case domain.StatusRegenerated:
			regenerated++
		case domain.StatusFailed:
			failed++
		}
	}
	a.logger.Info(fmt.Sprintf("%d job(s): %d cached, %d regenerated, %d failed",
		len(results), cached, regenerated, failed))
}
