// Package plan turns manifest declarations and discovered subprojects into
// explicit generation jobs, keeping "what is stale" separate from "how it is
// regenerated".
package plan

import (
	"os"
	"path/filepath"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	cloneJobName = "bootstrap:clone"
	cloneJobKey  = "bootstrap/clone"
)

// Planner materializes generation jobs. The platform decides only the command
// prefix used for wrapper tools.
type Planner struct {
	platform domain.Platform
}

// NewPlanner creates a new Planner.
func NewPlanner(platform domain.Platform) *Planner {
	return &Planner{platform: platform}
}

// Variants returns the jobs for the requested variant names, in manifest
// declaration order. An empty names list selects every variant; an unknown
// name is an error.
func (p *Planner) Variants(m *domain.Manifest, layout domain.Layout, names []string) ([]domain.GenerationJob, error) {
	selected := m.Variants
	if len(names) > 0 {
		declared := make(map[string]bool, len(m.Variants))
		for _, spec := range m.Variants {
			declared[spec.Name] = true
		}

		// Report the first unknown name in the caller's argument order so the
		// diagnostic is deterministic.
		for _, name := range names {
			if !declared[name] {
				return nil, zerr.With(zerr.Wrap(domain.ErrVariantNotFound, "unknown variant requested"), "variant", name)
			}
		}

		wanted := make(map[string]bool, len(names))
		for _, name := range names {
			wanted[name] = true
		}

		selected = nil
		for _, spec := range m.Variants {
			if wanted[spec.Name] {
				selected = append(selected, spec)
			}
		}
	}

	jobs := make([]domain.GenerationJob, 0, len(selected))
	for _, spec := range selected {
		jobs = append(jobs, p.materialize(spec, m.Workspace.Root, layout))
	}
	return jobs, nil
}

// materialize resolves a workspace-relative job spec into absolute paths and
// concrete commands.
func (p *Planner) materialize(spec domain.JobSpec, root string, layout domain.Layout) domain.GenerationJob {
	job := domain.GenerationJob{
		Name:    spec.Name,
		Key:     spec.Key,
		Inputs:  joinAll(root, spec.Inputs),
		Outputs: joinAll(root, spec.Outputs),
	}

	if spec.Index != "" {
		job.Index = layout.IndexPath(spec.Index)
	}

	for _, step := range spec.Steps {
		job.Commands = append(job.Commands, p.command(step, root))
	}

	return job
}

func (p *Planner) command(step domain.StepSpec, root string) domain.Command {
	dir := step.Dir
	if dir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	if step.Tool != "" {
		cmd := domain.NewToolCommand(p.platform, step.Tool, dir, step.Args...)
		cmd.Env = step.Env
		return cmd
	}

	return domain.Command{
		Program: step.Program,
		Args:    step.Args,
		Dir:     dir,
		Env:     step.Env,
	}
}

// CloneJob returns the side-effect-only job that clones the upstream
// repository, or ok=false when the checkout already exists. The job has no
// outputs; its staleness is governed purely by its (empty) input set.
func (p *Planner) CloneJob(b *domain.BootstrapSpec, layout domain.Layout) (domain.GenerationJob, bool) {
	checkout := layout.CheckoutPath(b.Checkout)
	if _, err := os.Stat(checkout); err == nil {
		return domain.GenerationJob{}, false
	}

	return domain.GenerationJob{
		Name: cloneJobName,
		Key:  cloneJobKey,
		Commands: []domain.Command{{
			Program: "git",
			Args:    []string{"clone", b.Upstream, checkout},
		}},
	}, true
}

// ProjectJobs discovers the subprojects of the upstream checkout and returns
// one independent job per subproject, in lexical directory order. Each job
// tracks the subproject's seed file plus the shared plugin-source inputs, so
// one subproject's staleness never forces regeneration of another's.
func (p *Planner) ProjectJobs(b *domain.BootstrapSpec, root string, layout domain.Layout) ([]domain.GenerationJob, error) {
	checkout := layout.CheckoutPath(b.Checkout)

	entries, err := os.ReadDir(checkout)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list upstream checkout"), "checkout", checkout)
	}

	pluginInputs := joinAll(root, b.PluginInputs)

	var jobs []domain.GenerationJob
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		projectDir := filepath.Join(checkout, entry.Name())
		seed := filepath.Join(projectDir, b.Seed)
		if _, err := os.Stat(seed); err != nil {
			continue
		}

		inputs := make([]string, 0, len(pluginInputs)+1)
		inputs = append(inputs, seed)
		inputs = append(inputs, pluginInputs...)

		jobs = append(jobs, domain.GenerationJob{
			Name:     "bootstrap:" + entry.Name(),
			Key:      "bootstrap/projects/" + entry.Name(),
			Inputs:   inputs,
			Commands: []domain.Command{domain.NewToolCommand(p.platform, b.Tool, projectDir, b.Args...)},
			Outputs:  joinAll(projectDir, b.Generates),
		})
	}

	return jobs, nil
}

func joinAll(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	result := make([]string, len(paths))
	for i, path := range paths {
		if filepath.IsAbs(path) {
			result[i] = path
			continue
		}
		result[i] = filepath.Join(root, path)
	}
	return result
}
