package plan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/engine/plan"
	"go.trai.ch/zerr"
)

type fakePlatform struct {
	windows bool
}

func (p fakePlatform) IsWindows() bool { return p.windows }

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Workspace: domain.Workspace{Root: "/work", StagingBase: ".staging"},
		Variants: []domain.JobSpec{
			{
				Name:   "docs",
				Key:    "variants/docs",
				Inputs: []string{"schema/api.yaml"},
				Steps: []domain.StepSpec{
					{Program: "protoc", Args: []string{"--doc_out=gen"}, Dir: "schema"},
				},
				Outputs: []string{"gen/docs.md"},
				Index:   "indexes/docs.md",
			},
			{
				Name:   "client",
				Key:    "variants/client",
				Inputs: []string{"schema/api.yaml", "templates"},
				Steps: []domain.StepSpec{
					{Tool: "genw", Args: []string{"client"}, Dir: "sdk", Env: []string{"GEN_MODE=client"}},
				},
				Outputs: []string{"sdk/client.go"},
			},
		},
	}
}

func testLayout() domain.Layout {
	return domain.Layout{
		StagingRoot: "/work/.staging/regen",
		CacheDir:    "/work/.staging/regen/cache",
	}
}

func TestVariants_EmptySelectionMeansAll(t *testing.T) {
	p := plan.NewPlanner(fakePlatform{})

	jobs, err := p.Variants(testManifest(), testLayout(), nil)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "docs", jobs[0].Name)
	assert.Equal(t, "client", jobs[1].Name)
}

func TestVariants_SelectionPreservesDeclarationOrder(t *testing.T) {
	p := plan.NewPlanner(fakePlatform{})

	jobs, err := p.Variants(testManifest(), testLayout(), []string{"client", "docs"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "docs", jobs[0].Name)
	assert.Equal(t, "client", jobs[1].Name)
}

func TestVariants_UnknownNameIsAnError(t *testing.T) {
	p := plan.NewPlanner(fakePlatform{})

	_, err := p.Variants(testManifest(), testLayout(), []string{"docs", "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVariantNotFound))
}

func TestVariants_FirstUnknownNameIsReported(t *testing.T) {
	p := plan.NewPlanner(fakePlatform{})

	// With several unknown names the diagnostic always names the first one in
	// the caller's argument order.
	_, err := p.Variants(testManifest(), testLayout(), []string{"docs", "zeta", "alpha"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVariantNotFound))

	var z *zerr.Error
	require.True(t, errors.As(err, &z))
	assert.Equal(t, "zeta", z.Metadata()["variant"])
}

func TestVariants_MaterializesWorkspaceRelativePaths(t *testing.T) {
	p := plan.NewPlanner(fakePlatform{})

	jobs, err := p.Variants(testManifest(), testLayout(), []string{"docs"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, "variants/docs", job.Key)
	assert.Equal(t, []string{filepath.Join("/work", "schema", "api.yaml")}, job.Inputs)
	assert.Equal(t, []string{filepath.Join("/work", "gen", "docs.md")}, job.Outputs)
	assert.Equal(t, filepath.Join("/work/.staging/regen", "indexes", "docs.md"), job.Index)

	require.Len(t, job.Commands, 1)
	assert.Equal(t, "protoc", job.Commands[0].Program)
	assert.Equal(t, filepath.Join("/work", "schema"), job.Commands[0].Dir)
}

func TestVariants_ToolStepUsesPlatformWrapper(t *testing.T) {
	unix := plan.NewPlanner(fakePlatform{windows: false})

	jobs, err := unix.Variants(testManifest(), testLayout(), []string{"client"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	cmd := jobs[0].Commands[0]
	assert.Equal(t, "./genw", cmd.Program)
	assert.Equal(t, []string{"client"}, cmd.Args)
	assert.Equal(t, []string{"GEN_MODE=client"}, cmd.Env)

	windows := plan.NewPlanner(fakePlatform{windows: true})

	jobs, err = windows.Variants(testManifest(), testLayout(), []string{"client"})
	require.NoError(t, err)

	cmd = jobs[0].Commands[0]
	assert.Equal(t, "cmd", cmd.Program)
	assert.Equal(t, []string{"/c", "genw.bat", "client"}, cmd.Args)
}

func bootstrapSpec() *domain.BootstrapSpec {
	return &domain.BootstrapSpec{
		Upstream:     "https://example.com/upstream.git",
		Checkout:     "upstream",
		Seed:         "project.yaml",
		Tool:         "genw",
		Args:         []string{"generate"},
		Generates:    []string{"gen/model.go"},
		PluginInputs: []string{"plugins/src"},
	}
}

func TestCloneJob_PlannedWhenCheckoutIsAbsent(t *testing.T) {
	layout := domain.Layout{StagingRoot: t.TempDir()}
	p := plan.NewPlanner(fakePlatform{})

	job, ok := p.CloneJob(bootstrapSpec(), layout)
	require.True(t, ok)
	assert.Equal(t, "bootstrap:clone", job.Name)
	assert.Empty(t, job.Inputs)
	assert.Empty(t, job.Outputs)

	require.Len(t, job.Commands, 1)
	assert.Equal(t, "git", job.Commands[0].Program)
	assert.Equal(t, []string{
		"clone",
		"https://example.com/upstream.git",
		filepath.Join(layout.StagingRoot, "upstream"),
	}, job.Commands[0].Args)
}

func TestCloneJob_SkippedWhenCheckoutExists(t *testing.T) {
	layout := domain.Layout{StagingRoot: t.TempDir()}
	require.NoError(t, os.MkdirAll(filepath.Join(layout.StagingRoot, "upstream"), 0o750))

	p := plan.NewPlanner(fakePlatform{})

	_, ok := p.CloneJob(bootstrapSpec(), layout)
	assert.False(t, ok)
}

func TestProjectJobs_DiscoversSeededSubdirectories(t *testing.T) {
	layout := domain.Layout{StagingRoot: t.TempDir()}
	checkout := filepath.Join(layout.StagingRoot, "upstream")

	mkProject := func(name string, seeded bool) {
		dir := filepath.Join(checkout, name)
		require.NoError(t, os.MkdirAll(dir, 0o750))
		if seeded {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "project.yaml"), []byte("name: "+name), 0o600))
		}
	}
	mkProject("alpha", true)
	mkProject("beta", false)
	mkProject("gamma", true)
	require.NoError(t, os.WriteFile(filepath.Join(checkout, "README.md"), []byte("top-level file"), 0o600))

	p := plan.NewPlanner(fakePlatform{})

	jobs, err := p.ProjectJobs(bootstrapSpec(), "/work", layout)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	alpha := jobs[0]
	assert.Equal(t, "bootstrap:alpha", alpha.Name)
	assert.Equal(t, "bootstrap/projects/alpha", alpha.Key)
	assert.Equal(t, []string{
		filepath.Join(checkout, "alpha", "project.yaml"),
		filepath.Join("/work", "plugins", "src"),
	}, alpha.Inputs)
	assert.Equal(t, []string{filepath.Join(checkout, "alpha", "gen", "model.go")}, alpha.Outputs)

	require.Len(t, alpha.Commands, 1)
	assert.Equal(t, "./genw", alpha.Commands[0].Program)
	assert.Equal(t, filepath.Join(checkout, "alpha"), alpha.Commands[0].Dir)

	assert.Equal(t, "bootstrap:gamma", jobs[1].Name)
}

func TestProjectJobs_KeysAreIndependentPerProject(t *testing.T) {
	layout := domain.Layout{StagingRoot: t.TempDir()}
	checkout := filepath.Join(layout.StagingRoot, "upstream")
	for _, name := range []string{"one", "two"} {
		dir := filepath.Join(checkout, name)
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "project.yaml"), []byte(name), 0o600))
	}

	p := plan.NewPlanner(fakePlatform{})

	jobs, err := p.ProjectJobs(bootstrapSpec(), "/work", layout)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.NotEqual(t, jobs[0].Key, jobs[1].Key)
}

func TestProjectJobs_MissingCheckoutIsAnError(t *testing.T) {
	layout := domain.Layout{StagingRoot: t.TempDir()}
	p := plan.NewPlanner(fakePlatform{})

	_, err := p.ProjectJobs(bootstrapSpec(), "/work", layout)
	require.Error(t, err)
}
