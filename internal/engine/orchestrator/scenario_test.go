package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/regen/internal/adapters/cache"
	"go.trai.ch/regen/internal/adapters/fs"
	"go.trai.ch/regen/internal/adapters/shell"
	"go.trai.ch/regen/internal/adapters/telemetry"
	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/engine/orchestrator"
)

// TestGenerationLifecycle drives a real external tool through the full
// cache lifecycle: regenerate, hit, regenerate after an input edit.
func TestGenerationLifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "schema.yaml")
	output := filepath.Join(tmpDir, "gen", "out.txt")
	runLog := filepath.Join(tmpDir, "runs.log")
	require.NoError(t, os.WriteFile(input, []byte("schema: v1\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o750))

	o := orchestrator.New(
		fs.NewHasher(fs.NewWalker()),
		shell.NewInvoker(quietLogger()),
		telemetry.NewNoOpRecorder(),
		fs.NewVerifier(),
		quietLogger(),
	)
	store := cache.NewStore(filepath.Join(tmpDir, "cache"))

	job := domain.GenerationJob{
		Name:   "docs",
		Key:    "variants/docs",
		Inputs: []string{input},
		Commands: []domain.Command{{
			Program: "sh",
			Args:    []string{"-c", `cat schema.yaml > gen/out.txt && echo ran >> runs.log`},
			Dir:     tmpDir,
		}},
		Outputs: []string{output},
	}

	countRuns := func() int {
		data, err := os.ReadFile(runLog)
		if os.IsNotExist(err) {
			return 0
		}
		require.NoError(t, err)
		n := 0
		for _, b := range data {
			if b == '\n' {
				n++
			}
		}
		return n
	}

	// First run: cold cache, the tool executes and produces the output.
	res, err := o.RunIfStale(context.Background(), store, job)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRegenerated, res.Status)
	assert.FileExists(t, output)
	assert.Equal(t, 1, countRuns())

	// Second run: nothing changed, the tool must not execute again.
	res, err = o.RunIfStale(context.Background(), store, job)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCached, res.Status)
	assert.Equal(t, []string{output}, res.Outputs)
	assert.Equal(t, 1, countRuns())

	// Third run: the tracked input changed, the tool executes exactly once
	// more and the output reflects the new content.
	require.NoError(t, os.WriteFile(input, []byte("schema: v2\n"), 0o600))

	res, err = o.RunIfStale(context.Background(), store, job)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRegenerated, res.Status)
	assert.Equal(t, 2, countRuns())

	produced, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "schema: v2\n", string(produced))
}
