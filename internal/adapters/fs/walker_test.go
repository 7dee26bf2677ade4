package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/regen/internal/adapters/fs"
)

// collectFiles drains the walk, requiring that no entry carries an error.
func collectFiles(t *testing.T, w *fs.Walker, root string, ignores []string) []string {
	t.Helper()
	var got []string
	for path, err := range w.WalkFiles(root, ignores) {
		require.NoError(t, err)
		got = append(got, path)
	}
	return got
}

func TestWalker_SkipsVersionControlDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	writeFile(t, filepath.Join(tmpDir, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(tmpDir, "sub", "b.txt"), "b")

	got := collectFiles(t, fs.NewWalker(), tmpDir, nil)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.txt"),
		filepath.Join(tmpDir, "sub", "b.txt"),
	}, got)
}

func TestWalker_IgnorePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "keep.go"), "keep")
	writeFile(t, filepath.Join(tmpDir, "skip.tmp"), "skip")
	writeFile(t, filepath.Join(tmpDir, "node_modules", "dep.js"), "dep")

	got := collectFiles(t, fs.NewWalker(), tmpDir, []string{"*.tmp", "node_modules"})

	assert.Equal(t, []string{filepath.Join(tmpDir, "keep.go")}, got)
}

func TestWalker_EarlyTermination(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "a")
	writeFile(t, filepath.Join(tmpDir, "b"), "b")

	w := fs.NewWalker()

	var got []string
	for path, err := range w.WalkFiles(tmpDir, nil) {
		require.NoError(t, err)
		got = append(got, path)
		break
	}

	assert.Len(t, got, 1)
}

func TestWalker_UnlistableDirectoryYieldsError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	locked := filepath.Join(tmpDir, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"), "hidden")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	w := fs.NewWalker()

	var walkErr error
	for _, err := range w.WalkFiles(tmpDir, nil) {
		if err != nil {
			walkErr = err
		}
	}

	require.Error(t, walkErr)
}
