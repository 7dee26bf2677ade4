package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/regen/internal/adapters/fs"
)

func newHasher() *fs.Hasher {
	return fs.NewHasher(fs.NewWalker())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestHasher_OrderInvariance(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.txt")
	c := filepath.Join(tmpDir, "c.txt")
	writeFile(t, a, "alpha")
	writeFile(t, b, "beta")
	writeFile(t, c, "gamma")

	h := newHasher()

	fp1, err := h.Fingerprint([]string{a, b, c})
	require.NoError(t, err)
	fp2, err := h.Fingerprint([]string{c, a, b})
	require.NoError(t, err)
	fp3, err := h.Fingerprint([]string{b, c, a})
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.Equal(t, fp1, fp3)
}

func TestHasher_ContentChangeChangesFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	x := filepath.Join(tmpDir, "x")
	writeFile(t, x, "1")

	h := newHasher()

	fp1, err := h.Fingerprint([]string{x})
	require.NoError(t, err)

	writeFile(t, x, "2")
	fp2, err := h.Fingerprint([]string{x})
	require.NoError(t, err)

	assert.NotEqual(t, fp1, fp2)
}

func TestHasher_MembershipChangeChangesFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	writeFile(t, a, "alpha")
	writeFile(t, b, "beta")

	h := newHasher()

	fp1, err := h.Fingerprint([]string{a})
	require.NoError(t, err)
	fp2, err := h.Fingerprint([]string{a, b})
	require.NoError(t, err)

	assert.NotEqual(t, fp1, fp2)
}

func TestHasher_MissingPathIsSentinelNotError(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "never-created")
	empty := filepath.Join(tmpDir, "empty")
	writeFile(t, empty, "")

	h := newHasher()

	fpMissing, err := h.Fingerprint([]string{missing})
	require.NoError(t, err)

	fpMissingAgain, err := h.Fingerprint([]string{missing})
	require.NoError(t, err)
	assert.Equal(t, fpMissing, fpMissingAgain, "absence must hash deterministically")

	// A missing input and an empty existing input are distinguishable, so
	// creating a previously absent file changes the fingerprint.
	fpEmpty, err := h.Fingerprint([]string{empty})
	require.NoError(t, err)
	assert.NotEqual(t, fpMissing, fpEmpty)

	writeFile(t, missing, "")
	fpCreated, err := h.Fingerprint([]string{missing})
	require.NoError(t, err)
	assert.NotEqual(t, fpMissing, fpCreated)
}

func TestHasher_EmptySetIsStableConstant(t *testing.T) {
	h := newHasher()

	fp1, err := h.Fingerprint(nil)
	require.NoError(t, err)
	fp2, err := h.Fingerprint([]string{})
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.NotEmpty(t, fp1)
}

func TestHasher_DirectoryInputTracksContainedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "plugins")
	writeFile(t, filepath.Join(dir, "one.src"), "one")
	writeFile(t, filepath.Join(dir, "two.src"), "two")

	h := newHasher()

	fp1, err := h.Fingerprint([]string{dir})
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "two.src"), "changed")
	fp2, err := h.Fingerprint([]string{dir})
	require.NoError(t, err)

	assert.NotEqual(t, fp1, fp2)
}

func TestHasher_UnlistableSubdirectoryIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "tracked")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "hidden.txt"), "hidden")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	h := newHasher()

	// A fingerprint over a partial file set would be a silent false hit
	// later, so a failed directory listing must fail the whole fingerprint.
	_, err := h.Fingerprint([]string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk tracked directory")
}

func TestHasher_DuplicatePathsAreCanonicalized(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	writeFile(t, a, "alpha")

	h := newHasher()

	fp1, err := h.Fingerprint([]string{a})
	require.NoError(t, err)
	fp2, err := h.Fingerprint([]string{a, a})
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
}
