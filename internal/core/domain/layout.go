package domain

import "path/filepath"

const (
	// StagingDirName is the name of the staging directory under the base dir.
	StagingDirName = "regen"

	// CacheDirName is the name of the cache directory under the staging root.
	CacheDirName = "cache"

	// ManifestFileName is the default name of the project manifest.
	ManifestFileName = "regen.yaml"

	// RecordFileName is the name of the per-key cache record file.
	RecordFileName = "record.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout holds the filesystem locations used by one generation run. It is a
// pure derivation of the workspace configuration; see the staging resolver.
type Layout struct {
	// StagingRoot is the shared run-scoped area for intermediate state.
	StagingRoot string

	// CacheDir is the root under which per-key cache records live.
	CacheDir string
}

// IndexPath resolves a staging-relative index artifact path.
func (l Layout) IndexPath(rel string) string {
	return filepath.Join(l.StagingRoot, filepath.FromSlash(rel))
}

// CheckoutPath resolves a staging-relative upstream checkout directory.
func (l Layout) CheckoutPath(rel string) string {
	return filepath.Join(l.StagingRoot, filepath.FromSlash(rel))
}
