// Package fs provides file system adapters for walking and hashing tracked inputs.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping version
// control directories and any names matching the ignore patterns. Paths are
// yielded as returned by filepath.WalkDir, i.e. starting with root. A
// directory that cannot be listed aborts the walk and is yielded as a final
// non-nil error; callers must not treat the sequence as complete without
// checking it.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if d.Name() == ".git" || matchesIgnore(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesIgnore(d.Name(), ignores) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			// A consumer that stopped early surfaces as SkipAll, which WalkDir
			// swallows, so err here always means a failed walk with a live
			// consumer.
			yield("", err)
		}
	}
}

// matchesIgnore reports whether name matches any of the ignore patterns.
func matchesIgnore(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
