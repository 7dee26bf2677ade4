package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// missingSentinel is mixed into the digest for a tracked path that does not
// exist, so that adding and removing an input both change the fingerprint.
var missingSentinel = []byte{0xff, 'a', 'b', 's', 'e', 'n', 't', 0xff}

// Hasher computes fingerprints over tracked input sets.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint digests the content of every path in the set. The set is
// canonicalized (sorted, deduplicated) first, so enumeration order never
// affects the result. An empty set digests to a fixed constant.
func (h *Hasher) Fingerprint(paths []string) (domain.Fingerprint, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	digest := xxhash.New()
	for _, path := range sorted {
		if err := h.hashPath(path, digest); err != nil {
			return "", err
		}
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", digest.Sum64())), nil
}

// hashPath hashes a single tracked path. Missing paths contribute the
// sentinel; directories are expanded to their files in lexical order.
func (h *Hasher) hashPath(path string, digest io.Writer) error {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		_, _ = digest.Write([]byte(path))
		_, _ = digest.Write([]byte{0})
		_, _ = digest.Write(missingSentinel)
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat tracked input"), "path", path)
	}

	if info.IsDir() {
		for filePath, walkErr := range h.walker.WalkFiles(path, nil) {
			if walkErr != nil {
				return zerr.With(zerr.Wrap(walkErr, "failed to walk tracked directory"), "path", path)
			}
			if err := h.hashFile(filePath, digest); err != nil {
				return err
			}
		}
		return nil
	}

	return h.hashFile(path, digest)
}

func (h *Hasher) hashFile(path string, digest io.Writer) error {
	_, _ = digest.Write([]byte(path))
	_, _ = digest.Write([]byte{0})

	sum, err := h.fileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

// fileHash computes the XXHash of a file's content. An unreadable existing
// file is a fatal error for the whole job, never a silent skip.
func (h *Hasher) fileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open tracked input"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to read tracked input"), "path", path)
	}

	return hasher.Sum64(), nil
}
