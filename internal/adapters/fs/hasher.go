package fs

import (
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints the watched source set with xxhash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint hashes the path and content of every watched source file.
// WalkDir visits entries in lexical order, so the result is deterministic.
func (h *Hasher) Fingerprint(fsys iofs.FS, sourceRoot string, extensions []string) (string, error) {
	hasher := xxhash.New()

	for path, err := range h.walker.WalkSources(fsys, sourceRoot, extensions) {
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to walk sources"), "source_root", sourceRoot)
		}

		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		if err := hashFile(fsys, path, hasher); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashFile(fsys iofs.FS, path string, w io.Writer) error {
	f, err := fsys.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
