// Package fs provides file system adapters that locate compiled test output,
// check it for staleness and map sources onto compiled artifacts.
package fs

import (
	"errors"
	iofs "io/fs"
	"iter"

	"go.trai.ch/testbridge/internal/core/domain"
)

// Walker provides source file walking over an fs.FS.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSources yields every file under root whose name ends with one of extensions.
// A missing root yields nothing. Any other traversal error is yielded once with an
// empty path and ends the walk.
func (w *Walker) WalkSources(fsys iofs.FS, root string, extensions []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := iofs.WalkDir(fsys, root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && domain.IsSkippedDir(d.Name()) {
					return iofs.SkipDir
				}
				return nil
			}

			if !domain.HasWatchedExtension(d.Name(), extensions) {
				return nil
			}

			if !yield(path, nil) {
				return iofs.SkipAll
			}
			return nil
		})

		if err != nil && !errors.Is(err, iofs.ErrNotExist) {
			yield("", err)
		}
	}
}
