package fs

import (
	iofs "io/fs"
	"path"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StalenessChecker = (*Checker)(nil)

// Checker compares source mtimes against the output marker.
type Checker struct {
	walker *Walker
}

// NewChecker creates a new Checker.
func NewChecker(walker *Walker) *Checker {
	return &Checker{walker: walker}
}

// Check reports stale when the marker is absent or any watched source file is
// strictly newer than it. A missing source root is never stale.
func (c *Checker) Check(fsys iofs.FS, q ports.CheckQuery) (domain.Verdict, error) {
	marker, err := iofs.Stat(fsys, path.Join(q.OutputDir, q.Marker))
	if err != nil {
		return domain.StaleBecause(domain.ReasonMarkerMissing), nil
	}
	baseline := marker.ModTime()

	for src, err := range c.walker.WalkSources(fsys, q.SourceRoot, q.Extensions) {
		if err != nil {
			return domain.Verdict{}, zerr.With(
				zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error()),
				"source_root", q.SourceRoot,
			)
		}

		info, err := iofs.Stat(fsys, src)
		if err != nil {
			// Removed between listing and stat.
			continue
		}

		if info.ModTime().After(baseline) {
			return domain.Verdict{
				Stale:   true,
				Reason:  domain.ReasonSourceNewer,
				Trigger: src,
			}, nil
		}
	}

	return domain.Fresh(), nil
}
