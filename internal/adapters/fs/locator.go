package fs

import (
	"fmt"
	iofs "io/fs"
	"path"
	"strings"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
)

var _ ports.OutputLocator = (*Locator)(nil)

// Locator finds the compiled test output directory inside a framework cache.
type Locator struct {
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// Locate resolves <CacheRoot>/<version>/<project>/unit-test/output-files.
// Every missing step reports false.
func (l *Locator) Locate(fsys iofs.FS, q ports.LocateQuery) (domain.OutputLocation, bool) {
	version, ok := domain.NewestVersion(subdirs(fsys, q.CacheRoot), q.Order)
	if !ok {
		return domain.OutputLocation{}, false
	}

	versionDir := path.Join(q.CacheRoot, version)
	project, ok := l.selectProject(subdirs(fsys, versionDir), q.Project, q.Quiet)
	if !ok {
		return domain.OutputLocation{}, false
	}

	dir := domain.OutputDirPath(q.CacheRoot, version, project)
	if info, err := iofs.Stat(fsys, dir); err != nil || !info.IsDir() {
		return domain.OutputLocation{}, false
	}

	return domain.OutputLocation{
		Version: version,
		Project: project,
		Dir:     dir,
	}, true
}

// selectProject picks the pinned project when present, else the alphabetically
// first non-reserved directory. names arrive sorted from fs.ReadDir.
func (l *Locator) selectProject(names []string, pinned string, quiet bool) (string, bool) {
	candidates := make([]string, 0, len(names))
	for _, name := range names {
		if _, reserved := domain.ReservedCacheEntries[name]; reserved {
			continue
		}
		candidates = append(candidates, name)
	}

	if pinned != "" {
		for _, name := range candidates {
			if name == pinned {
				return name, true
			}
		}
		return "", false
	}

	if len(candidates) == 0 {
		return "", false
	}

	if len(candidates) > 1 && !quiet && l.logger != nil {
		l.logger.Warn(fmt.Sprintf(
			"multiple projects in test cache (%s), using %q; set 'project' in %s to choose",
			strings.Join(candidates, ", "), candidates[0], domain.ConfigFileName,
		))
	}
	return candidates[0], true
}

// subdirs lists directory names directly under dir, sorted. Missing dir yields nil.
func subdirs(fsys iofs.FS, dir string) []string {
	entries, err := iofs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
