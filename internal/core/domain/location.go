package domain

import (
	"io/fs"
	"path"
	"path/filepath"
)

// OutputLocation is a resolved compiled test output directory.
// Dir is slash-separated and relative to the project root.
type OutputLocation struct {
	Version string
	Project string
	Dir     string
}

// MarkerPath returns the slash-separated path of the marker inside the location.
func (l OutputLocation) MarkerPath(marker string) string {
	return path.Join(l.Dir, marker)
}

// Workspace binds a project root to its filesystem view and configuration.
type Workspace struct {
	// Root is the absolute project root on disk.
	Root string
	// FS is the filesystem rooted at Root. Paths inside it are slash-separated.
	FS     fs.FS
	Config Config
}

// Abs converts a slash-separated path inside the workspace to an OS path.
func (w Workspace) Abs(rel string) string {
	return filepath.Join(w.Root, filepath.FromSlash(rel))
}
