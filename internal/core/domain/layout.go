package domain

import (
	"path"
	"path/filepath"
	"time"
)

const (
	// ToolDirName is the name of the internal workspace directory.
	ToolDirName = ".testbridge"

	// StoreDirName is the name of the build record store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "testbridge.yaml"

	// DefaultCacheRoot is the framework's build cache root, relative to the project root.
	DefaultCacheRoot = ".angular/cache"

	// DefaultSourceRoot is the source tree scanned for staleness.
	DefaultSourceRoot = "src"

	// DefaultMarker is the file whose mtime stands in for the last successful build time.
	DefaultMarker = "init-testbed.js"

	// UnitTestDirName and OutputFilesDirName are the fixed segments below the project directory.
	UnitTestDirName    = "unit-test"
	OutputFilesDirName = "output-files"

	// ArtifactTag prefixes every compiled spec artifact name.
	ArtifactTag = "spec"

	// ArtifactExt is the extension of compiled artifacts.
	ArtifactExt = ".js"

	// SpecSuffix is stripped from source spec paths before mapping.
	SpecSuffix = ".spec.ts"

	// ChunkPrefix marks relative chunk imports emitted by the compiled bundles.
	ChunkPrefix = "./chunk-"

	// DefaultRebuildTimeout bounds a rebuild run.
	DefaultRebuildTimeout = 120 * time.Second

	// DefaultDebounce is the default coalescing window for watch events.
	DefaultDebounce = 300 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ReservedCacheEntries are directories inside a version directory that are never projects.
var ReservedCacheEntries = map[string]struct{}{
	"angular-webpack": {},
	"babel-webpack":   {},
}

// DefaultExtensions are the source suffixes considered relevant to staleness.
func DefaultExtensions() []string {
	return []string{".ts", ".html", ".scss", ".css"}
}

// DefaultRebuildCommand is the command that recompiles the test bundles.
func DefaultRebuildCommand() []string {
	return []string{"npx", "ng", "test", "--watch=false", "--dump-virtual-files"}
}

// DefaultStorePath returns the default path for the build record store.
// It joins .testbridge and store.
func DefaultStorePath() string {
	return filepath.Join(ToolDirName, StoreDirName)
}

// OutputDirPath joins the cache location segments into a slash-separated path.
func OutputDirPath(cacheRoot, version, project string) string {
	return path.Join(cacheRoot, version, project, UnitTestDirName, OutputFilesDirName)
}
