package domain

import (
	"slices"
	"strings"
)

// SkippedDirs are never scanned or watched for sources.
var SkippedDirs = map[string]struct{}{
	".git":         {},
	".jj":          {},
	"node_modules": {},
}

// IsSkippedDir reports whether a directory with this base name is ignored.
func IsSkippedDir(name string) bool {
	_, ok := SkippedDirs[name]
	return ok
}

// HasWatchedExtension reports whether name ends with one of extensions.
func HasWatchedExtension(name string, extensions []string) bool {
	return slices.ContainsFunc(extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}
