package domain

import (
	"path"
	"strings"
)

// SourceRelPath strips everything up to and including the source root from a
// spec path. Backslashes are treated as separators. It reports false when the
// path does not live under sourceRoot.
func SourceRelPath(sourcePath, sourceRoot string) (string, bool) {
	p := strings.ReplaceAll(sourcePath, `\`, "/")
	root := strings.Trim(strings.ReplaceAll(sourceRoot, `\`, "/"), "/")

	var rel string
	if _, after, ok := strings.Cut(p, "/"+root+"/"); ok {
		rel = after
	} else if strings.HasPrefix(p, root+"/") {
		rel = p[len(root)+1:]
	}

	if rel == "" {
		return "", false
	}
	return rel, true
}

// ArtifactName maps a source spec path to its compiled artifact name.
// src/app/foo.spec.ts becomes spec-app-foo.js.
func ArtifactName(sourcePath, sourceRoot string) (string, bool) {
	rel, ok := SourceRelPath(sourcePath, sourceRoot)
	if !ok {
		return "", false
	}
	stem := strings.TrimSuffix(rel, SpecSuffix)
	return artifactFromSegments(strings.Split(stem, "/")), true
}

// FallbackArtifactNames returns the alternative names the test builder emits
// when it cannot compute the full relative path: the bare file name, and for
// paths ending in a repeated segment (app/app) the name without the repeat.
func FallbackArtifactNames(sourcePath, sourceRoot string) []string {
	rel, ok := SourceRelPath(sourcePath, sourceRoot)
	if !ok {
		return nil
	}
	segments := strings.Split(strings.TrimSuffix(rel, SpecSuffix), "/")

	names := []string{artifactFromSegments(segments[len(segments)-1:])}
	if n := len(segments); n >= 2 && segments[n-1] == segments[n-2] {
		names = append(names, artifactFromSegments(segments[:n-1]))
	}
	return names
}

// ChunkName returns the artifact file name for a relative chunk import such as
// ./chunk-ABC123.js.
func ChunkName(id string) (string, bool) {
	if !strings.HasPrefix(id, ChunkPrefix) || !strings.HasSuffix(id, ArtifactExt) {
		return "", false
	}
	name := strings.TrimPrefix(id, "./")
	if path.Base(name) != name {
		return "", false
	}
	return name, true
}

// IsSpecPath reports whether id names a source spec file.
func IsSpecPath(id string) bool {
	return strings.HasSuffix(id, SpecSuffix)
}

func artifactFromSegments(segments []string) string {
	return ArtifactTag + "-" + strings.Join(segments, "-") + ArtifactExt
}
