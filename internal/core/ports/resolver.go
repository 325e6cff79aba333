package ports

import "io/fs"

// ArtifactResolver maps source spec paths and chunk imports onto compiled artifacts.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ArtifactResolver interface {
	// ResolveSpec returns the slash-separated artifact path for a source spec.
	ResolveSpec(fsys fs.FS, outputDir, sourcePath, sourceRoot string, fallbacks bool) (string, bool)
	// ResolveChunk returns the slash-separated artifact path for a ./chunk-*.js import.
	ResolveChunk(fsys fs.FS, outputDir, id string) (string, bool)
}
