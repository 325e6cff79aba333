package fs

import (
	iofs "io/fs"
	"path"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
)

var _ ports.ArtifactResolver = (*Resolver)(nil)

// Resolver maps source spec paths and chunk imports onto compiled artifacts.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveSpec returns the artifact for sourcePath inside outputDir.
// With fallbacks enabled it also tries the short names the test builder emits
// when it loses the relative path.
func (r *Resolver) ResolveSpec(
	fsys iofs.FS,
	outputDir, sourcePath, sourceRoot string,
	fallbacks bool,
) (string, bool) {
	name, ok := domain.ArtifactName(sourcePath, sourceRoot)
	if !ok {
		return "", false
	}

	candidates := []string{name}
	if fallbacks {
		candidates = append(candidates, domain.FallbackArtifactNames(sourcePath, sourceRoot)...)
	}

	for _, c := range candidates {
		if p := path.Join(outputDir, c); isFile(fsys, p) {
			return p, true
		}
	}
	return "", false
}

// ResolveChunk returns the artifact for a ./chunk-*.js import inside outputDir.
func (r *Resolver) ResolveChunk(fsys iofs.FS, outputDir, id string) (string, bool) {
	name, ok := domain.ChunkName(id)
	if !ok {
		return "", false
	}

	p := path.Join(outputDir, name)
	if !isFile(fsys, p) {
		return "", false
	}
	return p, true
}

func isFile(fsys iofs.FS, p string) bool {
	info, err := iofs.Stat(fsys, p)
	return err == nil && !info.IsDir()
}
