package fs_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/testbridge/internal/adapters/fs"
)

func artifacts(names ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, n := range names {
		fsys[outputDir+"/"+n] = &fstest.MapFile{Data: []byte("export {};")}
	}
	return fsys
}

func TestResolver_ResolveSpec(t *testing.T) {
	tests := []struct {
		name      string
		fsys      fstest.MapFS
		source    string
		fallbacks bool
		want      string
		found     bool
	}{
		{
			name:   "relative path",
			fsys:   artifacts("spec-app-foo-bar.js"),
			source: "src/app/foo/bar.spec.ts",
			want:   outputDir + "/spec-app-foo-bar.js",
			found:  true,
		},
		{
			name:   "absolute path",
			fsys:   artifacts("spec-app-app.js"),
			source: "/work/project/src/app/app.spec.ts",
			want:   outputDir + "/spec-app-app.js",
			found:  true,
		},
		{
			name:   "artifact missing",
			fsys:   artifacts("spec-app-other.js"),
			source: "src/app/app.spec.ts",
		},
		{
			name:   "outside source root",
			fsys:   artifacts("spec-app-app.js"),
			source: "lib/app/app.spec.ts",
		},
		{
			name:   "short name ignored without fallbacks",
			fsys:   artifacts("spec-bar.js"),
			source: "src/app/foo/bar.spec.ts",
		},
		{
			name:      "short name with fallbacks",
			fsys:      artifacts("spec-bar.js"),
			source:    "src/app/foo/bar.spec.ts",
			fallbacks: true,
			want:      outputDir + "/spec-bar.js",
			found:     true,
		},
		{
			name:      "full name wins over fallbacks",
			fsys:      artifacts("spec-bar.js", "spec-app-foo-bar.js"),
			source:    "src/app/foo/bar.spec.ts",
			fallbacks: true,
			want:      outputDir + "/spec-app-foo-bar.js",
			found:     true,
		},
		{
			name:      "deduplicated tail fallback",
			fsys:      artifacts("spec-app-widget.js"),
			source:    `C:\proj\src\app\widget\widget.spec.ts`,
			fallbacks: true,
			want:      outputDir + "/spec-app-widget.js",
			found:     true,
		},
	}

	resolver := fs.NewResolver()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := resolver.ResolveSpec(tt.fsys, outputDir, tt.source, "src", tt.fallbacks)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveSpec_DirectoryIsNotArtifact(t *testing.T) {
	fsys := fstest.MapFS{
		outputDir + "/spec-app-app.js/nested.js": &fstest.MapFile{},
	}

	_, found := fs.NewResolver().ResolveSpec(fsys, outputDir, "src/app/app.spec.ts", "src", false)
	assert.False(t, found)
}

func TestResolver_ResolveChunk(t *testing.T) {
	fsys := artifacts("chunk-5XQ2ZK.js")
	resolver := fs.NewResolver()

	got, found := resolver.ResolveChunk(fsys, outputDir, "./chunk-5XQ2ZK.js")
	assert.True(t, found)
	assert.Equal(t, outputDir+"/chunk-5XQ2ZK.js", got)

	_, found = resolver.ResolveChunk(fsys, outputDir, "./chunk-MISSING.js")
	assert.False(t, found)

	_, found = resolver.ResolveChunk(fsys, outputDir, "@angular/core")
	assert.False(t, found)

	_, found = resolver.ResolveChunk(fsys, outputDir, "./chunk-../../../secret.js")
	assert.False(t, found)
}
