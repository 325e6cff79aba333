package fs_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/testbridge/internal/adapters/fs"
	"go.trai.ch/testbridge/internal/core/domain"
)

func sources() fstest.MapFS {
	return fstest.MapFS{
		"src/main.ts":                   &fstest.MapFile{Data: []byte("bootstrap()")},
		"src/app/app.component.ts":      &fstest.MapFile{Data: []byte("export class App {}")},
		"src/app/app.component.html":    &fstest.MapFile{Data: []byte("<h1>hi</h1>")},
		"src/assets/logo.svg":           &fstest.MapFile{Data: []byte("<svg/>")},
		"src/node_modules/lib/index.ts": &fstest.MapFile{Data: []byte("ignored")},
		"README.md":                     &fstest.MapFile{Data: []byte("# readme")},
	}
}

func TestHasher_Fingerprint(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	exts := domain.DefaultExtensions()

	t.Run("deterministic", func(t *testing.T) {
		a, err := hasher.Fingerprint(sources(), "src", exts)
		require.NoError(t, err)
		b, err := hasher.Fingerprint(sources(), "src", exts)
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("content change", func(t *testing.T) {
		base, err := hasher.Fingerprint(sources(), "src", exts)
		require.NoError(t, err)

		changed := sources()
		changed["src/main.ts"] = &fstest.MapFile{Data: []byte("bootstrap(App)")}

		got, err := hasher.Fingerprint(changed, "src", exts)
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("rename changes fingerprint", func(t *testing.T) {
		base, err := hasher.Fingerprint(sources(), "src", exts)
		require.NoError(t, err)

		renamed := sources()
		renamed["src/bootstrap.ts"] = renamed["src/main.ts"]
		delete(renamed, "src/main.ts")

		got, err := hasher.Fingerprint(renamed, "src", exts)
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("unwatched files ignored", func(t *testing.T) {
		base, err := hasher.Fingerprint(sources(), "src", exts)
		require.NoError(t, err)

		changed := sources()
		changed["src/assets/logo.svg"] = &fstest.MapFile{Data: []byte("<svg></svg>")}
		changed["src/node_modules/lib/index.ts"] = &fstest.MapFile{Data: []byte("changed")}

		got, err := hasher.Fingerprint(changed, "src", exts)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("missing root", func(t *testing.T) {
		empty, err := hasher.Fingerprint(fstest.MapFS{}, "src", exts)
		require.NoError(t, err)

		other, err := hasher.Fingerprint(fstest.MapFS{"lib/a.ts": &fstest.MapFile{}}, "src", exts)
		require.NoError(t, err)
		assert.Equal(t, empty, other)
	})
}
