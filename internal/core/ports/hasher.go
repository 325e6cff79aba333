package ports

import "io/fs"

// Hasher computes a content fingerprint of the watched source files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes every file under sourceRoot ending in one of extensions.
	// A missing sourceRoot yields the fingerprint of the empty set.
	Fingerprint(fsys fs.FS, sourceRoot string, extensions []string) (string, error)
}
