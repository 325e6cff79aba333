// Package ports defines the core interfaces for the application.
package ports

import (
	"io/fs"

	"go.trai.ch/testbridge/internal/core/domain"
)

// LocateQuery selects a compiled test output directory under a cache root.
type LocateQuery struct {
	CacheRoot string
	// Project pins the project directory. Empty selects the alphabetically first candidate.
	Project string
	Order   domain.VersionOrder
	// Quiet suppresses the warning about an ambiguous project choice.
	Quiet bool
}

// OutputLocator finds the compiled test output directory.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type OutputLocator interface {
	// Locate walks <CacheRoot>/<version>/<project>/unit-test/output-files inside fsys.
	// A missing directory at any step reports false, never an error.
	Locate(fsys fs.FS, q LocateQuery) (domain.OutputLocation, bool)
}
