package ports

import (
	"io/fs"

	"go.trai.ch/testbridge/internal/core/domain"
)

// CheckQuery describes one staleness comparison.
type CheckQuery struct {
	OutputDir  string
	SourceRoot string
	Marker     string
	Extensions []string
}

// StalenessChecker decides whether compiled output is older than its sources.
//
//go:generate mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type StalenessChecker interface {
	// Check compares the marker mtime against every watched source file.
	// It returns an error only for traversal failures other than absence.
	Check(fsys fs.FS, q CheckQuery) (domain.Verdict, error)
}
