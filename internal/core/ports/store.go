package ports

import "go.trai.ch/testbridge/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving rebuild records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the last build record for a project root.
	// Returns nil, nil if not found.
	Get(root string) (*domain.BuildRecord, error)

	// Put stores the build record.
	Put(root string, record domain.BuildRecord) error
}
