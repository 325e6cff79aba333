package ports

import (
	"context"

	"go.trai.ch/testbridge/internal/core/domain"
)

// Rebuilder runs the external command that recompiles the test bundles.
//
//go:generate mockgen -source=rebuilder.go -destination=mocks/mock_rebuilder.go -package=mocks
type Rebuilder interface {
	// Rebuild blocks until the command exits or its timeout elapses.
	// Failures are reported in the outcome and are never fatal to the caller.
	Rebuild(ctx context.Context, cmd domain.RebuildCommand) domain.RebuildOutcome
}
