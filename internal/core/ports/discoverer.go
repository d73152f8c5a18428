package ports

import (
	"context"

	"go.trai.ch/rapp/internal/core/domain"
)

// Discoverer resolves the candidate crate of a workspace and records the result.
//
//go:generate mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// CreateAndSave queries the workspace at workDir, resolves exactly one candidate,
	// creates cacheDir and persists the resulting Config there.
	CreateAndSave(ctx context.Context, workDir, cacheDir string) (*domain.Config, error)
}
