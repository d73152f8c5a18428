package ports

import (
	"context"

	"go.trai.ch/rapp/internal/core/domain"
)

// BuildInvoker runs the generated build script of a viewer.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type BuildInvoker interface {
	// Build runs the build script in viewer.CacheDir and records the artifact on success.
	Build(ctx context.Context, viewer *domain.Viewer) (*domain.Viewer, error)
}
