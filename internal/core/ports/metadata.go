package ports

import (
	"context"

	"go.trai.ch/rapp/internal/core/domain"
)

//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

// MetadataQuery returns the dependency graph of the workspace containing a directory.
type MetadataQuery interface {
	// Query inspects the workspace at dir. Only workspace packages are reported.
	Query(ctx context.Context, dir string) (*domain.Metadata, error)
}

// WorkspaceLocator finds the workspace root and target directory without invoking the build tool.
type WorkspaceLocator interface {
	// Locate searches dir and its parents for the workspace manifest.
	Locate(dir string) (domain.Workspace, error)
}
