package ports

import "go.trai.ch/rapp/internal/core/domain"

// ProjectGenerator renders the wrapper project into a cache directory.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ProjectGenerator interface {
	// Generate writes the manifest, build script and entry point for cfg into cfg.ScratchDir.
	Generate(cfg *domain.Config) error

	// Scaffold writes a new library crate named name into dir.
	Scaffold(dir, name string) error
}
