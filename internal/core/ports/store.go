package ports

import "go.trai.ch/rapp/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ConfigStore persists the Config record of a cache directory.
type ConfigStore interface {
	// Load returns the record in cacheDir. A missing or unreadable record yields false.
	Load(cacheDir string) (*domain.Config, bool)

	// Save overwrites the record in cacheDir.
	Save(cacheDir string, cfg *domain.Config) error
}

// ViewerStore persists the Viewer record of a cache directory.
type ViewerStore interface {
	// Load returns the record in cacheDir. A missing or unreadable record yields false.
	Load(cacheDir string) (*domain.Viewer, bool)

	// Save overwrites the record in cacheDir.
	Save(cacheDir string, viewer *domain.Viewer) error
}
