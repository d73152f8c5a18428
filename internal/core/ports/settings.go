package ports

import "go.trai.ch/rapp/internal/core/domain"

// SettingsLoader defines the interface for loading the tool settings.
type SettingsLoader interface {
	// Load merges defaults, the optional settings file in dir and the environment.
	Load(dir string) (*domain.Settings, error)
}
