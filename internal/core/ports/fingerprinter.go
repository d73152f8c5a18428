package ports

import "go.trai.ch/rapp/internal/core/domain"

// Fingerprinter defines the interface for identifying generation inputs.
//
//go:generate mockgen -destination=mocks/mock_fingerprinter.go -package=mocks -source=fingerprinter.go
type Fingerprinter interface {
	// Fingerprint hashes everything the generated project for cfg is rendered from.
	Fingerprint(cfg *domain.Config) (string, error)
}
