package ports

import (
	"context"

	"go.trai.ch/rapp/internal/core/domain"
)

// Launcher runs a built viewer binary.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	Run(ctx context.Context, viewer *domain.Viewer) error
}
