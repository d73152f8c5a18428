// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rapp/internal/core/domain"
)

// Executor defines the interface for running subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command to completion.
	//
	// A non-zero exit status is reported through the result, not as an error.
	// It returns an error only if the process could not be started.
	Execute(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
