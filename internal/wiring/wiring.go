// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rapp/internal/adapters/cargo"
	_ "go.trai.ch/rapp/internal/adapters/codegen"
	_ "go.trai.ch/rapp/internal/adapters/fs"
	_ "go.trai.ch/rapp/internal/adapters/logger"
	_ "go.trai.ch/rapp/internal/adapters/settings"
	_ "go.trai.ch/rapp/internal/adapters/shell"
	_ "go.trai.ch/rapp/internal/adapters/store"
	_ "go.trai.ch/rapp/internal/adapters/telemetry"
	_ "go.trai.ch/rapp/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rapp/internal/app"
	_ "go.trai.ch/rapp/internal/engine/builder"
	_ "go.trai.ch/rapp/internal/engine/discovery"
	_ "go.trai.ch/rapp/internal/engine/launcher"
)
