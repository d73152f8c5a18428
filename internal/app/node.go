package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/codegen"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/rapp/internal/engine/builder"
	"go.trai.ch/rapp/internal/engine/discovery"
	"go.trai.ch/rapp/internal/engine/launcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			logger.NodeID,
			cargo.LocatorNodeID,
			discovery.NodeID,
			store.ConfigNodeID,
			store.ViewerNodeID,
			codegen.NodeID,
			builder.NodeID,
			launcher.NodeID,
			fs.FingerprinterNodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tel), nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	s, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	var svc Services

	if svc.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if svc.Locator, err = graft.Dep[ports.WorkspaceLocator](ctx); err != nil {
		return nil, err
	}
	if svc.Discoverer, err = graft.Dep[ports.Discoverer](ctx); err != nil {
		return nil, err
	}
	if svc.Configs, err = graft.Dep[ports.ConfigStore](ctx); err != nil {
		return nil, err
	}
	if svc.Viewers, err = graft.Dep[ports.ViewerStore](ctx); err != nil {
		return nil, err
	}
	if svc.Generator, err = graft.Dep[ports.ProjectGenerator](ctx); err != nil {
		return nil, err
	}
	if svc.Builder, err = graft.Dep[ports.BuildInvoker](ctx); err != nil {
		return nil, err
	}
	if svc.Launcher, err = graft.Dep[ports.Launcher](ctx); err != nil {
		return nil, err
	}
	if svc.Fingerprinter, err = graft.Dep[ports.Fingerprinter](ctx); err != nil {
		return nil, err
	}
	if svc.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if svc.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}

	return New(svc, s.CacheName), nil
}
