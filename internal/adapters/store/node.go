package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/logger"
	"go.trai.ch/rapp/internal/core/ports"
)

const (
	// ConfigNodeID is the unique identifier for the Config store Graft node.
	ConfigNodeID graft.ID = "adapter.config_store"
	// ViewerNodeID is the unique identifier for the Viewer store Graft node.
	ViewerNodeID graft.ID = "adapter.viewer_store"
)

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConfigStore(log), nil
		},
	})

	graft.Register(graft.Node[ports.ViewerStore]{
		ID:        ViewerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ViewerStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewViewerStore(log), nil
		},
	})
}
