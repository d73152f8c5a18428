package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/cargo"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/store"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// NodeID is the unique identifier for the discovery Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.MetadataNodeID,
			store.ConfigNodeID,
			settings.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			metadata, err := graft.Dep[ports.MetadataQuery](ctx)
			if err != nil {
				return nil, err
			}

			configs, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewService(
				metadata,
				configs,
				NewResolver(s.TargetLibrary, s.ReservedName),
				log,
			), nil
		},
	})
}
