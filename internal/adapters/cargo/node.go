package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/settings"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

const (
	// MetadataNodeID is the unique identifier for the metadata query Graft node.
	MetadataNodeID graft.ID = "adapter.cargo_metadata"
	// LocatorNodeID is the unique identifier for the workspace locator Graft node.
	LocatorNodeID graft.ID = "adapter.workspace_locator"
)

func init() {
	graft.Register(graft.Node[ports.MetadataQuery]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.MetadataQuery, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadataQuery(s.Cargo, s.TargetDir), nil
		},
	})

	graft.Register(graft.Node[ports.WorkspaceLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLocator, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(s.TargetDir), nil
		},
	})
}
