package codegen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/settings"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// NodeID is the unique identifier for the project generator Graft node.
const NodeID graft.ID = "adapter.codegen"

func init() {
	graft.Register(graft.Node[ports.ProjectGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.ProjectGenerator, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(s), nil
		},
	})
}
