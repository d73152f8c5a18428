package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/settings"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			l, err := NewFromSettings(s)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
