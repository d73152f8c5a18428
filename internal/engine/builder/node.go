package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/shell"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.BuildInvoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (ports.BuildInvoker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.ArtifactVerifier](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(executor, verifier, log, s.ViewerBinary), nil
		},
	})
}
