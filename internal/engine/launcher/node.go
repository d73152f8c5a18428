package launcher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rapp/internal/core/ports"
)

// NodeID is the unique identifier for the launcher Graft node.
const NodeID graft.ID = "engine.launcher"

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Launcher, error) {
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

			return NewLauncher(executor, verifier, log, os.Stdout, os.Stderr), nil
		},
	})
}
