package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rapp/internal/adapters/logger"
	"go.trai.ch/rapp/internal/adapters/settings"
	"go.trai.ch/rapp/internal/adapters/telemetry/progrock"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(s.Telemetry, os.Stderr, log)
		},
	})
}

// New creates the telemetry backend named by backend. Stage progress and subprocess
// output are rendered to out.
func New(backend string, out io.Writer, logger ports.Logger) (ports.Telemetry, error) {
	switch backend {
	case domain.TelemetryProgrock:
		return progrock.New(NewLinearRenderer(out), logger), nil
	case domain.TelemetryOTel:
		return NewOTelTelemetry(NewLinearRenderer(out)), nil
	case domain.TelemetryNone, "":
		return NewNoOp(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown telemetry backend"), "telemetry", backend)
	}
}
