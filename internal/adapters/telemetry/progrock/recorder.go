// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rapp/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger
	seq    atomic.Uint64
}

// New creates a Recorder whose updates are rendered by renderer as they are recorded.
// A nil renderer discards them. Vertex log messages are mirrored to logger when it is not nil.
func New(renderer StageRenderer, logger ports.Logger) *Recorder {
	if renderer == nil {
		return NewRecorder(progrock.Discard{}, logger)
	}
	return NewRecorder(NewRenderWriter(renderer), logger)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:      w,
		rec:    rec,
		logger: logger,
	}
}

// Record starts recording a new vertex.
// Every call gets its own digest, so a stage recorded twice in one session yields two vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{name: name, vertex: v, logger: r.logger}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
