package progrock

import (
	"errors"
	"sync"
	"time"

	"github.com/vito/progrock"
)

// StageRenderer receives the lifecycle of recorded stages, keyed by vertex id.
type StageRenderer interface {
	OnStageStart(id, name string, start time.Time)
	OnStageLog(id string, data []byte)
	OnStageComplete(id string, end time.Time, err error, cached bool)
}

var _ progrock.Writer = (*RenderWriter)(nil)

// RenderWriter is a progrock.Writer that replays status updates onto a StageRenderer.
type RenderWriter struct {
	renderer StageRenderer

	mu      sync.Mutex
	started map[string]struct{}
}

// NewRenderWriter creates a RenderWriter feeding renderer.
func NewRenderWriter(renderer StageRenderer) *RenderWriter {
	return &RenderWriter{
		renderer: renderer,
		started:  make(map[string]struct{}),
	}
}

// WriteStatus forwards vertex starts, log chunks and completions in update order.
func (w *RenderWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if v.GetInternal() {
			continue
		}

		if _, ok := w.started[v.GetId()]; !ok && v.GetStarted() != nil {
			w.started[v.GetId()] = struct{}{}
			w.renderer.OnStageStart(v.GetId(), v.GetName(), v.GetStarted().AsTime())
		}

		if v.GetCompleted() != nil {
			w.renderer.OnStageComplete(v.GetId(), v.GetCompleted().AsTime(), vertexError(v), v.GetCached())
		}
	}

	for _, l := range update.GetLogs() {
		w.renderer.OnStageLog(l.GetVertex(), l.GetData())
	}

	return nil
}

// Close does nothing.
func (w *RenderWriter) Close() error {
	return nil
}

func vertexError(v *progrock.Vertex) error {
	switch {
	case v.Error != nil:
		return errors.New(v.GetError())
	case v.GetCanceled():
		return errors.New("canceled")
	default:
		return nil
	}
}
