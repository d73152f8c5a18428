package telemetry

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/rapp/internal/ui/output"
	"go.trai.ch/rapp/internal/ui/style"
)

// LinearRenderer prints one line per stage event, prefixed with the stage name.
type LinearRenderer struct {
	out *termenv.Output

	mu      sync.Mutex
	stages  map[string]*stageState // spanID -> stage
	buffers map[string]*bytes.Buffer
}

type stageState struct {
	name      string
	startTime time.Time
}

// NewLinearRenderer creates a LinearRenderer writing to w. A nil w means os.Stderr.
func NewLinearRenderer(w io.Writer) *LinearRenderer {
	if w == nil {
		w = os.Stderr
	}
	return &LinearRenderer{
		out:     output.New(w),
		stages:  make(map[string]*stageState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// OnStageStart prints the start line of a stage.
func (r *LinearRenderer) OnStageStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = &stageState{name: name, startTime: startTime}
	r.buffers[spanID] = new(bytes.Buffer)

	_, _ = fmt.Fprintf(r.out, "%s started\n", r.prefix(name))
}

// OnStageLog buffers data and prints complete lines with the stage prefix.
func (r *LinearRenderer) OnStageLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		i := bytes.IndexByte(buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := buf.Next(i + 1)
		r.printLineLocked(stage.name, line)
	}
}

// OnStageComplete flushes the stage buffer and prints its outcome.
func (r *LinearRenderer) OnStageComplete(spanID string, endTime time.Time, err error, cached bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}

	if buf := r.buffers[spanID]; buf.Len() > 0 {
		r.printLineLocked(stage.name, buf.Bytes())
	}

	duration := endTime.Sub(stage.startTime).Round(time.Millisecond)
	prefix := r.prefix(stage.name)

	switch {
	case err != nil:
		symbol := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.out, "%s %s failed after %v: %v\n", prefix, symbol, duration, err)
	case cached:
		symbol := r.out.String(style.Tilde).Foreground(r.out.Color(string(style.Slate))).String()
		_, _ = fmt.Fprintf(r.out, "%s %s cached\n", prefix, symbol)
	default:
		symbol := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green))).String()
		_, _ = fmt.Fprintf(r.out, "%s %s done in %v\n", prefix, symbol, duration)
	}

	delete(r.stages, spanID)
	delete(r.buffers, spanID)
}

func (r *LinearRenderer) prefix(name string) string {
	return r.out.String(fmt.Sprintf("[%s]", name)).Foreground(r.out.Color(string(style.Iris))).String()
}

// printLineLocked prints a line with the stage prefix.
// Must be called with r.mu held.
func (r *LinearRenderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.prefix(name), line)
}
