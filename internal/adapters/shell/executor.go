// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs c and waits for it to exit.
//
// Both streams are captured into the result. A stream with a writer in c is copied there;
// otherwise it is forwarded line by line to the vertex stored in ctx, or to the logger at
// debug level when there is none.
func (e *Executor) Execute(ctx context.Context, c domain.Command) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // commands are built by the pipeline
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return domain.CommandResult{}, e.startError(c, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return domain.CommandResult{}, e.startError(c, err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	stdout, stdoutLog := e.writers(ctx, &stdoutBuf, c.Stdout, false)
	stderr, stderrLog := e.writers(ctx, &stderrBuf, c.Stderr, true)

	if err := cmd.Start(); err != nil {
		return domain.CommandResult{}, e.startError(c, err)
	}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(stdout, stdoutPipe)
		return copyErr
	})
	g.Go(func() error {
		_, copyErr := io.Copy(stderr, stderrPipe)
		return copyErr
	})
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	result := domain.CommandResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, zerr.With(zerr.Wrap(waitErr, "command failed"), "command", c.Name)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if copyErr != nil && !errors.Is(copyErr, os.ErrClosed) {
		e.logger.Warn("incomplete output from " + c.Name + ": " + copyErr.Error())
	}

	return result, nil
}

func (e *Executor) startError(c domain.Command, err error) error {
	return zerr.With(zerr.With(
		zerr.Wrap(err, domain.ErrCommandStartFailed.Error()),
		"command", c.Name), "dir", c.Dir)
}

// writers assembles the destination of one stream.
func (e *Executor) writers(ctx context.Context, capture *bytes.Buffer, extra io.Writer, isStderr bool) (io.Writer, *logWriter) {
	if extra != nil {
		return io.MultiWriter(capture, extra), &logWriter{sink: func(string) {}}
	}

	var sink func(string)
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		target := vertex.Stdout()
		if isStderr {
			target = vertex.Stderr()
		}
		sink = func(line string) { _, _ = io.WriteString(target, line+"\n") }
	} else {
		sink = e.logger.Debug
	}

	lw := &logWriter{sink: sink}
	return io.MultiWriter(capture, lw), lw
}

// logWriter forwards complete lines to sink. A trailing partial line is flushed by Close.
type logWriter struct {
	mu   sync.Mutex
	sink func(string)
	buf  []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.sink(strings.TrimSuffix(string(line), "\r"))
}
