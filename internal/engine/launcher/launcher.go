// Package launcher runs the built viewer binary.
package launcher

import (
	"context"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Launcher.
type Launcher struct {
	executor ports.Executor
	verifier ports.ArtifactVerifier
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewLauncher creates a Launcher relaying the viewer's output to stdout and stderr.
// Either writer may be nil.
func NewLauncher(
	executor ports.Executor,
	verifier ports.ArtifactVerifier,
	logger ports.Logger,
	stdout, stderr io.Writer,
) *Launcher {
	return &Launcher{
		executor: executor,
		verifier: verifier,
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Run executes the viewer binary without arguments and waits for it to exit.
// The binary is checked on disk, including its exec bit, before every launch. Its exit status is reported, not returned.
func (l *Launcher) Run(ctx context.Context, viewer *domain.Viewer) error {
	if !viewer.Built() {
		return zerr.With(zerr.Wrap(domain.ErrNotBuilt, "cannot launch viewer"), "cache_dir", viewer.CacheDir)
	}

	bin := viewer.BinPath()
	ok, err := l.verifier.Executable(bin)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "cannot launch viewer"), "path", bin)
	}

	l.logger.Debug("launching " + bin)
	res, err := l.executor.Execute(ctx, domain.Command{
		Name:   bin,
		Stdout: l.stdout,
		Stderr: l.stderr,
	})
	if err != nil {
		return err
	}

	if !res.Success() {
		msg := "viewer exited with status " + strconv.Itoa(res.ExitCode)
		if out := strings.TrimSpace(res.Stdout + res.Stderr); out != "" {
			msg += "\n" + out
		}
		l.logger.Warn(msg)
	}
	return nil
}
