// Package builder runs the generated build script and checks that it produced the viewer binary.
package builder

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.BuildInvoker.
type Builder struct {
	executor ports.Executor
	verifier ports.ArtifactVerifier
	logger   ports.Logger
	binary   string
}

// NewBuilder creates a Builder expecting an artifact named binary.
func NewBuilder(executor ports.Executor, verifier ports.ArtifactVerifier, logger ports.Logger, binary string) *Builder {
	return &Builder{
		executor: executor,
		verifier: verifier,
		logger:   logger,
		binary:   binary,
	}
}

// Build runs the build script of viewer and returns a copy with the artifact recorded.
//
// The artifact on disk decides success. A non-zero exit of the script is only reported.
func (b *Builder) Build(ctx context.Context, viewer *domain.Viewer) (*domain.Viewer, error) {
	artifact := domain.ArtifactPath(viewer.TargetDir, b.binary)
	if err := os.Remove(artifact); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStaleArtifactRemoveFailed.Error()), "path", artifact)
	}

	script := domain.BuildScriptPath(viewer.CacheDir)
	ok, err := b.verifier.Exists(script)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingBuildScript, "cannot build viewer"), "path", script)
	}

	b.makeExecutable(ctx, script)

	b.logger.Info("building viewer in " + viewer.CacheDir)
	res, err := b.executor.Execute(ctx, domain.Command{
		Name: script,
		Dir:  viewer.CacheDir,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		b.logger.Warn(diagnostic("build script exited with status "+strconv.Itoa(res.ExitCode), res.Stderr))
	}

	ok, err = b.verifier.Exists(artifact)
	if err != nil {
		return nil, err
	}
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrArtifactNotProduced, "build finished"), "path", artifact)
		err = zerr.With(err, "exit_code", res.ExitCode)
		return nil, zerr.With(err, "stderr", strings.TrimSpace(res.Stderr))
	}

	built := *viewer
	built.SetBin(artifact)
	return &built, nil
}

// makeExecutable sets the exec bit of script. Failures are logged and ignored.
func (b *Builder) makeExecutable(ctx context.Context, script string) {
	res, err := b.executor.Execute(ctx, domain.Command{
		Name: "chmod",
		Args: []string{"+x", script},
	})
	switch {
	case err != nil:
		b.logger.Warn("could not mark build script executable: " + err.Error())
	case !res.Success():
		b.logger.Warn(diagnostic("chmod exited with status "+strconv.Itoa(res.ExitCode), res.Stderr))
	}
}

func diagnostic(msg, stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return msg
	}
	return msg + "\n" + stderr
}
