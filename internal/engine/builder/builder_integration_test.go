package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rapp/internal/adapters/fs"
	"go.trai.ch/rapp/internal/adapters/shell"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports/mocks"
	"go.trai.ch/rapp/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func writeScript(t *testing.T, viewer *domain.Viewer, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(viewer.CacheDir, domain.DirPerm))
	// Written without the exec bit; the builder sets it.
	require.NoError(t, os.WriteFile(domain.BuildScriptPath(viewer.CacheDir), []byte("#!/bin/sh\n"+body), domain.FilePerm))
}

func newRealBuilder(t *testing.T) (*builder.Builder, *domain.Viewer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	target := t.TempDir()
	viewer := &domain.Viewer{
		CacheDir:  domain.CacheDir(target, domain.CacheName),
		TargetDir: target,
	}
	return builder.NewBuilder(shell.NewExecutor(log), fs.NewVerifier(), log, domain.ViewerBinaryName), viewer
}

func TestBuild_RealScript(t *testing.T) {
	b, viewer := newRealBuilder(t)
	artifact := domain.ArtifactPath(viewer.TargetDir, domain.ViewerBinaryName)

	writeScript(t, viewer, "set -e\nprintf '#!/bin/sh\\necho hi\\n' > "+artifact+"\nchmod +x "+artifact+"\n")

	built, err := b.Build(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, artifact, built.BinPath())
	assert.FileExists(t, artifact)
}

func TestBuild_RealScriptFailsWithoutArtifact(t *testing.T) {
	b, viewer := newRealBuilder(t)
	artifact := domain.ArtifactPath(viewer.TargetDir, domain.ViewerBinaryName)

	require.NoError(t, os.MkdirAll(filepath.Dir(artifact), domain.DirPerm))
	require.NoError(t, os.WriteFile(artifact, []byte("stale"), domain.ScriptPerm))

	writeScript(t, viewer, "echo 'error[E0432]: unresolved import' >&2\nexit 101\n")

	_, err := b.Build(context.Background(), viewer)
	require.ErrorIs(t, err, domain.ErrArtifactNotProduced)
	assert.NoFileExists(t, artifact, "a stale artifact never counts as a build result")
}
