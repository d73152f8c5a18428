package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rapp/internal/adapters/telemetry"
	"go.trai.ch/rapp/internal/app"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/rapp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	locator       *mocks.MockWorkspaceLocator
	discoverer    *mocks.MockDiscoverer
	configs       *mocks.MockConfigStore
	viewers       *mocks.MockViewerStore
	generator     *mocks.MockProjectGenerator
	builder       *mocks.MockBuildInvoker
	launcher      *mocks.MockLauncher
	fingerprinter *mocks.MockFingerprinter
	watcher       *mocks.MockWatcher
	logger        *mocks.MockLogger

	ws       domain.Workspace
	cacheDir string
	cfg      *domain.Config
	services app.Services
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	h := &harness{
		locator:       mocks.NewMockWorkspaceLocator(ctrl),
		discoverer:    mocks.NewMockDiscoverer(ctrl),
		configs:       mocks.NewMockConfigStore(ctrl),
		viewers:       mocks.NewMockViewerStore(ctrl),
		generator:     mocks.NewMockProjectGenerator(ctrl),
		builder:       mocks.NewMockBuildInvoker(ctrl),
		launcher:      mocks.NewMockLauncher(ctrl),
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
		watcher:       mocks.NewMockWatcher(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
		ws:            domain.Workspace{Root: root, TargetDir: filepath.Join(root, "target")},
	}
	h.cacheDir = h.ws.CacheDir(domain.CacheName)
	h.cfg = &domain.Config{
		Name:         "foo",
		TargetDir:    h.ws.TargetDir,
		ScratchDir:   h.cacheDir,
		AppDir:       root,
		CandidateDir: filepath.Join(root, "foo"),
	}

	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	h.services = app.Services{
		Locator:       h.locator,
		Discoverer:    h.discoverer,
		Configs:       h.configs,
		Viewers:       h.viewers,
		Generator:     h.generator,
		Builder:       h.builder,
		Launcher:      h.launcher,
		Fingerprinter: h.fingerprinter,
		Watcher:       h.watcher,
		Telemetry:     telemetry.NewNoOp(),
		Logger:        h.logger,
	}
	return h
}

func (h *harness) app() *app.App {
	return app.New(h.services, domain.CacheName)
}

func (h *harness) opts() app.ShowOptions {
	return app.ShowOptions{Dir: h.ws.Root}
}

// cachedViewer returns a built viewer matching cfg under fingerprint.
func (h *harness) cachedViewer(cfg *domain.Config, fingerprint string) *domain.Viewer {
	v := domain.NewViewer(cfg)
	v.SetBin(cfg.ArtifactPath(domain.ViewerBinaryName))
	v.Fingerprint = fingerprint
	return v
}

// expectBuild expects the generate, build and save sequence and returns the viewer that is launched.
func (h *harness) expectBuild(cfg *domain.Config, fingerprint string) *domain.Viewer {
	built := h.cachedViewer(cfg, fingerprint)
	unbuilt := domain.NewViewer(cfg)

	gomock.InOrder(
		h.generator.EXPECT().Generate(cfg).Return(nil),
		h.builder.EXPECT().Build(gomock.Any(), unbuilt).DoAndReturn(
			func(_ context.Context, v *domain.Viewer) (*domain.Viewer, error) {
				out := *v
				out.SetBin(built.BinPath())
				return &out, nil
			}),
		h.viewers.EXPECT().Save(h.cacheDir, built).Return(nil),
	)
	return built
}

func TestShow_ColdCache(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(nil, false)
	h.discoverer.EXPECT().CreateAndSave(gomock.Any(), h.ws.Root, h.cacheDir).Return(h.cfg, nil)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(nil, false)
	built := h.expectBuild(h.cfg, "fp")
	h.launcher.EXPECT().Run(gomock.Any(), built).Return(nil)

	require.NoError(t, h.app().Show(ctx, h.opts()))
	assert.DirExists(t, h.cacheDir)
}

func TestShow_WarmCache(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cached := h.cachedViewer(h.cfg, "fp")

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(cached, true)
	h.launcher.EXPECT().Run(gomock.Any(), cached).Return(nil)

	require.NoError(t, h.app().Show(ctx, h.opts()))
}

func TestShow_RecordsStages(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	h.services.Telemetry = tel

	configVertex := mocks.NewMockVertex(ctrl)
	viewerVertex := mocks.NewMockVertex(ctrl)
	launchVertex := mocks.NewMockVertex(ctrl)
	record := func(v ports.Vertex) func(context.Context, string) (context.Context, ports.Vertex) {
		return func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, v), v
		}
	}

	gomock.InOrder(
		tel.EXPECT().Record(gomock.Any(), domain.StageConfig).DoAndReturn(record(configVertex)),
		configVertex.EXPECT().Cached(),
		configVertex.EXPECT().Complete(nil),
		tel.EXPECT().Record(gomock.Any(), domain.StageViewer).DoAndReturn(record(viewerVertex)),
		viewerVertex.EXPECT().Cached(),
		viewerVertex.EXPECT().Complete(nil),
		tel.EXPECT().Record(gomock.Any(), domain.StageLaunch).DoAndReturn(record(launchVertex)),
		launchVertex.EXPECT().Complete(nil),
	)

	cached := h.cachedViewer(h.cfg, "fp")
	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(cached, true)
	h.launcher.EXPECT().Run(gomock.Any(), cached).DoAndReturn(func(ctx context.Context, _ *domain.Viewer) error {
		v, ok := ports.VertexFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, launchVertex, v)
		return nil
	})

	require.NoError(t, h.app().Show(ctx, h.opts()))
}

func TestShow_RebuildSkipsCaches(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	opts := h.opts()
	opts.Rebuild = true

	rebuilt := *h.cfg
	rebuilt.Rebuild = true

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	// No Load expectations: cached records must not be consulted.
	h.discoverer.EXPECT().CreateAndSave(gomock.Any(), h.ws.Root, h.cacheDir).Return(h.cfg, nil)
	h.fingerprinter.EXPECT().Fingerprint(&rebuilt).Return("fp", nil)
	built := h.expectBuild(&rebuilt, "fp")
	h.launcher.EXPECT().Run(gomock.Any(), built).Return(nil)

	require.NoError(t, h.app().Show(ctx, opts))
	assert.True(t, h.cfg.Rebuild, "flags are applied to the returned config")
}

func TestShow_FlagsOverrideCachedConfig(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	opts := h.opts()
	opts.UseRelativePaths = true

	stored := *h.cfg
	stored.Rebuild = true
	stored.UseRelativePaths = false

	want := *h.cfg
	want.UseRelativePaths = true

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(&stored, true)
	h.fingerprinter.EXPECT().Fingerprint(&want).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(h.cachedViewer(&want, "fp"), true)
	h.launcher.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, h.app().Show(ctx, opts))
}

func TestShow_StaleViewerRegenerates(t *testing.T) {
	tests := []struct {
		name   string
		cached func(h *harness) *domain.Viewer
	}{
		{
			name: "fingerprint changed",
			cached: func(h *harness) *domain.Viewer {
				return h.cachedViewer(h.cfg, "old")
			},
		},
		{
			name: "relative paths changed",
			cached: func(h *harness) *domain.Viewer {
				v := h.cachedViewer(h.cfg, "fp")
				v.UseRelativePaths = true
				return v
			},
		},
		{
			name: "cache dir moved",
			cached: func(h *harness) *domain.Viewer {
				v := h.cachedViewer(h.cfg, "fp")
				v.CacheDir = "/elsewhere"
				return v
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()

			h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
			h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
			h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
			h.viewers.EXPECT().Load(h.cacheDir).Return(tt.cached(h), true)
			built := h.expectBuild(h.cfg, "fp")
			h.launcher.EXPECT().Run(gomock.Any(), built).Return(nil)

			require.NoError(t, h.app().Show(ctx, h.opts()))
		})
	}
}

func TestShow_DiscoveryErrorAborts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(nil, false)
	h.discoverer.EXPECT().CreateAndSave(gomock.Any(), h.ws.Root, h.cacheDir).Return(nil, domain.ErrNoCandidate)

	err := h.app().Show(ctx, h.opts())
	require.ErrorIs(t, err, domain.ErrNoCandidate)
}

func TestShow_LocateErrorAborts(t *testing.T) {
	h := newHarness(t)

	h.locator.EXPECT().Locate(h.ws.Root).Return(domain.Workspace{}, domain.ErrWorkspaceNotFound)

	err := h.app().Show(context.Background(), h.opts())
	require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	assert.NoDirExists(t, h.cacheDir)
}

func TestShow_BuildErrorAborts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(nil, false)
	h.generator.EXPECT().Generate(h.cfg).Return(nil)
	h.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, domain.ErrArtifactNotProduced)
	// Neither Save nor Run may be called.

	err := h.app().Show(ctx, h.opts())
	require.ErrorIs(t, err, domain.ErrArtifactNotProduced)
}

func TestShow_GenerateErrorAborts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(nil, false)
	h.generator.EXPECT().Generate(h.cfg).Return(domain.ErrTemplatePlaceholder)

	err := h.app().Show(ctx, h.opts())
	require.ErrorIs(t, err, domain.ErrTemplatePlaceholder)
}

func TestShow_LaunchError(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cached := h.cachedViewer(h.cfg, "fp")

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)
	h.configs.EXPECT().Load(h.cacheDir).Return(h.cfg, true)
	h.fingerprinter.EXPECT().Fingerprint(h.cfg).Return("fp", nil)
	h.viewers.EXPECT().Load(h.cacheDir).Return(cached, true)
	h.launcher.EXPECT().Run(gomock.Any(), cached).Return(domain.ErrArtifactMissing)

	err := h.app().Show(ctx, h.opts())
	require.ErrorIs(t, err, domain.ErrArtifactMissing)
}

func TestShow_CacheDirBlocked(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.ws.TargetDir, []byte("not a dir"), domain.FilePerm))

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)

	err := h.app().Show(context.Background(), h.opts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheDirCreateFailed.Error())
}

func TestInit(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(h.ws.Root, "my-crate")

	h.generator.EXPECT().Scaffold(dir, "my-crate").Return(nil)

	require.NoError(t, h.app().Init(context.Background(), app.InitOptions{Dir: dir}))
}

func TestInit_ExplicitName(t *testing.T) {
	h := newHarness(t)
	exists := errors.New("exists")

	h.generator.EXPECT().Scaffold(h.ws.Root, "widgets").Return(exists)

	err := h.app().Init(context.Background(), app.InitOptions{Dir: h.ws.Root, Name: "widgets"})
	require.ErrorIs(t, err, exists)
}

func TestClean(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.cacheDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(domain.ConfigPath(h.cacheDir), []byte("name: foo\n"), domain.FilePerm))

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)

	require.NoError(t, h.app().Clean(context.Background(), app.CleanOptions{Dir: h.ws.Root}))
	assert.NoDirExists(t, h.cacheDir)
	assert.DirExists(t, h.ws.TargetDir, "only the cache directory is removed")
}

func TestClean_NoCache(t *testing.T) {
	h := newHarness(t)

	h.locator.EXPECT().Locate(h.ws.Root).Return(h.ws, nil)

	require.NoError(t, h.app().Clean(context.Background(), app.CleanOptions{Dir: h.ws.Root}))
}
