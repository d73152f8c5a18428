// Package app implements the application layer for rapp.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Services are the collaborators the pipeline is assembled from.
type Services struct {
	Locator       ports.WorkspaceLocator
	Discoverer    ports.Discoverer
	Configs       ports.ConfigStore
	Viewers       ports.ViewerStore
	Generator     ports.ProjectGenerator
	Builder       ports.BuildInvoker
	Launcher      ports.Launcher
	Fingerprinter ports.Fingerprinter
	Watcher       ports.Watcher
	Telemetry     ports.Telemetry
	Logger        ports.Logger
}

// App represents the main application logic.
type App struct {
	Services

	cacheName string
}

// New creates a new App instance storing its state in the cache directory named cacheName.
func New(services Services, cacheName string) *App {
	return &App{
		Services:  services,
		cacheName: cacheName,
	}
}

// ShowOptions are the per-invocation flags of Show.
type ShowOptions struct {
	// Dir is the directory inside the workspace. Empty means the working directory.
	Dir string
	// Rebuild forces discovery, generation and build even when cached records exist.
	Rebuild bool
	// UseRelativePaths selects the manifest that refers to the library by path.
	UseRelativePaths bool
}

// Show resolves the candidate crate, makes sure its viewer is built and launches it.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	_, viewer, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}
	return a.launch(ctx, viewer)
}

// prepare runs the config and viewer stages.
func (a *App) prepare(ctx context.Context, opts ShowOptions) (*domain.Config, *domain.Viewer, error) {
	workDir, err := workingDir(opts.Dir)
	if err != nil {
		return nil, nil, err
	}

	cacheDir, err := a.cacheDir(workDir)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := a.config(ctx, workDir, cacheDir, opts)
	if err != nil {
		return nil, nil, err
	}

	viewer, err := a.viewer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, viewer, nil
}

// cacheDir locates the workspace of workDir and creates its cache directory.
func (a *App) cacheDir(workDir string) (string, error) {
	ws, err := a.Locator.Locate(workDir)
	if err != nil {
		return "", err
	}

	dir := ws.CacheDir(a.cacheName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}
	return dir, nil
}

// config returns the cached Config unless a rebuild is requested, then applies the flags of opts.
func (a *App) config(ctx context.Context, workDir, cacheDir string, opts ShowOptions) (*domain.Config, error) {
	var cfg *domain.Config

	err := a.stage(ctx, domain.StageConfig, func(ctx context.Context, v ports.Vertex) error {
		if !opts.Rebuild {
			if cached, ok := a.Configs.Load(cacheDir); ok {
				a.Logger.Debug("using cached config for " + cached.Name)
				v.Cached()
				cfg = cached
				return nil
			}
		}

		created, err := a.Discoverer.CreateAndSave(ctx, workDir, cacheDir)
		if err != nil {
			return err
		}
		a.Logger.Info("selected crate " + created.Name)
		cfg = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.Rebuild = opts.Rebuild
	cfg.UseRelativePaths = opts.UseRelativePaths
	return cfg, nil
}

// viewer returns the cached Viewer when it was generated from the current inputs.
// Otherwise the project is generated, built and recorded.
func (a *App) viewer(ctx context.Context, cfg *domain.Config) (*domain.Viewer, error) {
	var viewer *domain.Viewer

	err := a.stage(ctx, domain.StageViewer, func(ctx context.Context, v ports.Vertex) error {
		fingerprint, err := a.Fingerprinter.Fingerprint(cfg)
		if err != nil {
			return err
		}

		if !cfg.Rebuild {
			if cached, ok := a.Viewers.Load(cfg.ScratchDir); ok {
				if cached.Matches(cfg, fingerprint) {
					a.Logger.Debug("using cached viewer " + cached.BinPath())
					v.Cached()
					viewer = cached
					return nil
				}
				a.Logger.Info("viewer inputs changed, regenerating")
			}
		}

		viewer, err = a.regenerate(ctx, cfg, fingerprint)
		return err
	})
	if err != nil {
		return nil, err
	}
	return viewer, nil
}

// regenerate writes the wrapper project, builds it and saves the resulting Viewer.
func (a *App) regenerate(ctx context.Context, cfg *domain.Config, fingerprint string) (*domain.Viewer, error) {
	if err := a.Generator.Generate(cfg); err != nil {
		return nil, err
	}

	built, err := a.Builder.Build(ctx, domain.NewViewer(cfg))
	if err != nil {
		return nil, err
	}
	built.Fingerprint = fingerprint

	if err := a.Viewers.Save(cfg.ScratchDir, built); err != nil {
		return nil, err
	}
	return built, nil
}

func (a *App) launch(ctx context.Context, viewer *domain.Viewer) error {
	return a.stage(ctx, domain.StageLaunch, func(ctx context.Context, _ ports.Vertex) error {
		return a.Launcher.Run(ctx, viewer)
	})
}

// stage records fn as one telemetry vertex named name.
func (a *App) stage(ctx context.Context, name string, fn func(context.Context, ports.Vertex) error) error {
	ctx, vertex := a.Telemetry.Record(ctx, name)
	err := fn(ctx, vertex)
	vertex.Complete(err)
	return err
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	// Dir is where the crate is created. Empty means the working directory.
	Dir string
	// Name is the crate name. Empty means the base name of Dir.
	Name string
}

// Init scaffolds a new library crate that depends on the target library.
func (a *App) Init(_ context.Context, opts InitOptions) error {
	dir, err := workingDir(opts.Dir)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(dir)
	}

	if err := a.Generator.Scaffold(dir, name); err != nil {
		return err
	}
	a.Logger.Info("created crate " + name + " in " + dir)
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Dir is the directory inside the workspace. Empty means the working directory.
	Dir string
}

// Clean removes the cache directory of the workspace.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	workDir, err := workingDir(opts.Dir)
	if err != nil {
		return err
	}

	ws, err := a.Locator.Locate(workDir)
	if err != nil {
		return err
	}

	dir := ws.CacheDir(a.cacheName)
	a.Logger.Info("removing " + dir)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "path", dir)
	}
	return nil
}

// workingDir returns dir as an absolute path, defaulting to the process working directory.
func workingDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", dir)
	}
	return abs, nil
}
