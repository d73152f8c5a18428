package app

import (
	"context"
	"strconv"
	"time"

	"go.trai.ch/rapp/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ShowOptions
	// Debounce is the quiet period that ends a burst of changes.
	// Zero means watcher.DefaultDebounceWindow.
	Debounce time.Duration
}

// Watch shows the viewer, then rebuilds and relaunches it whenever the candidate crate changes.
// Failures after the first launch are logged and watching continues until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, viewer, err := a.prepare(ctx, opts.ShowOptions)
	if err != nil {
		return err
	}
	if err := a.launch(ctx, viewer); err != nil {
		return err
	}

	root := cfg.CandidateDir
	if root == "" {
		root = cfg.AppDir
	}

	// Builds write below the target and scratch dirs, which may sit inside root.
	if err := a.Watcher.Start(ctx, root, cfg.TargetDir, cfg.ScratchDir); err != nil {
		return err
	}
	defer func() {
		_ = a.Watcher.Stop()
	}()
	a.Logger.Info("watching " + root + " for changes")

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	changes := a.Watcher.Events()
	go func() {
		for event := range changes {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			a.Logger.Info(strconv.Itoa(len(paths)) + " file(s) changed, rebuilding viewer")
			if err := a.refresh(ctx, cfg); err != nil {
				a.Logger.Error(err)
			}
		}
	}
}

// refresh regenerates and rebuilds the viewer of cfg regardless of the cache, then launches it.
func (a *App) refresh(ctx context.Context, cfg *domain.Config) error {
	var viewer *domain.Viewer

	err := a.stage(ctx, domain.StageViewer, func(ctx context.Context, _ ports.Vertex) error {
		fingerprint, err := a.Fingerprinter.Fingerprint(cfg)
		if err != nil {
			return err
		}
		viewer, err = a.regenerate(ctx, cfg, fingerprint)
		return err
	})
	if err != nil {
		return err
	}

	return a.launch(ctx, viewer)
}
