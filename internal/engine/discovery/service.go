package discovery

import (
	"context"
	"os"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service queries the workspace, resolves its candidate and persists the resulting Config.
type Service struct {
	metadata ports.MetadataQuery
	store    ports.ConfigStore
	resolver *Resolver
	logger   ports.Logger
}

// NewService creates a discovery Service.
func NewService(
	metadata ports.MetadataQuery,
	store ports.ConfigStore,
	resolver *Resolver,
	logger ports.Logger,
) *Service {
	return &Service{
		metadata: metadata,
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// CreateAndSave implements ports.Discoverer.
func (s *Service) CreateAndSave(ctx context.Context, workDir, cacheDir string) (*domain.Config, error) {
	md, err := s.metadata.Query(ctx, workDir)
	if err != nil {
		return nil, err
	}

	cand, err := s.resolver.Resolve(md, workDir)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("resolved candidate " + cand.Name + " at " + cand.Dir())

	appDir := md.WorkspaceRoot
	if appDir == "" {
		appDir = workDir
	}

	cfg := &domain.Config{
		Name:         cand.Name,
		TargetDir:    md.TargetDirectory,
		ScratchDir:   cacheDir,
		AppDir:       appDir,
		CandidateDir: cand.Dir(),
	}

	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", cacheDir)
	}

	if err := s.store.Save(cacheDir, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
