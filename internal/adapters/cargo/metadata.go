// Package cargo queries and locates cargo workspaces.
package cargo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
)

// MetadataQuery implements ports.MetadataQuery using `cargo metadata`.
type MetadataQuery struct {
	cargo     string
	targetDir string
}

// NewMetadataQuery creates a MetadataQuery running the given cargo executable.
// A non-empty targetDir is passed to cargo as CARGO_TARGET_DIR.
func NewMetadataQuery(cargo, targetDir string) *MetadataQuery {
	return &MetadataQuery{cargo: cargo, targetDir: targetDir}
}

// Query returns the workspace packages of the workspace containing dir.
func (q *MetadataQuery) Query(ctx context.Context, dir string) (*domain.Metadata, error) {
	//nolint:gosec // cargo path comes from settings
	cmd := exec.CommandContext(ctx, q.cargo, "metadata", "--format-version", "1", "--no-deps")
	cmd.Dir = dir
	if q.targetDir != "" {
		cmd.Env = append(os.Environ(), "CARGO_TARGET_DIR="+q.targetDir)
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			queryErr := zerr.Wrap(domain.ErrMetadataQueryFailed, "cargo metadata exited with an error")
			queryErr = zerr.With(queryErr, "dir", dir)
			queryErr = zerr.With(queryErr, "exit_code", exitErr.ExitCode())
			return nil, zerr.With(queryErr, "stderr", stderr)
		}

		queryErr := zerr.Wrap(domain.ErrMetadataQueryFailed, "could not run cargo")
		queryErr = zerr.With(queryErr, "cargo", q.cargo)
		return nil, zerr.With(queryErr, "cause", err.Error())
	}

	return parseMetadata(output)
}

func parseMetadata(data []byte) (*domain.Metadata, error) {
	var raw metadataSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}

	meta := &domain.Metadata{
		Packages:         make([]domain.Package, 0, len(raw.Packages)),
		WorkspaceMembers: raw.WorkspaceMembers,
		WorkspaceRoot:    raw.WorkspaceRoot,
		TargetDirectory:  raw.TargetDirectory,
	}

	for _, p := range raw.Packages {
		pkg := domain.Package{
			ID:           p.ID,
			Name:         p.Name,
			ManifestPath: p.ManifestPath,
			Dependencies: make([]domain.Dependency, 0, len(p.Dependencies)),
			Targets:      make([]domain.Target, 0, len(p.Targets)),
		}
		for _, d := range p.Dependencies {
			kind := domain.DependencyNormal
			if d.Kind != nil {
				kind = domain.DependencyKind(*d.Kind)
			}
			pkg.Dependencies = append(pkg.Dependencies, domain.Dependency{Name: d.Name, Kind: kind})
		}
		for _, t := range p.Targets {
			pkg.Targets = append(pkg.Targets, domain.Target{Name: t.Name, Kinds: t.Kind})
		}
		meta.Packages = append(meta.Packages, pkg)
	}

	return meta, nil
}
