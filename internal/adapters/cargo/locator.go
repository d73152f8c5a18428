package cargo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.WorkspaceLocator by reading manifests with go-toml.
// It never runs cargo.
type Locator struct {
	targetDir string
}

// NewLocator creates a Locator. A non-empty targetDir overrides every other target directory source.
func NewLocator(targetDir string) *Locator {
	return &Locator{targetDir: targetDir}
}

// cargoConfig is the part of .cargo/config.toml that moves the build output.
type cargoConfig struct {
	Build struct {
		TargetDir string `toml:"target-dir"`
	} `toml:"build"`
}

// Locate finds the workspace root for dir.
// The root is the nearest ancestor manifest with a [workspace] table, or else the nearest manifest.
func (l *Locator) Locate(dir string) (domain.Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Workspace{}, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceNotFound.Error()), "searched_dir", dir)
	}

	var nearest, root string
	for current := abs; ; {
		manifest := filepath.Join(current, domain.ManifestFileName)
		isWorkspace, found, err := readManifest(manifest)
		if err != nil {
			return domain.Workspace{}, err
		}
		if found && nearest == "" {
			nearest = current
		}
		if isWorkspace {
			root = current
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if nearest == "" {
		return domain.Workspace{}, zerr.With(
			zerr.Wrap(domain.ErrWorkspaceNotFound, "locate workspace"), "searched_dir", abs)
	}
	if root == "" {
		root = nearest
	}

	targetDir, err := l.resolveTargetDir(root)
	if err != nil {
		return domain.Workspace{}, err
	}

	return domain.Workspace{Root: root, TargetDir: targetDir}, nil
}

func (l *Locator) resolveTargetDir(root string) (string, error) {
	if l.targetDir != "" {
		if filepath.IsAbs(l.targetDir) {
			return filepath.Clean(l.targetDir), nil
		}
		return filepath.Join(root, l.targetDir), nil
	}

	configPath := filepath.Join(root, ".cargo", "config.toml")
	data, err := os.ReadFile(configPath) //nolint:gosec // path is inside the workspace
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", configPath)
	default:
		var cfg cargoConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", configPath)
		}
		if dir := cfg.Build.TargetDir; dir != "" {
			if filepath.IsAbs(dir) {
				return filepath.Clean(dir), nil
			}
			// Relative to the directory holding .cargo.
			return filepath.Join(root, dir), nil
		}
	}

	return filepath.Join(root, domain.DefaultTargetDirName), nil
}

// readManifest reports whether path exists and whether it declares a workspace.
func readManifest(path string) (isWorkspace, found bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a manifest in an ancestor directory
	if errors.Is(err, fs.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	var manifest map[string]any
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return false, true, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	_, isWorkspace = manifest["workspace"]
	return isWorkspace, true, nil
}
