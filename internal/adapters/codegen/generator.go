// Package codegen materializes the wrapper project and the init scaffold from embedded templates.
package codegen

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed templates
var templates embed.FS

const (
	relativeManifest = "templates/Cargo.relative.toml"
	registryManifest = "templates/Cargo.registry.toml"
	buildScript      = "templates/build.sh"
	entryPoint       = "templates/main.rs"
	libManifest      = "templates/lib.Cargo.toml"
	libEntry         = "templates/lib.rs"
)

var crateNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Templates returns the embedded template files keyed by name.
func Templates() map[string][]byte {
	out := make(map[string][]byte)
	for _, name := range []string{relativeManifest, registryManifest, buildScript, entryPoint} {
		out[name] = mustRead(name)
	}
	return out
}

func mustRead(name string) []byte {
	data, err := templates.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// Generator renders the wrapper project into a Config's scratch directory.
type Generator struct {
	settings domain.Settings
}

// NewGenerator creates a Generator for the given settings.
func NewGenerator(settings *domain.Settings) *Generator {
	return &Generator{settings: *settings}
}

// Generate writes the manifest, the build script and the entry point into cfg.ScratchDir.
// Existing files are overwritten.
func (g *Generator) Generate(cfg *domain.Config) error {
	manifest, err := g.Manifest(cfg)
	if err != nil {
		return err
	}

	script, err := g.BuildScript(cfg)
	if err != nil {
		return err
	}

	srcDir := filepath.Join(cfg.ScratchDir, domain.SourceDirName)
	if err := os.MkdirAll(srcDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", srcDir)
	}

	files := []struct {
		path string
		data []byte
		perm os.FileMode
	}{
		{domain.ManifestPath(cfg.ScratchDir), []byte(manifest), domain.FilePerm},
		{domain.BuildScriptPath(cfg.ScratchDir), []byte(script), domain.ScriptPerm},
		{domain.EntryPointPath(cfg.ScratchDir), mustRead(entryPoint), domain.FilePerm},
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, f.perm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", f.path)
		}
	}

	return nil
}

// Manifest renders the Cargo.toml of the wrapper project.
// The template variant follows cfg.UseRelativePaths. Every value is TOML-encoded,
// so paths holding quotes, backslashes or control characters survive verbatim.
func (g *Generator) Manifest(cfg *domain.Config) (string, error) {
	values := map[string]string{
		"package": g.settings.ReservedName,
		"bin":     g.settings.ViewerBinary,
		"name":    cfg.Name,
		"path":    candidatePath(cfg),
		"library": filepath.Join(cfg.AppDir, "rapp"),
	}

	name := relativeManifest
	if !cfg.UseRelativePaths {
		name = registryManifest
		values["dir"] = cfg.AppDir
		values["library"] = g.settings.LibraryGit
	}

	if err := encodeValues(name, values); err != nil {
		return "", err
	}

	out, err := render(name, string(mustRead(name)), values)
	if err != nil {
		return "", err
	}

	if err := g.validateManifest(out, candidatePath(cfg)); err != nil {
		return "", err
	}

	return out, nil
}

// BuildScript renders build.sh for cfg. All paths are quoted for a POSIX shell.
func (g *Generator) BuildScript(cfg *domain.Config) (string, error) {
	paths := map[string]string{
		"target":   domain.ScratchTargetDir(cfg.ScratchDir),
		"scratch":  cfg.ScratchDir,
		"binary":   g.settings.ViewerBinary,
		"artifact": cfg.ArtifactPath(g.settings.ViewerBinary),
	}

	values := map[string]string{"command": g.settings.BuildCommand}
	for k, v := range paths {
		quoted, err := syntax.Quote(v, syntax.LangPOSIX)
		if err != nil {
			return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrPathNotQuotable, err.Error()), "key", k), "value", v)
		}
		values[k] = quoted
	}

	out, err := render(buildScript, string(mustRead(buildScript)), values)
	if err != nil {
		return "", err
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(out), domain.BuildScriptName); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrBuildScriptInvalid, err.Error()), "build_command", g.settings.BuildCommand)
	}

	return out, nil
}

type manifestSchema struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	} `toml:"bin"`
	Dependencies struct {
		App struct {
			Path string `toml:"path"`
		} `toml:"app"`
	} `toml:"dependencies"`
}

func (g *Generator) validateManifest(content, appPath string) error {
	var m manifestSchema
	if err := toml.Unmarshal([]byte(content), &m); err != nil {
		return zerr.Wrap(domain.ErrManifestInvalid, err.Error())
	}

	if m.Dependencies.App.Path != appPath {
		return zerr.With(zerr.Wrap(domain.ErrManifestInvalid, "candidate path altered"), "path", appPath)
	}

	for _, bin := range m.Bin {
		if bin.Name == g.settings.ViewerBinary {
			return nil
		}
	}

	return zerr.With(zerr.Wrap(domain.ErrManifestInvalid, "viewer binary not declared"), "bin", g.settings.ViewerBinary)
}

// Scaffold creates a new library crate named name in dir.
// It refuses to touch a directory that already holds a manifest.
func (g *Generator) Scaffold(dir, name string) error {
	if !crateNamePattern.MatchString(name) || name == g.settings.ReservedName || name == g.settings.TargetLibrary {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCrateName, "cannot scaffold crate"), "name", name)
	}

	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return zerr.With(zerr.Wrap(domain.ErrProjectExists, "refusing to overwrite"), "path", manifestPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", manifestPath)
	}

	values := map[string]string{
		"name": name,
		"git":  g.settings.LibraryGit,
	}
	if err := encodeValues(libManifest, values); err != nil {
		return err
	}

	manifest, err := render(libManifest, string(mustRead(libManifest)), values)
	if err != nil {
		return err
	}

	srcDir := filepath.Join(dir, domain.SourceDirName)
	if err := os.MkdirAll(srcDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", srcDir)
	}

	if err := os.WriteFile(manifestPath, []byte(manifest), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", manifestPath)
	}

	libPath := filepath.Join(srcDir, domain.LibraryEntryName)
	if err := os.WriteFile(libPath, mustRead(libEntry), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", libPath)
	}

	return nil
}

// encodeValues replaces every value with its TOML string literal, quotes included.
func encodeValues(name string, values map[string]string) error {
	for k, v := range values {
		data, err := toml.Marshal(struct {
			V string `toml:"v"`
		}{v})
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrManifestInvalid, err.Error()), "template", name), "key", k)
		}
		values[k] = strings.TrimSuffix(strings.TrimPrefix(string(data), "v = "), "\n")
	}
	return nil
}

// candidatePath is the location of the candidate crate, falling back to the workspace root.
func candidatePath(cfg *domain.Config) string {
	if cfg.CandidateDir != "" {
		return cfg.CandidateDir
	}
	return cfg.AppDir
}
