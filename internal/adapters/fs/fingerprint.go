package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter hashes the inputs the wrapper project is generated and built from.
type Fingerprinter struct {
	walker    *Walker
	settings  domain.Settings
	templates map[string][]byte
}

// NewFingerprinter creates a Fingerprinter. templates are the embedded generator templates.
func NewFingerprinter(walker *Walker, settings *domain.Settings, templates map[string][]byte) *Fingerprinter {
	return &Fingerprinter{walker: walker, settings: *settings, templates: templates}
}

// Fingerprint returns a 16 hex digit xxhash of the generation inputs of cfg
// and of the files of the candidate crate. The target and scratch directories are left out
// even when they sit inside the crate, since every build rewrites them.
func (f *Fingerprinter) Fingerprint(cfg *domain.Config) (string, error) {
	hasher := xxhash.New()

	for _, field := range []string{
		cfg.Name,
		cfg.AppDir,
		cfg.CandidateDir,
		cfg.ScratchDir,
		cfg.TargetDir,
		strconv.FormatBool(cfg.UseRelativePaths),
		f.settings.BuildCommand,
		f.settings.ViewerBinary,
		f.settings.ReservedName,
		f.settings.LibraryGit,
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}

	names := make([]string, 0, len(f.templates))
	for name := range f.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.Write(f.templates[name])
		_, _ = hasher.Write([]byte{0})
	}

	if cfg.CandidateDir != "" {
		for path := range f.walker.WalkFiles(cfg.CandidateDir, nil, cfg.TargetDir, cfg.ScratchDir) {
			if err := hashFile(hasher, cfg.CandidateDir, path); err != nil {
				return "", err
			}
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashFile(mainHasher io.Writer, root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	_, _ = mainHasher.Write([]byte(rel))
	_, _ = mainHasher.Write([]byte{0})

	file, err := os.Open(path) //nolint:gosec // path comes from walking the candidate directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, h.Sum64()); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
