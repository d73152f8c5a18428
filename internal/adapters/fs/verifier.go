package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactVerifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether path is a regular file.
func (v *Verifier) Exists(path string) (bool, error) {
	mode, ok, err := stat(path)
	if err != nil || !ok {
		return false, err
	}
	return mode.IsRegular(), nil
}

// Executable reports whether path is a regular file that some user may execute.
func (v *Verifier) Executable(path string) (bool, error) {
	mode, ok, err := stat(path)
	if err != nil || !ok {
		return false, err
	}
	return mode.IsRegular() && mode.Perm()&0o111 != 0, nil
}

func stat(path string) (iofs.FileMode, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}
	return info.Mode(), true, nil
}
