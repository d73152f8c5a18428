// Package store persists cache records as YAML files.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store keeps one record of type T in a named file of a cache directory.
type Store[T any] struct {
	filename string
	logger   ports.Logger
}

// NewConfigStore creates the store for the Config record.
func NewConfigStore(logger ports.Logger) *Store[domain.Config] {
	return &Store[domain.Config]{filename: domain.ConfigFileName, logger: logger}
}

// NewViewerStore creates the store for the Viewer record.
func NewViewerStore(logger ports.Logger) *Store[domain.Viewer] {
	return &Store[domain.Viewer]{filename: domain.ViewerFileName, logger: logger}
}

// Load reads the record from cacheDir.
// A missing file yields false. A malformed file is logged and also yields false.
func (s *Store[T]) Load(cacheDir string) (*T, bool) {
	path := filepath.Join(cacheDir, s.filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is inside the cache directory
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("ignoring unreadable %s record at %s: %v", s.filename, path, err))
		}
		return nil, false
	}

	var record T
	if err := yaml.Unmarshal(data, &record); err != nil {
		s.logger.Warn(fmt.Sprintf("ignoring malformed %s record at %s: %v", s.filename, path, err))
		return nil, false
	}

	return &record, true
}

// Save writes record to cacheDir, replacing any previous one.
func (s *Store[T]) Save(cacheDir string, record *T) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}

	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", cacheDir)
	}

	path := filepath.Join(cacheDir, s.filename)
	//nolint:gosec // path is inside the cache directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecordWriteFailed.Error()), "path", path)
	}

	return nil
}
