// Package fs provides file system adapters for walking, fingerprinting and verifying files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// SkippedDirs are never descended into.
var SkippedDirs = []string{".git", ".jj", "target"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root in lexical order, skipping SkippedDirs, ignored names
// and everything inside the excluded directories.
func (w *Walker) WalkFiles(root string, ignores []string, excluded ...string) iter.Seq[string] {
	excluded = AbsDirs(excluded)

	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && (w.skip(d.Name(), ignores) || Excluded(path, excluded)) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func (w *Walker) skip(name string, ignores []string) bool {
	if slices.Contains(SkippedDirs, name) {
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}

	return false
}

// AbsDirs returns the absolute, cleaned form of every non-empty entry of dirs.
func AbsDirs(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			out = append(out, abs)
		}
	}
	return out
}

// Excluded reports whether path is one of dirs or lies below one of them.
// dirs must come from AbsDirs. Matching is by path prefix, not by base name.
func Excluded(path string, dirs []string) bool {
	if len(dirs) == 0 {
		return false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, dir := range dirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
