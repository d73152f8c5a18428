package domain

import (
	"path/filepath"
	"slices"
)

// DependencyKind is the section of a manifest a dependency is declared in.
type DependencyKind string

const (
	// DependencyNormal is a regular [dependencies] entry.
	DependencyNormal DependencyKind = "normal"
	// DependencyDev is a [dev-dependencies] entry.
	DependencyDev DependencyKind = "dev"
	// DependencyBuild is a [build-dependencies] entry.
	DependencyBuild DependencyKind = "build"
)

// libraryKinds are the target kinds that produce a linkable library.
var libraryKinds = []string{"lib", "rlib", "dylib", "cdylib", "staticlib"}

// Dependency is a single declared dependency of a package.
type Dependency struct {
	Name string
	Kind DependencyKind
}

// Target is a build target of a package (library, binary, example, test, bench, build script).
type Target struct {
	Name  string
	Kinds []string
}

// IsLib reports whether every kind of the target is a library kind.
func (t Target) IsLib() bool {
	if len(t.Kinds) == 0 {
		return false
	}
	for _, k := range t.Kinds {
		if !slices.Contains(libraryKinds, k) {
			return false
		}
	}
	return true
}

// Package is one package as reported by the workspace metadata.
type Package struct {
	ID           string
	Name         string
	ManifestPath string
	Dependencies []Dependency
	Targets      []Target
}

// IsLib reports whether all build targets of the package are libraries.
func (p Package) IsLib() bool {
	if len(p.Targets) == 0 {
		return false
	}
	for _, t := range p.Targets {
		if !t.IsLib() {
			return false
		}
	}
	return true
}

// DependsOn reports whether the package declares a normal dependency on name.
func (p Package) DependsOn(name string) bool {
	for _, d := range p.Dependencies {
		if d.Name == name && d.Kind == DependencyNormal {
			return true
		}
	}
	return false
}

// Metadata is the dependency graph of a workspace.
type Metadata struct {
	Packages         []Package
	WorkspaceMembers []string
	WorkspaceRoot    string
	TargetDirectory  string
}

// Candidate is a workspace library crate eligible to be wrapped and shown.
type Candidate struct {
	Name         string
	IsLib        bool
	Dependencies []Dependency
	ManifestPath string
}

// NewCandidate builds a Candidate from a metadata package.
func NewCandidate(p Package) Candidate {
	return Candidate{
		Name:         p.Name,
		IsLib:        p.IsLib(),
		Dependencies: slices.Clone(p.Dependencies),
		ManifestPath: p.ManifestPath,
	}
}

// Dir returns the directory holding the candidate's manifest.
func (c Candidate) Dir() string {
	if c.ManifestPath == "" {
		return ""
	}
	return filepath.Dir(c.ManifestPath)
}

// Workspace is the located workspace root and its shared build output directory.
type Workspace struct {
	Root      string
	TargetDir string
}

// CacheDir returns the pipeline's cache directory inside the workspace target directory.
func (w Workspace) CacheDir(cacheName string) string {
	return CacheDir(w.TargetDir, cacheName)
}
