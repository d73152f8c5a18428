// Package discovery selects the workspace crate to show and records it as the cached Config.
package discovery

import (
	"slices"
	"strings"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver picks the single library crate of a workspace that depends on the target library.
type Resolver struct {
	library  string
	reserved string
}

// NewResolver creates a Resolver for library, never selecting the reserved wrapper name.
func NewResolver(library, reserved string) *Resolver {
	return &Resolver{library: library, reserved: reserved}
}

// Resolve returns the only eligible candidate in md.
//
// Packages are considered when they are workspace members. Metadata without a member list
// is treated as listing only members. searchedDir is reported when nothing qualifies.
func (r *Resolver) Resolve(md *domain.Metadata, searchedDir string) (domain.Candidate, error) {
	matches := r.Candidates(md)

	switch len(matches) {
	case 0:
		err := zerr.Wrap(domain.ErrNoCandidate, "no candidate crate found")
		err = zerr.With(err, "searched_dir", searchedDir)
		return domain.Candidate{}, zerr.With(err, "library", r.library)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, c := range matches {
			names = append(names, c.Name)
		}
		err := zerr.Wrap(domain.ErrAmbiguousCandidates, "more than one crate depends on "+r.library)
		return domain.Candidate{}, zerr.With(err, "candidates", names)
	}
}

// Candidates returns every eligible crate in md, sorted and deduplicated by name.
func (r *Resolver) Candidates(md *domain.Metadata) []domain.Candidate {
	if md == nil {
		return nil
	}

	var members map[string]struct{}
	if len(md.WorkspaceMembers) > 0 {
		members = make(map[string]struct{}, len(md.WorkspaceMembers))
		for _, id := range md.WorkspaceMembers {
			members[id] = struct{}{}
		}
	}

	var matches []domain.Candidate
	for _, pkg := range md.Packages {
		if members != nil {
			if _, ok := members[pkg.ID]; !ok {
				continue
			}
		}
		if !r.eligible(pkg) {
			continue
		}
		matches = append(matches, domain.NewCandidate(pkg))
	}

	slices.SortStableFunc(matches, func(a, b domain.Candidate) int {
		return strings.Compare(a.Name, b.Name)
	})
	return slices.CompactFunc(matches, func(a, b domain.Candidate) bool {
		return a.Name == b.Name
	})
}

func (r *Resolver) eligible(pkg domain.Package) bool {
	return pkg.IsLib() && pkg.Name != r.reserved && pkg.DependsOn(r.library)
}
