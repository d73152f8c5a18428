package codegen

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/zerr"
)

var placeholderPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}`)

// Placeholder returns the marker for key as it appears in a template.
func Placeholder(key string) string {
	return "${" + key + "}"
}

// render substitutes values into tmpl in a single pass.
// Every key of values must occur exactly once and no other marker may remain.
func render(name, tmpl string, values map[string]string) (string, error) {
	counts := make(map[string]int)
	for _, marker := range placeholderPattern.FindAllString(tmpl, -1) {
		counts[marker]++
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(values))
	for _, k := range keys {
		marker := Placeholder(k)
		if n := counts[marker]; n != 1 {
			return "", zerr.With(zerr.With(zerr.With(
				zerr.Wrap(domain.ErrTemplatePlaceholder, "placeholder count mismatch"),
				"template", name), "placeholder", marker), "count", n)
		}
		delete(counts, marker)
		pairs = append(pairs, marker, values[k])
	}

	if len(counts) > 0 {
		leftover := make([]string, 0, len(counts))
		for marker := range counts {
			leftover = append(leftover, marker)
		}
		slices.Sort(leftover)
		return "", zerr.With(zerr.With(
			zerr.Wrap(domain.ErrTemplatePlaceholder, "unresolved placeholders"),
			"template", name), "placeholders", leftover)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}
