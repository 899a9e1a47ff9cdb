package cmd

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultPrefix is the prefix fixed texts are written with.
const DefaultPrefix = "/"

// Localizer returns a function rewriting "/name" mentions of the given
// command names to prefix. It is meant for fixed texts only; apply it before
// any user input is substituted. The default prefix yields the identity.
func Localizer(prefix string, names []string) func(string) string {
	if prefix == "" || prefix == DefaultPrefix || len(names) == 0 {
		return func(s string) string { return s }
	}
	sorted := slices.Clone(names)
	// Longer names first so "/poison" is never cut short by a shorter name.
	slices.SortFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	pairs := make([]string, 0, 2*len(sorted))
	for _, n := range sorted {
		pairs = append(pairs, DefaultPrefix+n, prefix+n)
	}
	return strings.NewReplacer(pairs...).Replace
}

// Names returns the names of all registered commands, sorted.
func (r *Registry) Names() []string {
	all := r.GetAll()
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
	}
	return names
}
