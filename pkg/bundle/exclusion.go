// File: pkg/bundle/exclusion.go
package bundle

import (
	"strings"
)

var defaultExclusions = []string{
	"/bin/", "/obj/", "/node_modules/", "/build/", "/dist/", "/out/",
	"/temp/", "/tmp/", "/coverage/", "/.git/", "/.idea/", "/.vscode/",
}

// DefaultExclusions returns the built-in build, dependency and VCS folder markers.
func DefaultExclusions() []string {
	return append([]string(nil), defaultExclusions...)
}

// ExclusionRules is an ordered set of path fragments matched case-insensitively as substrings.
type ExclusionRules struct {
	fragments []string // lower-cased, slash separated
}

// NewExclusionRules compiles the fragments. Backslashes are treated as separators
// so Windows-style markers such as `\bin\` keep working.
func NewExclusionRules(fragments ...string) *ExclusionRules {
	r := &ExclusionRules{fragments: make([]string, 0, len(fragments))}
	seen := make(map[string]bool, len(fragments))
	for _, f := range fragments {
		f = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(f), `\`, "/"))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		r.fragments = append(r.fragments, f)
	}
	return r
}

// Excludes reports whether any fragment occurs in the slash-separated path.
func (r *ExclusionRules) Excludes(path string) bool {
	_, ok := r.Match(path)
	return ok
}

// Match returns the first fragment found in path.
func (r *ExclusionRules) Match(path string) (string, bool) {
	lower := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	for _, f := range r.fragments {
		if strings.Contains(lower, f) {
			return f, true
		}
	}
	return "", false
}

// Fragments returns a copy of the compiled fragments in order.
func (r *ExclusionRules) Fragments() []string {
	return append([]string(nil), r.fragments...)
}
