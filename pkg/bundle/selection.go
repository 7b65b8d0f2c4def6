// File: pkg/bundle/selection.go
package bundle

import (
	"fmt"
	"strings"
)

const matchAllSelector = "all"

// ResolveSelection turns a selector into a set of extensions.
// Unknown names are skipped and reported in Selection.Unknown.
func ResolveSelection(selector string, catalog *Catalog) (Selection, error) {
	if strings.EqualFold(strings.TrimSpace(selector), matchAllSelector) {
		return Selection{MatchAll: true}, nil
	}

	sel := Selection{Extensions: make(map[string]struct{})}
	for _, name := range splitSelector(selector) {
		exts, ok := catalog.Lookup(name)
		if !ok {
			sel.Unknown = append(sel.Unknown, name)
			continue
		}
		for _, ext := range exts {
			sel.Extensions[ext] = struct{}{}
		}
	}

	if len(sel.Extensions) == 0 {
		return sel, ErrNoMatchingFiles
	}
	return sel, nil
}

// Matches reports whether an extension is selected. The comparison is case-insensitive.
func (s Selection) Matches(ext string) bool {
	if s.MatchAll {
		return true
	}
	_, ok := s.Extensions[strings.ToLower(ext)]
	return ok
}

// ValidateLanguages rejects selectors that name an unknown language.
// "all" anywhere in the list makes the selector valid.
func ValidateLanguages(selector string, catalog *Catalog) error {
	names := splitSelector(selector)
	if len(names) == 0 {
		return ErrNoLanguages
	}
	for _, name := range names {
		if name == strings.ToUpper(matchAllSelector) {
			return nil
		}
	}
	for _, name := range names {
		if !catalog.Has(name) {
			return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, name)
		}
	}
	return nil
}

// NormalizeSelector upper-cases and trims each name, dropping empty entries.
// A selector containing "all" collapses to "all".
func NormalizeSelector(selector string) string {
	names := splitSelector(selector)
	for _, name := range names {
		if name == strings.ToUpper(matchAllSelector) {
			return matchAllSelector
		}
	}
	return strings.Join(names, ",")
}

func splitSelector(selector string) []string {
	var names []string
	for _, part := range strings.Split(selector, ",") {
		if name := strings.ToUpper(strings.TrimSpace(part)); name != "" {
			names = append(names, name)
		}
	}
	return names
}
