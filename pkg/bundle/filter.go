// File: pkg/bundle/filter.go
package bundle

import (
	"sort"
	"strings"
)

// Filter reports whether a candidate belongs in the bundle.
// Exclusion is checked against the root-relative path in every mode.
func Filter(c Candidate, sel Selection, rules *ExclusionRules) bool {
	if rules != nil && rules.Excludes(c.Rel) {
		return false
	}
	return sel.Matches(c.Ext)
}

// Order sorts candidates in place by extension or by file name.
// The sort is stable, so ties keep discovery order.
func Order(candidates []Candidate, sortByExtension bool) {
	if sortByExtension {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Ext < candidates[j].Ext
		})
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return lessName(candidates[i].Name(), candidates[j].Name())
	})
}

// lessName compares file names case-insensitively, falling back to the raw
// bytes when the names differ only in case.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
