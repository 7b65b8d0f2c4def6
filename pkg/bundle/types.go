// File: pkg/bundle/types.go
package bundle

import (
	"errors"
	"path"
)

var (
	// ErrNoMatchingFiles is returned when the selector resolves to no extensions.
	ErrNoMatchingFiles = errors.New("there are no files matching the selected language in the folder")
	// ErrUnsupportedLanguage is returned by strict validation for unknown language names.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNoLanguages is returned when a selector contains no names at all.
	ErrNoLanguages = errors.New("no language given")
)

// Request holds everything needed for a single bundling run.
type Request struct {
	Root             string // Directory to scan
	Selector         string // Comma-separated language names or "all"
	Output           string // Destination path for the bundle
	AddSourceComment bool   // Prefix each file with a path comment
	SortByExtension  bool   // Sort by extension instead of file name
	StripEmptyLines  bool   // Drop whitespace-only lines from each file
	Author           string // Optional author written as a header comment
}

// Selection is a resolved selector.
type Selection struct {
	MatchAll   bool
	Extensions map[string]struct{}
	Unknown    []string // Names skipped because the catalog does not know them
}

// Candidate is a file discovered under the root.
type Candidate struct {
	Path string // Absolute path
	Rel  string // Slash-separated path relative to the root
	Ext  string // Extension as found on disk, including the dot
	Dir  string // Containing directory
}

// Name returns the candidate's base name.
func (c Candidate) Name() string {
	return path.Base(c.Rel)
}

// Result describes a successful run.
type Result struct {
	Output  string   // Absolute output path
	Files   []string // Bundled files in output order
	Message string   // Human-readable confirmation
}
