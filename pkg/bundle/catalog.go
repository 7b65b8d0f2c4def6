// File: pkg/bundle/catalog.go
package bundle

import (
	"sort"
	"strings"
)

// defaultLanguages is the built-in language table. NewCatalog copies it, so it is never mutated.
var defaultLanguages = map[string][]string{
	"C#":         {".cs"},
	"ANGULAR":    {".scss", ".html", ".ts", ".css", ".json"},
	"REACT":      {".js", ".jsx", ".ts", ".tsx"},
	"C++":        {".cpp", ".h"},
	"DARK":       {".dark"},
	"JAVA":       {".java"},
	"PYTHON":     {".py"},
	"JAVASCRIPT": {".js"},
	"TYPESCRIPT": {".ts"},
	"RUBY":       {".rb"},
	"GO":         {".go"},
	"PHP":        {".php"},
	"HTML":       {".html"},
	"CSS":        {".css"},
	"SQL":        {".sql"},
	"JSON":       {".json"},
	"XML":        {".xml"},
	"YAML":       {".yaml"},
}

// DefaultLanguages returns a copy of the built-in language table.
func DefaultLanguages() map[string][]string {
	out := make(map[string][]string, len(defaultLanguages))
	for name, exts := range defaultLanguages {
		out[name] = append([]string(nil), exts...)
	}
	return out
}

// Catalog maps language names to file extensions.
// Names are stored upper-case; extensions lower-case with a leading dot.
type Catalog struct {
	languages map[string][]string
}

// NewCatalog builds a read-only catalog from the given table.
func NewCatalog(languages map[string][]string) *Catalog {
	c := &Catalog{languages: make(map[string][]string, len(languages))}
	for name, exts := range languages {
		key := normalizeLanguage(name)
		if key == "" {
			continue
		}
		normalized := make([]string, 0, len(exts))
		for _, ext := range exts {
			if e := normalizeExtension(ext); e != "" {
				normalized = append(normalized, e)
			}
		}
		c.languages[key] = normalized
	}
	return c
}

// Lookup returns the extensions registered for a language name (case-insensitive).
func (c *Catalog) Lookup(name string) ([]string, bool) {
	exts, ok := c.languages[normalizeLanguage(name)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), exts...), true
}

// Has reports whether the language is known.
func (c *Catalog) Has(name string) bool {
	_, ok := c.languages[normalizeLanguage(name)]
	return ok
}

// Names returns the sorted language names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.languages))
	for name := range c.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeLanguage(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
