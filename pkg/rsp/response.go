// File: pkg/rsp/response.go
package rsp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Command renders the answers as a single bundle invocation.
func (a Answers) Command() string {
	var b strings.Builder
	b.WriteString("bundle")
	b.WriteString(" --output " + Quote(a.Output))
	b.WriteString(" --language " + Quote(a.Languages))
	if a.Note {
		b.WriteString(" --note")
	}
	if a.SortByExtension {
		b.WriteString(" --sort")
	}
	if a.RemoveEmptyLines {
		b.WriteString(" --remove-empty-lines")
	}
	if a.Author != "" {
		b.WriteString(" --author " + Quote(a.Author))
	}
	return b.String()
}

// Write stores the rendered command at a.Path, creating its directory.
func Write(a Answers) error {
	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(a.Path, []byte(a.Command()+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write response file: %w", err)
	}
	return nil
}

// Quote wraps s in double quotes when Split would otherwise break it apart.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\r\n\"'\\") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
