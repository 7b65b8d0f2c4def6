// Package rsp builds and reads response files holding a bundle invocation.
package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codebundle/pkg/bundle"
)

const (
	// DefaultFileName is used when no response file path is entered.
	DefaultFileName = "response.txt"
	// DefaultOutput is the bundle path written when none is entered.
	DefaultOutput = "bundle.txt"
)

// Answers are the choices collected by the prompter.
type Answers struct {
	Path             string // Where the response file is written
	Output           string
	Languages        string
	Note             bool
	SortByExtension  bool
	RemoveEmptyLines bool
	Author           string
}

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// NewPrompter returns a prompter. A nil logger is replaced by a no-op logger.
func NewPrompter(in io.Reader, out io.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{in: bufio.NewReader(in), out: out, logger: logger}
}

// Build runs the interactive sequence. Relative paths are resolved against cwd.
// Languages are asked again until they validate against the catalog.
func (p *Prompter) Build(catalog *bundle.Catalog, cwd string) (Answers, error) {
	var a Answers

	path, err := p.ask(fmt.Sprintf("Enter the path for the RSP file to save: (default: %s)", DefaultFileName))
	if err != nil {
		return a, err
	}
	a.Path = responsePath(path, cwd)

	output, err := p.ask(fmt.Sprintf("Enter the bundle output path: (default: %s)", DefaultOutput))
	if err != nil {
		return a, err
	}
	if output == "" {
		output = DefaultOutput
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(cwd, output)
	}
	a.Output = output

	for {
		langs, err := p.ask(fmt.Sprintf("Enter language(s) (comma separated, e.g. 'c#,java' or 'all'). Known: %s",
			strings.Join(catalog.Names(), ", ")))
		if err != nil {
			return a, err
		}
		if err := bundle.ValidateLanguages(langs, catalog); err != nil {
			p.logger.Debug("Rejected language input", zap.String("input", langs), zap.Error(err))
			fmt.Fprintf(p.out, "Invalid language input (%v). Please enter valid languages or 'all'.\n", err)
			continue
		}
		a.Languages = bundle.NormalizeSelector(langs)
		break
	}

	if a.Note, err = p.confirm("Add file paths as comments? (Y/N):"); err != nil {
		return a, err
	}
	if a.SortByExtension, err = p.confirm("Sort files by extension? (Y/N) (default name):"); err != nil {
		return a, err
	}
	if a.RemoveEmptyLines, err = p.confirm("Remove empty lines? (Y/N):"); err != nil {
		return a, err
	}
	if a.Author, err = p.ask("Enter author name (optional, press Enter to skip):"); err != nil {
		return a, err
	}

	return a, nil
}

// ask prints the question and returns the trimmed answer. EOF after a partial
// line is accepted; EOF with nothing read is returned as io.ErrUnexpectedEOF.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input ended before all questions were answered: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm returns true for 'y' or 'yes' (case-insensitive).
func (p *Prompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// responsePath applies the default file name and appends it to directory paths.
func responsePath(path, cwd string) string {
	if path == "" {
		return filepath.Join(cwd, DefaultFileName)
	}
	dirLike := strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	if info, err := os.Stat(path); dirLike || (err == nil && info.IsDir()) {
		return filepath.Join(path, DefaultFileName)
	}
	return path
}
