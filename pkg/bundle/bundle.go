// Package bundle selects files under a directory by language and concatenates them
// into a single output file.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Engine runs bundle requests against a fixed catalog and exclusion list.
type Engine struct {
	catalog *Catalog
	rules   *ExclusionRules
	logger  *zap.Logger
}

// NewEngine returns an engine. A nil logger is replaced by a no-op logger.
func NewEngine(catalog *Catalog, rules *ExclusionRules, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = NewCatalog(DefaultLanguages())
	}
	if rules == nil {
		rules = NewExclusionRules(DefaultExclusions()...)
	}
	return &Engine{catalog: catalog, rules: rules, logger: logger}
}

// Catalog returns the engine's language catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Run resolves the request's selector, collects and orders the matching files,
// and writes the bundle.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()
	logger := e.logger.With(zap.String("root", req.Root), zap.String("selector", req.Selector))
	logger.Debug("Starting bundle process")

	sel, err := ResolveSelection(req.Selector, e.catalog)
	if len(sel.Unknown) > 0 {
		logger.Warn("Skipping unknown languages", zap.Strings("languages", sel.Unknown))
	}
	if err != nil {
		return Result{}, err
	}

	if req.Output == "" {
		return Result{}, errors.New("output path is required")
	}
	outputPath, err := filepath.Abs(req.Output)
	if err != nil {
		logger.Error("Failed to resolve output path", zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	files, err := e.Collect(req.Root, sel, outputPath)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to bundle after filtering")
	}

	Order(files, req.SortByExtension)

	opts := EmitOptions{
		AddSourceComment: req.AddSourceComment,
		StripEmptyLines:  req.StripEmptyLines,
		Author:           req.Author,
	}
	if err := WriteBundle(ctx, outputPath, files, opts, logger); err != nil {
		logger.Error("Failed to write bundle", zap.String("outputFile", outputPath), zap.Error(err))
		return Result{}, err
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	logger.Info("Successfully bundled files",
		zap.String("outputFile", outputPath),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))

	return Result{
		Output:  outputPath,
		Files:   paths,
		Message: fmt.Sprintf("Successfully bundled %d files into %s", len(files), outputPath),
	}, nil
}

// Collect discovers and filters the files under root. The file at skipPath,
// normally the bundle being written, is left out.
func (e *Engine) Collect(root string, sel Selection, skipPath string) ([]Candidate, error) {
	if root == "" {
		root = "."
	}
	if info, err := os.Stat(root); err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var files []Candidate
	for c, err := range Discover(root, e.rules, e.logger) {
		if err != nil {
			return nil, err
		}
		if c.Path == skipPath {
			e.logger.Debug("Skipping output file", zap.String("filePath", c.Path))
			continue
		}
		if !Filter(c, sel, e.rules) {
			continue
		}
		files = append(files, c)
		e.logger.Debug("Added file to bundle list", zap.String("filePath", c.Path))
	}
	return files, nil
}
