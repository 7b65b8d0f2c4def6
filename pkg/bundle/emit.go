// File: pkg/bundle/emit.go
package bundle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// commentPrefix is used for the path and author lines whatever the file's language.
const commentPrefix = "// "

// EmitOptions controls how each file is decorated.
type EmitOptions struct {
	AddSourceComment bool
	StripEmptyLines  bool
	Author           string
}

// StripEmptyLines removes every line that is empty or whitespace only.
func StripEmptyLines(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Emit writes the files to w in order.
func Emit(ctx context.Context, w io.Writer, files []Candidate, opts EmitOptions, logger *zap.Logger) error {
	writer := bufio.NewWriter(w)

	if author := strings.TrimSpace(opts.Author); author != "" {
		if _, err := writer.WriteString(commentPrefix + "Author: " + author + "\n"); err != nil {
			return fmt.Errorf("failed to write author header: %w", err)
		}
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.AddSourceComment {
			if _, err := writer.WriteString(commentPrefix + file.Path + "\n"); err != nil {
				return fmt.Errorf("failed to write source comment for %s: %w", file.Path, err)
			}
		}

		data, err := os.ReadFile(file.Path)
		if err != nil {
			logger.Error("Failed to read file", zap.String("filePath", file.Path), zap.Error(err))
			return fmt.Errorf("error reading file %s: %w", file.Path, err)
		}
		content := string(data)
		if opts.StripEmptyLines {
			content = StripEmptyLines(content)
		}

		if _, err := writer.WriteString(content + "\n"); err != nil {
			logger.Error("Failed to write content", zap.String("contentPath", file.Path), zap.Error(err))
			return fmt.Errorf("failed to write content of %s: %w", file.Path, err)
		}
		logger.Debug("Wrote file to bundle", zap.String("filePath", file.Path), zap.Int("sizeBytes", len(data)))
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// WriteBundle creates or truncates outputPath and emits the files into it.
// Whatever was written before a failure stays on disk.
func WriteBundle(ctx context.Context, outputPath string, files []Candidate, opts EmitOptions, logger *zap.Logger) (err error) {
	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	return Emit(ctx, outFile, files, opts, logger)
}
