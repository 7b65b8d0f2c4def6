// File: pkg/bundle/discovery.go
package bundle

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"go.uber.org/zap"
)

// Discover lazily walks root and yields every regular file beneath it.
// Symbolic links are reported by WalkDir as links and are not followed.
// Directories matched by rules are pruned; a nil rules value walks everything.
// Any walk error, on the root or below it, is yielded once and ends the sequence.
func Discover(root string, rules *ExclusionRules, logger *zap.Logger) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield(Candidate{}, fmt.Errorf("failed to get absolute path: %w", err))
			return
		}

		stopped := false
		walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return err
			}

			relPath := relativeSlashPath(absRoot, path)

			if d.IsDir() {
				if path != absRoot && rules != nil {
					if fragment, ok := rules.Match(relPath + "/"); ok {
						logger.Debug("Skipping excluded directory",
							zap.String("directory", path),
							zap.String("fragment", fragment))
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !d.Type().IsRegular() {
				logger.Debug("Skipping non-regular file", zap.String("path", path), zap.Stringer("mode", d.Type()))
				return nil
			}

			candidate := Candidate{
				Path: path,
				Rel:  relPath,
				Ext:  filepath.Ext(path),
				Dir:  filepath.Dir(path),
			}
			if !yield(candidate, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})

		if walkErr != nil && !stopped {
			yield(Candidate{}, fmt.Errorf("failed to walk %s: %w", absRoot, walkErr))
		}
	}
}

// relativeSlashPath returns path relative to root with a leading slash, so that
// fragments like "/bin/" also match top-level directories.
func relativeSlashPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	if rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel)
}
