// Package config loads the optional TOML file that extends the built-in
// language catalog and exclusion list.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"codebundle/pkg/bundle"
)

const (
	// FileName is looked up in the bundle root when no config path is given.
	FileName = ".codebundle.toml"
	// EnvVar names an alternative config file.
	EnvVar = "CODEBUNDLE_CONFIG"
)

// Config is the on-disk configuration.
//
//	[languages]
//	KOTLIN = [".kt", ".kts"]
//
//	exclude = ["/vendor/"]
//	replace_exclusions = false
type Config struct {
	Languages         map[string][]string `toml:"languages"`
	Exclude           []string            `toml:"exclude"`
	ReplaceExclusions bool                `toml:"replace_exclusions"`
}

// Resolve picks the config path: the explicit flag value, then $CODEBUNDLE_CONFIG,
// then .codebundle.toml in root. The bool reports whether the path was chosen
// explicitly, in which case it must exist.
func Resolve(explicit, root string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env, true
	}
	if root == "" {
		root = "."
	}
	return filepath.Join(root, FileName), false
}

// Load reads and parses the config at path. When required is false a missing
// file yields an empty Config.
func Load(path string, required bool, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			logger.Debug("Config file does not exist and will be skipped", zap.String("filePath", path))
			return Config{}, nil
		}
		logger.Error("Failed to read config file", zap.String("filePath", path), zap.Error(err))
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to parse config file", zap.String("filePath", path), zap.Error(err))
		return Config{}, fmt.Errorf("failed to parse TOML in %s: %w", path, err)
	}

	logger.Debug("Loaded config file",
		zap.String("filePath", path),
		zap.Int("languages", len(cfg.Languages)),
		zap.Int("exclusions", len(cfg.Exclude)))
	return cfg, nil
}

// Build merges the config with the built-in tables. Languages in the file
// replace built-in entries of the same name.
func (c Config) Build() (*bundle.Catalog, *bundle.ExclusionRules) {
	languages := bundle.DefaultLanguages()
	for name, exts := range c.Languages {
		languages[strings.ToUpper(strings.TrimSpace(name))] = exts
	}

	var exclusions []string
	if !c.ReplaceExclusions {
		exclusions = bundle.DefaultExclusions()
	}
	exclusions = append(exclusions, c.Exclude...)

	return bundle.NewCatalog(languages), bundle.NewExclusionRules(exclusions...)
}
