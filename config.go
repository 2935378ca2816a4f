package xstruct

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/telzey/xstruct/xserrors"
)

// Config holds the tool configuration, loadable from a YAML file and
// overridable by command-line flags.
type Config struct {
	Processing ProcessingConfig `yaml:"processing"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProcessingConfig controls document discovery and parsing.
type ProcessingConfig struct {
	// NumThreads is the worker count for concurrent processing
	// (0 = number of CPUs).
	NumThreads int `yaml:"num_threads"`
	// MaxDepth limits directory traversal depth (0 = unlimited).
	MaxDepth int `yaml:"max_depth"`
	// FileExtensions lists the extensions (without dot) treated as XML.
	FileExtensions []string `yaml:"file_extensions"`
}

// OutputConfig controls result serialization.
type OutputConfig struct {
	// File is the JSON output path ("" = summary to stdout only).
	File string `yaml:"file"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`
	// IncludePaths includes member file lists in JSON groups.
	IncludePaths bool `yaml:"include_paths"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File is the log destination ("" = stderr).
	File string `yaml:"file"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() *Config {
	return &Config{
		Processing: ProcessingConfig{
			NumThreads:     0,
			MaxDepth:       0,
			FileExtensions: []string{"xml", "tei"},
		},
		Output: OutputConfig{
			Pretty:       true,
			IncludePaths: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML configuration file and merges it over the
// defaults. Errors are configuration errors and fatal at startup.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &xserrors.ConfigError{
			Path:    path,
			Message: "cannot read configuration file",
			Cause:   err,
		}
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &xserrors.ConfigError{
			Path:    path,
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	if err := cfg.Validate(); err != nil {
		var cfgErr *xserrors.ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no run can proceed with.
func (c *Config) Validate() error {
	if c.Processing.NumThreads < 0 {
		return &xserrors.ConfigError{
			Message: fmt.Sprintf("num_threads must be >= 0, got %d", c.Processing.NumThreads),
		}
	}
	if c.Processing.MaxDepth < 0 {
		return &xserrors.ConfigError{
			Message: fmt.Sprintf("max_depth must be >= 0, got %d", c.Processing.MaxDepth),
		}
	}
	if len(c.Processing.FileExtensions) == 0 {
		return &xserrors.ConfigError{
			Message: "file_extensions must not be empty",
		}
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		return &xserrors.ConfigError{
			Message: fmt.Sprintf("unknown log level %q (want one of %v)", c.Logging.Level, logLevels),
		}
	}
	return nil
}
