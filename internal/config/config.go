package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Discover.
const FileName = ".minic.toml"

// EnvVar names an explicit configuration file, used when no path is given.
const EnvVar = "MINIC_CONFIG"

// Config holds the complete toolchain configuration
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
	LSP         LSPConfig         `toml:"lsp"`
}

// DiagnosticsConfig controls how diagnostics are rendered
type DiagnosticsConfig struct {
	Max     int  `toml:"max"` // 0 = unlimited
	Color   bool `toml:"color"`
	Context bool `toml:"context"`
}

// OutputConfig controls AST and token dumps
type OutputConfig struct {
	Format string `toml:"format"`
}

// LSPConfig holds language server settings
type LSPConfig struct {
	LogVerbosity int    `toml:"log_verbosity"`
	LogFile      string `toml:"log_file"`
}

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{
			Max:     0,
			Color:   true,
			Context: true,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		LSP: LSPConfig{
			LogVerbosity: 1,
		},
	}
}

// Load loads configuration from a TOML file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from dir up to the filesystem root and returns the path of
// the first FileName found, or "" when there is none.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve picks the configuration for a run: an explicit path first, then
// the file named by EnvVar, then a discovered FileName, then Default.
func Resolve(explicit, dir string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		found, err := Discover(dir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Diagnostics.Max < 0 {
		errs = append(errs, fmt.Errorf("diagnostics.max must be >= 0, got %d", c.Diagnostics.Max))
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format))
	}
	if c.LSP.LogVerbosity < 0 || c.LSP.LogVerbosity > 5 {
		errs = append(errs, fmt.Errorf("lsp.log_verbosity must be between 0 and 5, got %d", c.LSP.LogVerbosity))
	}

	return errors.Join(errs...)
}
