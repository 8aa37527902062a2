// Package config loads recipefind configuration from YAML with environment
// variable overrides.
//
// Precedence, lowest to highest: built-in defaults, the config file, then
// RECIPEFIND_* environment variables. CLI flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/logging"
)

// Environment variables recognised by Load.
const (
	EnvHome          = "RECIPEFIND_HOME"
	EnvOutputFormat  = "RECIPEFIND_OUTPUT_FORMAT"
	EnvPageSize      = "RECIPEFIND_PAGE_SIZE"
	EnvCaseSensitive = "RECIPEFIND_CASE_SENSITIVE"
	EnvLogLevel      = logging.EnvLogLevel
	EnvLogFormat     = logging.EnvLogFormat
	EnvLogFile       = logging.EnvLogFile
)

// CurrentSchemaVersion is written by config init.
const CurrentSchemaVersion = "1.0.0"

const (
	configDirName  = ".recipefind"
	configFileName = "config.yaml"
)

// Config is the top-level configuration document.
type Config struct {
	SchemaVersion string        `json:"schema_version" yaml:"schema_version"`
	Output        OutputConfig  `json:"output" yaml:"output"`
	Search        SearchConfig  `json:"search" yaml:"search"`
	Logging       LoggingConfig `json:"logging" yaml:"logging"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// SearchConfig holds defaults for search invocations.
type SearchConfig struct {
	PageSize      int  `json:"page_size" yaml:"page_size"`
	CaseSensitive bool `json:"case_sensitive" yaml:"case_sensitive"`
}

// LoggingConfig controls log level, format and destination. An empty File
// means stderr.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	File   string `json:"file" yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Search: SearchConfig{
			PageSize:      engine.DefaultPageSize,
			CaseSensitive: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// HomeDir returns the recipefind state directory: $RECIPEFIND_HOME, or
// ~/.recipefind.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load builds a Config from defaults, the YAML file at path, and environment
// overrides. An empty path selects DefaultPath. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides reads RECIPEFIND_* variables. Unparseable numeric or
// boolean values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.PageSize = n
		}
	}
	if v := os.Getenv(EnvCaseSensitive); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Search.CaseSensitive = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

// WriteTo writes cfg as YAML to path, creating parent directories. An
// existing file is only replaced when force is set.
func (c *Config) WriteTo(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// ErrConfigExists is returned by WriteTo when the target exists and force is
// not set.
var ErrConfigExists = errors.New("configuration file already exists")

//nolint:gochecknoglobals // Process-wide config, loaded once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig installs cfg as the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration, or defaults when
// none has been installed.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest clears the process-wide configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
