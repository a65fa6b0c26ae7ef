// Package config loads and validates skillreg configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// PathsConfig holds path configuration.
type PathsConfig struct {
	// SkillsDir is the directory scanned for skill packages.
	SkillsDir string `toml:"skills_dir"`

	// OutputFile is where the generated registry is written.
	OutputFile string `toml:"output_file"`

	// LogsDir is where log files are written when logging.file is set.
	LogsDir string `toml:"logs_dir"`
}

// RegistryConfig holds registry generation settings.
type RegistryConfig struct {
	// DeclarationFile is the manifest filename expected in each skill
	// directory. Default: "SKILL.md".
	DeclarationFile string `toml:"declaration_file"`

	// AllowDuplicateIDs permits two skill directories to declare the same
	// name. Default: false (duplicates fail validation).
	AllowDuplicateIDs bool `toml:"allow_duplicate_ids"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	File   string    `toml:"file"`
}

// Config is the main configuration struct for skillreg.
type Config struct {
	Version  string         `toml:"version"`
	Paths    PathsConfig    `toml:"paths"`
	Registry RegistryConfig `toml:"registry"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		Paths: PathsConfig{
			SkillsDir:  "skills",
			OutputFile: "registry.json",
			LogsDir:    ".skillreg/logs",
		},
		Registry: RegistryConfig{
			DeclarationFile:   "SKILL.md",
			AllowDuplicateIDs: false,
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			File:   "",
		},
	}
}

// Load loads configuration from file, merging with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from the standard locations in a directory.
// Applies in order: defaults -> ~/.skillreg/config.toml -> <dir>/.skillreg/config.toml
// Later configs override earlier ones (project-level takes precedence).
func LoadFromDir(dir string) (*Config, error) {
	cfg := Default()

	// Load global config first (if exists)
	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, ".skillreg", "config.toml")
		if data, err := os.ReadFile(globalConfig); err == nil {
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		}
	}

	// Load project config (overrides global)
	projectConfig := filepath.Join(dir, ".skillreg", "config.toml")
	if data, err := os.ReadFile(projectConfig); err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing project config: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("config version is required")
	}
	if c.Paths.SkillsDir == "" {
		return fmt.Errorf("skills_dir is required")
	}
	if c.Paths.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if c.Registry.DeclarationFile == "" {
		return fmt.Errorf("declaration_file is required")
	}
	switch c.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}

// SkillsDir returns the absolute skills directory path.
func (c *Config) SkillsDir(baseDir string) string {
	if filepath.IsAbs(c.Paths.SkillsDir) {
		return c.Paths.SkillsDir
	}
	return filepath.Join(baseDir, c.Paths.SkillsDir)
}

// OutputFile returns the absolute registry output path.
func (c *Config) OutputFile(baseDir string) string {
	if filepath.IsAbs(c.Paths.OutputFile) {
		return c.Paths.OutputFile
	}
	return filepath.Join(baseDir, c.Paths.OutputFile)
}

// LogFile returns the absolute log file path.
func (c *Config) LogFile(baseDir string) string {
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	if filepath.IsAbs(c.Paths.LogsDir) {
		return filepath.Join(c.Paths.LogsDir, c.Logging.File)
	}
	return filepath.Join(baseDir, c.Paths.LogsDir, c.Logging.File)
}
