// Package config loads the docslink YAML configuration: docs hosts, logging
// and the product settings links are derived from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docslink/internal/errors"
	"git.home.luguber.info/inful/docslink/internal/logfields"
)

// DefaultPath is where the CLI looks for configuration when --config is not given.
const DefaultPath = "docslink.yaml"

// Environment variables that override file values.
const (
	EnvVersionTag = "DOCSLINK_VERSION_TAG"
	EnvDocsHost   = "DOCSLINK_DOCS_HOST"
)

// Config represents the application configuration
type Config struct {
	Docs     DocsConfig     `yaml:"docs"`
	Logging  LoggingConfig  `yaml:"logging"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// DocsConfig selects the hosts links are rendered against. Empty values keep
// the public product hosts.
type DocsConfig struct {
	Host      string `yaml:"host,omitempty"`
	StoreHost string `yaml:"store_host,omitempty"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
		Settings: map[string]any{},
	}
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.ConfigNotFound(configPath)
		}
		return nil, derrors.FileReadError(configPath, err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns defaults when the file does not exist.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		loadEnvFiles()
		slog.Debug("No configuration file, using defaults", logfields.Path(configPath))
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := ValidateConfig(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(configPath)
}

func (c *Config) applyDefaults() {
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
	if c.Settings == nil {
		c.Settings = map[string]any{}
	}
}

func (c *Config) applyEnvOverrides() {
	if tag := os.Getenv(EnvVersionTag); tag != "" {
		version, _ := c.Settings["version"].(map[string]any)
		merged := map[string]any{}
		for k, v := range version {
			merged[k] = v
		}
		merged["tag"] = tag
		c.Settings["version"] = merged
	}
	if host := os.Getenv(EnvDocsHost); host != "" {
		c.Docs.Host = host
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ConfigExists(configPath)
	}

	example := Config{
		Docs: DocsConfig{Host: "www.metabase.com"},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
		Settings: map[string]any{
			"version": map[string]any{
				"tag": "v0.45.2",
			},
			"token-features": map[string]any{
				"sso":     false,
				"hosting": false,
			},
			"active-users-count": 10,
			"site-name":          "Example Analytics",
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return derrors.InternalError("failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return derrors.FileWriteError(configPath, fmt.Errorf("write config: %w", err))
	}
	return nil
}
