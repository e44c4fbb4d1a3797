// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kbchat/logger"
)

const (
	configDirName  = ".kbchat"
	configFileName = "config.yaml"

	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "KBCHAT_CONFIG_DIR"
	// EnvServerURL overrides server.url.
	EnvServerURL = "KBCHAT_SERVER_URL"
	// EnvCompanyID overrides server.companyID.
	EnvCompanyID = "KBCHAT_COMPANY_ID"
)

var configDirOverride string

// SetConfigDir overrides the config directory for the current process.
// Empty value clears the override.
func SetConfigDir(dir string) {
	configDirOverride = strings.TrimSpace(dir)
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	UI      UIConfig      `json:"ui,omitempty" yaml:"ui,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// ServerConfig describes the remote chat service.
type ServerConfig struct {
	URL       string `json:"url" yaml:"url"`                                 // base URL, /chat is appended
	CompanyID string `json:"companyID,omitempty" yaml:"companyID,omitempty"` // optional: skips the gate prompt
}

// UIConfig contains widget display settings.
type UIConfig struct {
	Markdown *bool `json:"markdown,omitempty" yaml:"markdown,omitempty"` // render bot replies as markdown
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Stdout  bool   `json:"stdout,omitempty" yaml:"stdout,omitempty"` // log to stdout
	File    string `json:"file,omitempty" yaml:"file,omitempty"`     // log file path, relative to config dir
}

// ConfigDir returns the directory holding config and logs.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the full path of the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file, applies defaults and environment overrides.
// A missing file is not an error: defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		cfg = DefaultConfig()
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		c.Server.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCompanyID)); v != "" {
		c.Server.CompanyID = v
	}
}

// MarkdownEnabled reports whether bot replies should be rendered as markdown.
func (c *Config) MarkdownEnabled() bool {
	return c.UI.Markdown == nil || *c.UI.Markdown
}

// BuildLoggerConfig converts the logging section into the logger package form.
func (c *Config) BuildLoggerConfig() logger.Config {
	enabled := true
	if c.Logging.Enabled != nil {
		enabled = *c.Logging.Enabled
	}
	return logger.Config{
		Enabled: enabled,
		Level:   c.Logging.Level,
		Stdout:  c.Logging.Stdout,
		File:    c.Logging.File,
	}
}
