// Package config holds runtime settings for the server and CLI and the
// Router enum shared by every content package.
//
// Settings are layered: built-in defaults, then the optional YAML file
// under the XDG config directory, then a .env file in the working
// directory, then process environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory and the log prefix.
const AppName = "rn-expo-mcp"

// Environment variables that override file settings.
const (
	EnvLogLevel  = "RN_EXPO_MCP_LOG_LEVEL"
	EnvLogFormat = "RN_EXPO_MCP_LOG_FORMAT"
	EnvRouter    = "RN_EXPO_MCP_ROUTER"
	EnvStyle     = "RN_EXPO_MCP_STYLE"
	EnvWordWrap  = "RN_EXPO_MCP_WORD_WRAP"
	EnvGlamour   = "GLAMOUR_STYLE"
)

// Search result limits accepted by the search-docs tool.
const (
	MinSearchLimit     = 1
	MaxSearchLimit     = 20
	DefaultSearchLimit = 5
)

// Valid log levels and formats.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json", "logfmt"}
)

// Config holds user configuration for rn-expo-mcp.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// DefaultRouter applies when a tool call omits "router". Left
	// unspecified, setup steps and generators use expo-router and best
	// practices show both variants.
	DefaultRouter Router `yaml:"default_router"`

	// Style and WordWrap drive glamour rendering in the CLI.
	Style    string `yaml:"style"`
	WordWrap int    `yaml:"word_wrap"`

	SearchLimit int `yaml:"search_limit"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "text",
		Style:       "auto",
		WordWrap:    100,
		SearchLimit: DefaultSearchLimit,
	}
}

// Path returns the config file location for the current platform.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load builds the effective configuration from every source.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(Path(), os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.mergeEnv(lookup); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path. A missing file is not an error.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Handlers compare against the Router constants, so "Expo-Router " has
	// to become "expo-router" here like the env override does.
	c.DefaultRouter, err = ParseRouter(string(c.DefaultRouter))
	if err != nil {
		return fmt.Errorf("%s: default_router: %w", path, err)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvRouter); ok && v != "" {
		r, err := ParseRouter(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRouter, err)
		}
		c.DefaultRouter = r
	}

	// GLAMOUR_STYLE is glamour's own convention; ours wins when both are set.
	if v, ok := lookup(EnvGlamour); ok && v != "" {
		c.Style = v
	}
	if v, ok := lookup(EnvStyle); ok && v != "" {
		c.Style = v
	}

	if v, ok := lookup(EnvWordWrap); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q: %w", EnvWordWrap, v, err)
		}
		c.WordWrap = n
	}
	return nil
}

// Validate rejects settings the server cannot honor.
func (c Config) Validate() error {
	if !contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q (valid: %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if !contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q (valid: %s)", c.LogFormat, strings.Join(LogFormats, ", "))
	}
	if _, err := ParseRouter(string(c.DefaultRouter)); err != nil {
		return fmt.Errorf("default_router: %w", err)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("word_wrap must be >= 0, got %d", c.WordWrap)
	}
	if c.SearchLimit < MinSearchLimit || c.SearchLimit > MaxSearchLimit {
		return fmt.Errorf("search_limit must be between %d and %d, got %d", MinSearchLimit, MaxSearchLimit, c.SearchLimit)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
