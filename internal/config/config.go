// Package config provides configuration types and defaults for highlighter.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zjrosen/highlighter/highlight"
	"github.com/zjrosen/highlighter/internal/log"
)

// Config holds all configuration options for highlighter.
type Config struct {
	Language string      `mapstructure:"language"` // fallback when no flag or extension matches
	Target   string      `mapstructure:"target"`   // "html" (default), "ansi", or "json"
	HTML     HTMLConfig  `mapstructure:"html"`
	Theme    ThemeConfig `mapstructure:"theme"`
	Regex    RegexConfig `mapstructure:"regex"`
	Cache    CacheConfig `mapstructure:"cache"`
	Watch    WatchConfig `mapstructure:"watch"`
}

// HTMLConfig holds options for the HTML render target.
type HTMLConfig struct {
	Prefix      string `mapstructure:"prefix"`
	Suffix      string `mapstructure:"suffix"`
	ClassPrefix string `mapstructure:"class_prefix"`
}

// ThemeConfig holds terminal theme customization for the ANSI target.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors overrides the foreground color of individual scopes.
	// Keys are scope identifiers, values are hex colors.
	// Example YAML:
	//   colors:
	//     keyword-control: "#FF0000"
	Colors map[string]string `mapstructure:"colors"`
}

// RegexConfig selects the pattern dialect used to compile languages.
type RegexConfig struct {
	Syntax string `mapstructure:"syntax"` // "re2" (default), "ecmascript", or "dotnet"
}

// CacheConfig controls reuse of built lexers between requests.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WatchConfig holds options for watch mode.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Target names accepted by the target key.
const (
	TargetHTML = "html"
	TargetANSI = "ansi"
	TargetJSON = "json"
)

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Language: "",
		Target:   TargetHTML,
		HTML: HTMLConfig{
			Prefix:      `<pre class="highlighter"><code>`,
			Suffix:      `</code></pre>`,
			ClassPrefix: "scope-",
		},
		Theme: ThemeConfig{
			Mode: "",
		},
		Regex: RegexConfig{
			Syntax: "re2",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// Syntax returns the configured regex dialect.
func (c Config) Syntax() (highlight.Syntax, error) {
	return highlight.ParseSyntax(c.Regex.Syntax)
}

// Validate checks the configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func (c Config) Validate() error {
	if err := ValidateTarget(c.Target); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if _, err := c.Syntax(); err != nil {
		return fmt.Errorf("regex.syntax: %w", err)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// ValidateTarget checks a target name.
func ValidateTarget(name string) error {
	switch strings.ToLower(name) {
	case "", TargetHTML, TargetANSI, TargetJSON:
		return nil
	default:
		return fmt.Errorf("target must be \"html\", \"ansi\", or \"json\", got %q", name)
	}
}

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateTheme checks the theme mode and every color override.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}

	for name, color := range theme.Colors {
		if _, err := highlight.ParseScope(name); err != nil {
			return fmt.Errorf("theme.colors.%s: %w", name, err)
		}
		if !hexColorRe.MatchString(color) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", name, color)
		}
	}
	return nil
}

// DefaultConfigPath returns ~/.config/highlighter/config.yaml or empty string
// if the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "highlighter", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Highlighter Configuration

# Language used when neither --lang nor the file extension picks one
# (run 'highlighter languages' to list names and aliases)
# language: go

# Output format: "html" (default), "ansi", or "json"
target: html

# HTML output settings
html:
  prefix: '<pre class="highlighter"><code>'
  suffix: '</code></pre>'
  class_prefix: scope-   # each span gets class="<class_prefix><scope>"

# Terminal theme for the ansi target
theme:
  # mode: dark   # Force "light" or "dark"; empty uses terminal detection
  #
  # Override scope colors by identifier:
  # colors:
  #   keyword-control: "#CBA6F7"
  #   string-quoted: "#A6E3A1"
  #   comment: "#6C7086"

# Pattern dialect used to compile language rules: re2 (default), ecmascript, dotnet
regex:
  syntax: re2

# Keep built lexers around between requests
cache:
  enabled: true
  ttl: 10m

# Watch mode settings
watch:
  debounce: 100ms
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
