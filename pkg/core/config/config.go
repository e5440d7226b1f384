package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "BOOLEX_CONFIG"

// MaxTableVariables is the largest table width a config may request
const MaxTableVariables = 26

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Table   TableConfig   `toml:"table" yaml:"table"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// TableConfig controls truth table generation and output
type TableConfig struct {
	MaxVariables int    `toml:"max_variables" yaml:"max_variables"`
	Style        string `toml:"style" yaml:"style"`
	Output       string `toml:"output" yaml:"output"`
	ShowAST      bool   `toml:"show_ast" yaml:"show_ast"`
}

// HistoryConfig holds the expression history store settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
	Limit   int    `toml:"limit" yaml:"limit"`
}

// WatchConfig holds settings for the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format is chosen
// by extension; anything other than .yaml/.yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.DecodeFile(path, cfg)
		return err
	}
}

// SearchPaths returns the locations LoadFromEnv tries when BOOLEX_CONFIG is unset
func SearchPaths() []string {
	return []string{
		"./configs/config.toml",
		"./config.toml",
		filepath.Join(os.Getenv("HOME"), ".config/boolex/config.toml"),
	}
}

// LoadFromEnv loads configuration from the BOOLEX_CONFIG environment variable
// or the first existing file of SearchPaths.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvConfigPath + " or create configs/config.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// LoadOrDefault loads path when given, otherwise searches the environment.
// A missing config file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Table
	if c.Table.MaxVariables == 0 {
		c.Table.MaxVariables = 16
	}
	if c.Table.Style == "" {
		c.Table.Style = "plain"
	}
	if c.Table.Output == "" {
		c.Table.Output = "text"
	}

	// History
	if c.History.Path == "" {
		c.History.Path = "${HOME}/.local/share/boolex/history.db"
	}
	if c.History.Limit == 0 {
		c.History.Limit = 20
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 100 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, msg string) error {
		return mdwerror.New(msg).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", key).
			WithDetail("value", value).
			WithOperation("config.Validate")
	}

	if c.Table.MaxVariables < 1 || c.Table.MaxVariables > MaxTableVariables {
		return invalid("table.max_variables", c.Table.MaxVariables, "max_variables must be between 1 and 26")
	}
	switch c.Table.Style {
	case "plain", "styled":
	default:
		return invalid("table.style", c.Table.Style, "style must be plain or styled")
	}
	switch c.Table.Output {
	case "text", "yaml", "json":
	default:
		return invalid("table.output", c.Table.Output, "output must be text, yaml or json")
	}
	if c.History.Limit < 0 {
		return invalid("history.limit", c.History.Limit, "history limit must not be negative")
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", c.Watch.Debounce.String(), "debounce must not be negative")
	}
	return nil
}
