// Package config loads sslc settings from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

// Config holds the complete driver configuration.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Check  CheckConfig  `toml:"check" yaml:"check"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json, yaml or sexpr
	Color  string `toml:"color" yaml:"color"`   // auto, always or never
}

// LogConfig controls driver tracing.
type LogConfig struct {
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// CheckConfig holds semantic analysis options.
type CheckConfig struct {
	RequireMain bool `toml:"require_main" yaml:"require_main"`
}

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatSExpr = "sexpr"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Names searched by Discover, in order.
var DefaultNames = []string{"sslc.toml", "sslc.yaml", ".sslc.yml"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
	}
}

// Load reads the file at path. The decoder is chosen by extension:
// .toml for TOML, .yaml and .yml for YAML.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(err, "parse %v", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse %v", path)
		}
	default:
		return nil, errors.New("unsupported config extension %q: %v", ext, path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "%v", path)
	}

	return cfg, nil
}

// Discover looks for one of DefaultNames in dir.
// It returns the default configuration and an empty path if none exists.
func Discover(dir string) (*Config, string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)

		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, "", errors.Wrap(err, "stat config")
		}

		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}

		return cfg, path, nil
	}

	return Default(), "", nil
}

// applyDefaults fills settings an explicit empty value left unset.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}

// Validate reports settings outside their allowed values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML, FormatSExpr:
	default:
		return errors.New("unknown output format %q", c.Output.Format)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New("unknown color mode %q", c.Output.Color)
	}

	return nil
}
