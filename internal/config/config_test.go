package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.False(t, cfg.Log.Verbose)
	assert.False(t, cfg.Check.RequireMain)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	want := &Config{
		Output: OutputConfig{Format: FormatJSON, Color: ColorNever},
		Log:    LogConfig{Verbose: true},
		Check:  CheckConfig{RequireMain: true},
	}

	tests := []struct {
		name    string
		content string
	}{
		{"sslc.toml", `
[output]
format = "json"
color = "never"

[log]
verbose = true

[check]
require_main = true
`},
		{"sslc.yaml", `
output:
  format: json
  color: never
log:
  verbose: true
check:
  require_main: true
`},
		{"conf.yml", `
output: {format: json, color: never}
log: {verbose: true}
check: {require_main: true}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.name, tt.content)
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sslc.toml", "[check]\nrequire_main = true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.True(t, cfg.Check.RequireMain)

	path = writeFile(t, t.TempDir(), "sslc.yaml", "output:\n  format: \"\"\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		msg     string
	}{
		{"missing", "", "", "read config"},
		{"extension", "sslc.ini", "x=1", "unsupported config extension"},
		{"bad toml", "bad.toml", "[output\n", "parse"},
		{"bad yaml", "bad.yaml", "output: [\n", "parse"},
		{"format", "f.toml", "[output]\nformat = \"xml\"\n", `unknown output format "xml"`},
		{"color", "c.yaml", "output:\n  color: rainbow\n", `unknown color mode "rainbow"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "nope.toml")
			if tt.file != "" {
				path = writeFile(t, dir, tt.file, tt.content)
			}
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	cfg, path, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)

	writeFile(t, dir, ".sslc.yml", "output:\n  format: yaml\n")
	cfg, path, err = Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".sslc.yml"), path)
	assert.Equal(t, FormatYAML, cfg.Output.Format)

	// sslc.toml wins over the other names
	writeFile(t, dir, "sslc.toml", "[output]\nformat = \"sexpr\"\n")
	cfg, path, err = Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sslc.toml"), path)
	assert.Equal(t, FormatSExpr, cfg.Output.Format)

	writeFile(t, dir, "sslc.toml", "[output]\nformat = \"html\"\n")
	_, _, err = Discover(dir)
	assert.Error(t, err)
}
