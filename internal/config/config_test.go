package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Diagnostics.Max)
	assert.True(t, cfg.Diagnostics.Color)
	assert.True(t, cfg.Diagnostics.Context)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 1, cfg.LSP.LogVerbosity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[diagnostics]
max = 5

[output]
format = "yaml"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Diagnostics.Max)
	assert.True(t, cfg.Diagnostics.Color, "unset keys keep their defaults")
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, 1, cfg.LSP.LogVerbosity)
}

func TestLoadAllKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[diagnostics]
max = 10
color = false
context = false

[output]
format = "text"

[lsp]
log_verbosity = 3
log_file = "/tmp/minic-lsp.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Diagnostics.Color)
	assert.False(t, cfg.Diagnostics.Context)
	assert.Equal(t, 3, cfg.LSP.LogVerbosity)
	assert.Equal(t, "/tmp/minic-lsp.log", cfg.LSP.LogFile)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"syntax", "[diagnostics\nmax = 1", "failed to parse config"},
		{"wrong type", "[diagnostics]\nmax = \"many\"", "failed to parse config"},
		{"unknown key", "[diagnostics]\ncolour = true", "unknown config key \"diagnostics.colour\""},
		{"bad format", "[output]\nformat = \"json\"", "output.format"},
		{"negative max", "[diagnostics]\nmax = -1", "diagnostics.max"},
		{"verbosity", "[lsp]\nlog_verbosity = 9", "lsp.log_verbosity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Diagnostics.Max = -2
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagnostics.max")
	assert.Contains(t, err.Error(), "output.format")
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[diagnostics]\nmax = 2\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "")

	root := t.TempDir()
	writeConfig(t, root, "[diagnostics]\nmax = 7\n")

	cfg, path, err := Resolve("", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, 7, cfg.Diagnostics.Max)

	other := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(other, []byte("[diagnostics]\nmax = 1\n"), 0o644))

	cfg, path, err = Resolve(other, root)
	require.NoError(t, err)
	assert.Equal(t, other, path)
	assert.Equal(t, 1, cfg.Diagnostics.Max)

	t.Setenv(EnvVar, other)
	cfg, _, err = Resolve("", root)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Diagnostics.Max)
}
