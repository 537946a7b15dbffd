package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "options.json")

	jsonBody := `{
		"base_config_name": "shared",
		"settings_path": "/abs/settings",
		"configs_path": "/abs/configs",
		"log_level": "warn"
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	opts, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, opts)

	assert.Equal(t, "shared", opts.BaseConfigName)
	assert.Equal(t, "/abs/settings", opts.SettingsPath)
	assert.Equal(t, "/abs/configs", opts.ConfigsPath)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Empty(t, opts.JSONFilePath)
}

func TestParseJSON_RelativePathsResolvedAgainstFileDir(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "options.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"settings_path":"s","configs_path":"../c"}`), 0o600))

	// Act
	opts, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "s"), opts.SettingsPath)
	assert.Equal(t, filepath.Join(filepath.Dir(dir), "c"), opts.ConfigsPath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	opts, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, opts)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"base_config_name":`), 0o600))

	// Act
	opts, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, opts)
	assert.Contains(t, err.Error(), "error decoding json options")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	opts, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
}
