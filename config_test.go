package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfig_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "save_directory: "+dir+"\nconfirmations: false\nlog_level: debug\ncell_width: 8\n")

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, dir, config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 8.0, config.CellWidth)
	assert.Equal(t, defaultCellHeight, config.CellHeight)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "confirmations: [\n"},
		{"unknown level", "log_level: loud\n"},
		{"zero cell", "cell_height: 0\n"},
		{"huge cell", "cell_width: 500\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFrom(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")
	t.Setenv(configEnvVar, path)

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestGetSavePath(t *testing.T) {
	dir := t.TempDir()
	config := defaultConfig()
	config.SaveDirectory = filepath.Join(dir, "boards")

	path, err := config.GetSavePath("plan.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boards", "plan.yaml"), path)
	assert.DirExists(t, config.SaveDirectory)

	path, err = config.GetSavePath(filepath.Join("sub", "plan.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sub", "plan.yaml"), path)

	config.SaveDirectory = ""
	path, err = config.GetSavePath("plan.yaml")
	require.NoError(t, err)
	assert.Equal(t, "plan.yaml", path)
}

func TestGetSavePath_DirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "boards")

	path, err := config.GetSavePath("plan.yaml")
	assert.Error(t, err)
	assert.Equal(t, filepath.Join(blocker, "boards", "plan.yaml"), path)
}

func TestNewLogger(t *testing.T) {
	config := defaultConfig()
	logger, err := newLogger(config)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	config.LogFile = filepath.Join(t.TempDir(), "cardboard.log")
	config.LogLevel = "debug"
	logger, err = newLogger(config)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(config.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
