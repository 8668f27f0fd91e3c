package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SaveDirectory string  `yaml:"save_directory"`
	Confirmations bool    `yaml:"confirmations"`
	LogFile       string  `yaml:"log_file"`
	LogLevel      string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	CellWidth     float64 `yaml:"cell_width" validate:"gt=0,lte=100"`
	CellHeight    float64 `yaml:"cell_height" validate:"gt=0,lte=100"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		LogLevel:      "info",
		CellWidth:     defaultCellWidth,
		CellHeight:    defaultCellHeight,
	}
}

// loadConfig reads $CARDBOARD_CONFIG, or ~/.cardboard.yaml when unset.
func loadConfig() (*Config, error) {
	if path := os.Getenv(configEnvVar); path != "" {
		return loadConfigFrom(path)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(filepath.Join(homeDir, configFileName))
}

// loadConfigFrom overlays the file on the defaults. A missing file is not an
// error.
func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	config.SaveDirectory = expandPath(config.SaveDirectory)
	config.LogFile = expandPath(config.LogFile)
	return config, nil
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath places bare file names in the save directory, creating it if
// needed. Paths with a directory component are used as given. The path is
// returned even when the directory cannot be created.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.Base(filename) != filename {
		return filename, nil
	}
	path := filepath.Join(c.SaveDirectory, filename)
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return path, fmt.Errorf("create save directory %s: %w", c.SaveDirectory, err)
	}
	return path, nil
}
