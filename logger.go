package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the UI, so without a log file nothing is logged.
func newLogger(config *Config) (*zap.Logger, error) {
	if config.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{config.LogFile}
	zcfg.ErrorOutputPaths = []string{config.LogFile}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
