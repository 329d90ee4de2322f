// Package logger builds the application logger on top of the Uber zap
// logging library.
package logger

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

// New constructs a SugaredLogger writing to stderr at the given level.
// Level accepts the usual zap names: debug, info, warn, error.
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return zl.Sugar(), nil
}

// Sync flushes any buffered log entries to the output.
// It should be called when shutting down to ensure all logs are written.
func Sync(log *zap.SugaredLogger) error {
	if err := log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}

	return nil
}
