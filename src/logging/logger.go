// Package logging builds the zap logger. The TUI owns the terminal, so log
// output goes to a file only.
package logging

import (
	"go.uber.org/zap"
)

// New builds a production JSON logger writing to path at the given level.
// An unknown level falls back to info.
func New(level, path string) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel.SetLevel(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	return cfg.Build()
}
