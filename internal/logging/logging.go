// Package logging configures structured logging with zap. All output
// goes to stderr: stdout carries the MCP stdio transport.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the global logger at the given level. Unknown levels
// fall back to info.
func Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}
