package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/config"
)

// newLogger builds a production zap logger from the logging config.
// Interactive sessions without a log file get a no-op logger so nothing
// is drawn over the terminal UI.
func newLogger(lc config.LoggingConfig, verbose, interactive bool) (*zap.Logger, error) {
	if interactive && lc.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true

	if lc.File != "" {
		zc.OutputPaths = []string{lc.File}
		zc.ErrorOutputPaths = []string{lc.File}
	}
	return zc.Build()
}
