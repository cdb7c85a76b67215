// Package logger builds the zap logger used by a delivery filter run.
package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDirMode  = 0o755
	logFileMode = 0o644
)

// New creates a logger that appends JSON lines to the file at path and
// mirrors every entry to console in a human-readable form. The parent
// directory of path is created if missing. Debug entries are kept only when
// verbose is set.
//
// The returned close function flushes the logger and closes the file.
func New(path string, verbose bool, console io.Writer) (*zap.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirMode); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, nil, err
	}

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(console), level),
	)
	log := zap.New(core)

	closeFn := func() error {
		// Sync on a console writer such as a terminal may fail with EINVAL;
		// only the file matters here.
		_ = log.Sync()
		return errors.Join(file.Sync(), file.Close())
	}

	return log, closeFn, nil
}
