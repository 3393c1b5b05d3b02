// Package logging builds the zap logger shared by the CLI and the board.
package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr as a path sends logs to standard error instead of a file.
const Stderr = "-"

// ErrInvalidLevel is returned by New when level is not a zap level name.
var ErrInvalidLevel = errors.New("invalid log level")

// New returns a JSON production logger writing to path at the given level
// ("debug", "info", "warn", "error"; empty means info). verbose forces debug.
// The returned func flushes the logger and closes its output file.
func New(level, path string, verbose bool) (*zap.Logger, func(), error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	out := "stderr"
	if path != "" && path != Stderr {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		out = path
	}

	sink, closeSink, err := zap.Open(out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, zap.NewAtomicLevelAt(lvl))

	logger := zap.New(core,
		zap.ErrorOutput(sink),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Named("habitcore")

	closed := false
	cleanup := func() {
		if closed {
			return
		}
		closed = true
		_ = logger.Sync()
		closeSink()
	}
	return logger, cleanup, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w %q", ErrInvalidLevel, s)
	}
	return lvl, nil
}
