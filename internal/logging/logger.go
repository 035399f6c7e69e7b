// Package logging builds the zap logger used for debug output.
//
// User-facing diagnostics go through ui.Reporter; this logger records what the
// tool did (resolver lookups, subprocess invocations) for troubleshooting.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level returns an adjustable level: debug when verbose, warn otherwise.
// The --verbose flag raises it after the logger has been built.
func Level(verbose bool) zap.AtomicLevel {
	if verbose {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zapcore.WarnLevel)
}

// New creates a console logger writing to stderr.
func New(level zap.AtomicLevel) (*zap.Logger, error) {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w.
func NewWithWriter(w io.Writer, level zap.AtomicLevel) (*zap.Logger, error) {
	if w == nil {
		return nil, fmt.Errorf("nil log writer")
	}
	core := zapcore.NewCore(newEncoder(), zapcore.AddSync(w), level)
	return zap.New(core), nil
}

func newEncoder() zapcore.Encoder {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderCfg)
}
