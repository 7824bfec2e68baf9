// Package logging builds the session logger. The terminal owns stdout, so logs
// go to a rotated file or nowhere.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log sink
type Options struct {
	Enabled    bool
	Dir        string
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
}

// DefaultOptions returns file logging settings, disabled
func DefaultOptions() Options {
	return Options{
		Dir:        "logs",
		File:       "showcase.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		Level:      "info",
	}
}

// Path returns the log file path
func (o Options) Path() string {
	return filepath.Join(o.Dir, o.File)
}

// New returns a JSON file logger tagged with a fresh session id
// Disabled options return a no-op logger
func New(opts Options) (*zap.Logger, error) {
	if !opts.Enabled {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.Path(),
		MaxSize:    max(opts.MaxSizeMB, 1),
		MaxBackups: opts.MaxBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339Nano))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level)
	return zap.New(core).With(zap.String("session", uuid.NewString())), nil
}
