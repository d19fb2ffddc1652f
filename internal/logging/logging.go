// Package logging builds the zap loggers used by the chanscan command.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format controls how log entries are rendered.
type Format int

const (
	Console Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case Console:
		return "console"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to a Format. An empty string selects Console.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "text", "":
		return Console, nil
	case "json":
		return JSON, nil
	default:
		return Console, fmt.Errorf("unsupported log format %q", s)
	}
}

// ParseLevel converts a level name to a zapcore.Level. An empty string
// selects info.
func ParseLevel(s string) (zapcore.Level, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level %q", s)
	}
	return lvl, nil
}

// New returns a logger writing to stderr.
func New(level, format string) (*zap.Logger, error) {
	return NewWriter(os.Stderr, level, format)
}

// NewWriter returns a logger writing entries at or above level to w.
func NewWriter(w io.Writer, level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch f {
	case JSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
