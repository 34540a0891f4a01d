// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

// ParseLogLevel accepts the canonical names and their common aliases.
func ParseLogLevel(s string) (LogLevel, error) {
	switch LogLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LogLevelDebug, "trace":
		return LogLevelDebug, nil
	case LogLevelInfo, "information", "notice":
		return LogLevelInfo, nil
	case LogLevelWarn, "warning":
		return LogLevelWarn, nil
	case LogLevelError:
		return LogLevelError, nil
	default:
		return "", fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
}

func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// NewLogger builds a console logger writing to w at the given level.
func NewLogger(w io.Writer, l LogLevel) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), l.Zap())

	return zap.New(core)
}
