// Package logger provides structured logging using zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Uninitialized packages log to a no-op core so library code can log
// unconditionally (tests never call Init).
var (
	log   = zap.NewNop()
	sugar = log.Sugar()
)

// FileConfig holds rotating-file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  20,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// Init configures console logging at the given level and, when logFile is
// non-empty, rotating file logging as well.
func Init(level string, logFile string) {
	lvl := parseLevel(level)

	encCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), lvl),
	}

	if logFile != "" {
		fc := DefaultFileConfig(logFile)
		w := &lumberjack.Logger{
			Filename:   fc.Path,
			MaxSize:    fc.MaxSizeMB,
			MaxBackups: fc.MaxBackups,
			MaxAge:     fc.MaxAgeDays,
		}
		fileCfg := encCfg
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(w), lvl))
	}

	log = zap.New(zapcore.NewTee(cores...))
	sugar = log.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = log.Sync()
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }

// Info logs an info message.
func Info(msg string, fields ...zap.Field) { log.Info(msg, fields...) }

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) { log.Warn(msg, fields...) }

// Error logs an error message.
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

// Infof logs a formatted info message.
func Infof(format string, args ...any) { sugar.Infof(format, args...) }

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }
