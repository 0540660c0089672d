// Package logging is the server's structured logger: zap console output,
// optionally rotated to disk via lumberjack.
//
// Grounded on the packetd agent's logger package (logger/logger.go): a
// constructor that swaps the encoder sink between stdout and a rotating
// file depending on Options. This package keeps no package-level default
// logger; callers use the Logger that New returns.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level names accepted by Options.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

func toZapLevel(l string) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options configures a Logger. Config tags match the config package's
// go-ucfg overlay keys.
type Options struct {
	Stdout     bool   `config:"stdout"`
	Level      string `config:"level"`
	Filename   string `config:"filename"`
	MaxSize    int    `config:"maxSize"` // megabytes
	MaxAge     int    `config:"maxAge"`  // days
	MaxBackups int    `config:"maxBackups"`
}

// DefaultOptions logs at info level to stdout, suitable for running in a
// foreground terminal.
func DefaultOptions() Options {
	return Options{Stdout: true, Level: LevelInfo}
}

// Logger wraps a *zap.SugaredLogger behind the printf-style surface the
// httpserver package's Logger interface expects.
type Logger struct {
	sugared *zap.SugaredLogger
}

func (l Logger) Debugf(template string, args ...interface{}) { l.sugared.Debugf(template, args...) }
func (l Logger) Infof(template string, args ...interface{})  { l.sugared.Infof(template, args...) }
func (l Logger) Warnf(template string, args ...interface{})  { l.sugared.Warnf(template, args...) }
func (l Logger) Errorf(template string, args ...interface{}) { l.sugared.Errorf(template, args...) }

// Sync flushes any buffered log entries.
func (l Logger) Sync() error { return l.sugared.Sync() }

// New builds a Logger from opt. Panics if the log directory can't be
// created, matching the sink-construction failure mode this is grounded
// on.
func New(opt Options) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var w zapcore.WriteSyncer
	if opt.Stdout {
		w = zapcore.AddSync(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(opt.Filename), 0o755); err != nil {
			panic(err)
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    opt.MaxSize,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge,
			LocalTime:  true,
		})
	}

	core := zapcore.NewCore(encoder, w, toZapLevel(opt.Level))
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return Logger{sugared: zl.Sugar()}
}
