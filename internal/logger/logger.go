package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Logger struct {
	*slog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

// InitFromEnv configures the default logger from BACKENDCTL_DEBUG and
// BACKENDCTL_LOG_FORMAT, the only logging knobs the tool exposes.
// Debug mode also turns on source locations.
func InitFromEnv() {
	level := slog.LevelInfo
	debug := os.Getenv("BACKENDCTL_DEBUG") != ""
	if debug {
		level = slog.LevelDebug
	}
	Init(&Config{
		Level:     level,
		Format:    os.Getenv("BACKENDCTL_LOG_FORMAT"),
		AddSource: debug,
	})
}

func Init(cfg *Config) {
	once.Do(func() {
		defaultLogger = newLogger(cfg)
	})
}

func newLogger(cfg *Config) *Logger {
	if cfg == nil {
		cfg = &Config{Level: slog.LevelInfo}
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	// Text to stderr by default; json is for driving backendctl from
	// other tooling.
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return &Logger{slog.New(handler)}
}

func L() *Logger {
	if defaultLogger == nil {
		Init(nil)
	}
	return defaultLogger
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
