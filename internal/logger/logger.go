package logger

import (
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config controls logger construction.
type Config struct {
	Level  string
	Output io.Writer
	JSON   bool
}

type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }

func (c *charmLogger) Info(msg string, keyvals ...any) { c.l.Info(msg, keyvals...) }

func (c *charmLogger) Warn(msg string, keyvals ...any) { c.l.Warn(msg, keyvals...) }

func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

var defaultLogger Logger = New(nil)

// New builds a charm logger from cfg. A nil cfg gives an info-level text logger on stdout.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = &Config{Level: "info", Output: os.Stdout}
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           parseLevel(cfg.Level),
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return &charmLogger{l: l}
}

func parseLevel(level string) charmlog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Init replaces the package default logger.
func Init(cfg *Config) {
	defaultLogger = New(cfg)
}

// GetDefault returns the package default logger.
func GetDefault() Logger {
	return defaultLogger
}

func Debug(msg string, keyvals ...any) { defaultLogger.Debug(msg, keyvals...) }

func Info(msg string, keyvals ...any) { defaultLogger.Info(msg, keyvals...) }

func Warn(msg string, keyvals ...any) { defaultLogger.Warn(msg, keyvals...) }

func Error(msg string, keyvals ...any) { defaultLogger.Error(msg, keyvals...) }
