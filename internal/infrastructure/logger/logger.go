package logger

import (
	ports "change-request-service/internal/domain/ports/output"
	"io"
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envTest = "test"
)

var _ ports.Logger = (*Logger)(nil)

type Logger struct {
	*slog.Logger
}

// New picks a text handler at debug level for dev and test, JSON at info otherwise.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *Logger {
	var h slog.Handler
	switch env {
	case envDev, envTest:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(h).With(slog.String("env", env))}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
