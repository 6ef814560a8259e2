package logging

import (
	"context"
	"io"
	"log/slog"
)

// EnvProduction is the environment name that switches off debug diagnostics.
const EnvProduction = "production"

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewText builds a text-handler logger for interactive tools.
// Outside production the level is lowered to debug.
func NewText(w io.Writer, env string) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: LevelFor(env)})))
}

// NewJSON builds a JSON-handler logger for services.
func NewJSON(w io.Writer, env string) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: LevelFor(env)})))
}

// LevelFor maps an environment name to the minimal log level.
func LevelFor(env string) slog.Level {
	if env == EnvProduction {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// Slog exposes the underlying *slog.Logger for libraries that want one.
func (s *SlogLogger) Slog() *slog.Logger {
	return s.l
}
