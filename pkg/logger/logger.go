// Package logger keeps a zap logger in the context so request and job scoped
// fields follow the call chain. Code without a scoped logger falls back to the
// process-wide logger configured by Setup.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable console output at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"
)

var (
	defaultLogger = zap.NewNop()         //nolint: gochecknoglobals
	level         = zap.NewAtomicLevel() //nolint: gochecknoglobals
)

// Setup replaces the process-wide logger according to environment. Unknown
// environments are treated as development.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	level.SetLevel(zap.DebugLevel)
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		level.SetLevel(zap.InfoLevel)
	}
	cfg.Level = level

	l, err := cfg.Build(zap.Fields(zap.String("service", "commissions")))
	if err != nil {
		// the configs above only fail on unwritable sinks
		l = zap.NewExample()
	}
	defaultLogger = l
}

// SetLevel changes the level of the process-wide logger, e.g. "warn".
// An empty level keeps the environment default.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(l)

	return nil
}

type key struct{}

// Get returns the logger stored in ctx, or the process-wide one.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields adds fields to every entry logged through the returned context.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Named scopes the logger of ctx to a component, e.g. "scheduler".
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Get(ctx).Named(name))
}

// Enabled reports whether entries at lvl are written by the logger of ctx.
func Enabled(ctx context.Context, lvl zapcore.Level) bool {
	return Get(ctx).Core().Enabled(lvl)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs msg and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
