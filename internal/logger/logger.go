// Package logger wraps a process-wide zap logger with context-aware helpers.
package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Initialize builds the process logger. format is "json" or "console".
func Initialize(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	global.Store(l)
	return l, nil
}

// L returns the process logger.
func L() *zap.Logger {
	return global.Load()
}

// WithRequestID stores a request id on ctx so every *Ctx helper tags its entry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func withCtx(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	L().Debug(msg, withCtx(ctx, fields)...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	L().Info(msg, withCtx(ctx, fields)...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	L().Warn(msg, withCtx(ctx, fields)...)
}

// ErrorCtx logs err with the request id attached.
func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	L().Error(err.Error(), withCtx(ctx, append(fields, zap.Error(err)))...)
}
