package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application-wide logging interface.
// Every method takes a context first so request-scoped fields can be
// attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development, production
	Encoding     string // console, json
	ColorEnabled bool
}

type zapLogger struct {
	s *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the zap-backed Logger from config. Invalid values fall back
// to info level / production mode rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if l, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = l
	}

	var zapCfg zap.Config
	if cfg.Mode == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{s: l.Sugar()}
}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any)  { z.s.Debug(args...) }
func (z *zapLogger) Info(ctx context.Context, args ...any)   { z.s.Info(args...) }
func (z *zapLogger) Warn(ctx context.Context, args ...any)   { z.s.Warn(args...) }
func (z *zapLogger) Error(ctx context.Context, args ...any)  { z.s.Error(args...) }
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.s.DPanic(args...) }
func (z *zapLogger) Panic(ctx context.Context, args ...any)  { z.s.Panic(args...) }
func (z *zapLogger) Fatal(ctx context.Context, args ...any)  { z.s.Fatal(args...) }

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.s.Debugf(format, args...)
}
func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.s.Infof(format, args...)
}
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.s.Warnf(format, args...)
}
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.s.Errorf(format, args...)
}
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.s.DPanicf(format, args...)
}
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.s.Panicf(format, args...)
}
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.s.Fatalf(format, args...)
}
